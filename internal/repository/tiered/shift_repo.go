package tiered

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"workshift-bot/internal/metrics"
	"workshift-bot/internal/model"
	"workshift-bot/internal/repository/codec"
)

// ShiftRepo хранит карту смен и ставки пользователя через Store.
type ShiftRepo struct {
	store *Store
}

func NewShiftRepo(store *Store) *ShiftRepo {
	return &ShiftRepo{store: store}
}

// LoadShifts возвращает пустую карту, если данных нет или они повреждены.
func (r *ShiftRepo) LoadShifts(ctx context.Context, userID int64) (map[string]model.ShiftRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	key := ShiftsNamespace.Key(userID)
	blob, ok := r.store.Get(ctx, key)
	if !ok {
		return map[string]model.ShiftRecord{}, nil
	}
	shifts, err := codec.DecodeBlob(blob)
	if err != nil {
		metrics.CorruptBlobs.WithLabelValues(ShiftsNamespace.Name).Inc()
		slog.Warn("stored shifts are malformed, starting empty", "key", key, "error", err)
		return map[string]model.ShiftRecord{}, nil
	}
	return shifts, nil
}

func (r *ShiftRepo) SaveShifts(ctx context.Context, userID int64, shifts map[string]model.ShiftRecord) error {
	blob, err := codec.EncodeBlob(shifts)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, ShiftsNamespace.Key(userID), blob)
}

// LoadRates возвращает ok == false, если у пользователя нет своих ставок.
func (r *ShiftRepo) LoadRates(ctx context.Context, userID int64) (model.RateTable, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.RateTable{}, false, err
	}
	key := RatesNamespace.Key(userID)
	blob, ok := r.store.Get(ctx, key)
	if !ok {
		return model.RateTable{}, false, nil
	}
	var rates model.RateTable
	if err := json.Unmarshal([]byte(blob), &rates); err != nil {
		metrics.CorruptBlobs.WithLabelValues(RatesNamespace.Name).Inc()
		slog.Warn("stored rates are malformed, using defaults", "key", key, "error", err)
		return model.RateTable{}, false, nil
	}
	return rates, true, nil
}

func (r *ShiftRepo) SaveRates(ctx context.Context, userID int64, rates model.RateTable) error {
	b, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("encode rates: %w", err)
	}
	return r.store.Set(ctx, RatesNamespace.Key(userID), string(b))
}
