package domain

import (
	"context"

	"workshift-bot/internal/model"
)

// ShiftRepo хранит карту смен и ставки пользователя.
// Битые данные в хранилище не ошибка: Load* возвращают пустое состояние.
type ShiftRepo interface {
	LoadShifts(ctx context.Context, userID int64) (map[string]model.ShiftRecord, error)
	SaveShifts(ctx context.Context, userID int64, shifts map[string]model.ShiftRecord) error
	LoadRates(ctx context.Context, userID int64) (model.RateTable, bool, error)
	SaveRates(ctx context.Context, userID int64, rates model.RateTable) error
}
