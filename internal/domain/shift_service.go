package domain

import (
	"context"
	"time"

	"workshift-bot/internal/model"
)

type ShiftService interface {
	Shift(ctx context.Context, userID int64, date time.Time) (model.ShiftRecord, error)
	MarkWorkDay(ctx context.Context, userID int64, date time.Time) (model.ShiftRecord, error)
	UpdateShift(ctx context.Context, userID int64, date time.Time, mutate func(*model.ShiftRecord)) (model.ShiftRecord, error)
	ResetShift(ctx context.Context, userID int64, date time.Time) error
	RemoveShift(ctx context.Context, userID int64, date time.Time) error
	MonthShifts(ctx context.Context, userID int64, year int, month time.Month) (map[string]model.ShiftRecord, error)
	MonthStats(ctx context.Context, userID int64, year int, month time.Month) (model.MonthStats, error)
	AutoFill(ctx context.Context, userID int64, year int, month time.Month, weekdays []time.Weekday) (int, error)
	Rates(ctx context.Context, userID int64) (model.RateTable, error)
	AdjustRate(ctx context.Context, userID int64, kind model.RateKind, delta float64) (model.RateTable, error)
	Earnings(ctx context.Context, userID int64, shift model.ShiftRecord) (model.EarningsResult, error)
	Flush(ctx context.Context) error
	Close()
}
