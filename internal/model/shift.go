package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout — формат ключа дня в карте смен.
const DateLayout = "2006-01-02"

// ShiftRecord — смена за конкретный календарный день.
// Теги совпадают с legacy-форматом, чтобы старые записи читались как есть.
type ShiftRecord struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	IsWorkDay   bool   `json:"isWorkDay"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsCompleted bool   `json:"isCompleted"`
}

// Day возвращает дату смены; для некорректной даты ok == false.
func (s ShiftRecord) Day() (time.Time, bool) {
	d, err := time.Parse(DateLayout, s.Date)
	return d, err == nil
}

// RateTable — ставки за час по дневному и ночному тарифу.
type RateTable struct {
	Day   float64 `json:"day"`
	Night float64 `json:"night"`
}

type RateKind string

const (
	RateDay   RateKind = "day"
	RateNight RateKind = "night"
)

// EarningsResult пересчитывается каждый раз и никогда не сохраняется.
type EarningsResult struct {
	DayHours   float64
	NightHours float64
	TotalPay   float64
}

// Rounded округляет часы и сумму до двух знаков для показа.
func (r EarningsResult) Rounded() EarningsResult {
	return EarningsResult{
		DayHours:   Round2(r.DayHours),
		NightHours: Round2(r.NightHours),
		TotalPay:   Round2(r.TotalPay),
	}
}

// MonthStats — итоги месяца: Projected по всем рабочим дням, Earned только по отработанным.
type MonthStats struct {
	Projected     float64
	Earned        float64
	WorkDays      int
	CompletedDays int
}

func Round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

// FormatMoney печатает сумму в злотых: 286.8 -> "286.80 zł".
func FormatMoney(amount float64) string {
	return decimal.NewFromFloat(amount).StringFixed(2) + " zł"
}

// FormatHours печатает часы без лишних нулей: 4 -> "4", 2.5 -> "2.5".
func FormatHours(hours float64) string {
	return decimal.NewFromFloat(hours).Round(2).String()
}
