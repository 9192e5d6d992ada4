package service

import (
	"math"

	"workshift-bot/internal/model"
	"workshift-bot/pkg/clocktime"
)

// Тарифные зоны в часах от начала дня смены.
// Ночь 00:00–06:00 и её продолжение на следующий день 24:00–30:00, день 06:00–24:00.
const (
	nightEnd       = 6.0
	dayEnd         = 24.0
	nextNightStart = 24.0
	nextNightEnd   = 24.0 + nightEnd
)

// CalculateEarnings делит смену на дневные и ночные часы и считает оплату.
// Если конец раньше начала, смена переходит через полночь.
// Нулевая или отрицательная длительность даёт нулевой результат (в том числе start == end).
func CalculateEarnings(startTime, endTime string, rates model.RateTable) model.EarningsResult {
	start := clocktime.Parse(startTime)
	end := clocktime.Parse(endTime)
	if end < start {
		end += 24
	}
	if end-start <= 0 {
		return model.EarningsResult{}
	}

	night := overlap(start, end, 0, nightEnd) + overlap(start, end, nextNightStart, nextNightEnd)
	day := overlap(start, end, nightEnd, dayEnd)
	// всё, что позже 06:00 следующего дня, считается дневным
	if end > nextNightEnd {
		day += end - nextNightEnd
	}

	return model.EarningsResult{
		DayHours:   day,
		NightHours: night,
		TotalPay:   night*rates.Night + day*rates.Day,
	}
}

func overlap(s1, e1, s2, e2 float64) float64 {
	return math.Max(0, math.Min(e1, e2)-math.Max(s1, s2))
}
