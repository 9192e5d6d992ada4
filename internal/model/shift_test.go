package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "286.80 zł", FormatMoney(286.8))
	assert.Equal(t, "0.00 zł", FormatMoney(0))
	assert.Equal(t, "294.20 zł", FormatMoney(6*37.70+2*34.00))
}

func TestRounded(t *testing.T) {
	r := EarningsResult{DayHours: 1.0 / 3, NightHours: 2.0 / 3, TotalPay: 123.4567}.Rounded()
	assert.Equal(t, 0.33, r.DayHours)
	assert.Equal(t, 0.67, r.NightHours)
	assert.Equal(t, 123.46, r.TotalPay)
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "4", FormatHours(4))
	assert.Equal(t, "2.5", FormatHours(2.5))
}

func TestShiftRecordDay(t *testing.T) {
	d, ok := ShiftRecord{Date: "2025-03-10"}.Day()
	assert.True(t, ok)
	assert.Equal(t, 10, d.Day())

	_, ok = ShiftRecord{Date: "bogus"}.Day()
	assert.False(t, ok)
}
