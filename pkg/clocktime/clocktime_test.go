package clocktime

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"02:30", 2.5},
		{"00:00", 0},
		{"23:59", 23 + 59.0/60},
		{"10:15", 10.25},
		{"", 0},
		{"7", 7},
		{"ab:30", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.InDelta(t, tt.want, Parse(tt.in), 1e-9)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{"plain", 2.5, "02:30"},
		{"midnight", 0, "00:00"},
		{"wraps forward", 24.5, "00:30"},
		{"wraps twice", 49, "01:00"},
		{"wraps backward", -0.75, "23:15"},
		{"minute carry", 9.999, "10:00"},
		{"carry past midnight", 23.999, "00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.in))
		})
	}
}

func TestAdjustWrapsBothDirections(t *testing.T) {
	assert.Equal(t, "00:30", Adjust("23:30", 1))
	assert.Equal(t, "23:15", Adjust("00:15", -1))
	assert.Equal(t, "02:30", Adjust("02:00", 0.5))
	assert.Equal(t, "01:30", Adjust("02:00", -0.5))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid("00:00"))
	assert.True(t, Valid("23:59"))
	assert.False(t, Valid("24:00"))
	assert.False(t, Valid("9:00"))
	assert.False(t, Valid("12:60"))
	assert.False(t, Valid(""))
}
