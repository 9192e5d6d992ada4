// Package clocktime переводит время "HH:mm" в десятичные часы и обратно.
package clocktime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const hoursPerDay = 24

// Parse разбирает "HH:mm" в десятичные часы ("02:30" -> 2.5).
// Пустая строка или нечисловая часть дают 0, а не ошибку.
func Parse(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	hh, mm, _ := strings.Cut(s, ":")
	hours, err := strconv.Atoi(strings.TrimSpace(hh))
	if err != nil {
		hours = 0
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(mm))
	if err != nil {
		minutes = 0
	}
	return float64(hours) + float64(minutes)/60
}

// Format переводит десятичные часы обратно в "HH:mm", нормализуя значение в [0,24).
func Format(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return "00:00"
	}
	for hours < 0 {
		hours += hoursPerDay
	}
	for hours >= hoursPerDay {
		hours -= hoursPerDay
	}

	h := int(math.Floor(hours))
	m := int(math.Round((hours - float64(h)) * 60))
	if m == 60 {
		h++
		m = 0
	}
	if h >= hoursPerDay {
		h -= hoursPerDay
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Adjust сдвигает время на deltaHours с переходом через полночь в обе стороны.
func Adjust(s string, deltaHours float64) string {
	return Format(Parse(s) + deltaHours)
}

// Valid проверяет, что s имеет вид "HH:mm" в диапазоне [00:00,23:59].
func Valid(s string) bool {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return false
	}
	m, err := strconv.Atoi(mm)
	return err == nil && m >= 0 && m <= 59
}
