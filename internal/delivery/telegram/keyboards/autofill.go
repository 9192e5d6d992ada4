package keyboards

import (
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"workshift-bot/pkg/calendar"
)

// WeekdayMask — выбранные дни недели, бит i соответствует time.Weekday(i).
type WeekdayMask uint8

// DefaultWeekdays — Пн–Пт.
const DefaultWeekdays WeekdayMask = 1<<time.Monday | 1<<time.Tuesday | 1<<time.Wednesday | 1<<time.Thursday | 1<<time.Friday

var fillOrder = []struct {
	label string
	day   time.Weekday
}{
	{"Пн", time.Monday}, {"Вт", time.Tuesday}, {"Ср", time.Wednesday}, {"Чт", time.Thursday},
	{"Пт", time.Friday}, {"Сб", time.Saturday}, {"Вс", time.Sunday},
}

func (m WeekdayMask) Has(d time.Weekday) bool { return m&(1<<d) != 0 }

func (m WeekdayMask) Toggle(d time.Weekday) WeekdayMask { return m ^ (1 << d) }

func (m WeekdayMask) Weekdays() []time.Weekday {
	var out []time.Weekday
	for _, f := range fillOrder {
		if m.Has(f.day) {
			out = append(out, f.day)
		}
	}
	return out
}

func (m WeekdayMask) String() string { return strconv.Itoa(int(m)) }

func ParseWeekdayMask(s string) (WeekdayMask, bool) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n >= 1<<7 {
		return 0, false
	}
	return WeekdayMask(n), true
}

// AutoFill — выбор дней недели. Состояние выбора хранится прямо в callback-данных.
func AutoFill(year int, month time.Month, mask WeekdayMask) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	mk := calendar.MonthKey(year, month)

	days := telebot.Row{}
	for _, f := range fillOrder {
		label := f.label
		if mask.Has(f.day) {
			label = "✓" + label
		}
		days = append(days, markup.Data(label, "fill_toggle", mk, mask.Toggle(f.day).String()))
	}
	markup.Inline(
		days,
		markup.Row(markup.Data("🪄 Заполнить "+calendar.MonthName(month), "fill_apply", mk, mask.String())),
	)
	return markup
}
