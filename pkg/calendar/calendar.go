package calendar

import (
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"
)

// Отметки дней в сетке.
const (
	MarkPlanned   = "•"
	MarkCompleted = "✓"
)

var ruMonths = map[time.Month]string{
	time.January:   "Январь",
	time.February:  "Февраль",
	time.March:     "Март",
	time.April:     "Апрель",
	time.May:       "Май",
	time.June:      "Июнь",
	time.July:      "Июль",
	time.August:    "Август",
	time.September: "Сентябрь",
	time.October:   "Октябрь",
	time.November:  "Ноябрь",
	time.December:  "Декабрь",
}

var weekdayHeader = []string{"Пн", "Вт", "Ср", "Чт", "Пт", "Сб", "Вс"}

// MonthName возвращает название месяца по-русски.
func MonthName(m time.Month) string {
	if ru, ok := ruMonths[m]; ok {
		return ru
	}
	return m.String()
}

// Build строит инлайн-календарь месяца с неделями от понедельника.
// marks: день месяца -> отметка, которая дописывается к числу.
func Build(year int, month time.Month, marks map[int]string) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	days := daysInMonth(year, month)

	var rows []telebot.Row
	header := telebot.Row{}
	for _, wd := range weekdayHeader {
		header = append(header, markup.Data(wd, "cal_ignore"))
	}
	rows = append(rows, header)

	week := telebot.Row{}
	// сдвиг: понедельник = 0
	offset := (int(first.Weekday()) + 6) % 7
	for i := 0; i < offset; i++ {
		week = append(week, markup.Data(" ", "cal_ignore"))
	}
	for d := 1; d <= days; d++ {
		label := strconv.Itoa(d) + marks[d]
		date := time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
		week = append(week, markup.Data(label, "cal_day", date.Format("2006-01-02")))
		if len(week) == 7 {
			rows = append(rows, week)
			week = telebot.Row{}
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, markup.Data(" ", "cal_ignore"))
		}
		rows = append(rows, week)
	}

	prev := first.AddDate(0, -1, 0)
	next := first.AddDate(0, 1, 0)
	rows = append(rows, telebot.Row{
		markup.Data("<", "cal_prev", MonthKey(prev.Year(), prev.Month())),
		markup.Data(">", "cal_next", MonthKey(next.Year(), next.Month())),
	})
	markup.Inline(rows...)

	title := "Смены: " + MonthName(month) + " " + strconv.Itoa(year) +
		"\n" + MarkPlanned + " запланирована, " + MarkCompleted + " отработана"
	return title, markup
}

// SendCalendar строит и отправляет календарь за указанный месяц
func SendCalendar(c telebot.Context, year int, month time.Month, marks map[int]string) error {
	title, markup := Build(year, month, marks)
	if c.Callback() != nil {
		return c.Edit(title, markup)
	}
	return c.Send(title, markup)
}

// MonthKey кодирует месяц для callback-данных: "2025-03".
func MonthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// ParseMonthKey разбирает "2025-03".
func ParseMonthKey(s string) (int, time.Month, bool) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}

func daysInMonth(year int, month time.Month) int {
	t := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return t.Day()
}
