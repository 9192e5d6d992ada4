package keyboards

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"workshift-bot/pkg/calendar"
)

var shortMonths = []string{"Янв", "Фев", "Мар", "Апр", "Май", "Июн", "Июл", "Авг", "Сен", "Окт", "Ноя", "Дек"}

// BuildMonthKeyboard — выбор месяца для статистики; текущий месяц помечен.
func BuildMonthKeyboard(year int, now time.Time) (string, *telebot.ReplyMarkup) {
	markup := &telebot.ReplyMarkup{}
	rows := []telebot.Row{}
	for i := 0; i < 12; i += 3 {
		row := telebot.Row{}
		for j := i; j < i+3; j++ {
			m := time.Month(j + 1)
			label := shortMonths[j]
			if year == now.Year() && m == now.Month() {
				label = "[" + label + "]"
			}
			row = append(row, markup.Data(label, "pick_month", calendar.MonthKey(year, m)))
		}
		rows = append(rows, row)
	}

	prev := markup.Data("← "+strconv.Itoa(year-1), "month_prev", strconv.Itoa(year))
	next := markup.Data(strconv.Itoa(year+1)+" →", "month_next", strconv.Itoa(year))
	rows = append(rows, markup.Row(prev, next))

	markup.Inline(rows...)
	title := fmt.Sprintf("Выберите месяц: %d", year)
	return title, markup
}
