package flows

import (
	"fmt"
	"strconv"
	"time"

	"gopkg.in/telebot.v3"

	"workshift-bot/internal/delivery/telegram/keyboards"
	"workshift-bot/internal/delivery/telegram/middleware"
	"workshift-bot/internal/delivery/telegram/router"
	"workshift-bot/internal/domain"
	"workshift-bot/internal/model"
	"workshift-bot/pkg/calendar"
)

func RegisterStats(r *router.CallbackRouter, shifts domain.ShiftService) {
	r.Register("stats_other_month", func(c telebot.Context, payload string) error {
		now := time.Now()
		title, markup := keyboards.BuildMonthKeyboard(now.Year(), now)
		return middleware.EditOrSend(c, title, markup)
	})

	year := func(delta int) router.HandlerFunc {
		return func(c telebot.Context, payload string) error {
			y, err := strconv.Atoi(payload)
			if err != nil {
				return nil
			}
			title, markup := keyboards.BuildMonthKeyboard(y+delta, time.Now())
			return middleware.EditOrSend(c, title, markup)
		}
	}
	r.Register("month_prev", year(-1))
	r.Register("month_next", year(1))

	r.Register("pick_month", func(c telebot.Context, payload string) error {
		y, m, ok := calendar.ParseMonthKey(payload)
		if !ok {
			return nil
		}
		return ShowStats(c, shifts, y, m)
	})
}

func ShowStats(c telebot.Context, shifts domain.ShiftService, year int, month time.Month) error {
	ctx, cancel := requestContext()
	defer cancel()
	stats, err := shifts.MonthStats(ctx, UserID(c), year, month)
	if err != nil {
		return c.Send("Ошибка при расчёте: " + err.Error())
	}
	markup := &telebot.ReplyMarkup{}
	markup.Inline(markup.Row(markup.Data("Другой месяц", "stats_other_month")))
	return middleware.EditOrSend(c, StatsText(year, month, stats), markup)
}

func StatsText(year int, month time.Month, s model.MonthStats) string {
	return fmt.Sprintf("%s %d\nПлан: %s (%d смен)\nЗаработано: %s (%d из %d)",
		calendar.MonthName(month), year,
		model.FormatMoney(s.Projected), s.WorkDays,
		model.FormatMoney(s.Earned), s.CompletedDays, s.WorkDays)
}
