package flows

import (
	"time"

	"gopkg.in/telebot.v3"

	"workshift-bot/internal/delivery/telegram/router"
	"workshift-bot/internal/domain"
	"workshift-bot/pkg/calendar"
)

func RegisterCalendar(r *router.CallbackRouter, shifts domain.ShiftService) {
	r.Register("cal_ignore", func(c telebot.Context, payload string) error { return nil })

	nav := func(c telebot.Context, payload string) error {
		y, m, ok := calendar.ParseMonthKey(payload)
		if !ok {
			return c.Send("Ошибка месяца")
		}
		return ShowCalendar(c, shifts, y, m)
	}
	r.Register("cal_prev", nav)
	r.Register("cal_next", nav)

	r.Register("cal_day", func(c telebot.Context, payload string) error {
		date, err := time.Parse("2006-01-02", payload)
		if err != nil {
			return c.Send("Ошибка даты")
		}
		return ShowShift(c, shifts, date)
	})
}

// ShowCalendar рисует месяц с отметками рабочих и отработанных дней.
func ShowCalendar(c telebot.Context, shifts domain.ShiftService, year int, month time.Month) error {
	ctx, cancel := requestContext()
	defer cancel()
	monthShifts, err := shifts.MonthShifts(ctx, UserID(c), year, month)
	if err != nil {
		return c.Send("Ошибка загрузки смен: " + err.Error())
	}
	marks := make(map[int]string, len(monthShifts))
	for _, s := range monthShifts {
		d, ok := s.Day()
		if !ok || !s.IsWorkDay {
			continue
		}
		marks[d.Day()] = calendar.MarkPlanned
		if s.IsCompleted {
			marks[d.Day()] = calendar.MarkCompleted
		}
	}
	return calendar.SendCalendar(c, year, month, marks)
}
