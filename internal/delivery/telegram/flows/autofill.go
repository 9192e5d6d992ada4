package flows

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"workshift-bot/internal/delivery/telegram/keyboards"
	"workshift-bot/internal/delivery/telegram/middleware"
	"workshift-bot/internal/delivery/telegram/router"
	"workshift-bot/internal/domain"
	"workshift-bot/pkg/calendar"
)

func RegisterAutoFill(r *router.CallbackRouter, shifts domain.ShiftService) {
	r.Register("fill_toggle", withMonthMask(func(c telebot.Context, y int, m time.Month, mask keyboards.WeekdayMask) error {
		return middleware.EditOrSend(c, autoFillTitle(m), keyboards.AutoFill(y, m, mask))
	}))

	r.Register("fill_apply", withMonthMask(func(c telebot.Context, y int, m time.Month, mask keyboards.WeekdayMask) error {
		ctx, cancel := requestContext()
		defer cancel()
		added, err := shifts.AutoFill(ctx, UserID(c), y, m, mask.Weekdays())
		if err != nil {
			return c.Send("Ошибка: " + err.Error())
		}
		if err := c.Send(fmt.Sprintf("Добавлено %d рабочих смен", added)); err != nil {
			return err
		}
		return ShowCalendar(c, shifts, y, m)
	}))
}

func ShowAutoFill(c telebot.Context, now time.Time) error {
	return c.Send(autoFillTitle(now.Month()), keyboards.AutoFill(now.Year(), now.Month(), keyboards.DefaultWeekdays))
}

func autoFillTitle(m time.Month) string {
	return "Выберите дни недели для месяца " + calendar.MonthName(m)
}

// withMonthMask разбирает payload "2006-01|mask".
func withMonthMask(h func(c telebot.Context, y int, m time.Month, mask keyboards.WeekdayMask) error) router.HandlerFunc {
	return func(c telebot.Context, payload string) error {
		mk, ms, _ := strings.Cut(payload, "|")
		y, m, ok := calendar.ParseMonthKey(mk)
		if !ok {
			return nil
		}
		mask, ok := keyboards.ParseWeekdayMask(ms)
		if !ok {
			return nil
		}
		return h(c, y, m, mask)
	}
}
