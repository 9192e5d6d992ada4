package flows

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"gopkg.in/telebot.v3"

	"workshift-bot/internal/delivery/telegram/keyboards"
	"workshift-bot/internal/delivery/telegram/middleware"
	"workshift-bot/internal/delivery/telegram/router"
	"workshift-bot/internal/domain"
	"workshift-bot/internal/model"
	"workshift-bot/pkg/clocktime"
)

var ruWeekdays = [...]string{"Вс", "Пн", "Вт", "Ср", "Чт", "Пт", "Сб"}

func RegisterShift(r *router.CallbackRouter, shifts domain.ShiftService) {
	r.Register("shift_work", withDate(func(c telebot.Context, date time.Time, _ string) error {
		ctx, cancel := requestContext()
		defer cancel()
		if _, err := shifts.MarkWorkDay(ctx, UserID(c), date); err != nil {
			return c.Send("Ошибка: " + err.Error())
		}
		return ShowShift(c, shifts, date)
	}))

	adjust := func(end bool) router.HandlerFunc {
		return withDate(func(c telebot.Context, date time.Time, arg string) error {
			delta, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil
			}
			ctx, cancel := requestContext()
			defer cancel()
			_, err = shifts.UpdateShift(ctx, UserID(c), date, func(s *model.ShiftRecord) {
				if end {
					s.EndTime = clocktime.Adjust(s.EndTime, delta)
				} else {
					s.StartTime = clocktime.Adjust(s.StartTime, delta)
				}
			})
			if err != nil {
				return c.Send("Ошибка: " + err.Error())
			}
			return ShowShift(c, shifts, date)
		})
	}
	r.Register("shift_start", adjust(false))
	r.Register("shift_end", adjust(true))

	r.Register("shift_done", withDate(func(c telebot.Context, date time.Time, _ string) error {
		ctx, cancel := requestContext()
		defer cancel()
		_, err := shifts.UpdateShift(ctx, UserID(c), date, func(s *model.ShiftRecord) {
			s.IsCompleted = !s.IsCompleted
		})
		if err != nil {
			return c.Send("Ошибка: " + err.Error())
		}
		return ShowShift(c, shifts, date)
	}))

	r.Register("shift_reset", withDate(func(c telebot.Context, date time.Time, _ string) error {
		ctx, cancel := requestContext()
		defer cancel()
		if err := shifts.ResetShift(ctx, UserID(c), date); err != nil {
			return c.Send("Ошибка: " + err.Error())
		}
		return ShowCalendar(c, shifts, date.Year(), date.Month())
	}))

	r.Register("shift_back", withDate(func(c telebot.Context, date time.Time, _ string) error {
		return ShowCalendar(c, shifts, date.Year(), date.Month())
	}))
}

// withDate разбирает payload "2006-01-02[|arg]".
func withDate(h func(c telebot.Context, date time.Time, arg string) error) router.HandlerFunc {
	return func(c telebot.Context, payload string) error {
		ds, arg, _ := strings.Cut(payload, "|")
		date, err := time.Parse(model.DateLayout, ds)
		if err != nil {
			slog.Warn("[callback] bad date", "payload", payload)
			return c.Send("Ошибка даты")
		}
		return h(c, date, arg)
	}
}

// ShowShift показывает карточку смены: время, часы по тарифам и оплату.
func ShowShift(c telebot.Context, shifts domain.ShiftService, date time.Time) error {
	ctx, cancel := requestContext()
	defer cancel()
	shift, err := shifts.Shift(ctx, UserID(c), date)
	if err != nil {
		return c.Send("Ошибка загрузки смены: " + err.Error())
	}
	earnings, err := shifts.Earnings(ctx, UserID(c), shift)
	if err != nil {
		return c.Send("Ошибка расчёта: " + err.Error())
	}
	return middleware.EditOrSend(c, ShiftText(date, shift, earnings), keyboards.ShiftCard(shift))
}

func ShiftText(date time.Time, shift model.ShiftRecord, e model.EarningsResult) string {
	head := fmt.Sprintf("📅 %s (%s)", date.Format("02.01.2006"), ruWeekdays[date.Weekday()])
	if !shift.IsWorkDay {
		return head + "\nВыходной"
	}
	status := "запланирована"
	if shift.IsCompleted {
		status = "отработана"
	}
	return fmt.Sprintf("%s\nСмена: %s – %s\nДень: %s ч · Ночь: %s ч\nОплата: %s\nСтатус: %s",
		head, shift.StartTime, shift.EndTime,
		model.FormatHours(e.DayHours), model.FormatHours(e.NightHours),
		model.FormatMoney(e.TotalPay), status)
}
