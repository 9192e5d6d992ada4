package flows

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/telebot.v3"

	"workshift-bot/internal/delivery/telegram/keyboards"
	"workshift-bot/internal/delivery/telegram/middleware"
	"workshift-bot/internal/delivery/telegram/router"
	"workshift-bot/internal/domain"
	"workshift-bot/internal/model"
)

func RegisterRates(r *router.CallbackRouter, shifts domain.ShiftService) {
	r.Register("rate_adj", func(c telebot.Context, payload string) error {
		kind, arg, _ := strings.Cut(payload, "|")
		delta, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil
		}
		ctx, cancel := requestContext()
		defer cancel()
		rates, err := shifts.AdjustRate(ctx, UserID(c), model.RateKind(kind), delta)
		if err != nil {
			return c.Send("Ошибка: " + err.Error())
		}
		return middleware.EditOrSend(c, RatesText(rates), keyboards.Rates())
	})
}

func ShowRates(c telebot.Context, shifts domain.ShiftService) error {
	ctx, cancel := requestContext()
	defer cancel()
	rates, err := shifts.Rates(ctx, UserID(c))
	if err != nil {
		return c.Send("Ошибка: " + err.Error())
	}
	return middleware.EditOrSend(c, RatesText(rates), keyboards.Rates())
}

func RatesText(r model.RateTable) string {
	return fmt.Sprintf("Ставки за час\nДень (06:00–24:00): %s\nНочь (00:00–06:00): %s",
		model.FormatMoney(r.Day), model.FormatMoney(r.Night))
}
