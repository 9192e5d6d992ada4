package keyboards

import (
	"workshift-bot/internal/model"

	"gopkg.in/telebot.v3"
)

func rateRow(markup *telebot.ReplyMarkup, label string, kind model.RateKind) telebot.Row {
	k := string(kind)
	return markup.Row(
		markup.Data(label+" −1", "rate_adj", k, "-1"),
		markup.Data("−0.1", "rate_adj", k, "-0.1"),
		markup.Data("+0.1", "rate_adj", k, "0.1"),
		markup.Data("+1", "rate_adj", k, "1"),
	)
}

func Rates() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	markup.Inline(
		rateRow(markup, "День", model.RateDay),
		rateRow(markup, "Ночь", model.RateNight),
	)
	return markup
}
