package keyboards

import "gopkg.in/telebot.v3"

var (
	BtnCalendar = telebot.Btn{Text: "📅 Календарь"}
	BtnStats    = telebot.Btn{Text: "💰 Статистика"}
	BtnRates    = telebot.Btn{Text: "⚙️ Ставки"}
	BtnAutoFill = telebot.Btn{Text: "🪄 Автозаполнение"}
)

func MainMenu() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{ResizeKeyboard: true}
	markup.Reply(
		markup.Row(markup.Text(BtnCalendar.Text), markup.Text(BtnStats.Text)),
		markup.Row(markup.Text(BtnRates.Text), markup.Text(BtnAutoFill.Text)),
	)
	return markup
}
