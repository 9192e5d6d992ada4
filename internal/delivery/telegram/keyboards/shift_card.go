package keyboards

import (
	"workshift-bot/internal/model"

	"gopkg.in/telebot.v3"
)

// ShiftCard — кнопки карточки смены. Для нерабочего дня только «сделать рабочим».
func ShiftCard(shift model.ShiftRecord) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{}
	date := shift.Date
	back := markup.Data("« К календарю", "shift_back", date)

	if !shift.IsWorkDay {
		markup.Inline(
			markup.Row(markup.Data("➕ Рабочий день", "shift_work", date)),
			markup.Row(back),
		)
		return markup
	}

	done := "☐ Отработана"
	if shift.IsCompleted {
		done = "☑ Отработана"
	}
	markup.Inline(
		markup.Row(
			markup.Data("Начало −1ч", "shift_start", date, "-1"),
			markup.Data("−30м", "shift_start", date, "-0.5"),
			markup.Data("+30м", "shift_start", date, "0.5"),
			markup.Data("+1ч", "shift_start", date, "1"),
		),
		markup.Row(
			markup.Data("Конец −1ч", "shift_end", date, "-1"),
			markup.Data("−30м", "shift_end", date, "-0.5"),
			markup.Data("+30м", "shift_end", date, "0.5"),
			markup.Data("+1ч", "shift_end", date, "1"),
		),
		markup.Row(
			markup.Data(done, "shift_done", date),
			markup.Data("🗑 Убрать смену", "shift_reset", date),
		),
		markup.Row(back),
	)
	return markup
}
