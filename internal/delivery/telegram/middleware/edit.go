package middleware

import (
	"errors"

	"gopkg.in/telebot.v3"
)

// EditOrSend редактирует сообщение под кнопкой, а если это не callback
// или редактирование не удалось — отправляет новое.
func EditOrSend(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	if c.Callback() != nil {
		err := c.Edit(text, markup)
		if err == nil || errors.Is(err, telebot.ErrSameMessageContent) {
			return nil
		}
	}
	return c.Send(text, markup)
}
