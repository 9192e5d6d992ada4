package router

import (
	"log/slog"
	"strings"

	"gopkg.in/telebot.v3"
)

type HandlerFunc func(c telebot.Context, payload string) error

type CallbackRouter struct {
	handlers map[string]HandlerFunc
}

func New() *CallbackRouter {
	return &CallbackRouter{handlers: make(map[string]HandlerFunc)}
}

func (r *CallbackRouter) Register(key string, h HandlerFunc) {
	r.handlers[key] = h
}

// Attach вешает единый обработчик инлайн-кнопок на бота.
func (r *CallbackRouter) Attach(bot *telebot.Bot) {
	bot.Handle(telebot.OnCallback, func(c telebot.Context) error {
		_, err := r.Dispatch(c)
		return err
	})
}

// Dispatch находит обработчик по ключу callback-данных; false — ключ не зарегистрирован.
func (r *CallbackRouter) Dispatch(c telebot.Context) (bool, error) {
	key, payload := ParseCallback(c.Data())
	slog.Debug("[callback]", "key", key, "payload", payload)
	// Отвечаем на callback, чтобы Telegram убрал часики
	_ = c.Respond()

	h, ok := r.handlers[key]
	if !ok {
		return false, nil
	}
	return true, h(c, payload)
}

// ParseCallback убирает префикс "\f" и делит данные на ключ и payload по первому '|'.
func ParseCallback(raw string) (key, payload string) {
	raw = strings.TrimPrefix(raw, "\f")
	key, payload, _ = strings.Cut(raw, "|")
	return key, payload
}
