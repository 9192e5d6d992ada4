package flows

import (
	"context"
	"time"

	"gopkg.in/telebot.v3"
)

const requestTimeout = 10 * time.Second

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// UserID — id отправителя; 0, если его нет (тогда данные пишутся под гостевым ключом).
func UserID(c telebot.Context) int64 {
	if s := c.Sender(); s != nil {
		return s.ID
	}
	return 0
}
