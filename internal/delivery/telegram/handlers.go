package telegram

import (
	"log/slog"
	"time"

	"gopkg.in/telebot.v3"

	"workshift-bot/internal/app/service"
	"workshift-bot/internal/delivery/telegram/flows"
	"workshift-bot/internal/delivery/telegram/keyboards"
	"workshift-bot/internal/delivery/telegram/router"
	"workshift-bot/internal/domain"
)

type Handler struct {
	Bot    *telebot.Bot
	Shifts domain.ShiftService
	Users  *service.UserService
	Router *router.CallbackRouter
}

func NewHandler(bot *telebot.Bot, shifts domain.ShiftService, users *service.UserService) *Handler {
	return &Handler{Bot: bot, Shifts: shifts, Users: users, Router: router.New()}
}

func (h *Handler) Register() {
	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/calendar", h.handleCalendar)
	h.Bot.Handle("/stats", h.handleStats)
	h.Bot.Handle("/rates", h.handleRates)

	flows.RegisterCalendar(h.Router, h.Shifts)
	flows.RegisterShift(h.Router, h.Shifts)
	flows.RegisterStats(h.Router, h.Shifts)
	flows.RegisterRates(h.Router, h.Shifts)
	flows.RegisterAutoFill(h.Router, h.Shifts)
	h.Router.Attach(h.Bot)

	// Кнопки главного меню
	h.Bot.Handle(telebot.OnText, func(c telebot.Context) error {
		switch c.Text() {
		case keyboards.BtnCalendar.Text:
			return h.handleCalendar(c)
		case keyboards.BtnStats.Text:
			return h.handleStats(c)
		case keyboards.BtnRates.Text:
			return h.handleRates(c)
		case keyboards.BtnAutoFill.Text:
			return flows.ShowAutoFill(c, time.Now())
		}
		return nil
	})
}

func (h *Handler) handleStart(c telebot.Context) error {
	if s := c.Sender(); s != nil {
		created, err := h.Users.EnsureUser(domain.User{ID: s.ID, Name: s.FirstName, ChatID: c.Chat().ID})
		if err != nil {
			slog.Error("[start] ensure user", "user", s.ID, "err", err)
		} else if created {
			slog.Info("[start] new user", "user", s.ID)
		}
	}
	return c.Send("Добро пожаловать! Отмечайте смены в календаре, бот посчитает дневные и ночные часы.", keyboards.MainMenu())
}

func (h *Handler) handleCalendar(c telebot.Context) error {
	now := time.Now()
	return flows.ShowCalendar(c, h.Shifts, now.Year(), now.Month())
}

func (h *Handler) handleStats(c telebot.Context) error {
	now := time.Now()
	return flows.ShowStats(c, h.Shifts, now.Year(), now.Month())
}

func (h *Handler) handleRates(c telebot.Context) error {
	return flows.ShowRates(c, h.Shifts)
}
