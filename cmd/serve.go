package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"gopkg.in/telebot.v3"

	"workshift-bot/config"
	"workshift-bot/internal/app/service"
	"workshift-bot/internal/delivery/httpapi"
	"workshift-bot/internal/delivery/telegram"
	"workshift-bot/internal/model"
	"workshift-bot/internal/repository/remote"
	"workshift-bot/internal/repository/sqlite"
	"workshift-bot/internal/repository/tiered"
	"workshift-bot/pkg/workerpool"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить Telegram-бота",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	slog.Info("Запуск Workshift Bot...")

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("загрузка конфига: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return fmt.Errorf("подключение к базе: %w", err)
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		return fmt.Errorf("миграция: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Пул для вызовов удалённого уровня
	pool := workerpool.NewWorkerPool(4, 32)
	defer pool.Close()

	rc := openRemote(ctx, cfg)
	if c, ok := rc.(*remote.SQLStore); ok {
		defer c.Close()
	}

	store := tiered.New(sqlite.NewKVRepo(db), rc, service.NewAsyncService(pool), cfg.RemoteTimeout)
	shifts := service.NewShiftService(
		tiered.NewShiftRepo(store),
		model.RateTable{Day: cfg.DayRate, Night: cfg.NightRate},
		cfg.SaveDelay,
	)

	bot, err := telebot.NewBot(telebot.Settings{
		Token:  cfg.TelegramToken,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		return fmt.Errorf("запуск бота: %w", err)
	}

	handler := telegram.NewHandler(bot, shifts, service.NewUserService(sqlite.NewSqliteUserRepo(db)))
	handler.Register()

	var srv *http.Server
	if cfg.MetricsAddr != "" {
		srv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           httpapi.NewRouter(db),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("HTTP: /healthz, /metrics", "addr", cfg.MetricsAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("HTTP-сервер остановлен", "err", err)
			}
		}()
	}

	go bot.Start()
	slog.Info("Бот запущен!")

	<-ctx.Done()
	slog.Info("Остановка...")
	bot.Stop()

	flushCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := shifts.Flush(flushCtx); err != nil {
		slog.Error("Не все изменения сохранены", "err", err)
	}
	shifts.Close()

	if srv != nil {
		if err := srv.Shutdown(flushCtx); err != nil {
			slog.Warn("HTTP shutdown", "err", err)
		}
	}
	return nil
}

// openRemote подключает удалённый уровень; при любой ошибке бот работает только с локальной базой.
func openRemote(ctx context.Context, cfg *config.Config) remote.Capability {
	if cfg.RemoteDSN == "" {
		return remote.Disabled{}
	}
	openCtx, cancel := context.WithTimeout(ctx, cfg.RemoteTimeout)
	defer cancel()
	rc, err := remote.Open(openCtx, cfg.RemoteDSN, cfg.RemoteMinVersion)
	if err != nil {
		slog.Warn("Удалённое хранилище недоступно, работаем локально", "err", err)
		return remote.Disabled{}
	}
	return rc
}
