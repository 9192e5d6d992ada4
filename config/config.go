package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DBPath        string

	// RemoteDSN пустой — удалённый уровень выключен.
	RemoteDSN        string
	RemoteMinVersion int
	RemoteTimeout    time.Duration

	SaveDelay time.Duration
	DayRate   float64
	NightRate float64

	MetricsAddr string
}

// LoadConfig читает .env и окружение; без TELEGRAM_TOKEN бот не запустится.
func LoadConfig() (*Config, error) {
	cfg := LoadDefaults()
	if cfg.TelegramToken == "" {
		return nil, ErrNoToken{}
	}
	return cfg, nil
}

// LoadDefaults читает настройки без проверки токена (для офлайн-команд).
func LoadDefaults() *Config {
	_ = godotenv.Load()
	return &Config{
		TelegramToken:    os.Getenv("TELEGRAM_TOKEN"),
		DBPath:           getEnv("DB_PATH", "workshift.db"),
		RemoteDSN:        os.Getenv("REMOTE_DSN"),
		RemoteMinVersion: getInt("REMOTE_MIN_VERSION", 1),
		RemoteTimeout:    getDuration("REMOTE_TIMEOUT", 3*time.Second),
		SaveDelay:        getDuration("SAVE_DELAY", 500*time.Millisecond),
		DayRate:          getFloat("DAY_RATE", 34.00),
		NightRate:        getFloat("NIGHT_RATE", 37.70),
		MetricsAddr:      os.Getenv("METRICS_ADDR"),
	}
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("invalid integer in env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func getFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		slog.Warn("invalid rate in env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return f
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration in env, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

type ErrNoToken struct{}

func (e ErrNoToken) Error() string {
	return "TELEGRAM_TOKEN не задан в окружении"
}
