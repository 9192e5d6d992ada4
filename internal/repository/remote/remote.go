// Package remote описывает удалённый уровень хранения как подключаемую возможность.
//
// Уровень необязателен: его наличие определяется один раз при старте
// (проверкой версии схемы) и дальше передаётся явно через Capability.
package remote

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"

	"workshift-bot/internal/repository/sqlite"
)

// SchemaVersion — версия схемы, которую создаёт этот код на пустой базе.
const SchemaVersion = 1

var ErrUnavailable = errors.New("remote storage unavailable")

// Capability — удалённое хранилище ключ/значение.
// GetItem возвращает "" без ошибки, если ключа нет.
type Capability interface {
	IsAvailable() bool
	GetItem(ctx context.Context, key string) (string, error)
	SetItem(ctx context.Context, key, value string) (bool, error)
}

// Disabled — заглушка для режима «только локально».
type Disabled struct{}

func (Disabled) IsAvailable() bool { return false }

func (Disabled) GetItem(context.Context, string) (string, error) { return "", ErrUnavailable }

func (Disabled) SetItem(context.Context, string, string) (bool, error) { return false, ErrUnavailable }

// SQLStore — удалённый уровень на отдельной базе SQLite (драйвер modernc, без cgo),
// например на сетевом томе, общем для нескольких экземпляров бота.
type SQLStore struct {
	db        *sql.DB
	kv        *sqlite.KVRepo
	available bool
}

// Open подключается к базе по dsn и проверяет версию схемы.
// Если версия ниже minVersion, хранилище открывается, но считается недоступным.
func Open(ctx context.Context, dsn string, minVersion int) (*SQLStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open remote db: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping remote db: %w", err)
	}
	if err := sqlite.MigrateKV(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate remote db: %w", err)
	}

	version, err := schemaVersion(ctx, db)
	if err != nil {
		db.Close()
		return nil, err
	}
	if version == 0 {
		if _, err := db.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", SchemaVersion)); err != nil {
			db.Close()
			return nil, fmt.Errorf("set remote schema version: %w", err)
		}
		version = SchemaVersion
	}

	s := &SQLStore{db: db, kv: sqlite.NewKVRepo(db), available: version >= minVersion}
	if !s.available {
		slog.Warn("remote storage schema too old, using local cache only",
			"version", version, "required", minVersion)
	}
	return s, nil
}

func schemaVersion(ctx context.Context, db *sql.DB) (int, error) {
	var v int
	if err := db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("read remote schema version: %w", err)
	}
	return v, nil
}

func (s *SQLStore) IsAvailable() bool { return s.available }

func (s *SQLStore) GetItem(ctx context.Context, key string) (string, error) {
	if !s.available {
		return "", ErrUnavailable
	}
	v, _, err := s.kv.Get(ctx, key)
	return v, err
}

func (s *SQLStore) SetItem(ctx context.Context, key, value string) (bool, error) {
	if !s.available {
		return false, ErrUnavailable
	}
	if err := s.kv.Set(ctx, key, value); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
