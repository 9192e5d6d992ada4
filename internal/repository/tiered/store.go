/*
Package tiered — двухуровневое хранилище: локальный кэш (SQLite) и
необязательный удалённый уровень.

Чтение: непустое значение с удалённого уровня главнее, оно сначала
перезаписывает локальный кэш и только потом возвращается. Ошибка или
таймаут удалённого уровня молча переводят чтение на локальный кэш.

Запись: сначала всегда локальный кэш (его ошибка возвращается), затем
попытка записать удалённо; сбой удалённой записи только логируется.
Повторов и журнала нет: побеждает последняя запись.
*/
package tiered

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"workshift-bot/internal/metrics"
	"workshift-bot/internal/repository/remote"
)

const DefaultRemoteTimeout = 3 * time.Second

var ErrLocalWrite = errors.New("local cache write failed")

// LocalCache — долговечный локальный уровень (sqlite.KVRepo).
type LocalCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Executor выполняет вызов удалённого уровня и возвращается не позже ctx
// (service.AsyncService поверх пула воркеров).
type Executor interface {
	SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error)
}

type Store struct {
	local   LocalCache
	remote  remote.Capability
	exec    Executor
	timeout time.Duration
}

// New собирает хранилище. rc == nil означает «только локально»,
// exec == nil — вызовы удалённого уровня идут в текущей горутине.
func New(local LocalCache, rc remote.Capability, exec Executor, timeout time.Duration) *Store {
	if rc == nil {
		rc = remote.Disabled{}
	}
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}
	return &Store{local: local, remote: rc, exec: exec, timeout: timeout}
}

// Get возвращает значение ключа; ok == false, если его нет ни на одном уровне.
func (s *Store) Get(ctx context.Context, key string) (string, bool) {
	if s.remote.IsAvailable() {
		v, err := s.remoteGet(ctx, key)
		switch {
		case err != nil:
			metrics.RemoteOps.WithLabelValues("get", "error").Inc()
			slog.Debug("remote get failed, falling back to local cache", "key", key, "error", err)
		case v == "":
			metrics.RemoteOps.WithLabelValues("get", "empty").Inc()
		default:
			metrics.RemoteOps.WithLabelValues("get", "ok").Inc()
			if err := s.local.Set(ctx, key, v); err != nil {
				slog.Warn("failed to refresh local cache from remote", "key", key, "error", err)
			}
			return v, true
		}
		metrics.LocalFallbacks.Inc()
	}

	v, ok, err := s.local.Get(ctx, key)
	if err != nil {
		slog.Warn("local cache read failed", "key", key, "error", err)
		return "", false
	}
	return v, ok
}

func (s *Store) Set(ctx context.Context, key, value string) error {
	if err := s.local.Set(ctx, key, value); err != nil {
		return fmt.Errorf("%w: %w", ErrLocalWrite, err)
	}
	if !s.remote.IsAvailable() {
		return nil
	}
	stored, err := s.remoteSet(ctx, key, value)
	switch {
	case err != nil:
		metrics.RemoteOps.WithLabelValues("set", "error").Inc()
		slog.Warn("remote set failed", "key", key, "error", err)
	case !stored:
		metrics.RemoteOps.WithLabelValues("set", "rejected").Inc()
		slog.Warn("remote set not stored", "key", key)
	default:
		metrics.RemoteOps.WithLabelValues("set", "ok").Inc()
	}
	return nil
}

// Delete удаляет ключ локально; удалённо значение затирается пустой строкой,
// которую Get трактует как отсутствие данных.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := s.local.Delete(ctx, key); err != nil {
		return fmt.Errorf("%w: %w", ErrLocalWrite, err)
	}
	if s.remote.IsAvailable() {
		if _, err := s.remoteSet(ctx, key, ""); err != nil {
			metrics.RemoteOps.WithLabelValues("delete", "error").Inc()
			slog.Warn("remote delete failed", "key", key, "error", err)
		}
	}
	return nil
}

func (s *Store) remoteGet(ctx context.Context, key string) (string, error) {
	v, err := s.call(ctx, func(ctx context.Context) (any, error) {
		return s.remote.GetItem(ctx, key)
	})
	if err != nil {
		return "", err
	}
	str, _ := v.(string)
	return str, nil
}

func (s *Store) remoteSet(ctx context.Context, key, value string) (bool, error) {
	v, err := s.call(ctx, func(ctx context.Context) (any, error) {
		return s.remote.SetItem(ctx, key, value)
	})
	if err != nil {
		return false, err
	}
	stored, _ := v.(bool)
	return stored, nil
}

func (s *Store) call(ctx context.Context, fn func(ctx context.Context) (any, error)) (any, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if s.exec == nil {
		return fn(ctx)
	}
	return s.exec.SubmitAsync(ctx, func() (any, error) { return fn(ctx) })
}
