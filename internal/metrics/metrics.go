// Package metrics содержит счётчики Prometheus для уровней хранения.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "workshift"

var (
	// RemoteOps — обращения к удалённому уровню по операции и результату (ok, error, empty).
	RemoteOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "remote_operations_total",
		Help:      "Remote tier operations by op and result.",
	}, []string{"op", "result"})

	// LocalFallbacks — чтения, обслуженные локальным кэшем вместо удалённого уровня.
	LocalFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "local_fallbacks_total",
		Help:      "Reads served from the local cache because the remote tier had no usable value.",
	})

	// Flushes — отложенные записи, дошедшие до хранилища.
	Flushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "debounced_writes_total",
		Help:      "Debounced writes committed to storage by result.",
	}, []string{"result"})

	// CorruptBlobs — сохранённые значения, которые не удалось разобрать.
	CorruptBlobs = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "store",
		Name:      "corrupt_blobs_total",
		Help:      "Stored values that failed to decode and were treated as empty.",
	}, []string{"namespace"})
)
