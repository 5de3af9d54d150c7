// Package metrics provides Prometheus instrumentation for the table
// engine's two expensive operations: freezing a column and scanning rows.
//
// # Basic Usage
//
//	timer := metrics.NewTimer()
//	table, err := builder.Freeze()
//	metrics.FreezeLatency.WithLabelValues("string_dictionary").Observe(timer.Stop().Seconds())
//	metrics.ColumnsFrozen.WithLabelValues("string_dictionary").Inc()
package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TablesFrozen counts completed Table constructions.
	TablesFrozen = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coltable_tables_frozen_total",
			Help: "Total number of tables successfully frozen",
		},
	)

	// ColumnsFrozen counts completed column freezes, labeled by the
	// representation the selector chose.
	ColumnsFrozen = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coltable_columns_frozen_total",
			Help: "Total number of columns frozen, by chosen representation",
		},
		[]string{"representation"},
	)

	// FreezeLatency tracks how long Table/column freeze takes, by
	// representation.
	FreezeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "coltable_freeze_latency_seconds",
			Help: "Freeze latency in seconds, by chosen representation",
			Buckets: []float64{
				1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1,
			},
		},
		[]string{"representation"},
	)

	// ScanRows counts rows decoded during scans. Cursor does not update
	// it; the caller adds the rows it scanned (cmd/coltable's scan command
	// does).
	ScanRows = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "coltable_scan_rows_total",
			Help: "Total number of rows decoded during scans",
		},
	)

	// ScanLatency tracks full-table scan duration.
	ScanLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "coltable_scan_latency_seconds",
			Help: "Full-table scan latency in seconds",
			Buckets: []float64{
				1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 1e-1, 1, 10,
			},
		},
	)

	// ResidentMemory mirrors the process's current resident set size, fed
	// by pkg/sysinfo on demand rather than on a background ticker.
	ResidentMemory = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "coltable_process_resident_memory_bytes",
			Help: "Process resident set size in bytes, last sampled",
		},
	)
)

// Timer measures an operation's wall-clock duration.
type Timer struct {
	start time.Time
}

// NewTimer starts a timer.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Stop returns the elapsed duration since the timer was created. It may be
// called more than once; each call returns the total elapsed time so far.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}

// ThroughputTracker tracks rows scanned per second since its last reset;
// each GetAndReset starts a new window.
// Thread-safe for concurrent use, though a single Cursor is never shared
// across goroutines.
type ThroughputTracker struct {
	mu        sync.Mutex
	count     int64
	lastReset time.Time
}

// NewThroughputTracker creates a tracker starting now.
func NewThroughputTracker() *ThroughputTracker {
	return &ThroughputTracker{lastReset: time.Now()}
}

// Increment adds n to the row count.
func (t *ThroughputTracker) Increment(n int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.count += n
}

// GetAndReset returns rows/second since the last reset and starts a new window.
func (t *ThroughputTracker) GetAndReset() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	elapsed := time.Since(t.lastReset).Seconds()
	if elapsed == 0 {
		return 0
	}
	throughput := float64(t.count) / elapsed
	t.count = 0
	t.lastReset = time.Now()
	return throughput
}
