package debug

// Debug stats logger. Started only when config.Debug is true.
// Emits engine counters alongside goroutine count and heap usage at a fixed
// interval.

import (
	"log/slog"
	"runtime"
	"runtime/metrics"
	"sync"
	"time"

	"github.com/soocke/tk-calc-go/domain/calculator"
)

// StatsSource supplies engine counters. Stats must be safe to call from the
// logger goroutine.
type StatsSource interface {
	Stats() calculator.Stats
}

// StartStatsLogger launches a ticker that logs engine and runtime stats. The
// returned func stops it and may be called more than once.
func StartStatsLogger(interval time.Duration, logger *slog.Logger, src StatsSource) (stop func()) {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil || src == nil {
		return func() {}
	}
	done := make(chan struct{})
	var once sync.Once
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
		for {
			select {
			case <-done:
				return
			case <-t.C:
				logStats(logger, src.Stats(), samples)
			}
		}
	}()
	return func() { once.Do(func() { close(done) }) }
}

func logStats(logger *slog.Logger, st calculator.Stats, samples []metrics.Sample) {
	metrics.Read(samples)
	var goroutines uint64
	if samples[0].Value.Kind() == metrics.KindUint64 {
		goroutines = samples[0].Value.Uint64()
	}
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	logger.Info("calculator-stats",
		slog.Uint64("events", st.Events),
		slog.Uint64("computations", st.Computations),
		slog.Uint64("failures", st.Failures),
		slog.Uint64("goroutines", goroutines),
		slog.Uint64("heap_alloc", ms.HeapAlloc),
	)
}
