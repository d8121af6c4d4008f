package calculator

import "sync/atomic"

// Stats summarises engine activity for instrumentation.
type Stats struct {
	Events       uint64
	Computations uint64
	Failures     uint64
}

type counters struct {
	events       atomic.Uint64
	computations atomic.Uint64
	failures     atomic.Uint64
}

// Stats returns a snapshot of the counters. Safe to call from any goroutine.
func (e *Engine) Stats() Stats {
	return Stats{
		Events:       e.stats.events.Load(),
		Computations: e.stats.computations.Load(),
		Failures:     e.stats.failures.Load(),
	}
}
