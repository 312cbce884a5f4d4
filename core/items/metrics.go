// ABOUTME: Metrics hooks reported by the item repository
// ABOUTME: NoopMetrics is the default; CounterMetrics keeps atomic totals for the stats endpoint

package items

import "sync/atomic"

// Metrics receives one event per notable step of FetchItemList.
type Metrics interface {
	// Hit is called when the store already held data and no remote fetch happened.
	Hit()

	// Miss is called when the store was empty and a population was attempted.
	Miss()

	// Populate is called after remote items were written to the store.
	Populate()

	// Failure is called whenever FetchItemList returns an Error outcome.
	Failure()
}

// NoopMetrics ignores all events
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Populate() {}
func (NoopMetrics) Failure()  {}

// CounterMetrics counts events with atomic counters. Safe for concurrent use.
type CounterMetrics struct {
	hits        atomic.Int64
	misses      atomic.Int64
	populations atomic.Int64
	failures    atomic.Int64
}

// NewCounterMetrics creates a zeroed counter set
func NewCounterMetrics() *CounterMetrics {
	return &CounterMetrics{}
}

func (m *CounterMetrics) Hit()      { m.hits.Add(1) }
func (m *CounterMetrics) Miss()     { m.misses.Add(1) }
func (m *CounterMetrics) Populate() { m.populations.Add(1) }
func (m *CounterMetrics) Failure()  { m.failures.Add(1) }

// Stats is a point-in-time copy of the counters
type Stats struct {
	Hits        int64
	Misses      int64
	Populations int64
	Failures    int64
}

// Snapshot returns the current counter values
func (m *CounterMetrics) Snapshot() Stats {
	return Stats{
		Hits:        m.hits.Load(),
		Misses:      m.misses.Load(),
		Populations: m.populations.Load(),
		Failures:    m.failures.Load(),
	}
}
