// Package metrics holds cheap process-local counters surfaced on the health
// endpoint. Not a metrics pipeline; observability backends are out of scope.
package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// Stats aggregates the counters the service cares about.
type Stats struct {
	Requests     Counter
	OrdersPlaced Counter
	UnitsSold    Counter
}

func NewStats() *Stats {
	return &Stats{}
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
