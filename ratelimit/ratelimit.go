// Package ratelimit implements the Rate Limiter: a deterministic,
// order-independent arithmetic schedule of issue times, built from a single
// atomic fetch-add rather than a token bucket. This is what lets
// coordinated-omission-fixed latency measurement mean something: an
// operation's scheduled start time never depends on how late previous
// operations actually ran.
package ratelimit

import (
	"math"
	"sync/atomic"
	"time"
)

// Limiter issues a strictly increasing, evenly spaced sequence of start
// times from a fixed base instant. Safe for concurrent use: every caller
// shares one atomic counter, so concurrent IssueNextStartTime calls from
// multiple workers each get a distinct slot in the schedule, independent of
// call order.
type Limiter struct {
	base           time.Time
	incrementNanos int64
	counter        atomic.Int64
}

// New returns a Limiter issuing opsPerSecond evenly spaced start times per
// second, beginning at base. opsPerSecond must be positive.
func New(opsPerSecond float64, base time.Time) *Limiter {
	return &Limiter{
		base:           base,
		incrementNanos: int64(math.Round(1e9 / opsPerSecond)),
	}
}

// IssueNextStartTime fetch-adds incrementNanos into the shared counter and
// returns base offset by the counter's value just before the add. Ordering
// is relaxed: concurrent callers are guaranteed distinct, evenly spaced
// slots in the schedule, not that the slot they receive corresponds to wall-
// clock call order.
func (l *Limiter) IssueNextStartTime() time.Time {
	next := l.counter.Add(l.incrementNanos)
	prev := next - l.incrementNanos
	return l.base.Add(time.Duration(prev))
}
