// Package stats implements Sharded Stats: per-worker accumulation with no
// hot-path contention, periodic snapshot-and-reset for progress reporting,
// and a final combined result.
package stats

import (
	"sync"
	"time"

	"github.com/codahale/hdrhistogram"
)

// LatencyMode selects which of an OperationContext's two timestamps a Shard
// measures latency from. Fixed once per ShardedStats at construction and
// copied into every Shard; AccountOperation compares it once per call to
// pick the start timestamp.
type LatencyMode int

const (
	// RawLatency measures from ActualStartTime: when the worker actually
	// began executing the operation.
	RawLatency LatencyMode = iota
	// CoordinatedOmissionFixedLatency measures from ScheduledStartTime:
	// when the rate limiter issued the operation. Under-provisioned runs
	// surface as increased tail latency instead of artificially low
	// numbers, since a late-starting op still gets charged for the time
	// it should have started.
	CoordinatedOmissionFixedLatency
)

// OperationContext carries the two timestamps a Shard needs to account for
// one completed operation.
type OperationContext struct {
	ScheduledStartTime time.Time
	ActualStartTime    time.Time
}

const (
	latencyMinNanos = int64(1)
	latencyMaxNanos = int64(time.Hour)
	// latencySigFigs matches cassandra-stress's own stats.rs, which
	// hard-codes 3: "the recommended value, as well as used in Java's c-s
	// implementation."
	latencySigFigs = 3
)

// Shard is one worker's private accumulator: operation count, error count,
// and an HDR latency histogram in nanoseconds. Guarded by its own mutex, so
// the owning worker's access is uncontended and a snapshot reader can drain
// it without coordinating with any other Shard.
type Shard struct {
	mu         sync.Mutex
	mode       LatencyMode
	operations uint64
	errors     uint64
	latency    *hdrhistogram.Histogram
}

func newShard(mode LatencyMode) *Shard {
	return &Shard{
		mode:    mode,
		latency: hdrhistogram.New(latencyMinNanos, latencyMaxNanos, latencySigFigs),
	}
}

// AccountOperation records the outcome of one completed operation: the
// operation count always increments; on error the error count increments
// and no latency sample is recorded; on success, latency is computed from
// ctx per the shard's configured mode and recorded into the histogram.
func (s *Shard) AccountOperation(ctx OperationContext, opErr error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.operations++
	if opErr != nil {
		s.errors++
		return
	}

	start := ctx.ActualStartTime
	if s.mode == CoordinatedOmissionFixedLatency {
		start = ctx.ScheduledStartTime
	}

	latencyNanos := time.Since(start).Nanoseconds()
	if latencyNanos < latencyMinNanos {
		latencyNanos = latencyMinNanos
	}
	_ = s.latency.RecordValue(latencyNanos)
}

// mergeAndClearInto merges this shard's contents into dst and then clears
// the shard, all under a single lock acquisition.
func (s *Shard) mergeAndClearInto(dst *Combined) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dst.Operations += s.operations
	dst.Errors += s.errors
	dst.Latency.Merge(s.latency)

	s.operations = 0
	s.errors = 0
	s.latency.Reset()
}
