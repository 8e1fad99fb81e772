package stats

import (
	"sync"

	"github.com/codahale/hdrhistogram"
)

// Combined is the result of draining every Shard: the sum of their
// operation and error counts, and the merge of their latency histograms.
type Combined struct {
	Operations uint64
	Errors     uint64
	Latency    *hdrhistogram.Histogram
}

func newCombined() *Combined {
	return &Combined{
		Latency: hdrhistogram.New(latencyMinNanos, latencyMaxNanos, latencySigFigs),
	}
}

// MeanMillis, MedianMillis, QuantileMillis and MaxMillis convert the
// nanosecond-resolution histogram into the millisecond figures cassandra-
// stress's own progress output and summary report (stats.rs's StatsPrinter)
// are expressed in.
func (c *Combined) MeanMillis() float64 { return c.Latency.Mean() / 1e6 }

func (c *Combined) QuantileMillis(quantile float64) float64 {
	return float64(c.Latency.ValueAtQuantile(quantile)) / 1e6
}

func (c *Combined) MedianMillis() float64 { return c.QuantileMillis(50) }

func (c *Combined) MaxMillis() float64 { return float64(c.Latency.Max()) / 1e6 }

// ShardedStats holds every worker's Shard in a registry guarded by a single
// mutex touched only at shard-creation and snapshot time, never per
// operation. Each worker creates exactly one Shard, at spawn, via NewShard,
// and accounts every operation directly against that Shard's own mutex —
// uncontended, since only its owner ever touches it.
type ShardedStats struct {
	mode LatencyMode

	mu     sync.Mutex
	shards []*Shard
}

// NewShardedStats returns an empty ShardedStats whose shards measure
// latency according to mode.
func NewShardedStats(mode LatencyMode) *ShardedStats {
	return &ShardedStats{mode: mode}
}

// NewShard creates and registers a new Shard. Call this once per worker at
// spawn time, not on every operation — the hot path is then just "lock this
// shard's own mutex," amortizing the registry lock to once per worker
// lifetime.
func (s *ShardedStats) NewShard() *Shard {
	shard := newShard(s.mode)

	s.mu.Lock()
	s.shards = append(s.shards, shard)
	s.mu.Unlock()

	return shard
}

// GetCombinedAndClear walks the shard registry, merging each shard's
// contents into a fresh Combined accumulator and clearing it, one shard at
// a time — never holding two shard locks simultaneously. Calling this on an
// idle system (no shards registered, or all shards empty) returns an empty
// Combined.
func (s *ShardedStats) GetCombinedAndClear() *Combined {
	s.mu.Lock()
	shards := make([]*Shard, len(s.shards))
	copy(shards, s.shards)
	s.mu.Unlock()

	combined := newCombined()
	for _, shard := range shards {
		shard.mergeAndClearInto(combined)
	}
	return combined
}
