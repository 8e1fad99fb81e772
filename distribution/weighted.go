package distribution

import (
	"time"

	"github.com/pkg/errors"

	crand "github.com/scylladb/cql-stress-go/rand"
)

// WeightedEnumerated samples an index in [0, len(weights)) with probability
// proportional to weights[i]. It is used to pick among a small number of
// discrete outcomes — e.g. which command a mixed workload should run next —
// rather than to synthesize column values. Not safe for concurrent use —
// each worker must own its own instance, per spec.md §9.
type WeightedEnumerated struct {
	cumulative []float64
	total      float64
	rng        *crand.Legacy
}

// NewWeightedEnumerated returns a distribution over len(weights) outcomes.
// It rejects an empty weight set, any negative weight, or weights summing to
// zero. A zero weight is allowed; its outcome is never sampled.
func NewWeightedEnumerated(weights []float64) (*WeightedEnumerated, error) {
	if len(weights) == 0 {
		return nil, errors.New("weighted enumerated distribution requires at least one weight")
	}
	cumulative := make([]float64, len(weights))
	var total float64
	for i, w := range weights {
		if w < 0 {
			return nil, errors.Errorf("weighted enumerated distribution requires non-negative weights, got %v at index %d", w, i)
		}
		total += w
		cumulative[i] = total
	}
	if total <= 0 {
		return nil, errors.New("weighted enumerated distribution requires a positive total weight")
	}
	return &WeightedEnumerated{cumulative: cumulative, total: total, rng: crand.NewLegacy(time.Now().UnixNano())}, nil
}

// SetSeed reseeds the owned Legacy instance.
func (w *WeightedEnumerated) SetSeed(seed int64) {
	w.rng.SetSeed(seed)
}

// NextInt64 returns the index of the sampled outcome.
func (w *WeightedEnumerated) NextInt64() int64 {
	target := w.rng.NextDouble() * w.total
	for i, c := range w.cumulative {
		if target < c {
			return int64(i)
		}
	}
	return int64(len(w.cumulative) - 1)
}

// NextFloat64 returns NextInt64 as a float64.
func (w *WeightedEnumerated) NextFloat64() float64 {
	return float64(w.NextInt64())
}
