package distribution

import (
	"time"

	"github.com/pkg/errors"

	crand "github.com/scylladb/cql-stress-go/rand"
)

// Normal draws stdev*NextGaussian()+mean from an owned Legacy PRNG, clamping
// the result to [min, max] (as int64 for NextInt64, as float64 for
// NextFloat64). Not safe for concurrent use — each worker must own its own
// instance, per spec.md §9.
type Normal struct {
	min, max    int64
	mean, stdev float64
	rng         *crand.Legacy
}

// NewNormal returns a distribution clamped to [min, max] with the given
// mean and standard deviation. It rejects min >= max or stdev <= 0.
func NewNormal(min, max int64, mean, stdev float64) (*Normal, error) {
	if min >= max {
		return nil, errors.Errorf("normal distribution requires min < max, got min=%d max=%d", min, max)
	}
	if stdev <= 0 {
		return nil, errors.Errorf("normal distribution requires stdev > 0, got %v", stdev)
	}
	return &Normal{min: min, max: max, mean: mean, stdev: stdev, rng: crand.NewLegacy(time.Now().UnixNano())}, nil
}

func (n *Normal) sample() float64 {
	return n.stdev*n.rng.NextGaussian() + n.mean
}

// SetSeed reseeds the owned Legacy instance.
func (n *Normal) SetSeed(seed int64) {
	n.rng.SetSeed(seed)
}

// NextInt64 returns a value clamped to [min, max].
func (n *Normal) NextInt64() int64 {
	v := int64(n.sample())
	if v < n.min {
		return n.min
	}
	if v > n.max {
		return n.max
	}
	return v
}

// NextFloat64 returns a value clamped to [min, max] as float64.
func (n *Normal) NextFloat64() float64 {
	v := n.sample()
	minF, maxF := float64(n.min), float64(n.max)
	if v < minF {
		return minF
	}
	if v > maxF {
		return maxF
	}
	return v
}
