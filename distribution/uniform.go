package distribution

import (
	"time"

	"github.com/pkg/errors"

	crand "github.com/scylladb/cql-stress-go/rand"
)

// UniformReal draws uniformly from [lo, hi] using the legacy formula
// u*(hi+1) + (1-u)*lo, where u is a uniform [0,1) double from an owned
// Legacy PRNG. NextInt64 truncates and clamps the result to [lo, hi];
// NextFloat64 returns the unclamped real value. Not safe for concurrent
// use — each worker must own its own instance, per spec.md §9.
type UniformReal struct {
	lo, hi int64
	rng    *crand.Legacy
}

// NewUniformReal returns a distribution over [lo, hi]. It rejects lo >= hi.
func NewUniformReal(lo, hi int64) (*UniformReal, error) {
	if lo >= hi {
		return nil, errors.Errorf("uniform real distribution requires lo < hi, got lo=%d hi=%d", lo, hi)
	}
	return &UniformReal{lo: lo, hi: hi, rng: crand.NewLegacy(time.Now().UnixNano())}, nil
}

func (u *UniformReal) sample() float64 {
	x := u.rng.NextDouble()
	return x*float64(u.hi+1) + (1-x)*float64(u.lo)
}

// SetSeed reseeds the owned Legacy instance.
func (u *UniformReal) SetSeed(seed int64) {
	u.rng.SetSeed(seed)
}

// NextInt64 returns a value clamped to [lo, hi].
func (u *UniformReal) NextInt64() int64 {
	v := int64(u.sample())
	if v < u.lo {
		return u.lo
	}
	if v > u.hi {
		return u.hi
	}
	return v
}

// NextFloat64 returns the raw (unclamped) sampled value.
func (u *UniformReal) NextFloat64() float64 {
	return u.sample()
}
