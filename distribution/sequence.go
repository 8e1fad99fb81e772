package distribution

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Sequence cycles through [lo, hi] in order, wrapping, using a single shared
// atomic counter so it is safe for concurrent use without locks.
type Sequence struct {
	lo, hi  int64
	span    int64
	counter atomic.Int64
}

// NewSequence returns a Sequence over the closed range [lo, hi]. It rejects
// lo >= hi as a configuration error.
func NewSequence(lo, hi int64) (*Sequence, error) {
	if lo >= hi {
		return nil, errors.Errorf("sequence distribution requires lo < hi, got lo=%d hi=%d", lo, hi)
	}
	return &Sequence{lo: lo, hi: hi, span: hi - lo + 1}, nil
}

// SetSeed stores s into the shared counter; the next NextInt64 call returns
// lo + (s mod span). Negative s is handled with two's-complement-style
// floored modulo.
func (s *Sequence) SetSeed(seed int64) {
	s.counter.Store(seed)
}

// NextInt64 atomically advances the counter by one and returns the value the
// counter held just before the advance, folded into [lo, hi].
func (s *Sequence) NextInt64() int64 {
	next := s.counter.Add(1)
	prev := next - 1
	return s.lo + floorMod(prev, s.span)
}

// NextFloat64 returns NextInt64 as a float64.
func (s *Sequence) NextFloat64() float64 {
	return float64(s.NextInt64())
}

func floorMod(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
