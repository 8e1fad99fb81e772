// Package timeseries implements a non-uniform partition-key seed source
// modeled on scylla-bench's timeseries write workload
// (workload/timeseries_write.rs): instead of drawing independent samples
// from a Sequence or Uniform distribution, it derives each seed from one
// shared, monotonically increasing counter, filling a fixed number of
// partition keys per "generation" before moving on to the next. It still
// implements distribution.Distribution, so it drops straight into a
// row.Generator's pkSeedDistribution unmodified.
package timeseries

import (
	"sync/atomic"

	"github.com/pkg/errors"
)

// Config mirrors TimeseriesWriteConfig: PksPerGeneration partition keys are
// filled before the schedule advances to the next generation, CksPerPk
// clustering rows are written per partition before a generation completes.
// MaxRatePerSecond is carried alongside for the caller; Seed does not read
// it, and does not sleep or rate-limit — pairing it with a ratelimit.Limiter
// is the caller's job.
type Config struct {
	PksPerGeneration uint64
	CksPerPk         uint64
	MaxRatePerSecond uint64
}

// Seed is a distribution.Distribution whose NextInt64 derives a partition-
// key seed from a shared atomic counter rather than random sampling,
// reproducing generate_keys's pk_position/pk_generation derivation. The
// paired clustering "write time" ordering generate_keys also derives from
// the same counter has no equivalent in this core (it has no clustering-key
// concept), so only the partition-key half is implemented.
type Seed struct {
	cfg     Config
	counter atomic.Uint64
}

// NewSeed builds a Seed. cfg.PksPerGeneration and cfg.CksPerPk must be
// positive.
func NewSeed(cfg Config) (*Seed, error) {
	if cfg.PksPerGeneration == 0 {
		return nil, errors.New("timeseries: PksPerGeneration must be positive")
	}
	if cfg.CksPerPk == 0 {
		return nil, errors.New("timeseries: CksPerPk must be positive")
	}
	return &Seed{cfg: cfg}, nil
}

// SetSeed resets the schedule's counter to start from seed, letting a
// caller replay the exact same key sequence (e.g. a validation pass
// following a write pass).
func (s *Seed) SetSeed(seed int64) {
	s.counter.Store(uint64(seed))
}

// NextInt64 returns the next scheduled partition-key seed: (pkPosition <<
// 32) | pkGeneration, where pkPosition cycles through
// [0, PksPerGeneration) and pkGeneration advances once every
// PksPerGeneration*CksPerPk draws — the same packing generate_keys uses for
// its pk value.
func (s *Seed) NextInt64() int64 {
	x := s.counter.Add(1) - 1
	pkPosition := x % s.cfg.PksPerGeneration
	ckPosition := x / s.cfg.PksPerGeneration
	pkGeneration := ckPosition / s.cfg.CksPerPk

	return int64(pkPosition<<32 | pkGeneration)
}

// NextFloat64 returns NextInt64 as a float64, completing the
// distribution.Distribution contract; timeseries schedules are never
// sampled as floats.
func (s *Seed) NextFloat64() float64 {
	return float64(s.NextInt64())
}
