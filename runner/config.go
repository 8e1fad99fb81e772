package runner

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/scylladb/cql-stress-go/stats"
)

var validate = validator.New()

// Config is the immutable-once-started configuration for one run.
// Everything the engine needs beyond what OperationFactory.Create supplies
// lives here, matching spec.md §3's Configuration data model.
type Config struct {
	// Concurrency is the number of long-lived worker goroutines the
	// engine spawns. Required, must be positive.
	Concurrency int `validate:"gt=0"`

	// MaxDuration bounds wall-clock run time; zero means unbounded (the
	// run only stops via AskToStop, Abort, or an operation returning
	// Break/a fatal error).
	MaxDuration time.Duration `validate:"gte=0"`

	// RateLimitPerSecond configures the Rate Limiter; zero disables rate
	// limiting (operations run as fast as workers can issue them).
	RateLimitPerSecond float64 `validate:"gte=0"`

	// MaxConsecutiveErrorsPerOp is the retry budget for one operation ID:
	// the engine retries the same ID this many times after consecutive
	// errors before giving up and stopping the run with that error. Zero
	// means no retries — the first error is fatal.
	MaxConsecutiveErrorsPerOp uint64

	// LatencyMode selects whether Stats Shards measure latency from an
	// operation's scheduled or actual start time.
	LatencyMode stats.LatencyMode

	// Factory produces one Operation per worker, at spawn. Required.
	Factory OperationFactory `validate:"required"`
}

// Validate runs struct-tag validation of the configuration: positive
// Concurrency, non-negative MaxDuration and RateLimitPerSecond, and a
// non-nil Factory. No other checks are made.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(err, "runner: invalid configuration")
	}
	return nil
}
