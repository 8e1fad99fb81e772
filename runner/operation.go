package runner

import (
	"context"
	"time"

	"github.com/scylladb/cql-stress-go/stats"
)

// OperationContext is the per-attempt, immutable context an Operation's
// Execute receives: the issued operation ID, and the two timestamps the
// stats layer picks between for coordinated-omission-aware latency
// measurement. ScheduledStartTime equals ActualStartTime when rate limiting
// is disabled.
type OperationContext struct {
	OperationID        uint64
	ScheduledStartTime time.Time
	ActualStartTime    time.Time
}

// Disposition is what an Operation tells the engine to do after one
// attempt completes successfully. It has no bearing on the error path: a
// non-nil error from Execute always drives the engine's retry/fatal-error
// policy regardless of the returned Disposition.
type Disposition int

const (
	// Continue issues the next operation ID and keeps the worker's loop
	// running.
	Continue Disposition = iota
	// Break ends the worker's loop cleanly, as if a shutdown signal had
	// been observed.
	Break
)

// Operation is one worker's unit of repeated work: build values (typically
// via a row.Generator), invoke the CQL session, map the driver's outcome to
// a Disposition and an error. The concurrency, ID issuance, rate-limited
// scheduling, retry accounting, and stats accounting are the engine's
// responsibility, not the Operation's — Execute is meant to stay limited to
// "build values, talk to DB, map driver error to a result."
type Operation interface {
	Execute(ctx context.Context, opCtx OperationContext) (Disposition, error)
}

// OperationFactory produces one Operation per worker, invoked once at
// worker spawn.
type OperationFactory interface {
	Create() Operation
}

// WorkerSession drives one worker's inner loop: operation-ID issuance
// (reusing the same ID across retries), rate-limited scheduling, stats
// accounting, and the consecutive-error retry/fatal-error policy. Not safe
// for concurrent use — each worker owns exactly one WorkerSession.
type WorkerSession struct {
	engine *Engine
	shard  *stats.Shard

	consecutiveErrors uint64
	currentID         uint64
	retrying          bool
}

func newWorkerSession(engine *Engine, shard *stats.Shard) *WorkerSession {
	return &WorkerSession{engine: engine, shard: shard}
}

// Start issues the context for the next attempt: a fresh operation ID, or
// (on retry) the same ID as the previous attempt. It returns ok=false when
// the engine's stop sentinel has been observed or ctx has been cancelled,
// which the worker's loop treats as a clean shutdown.
func (s *WorkerSession) Start(ctx context.Context) (OperationContext, bool) {
	if ctx.Err() != nil {
		return OperationContext{}, false
	}

	id := s.currentID
	if !s.retrying {
		var ok bool
		id, ok = s.engine.issueID()
		if !ok {
			return OperationContext{}, false
		}
		s.currentID = id
	}

	var scheduled time.Time
	if s.engine.rateLimiter != nil {
		scheduled = s.engine.rateLimiter.IssueNextStartTime()
		if wait := time.Until(scheduled); wait > 0 {
			timer := time.NewTimer(wait)
			select {
			case <-timer.C:
			case <-ctx.Done():
				timer.Stop()
				return OperationContext{}, false
			}
		}
	}

	actual := time.Now()
	if s.engine.rateLimiter == nil {
		scheduled = actual
	}

	return OperationContext{
		OperationID:        id,
		ScheduledStartTime: scheduled,
		ActualStartTime:    actual,
	}, true
}

// End accounts the attempt's outcome and returns the disposition the
// worker's loop should act on. A non-nil opErr always drives the retry/
// fatal-error policy: below the configured retry budget, End arranges for
// the next Start call to reuse the same operation ID (retry) and returns
// Continue; once the budget is exhausted, it writes the stop sentinel
// (signalling every other worker to drain) and returns Break. On success
// (opErr == nil), the consecutive-error counter resets and the Operation's
// own requested disposition is returned unchanged.
func (s *WorkerSession) End(opCtx OperationContext, disposition Disposition, opErr error) Disposition {
	s.shard.AccountOperation(stats.OperationContext{
		ScheduledStartTime: opCtx.ScheduledStartTime,
		ActualStartTime:    opCtx.ActualStartTime,
	}, opErr)

	if opErr == nil {
		s.consecutiveErrors = 0
		s.retrying = false
		return disposition
	}

	s.consecutiveErrors++
	if s.consecutiveErrors <= s.engine.maxConsecutiveErrors {
		s.retrying = true
		return Continue
	}

	s.retrying = false
	s.engine.triggerStop()
	return Break
}

// runWorker drives one Operation through the loop spec.md §4.I describes:
// start, execute, end, and stop as soon as End signals Break - returning
// the attempt's error (nil for a clean Operation-requested Break, non-nil
// once the consecutive-error retry budget is exhausted).
func runWorker(ctx context.Context, session *WorkerSession, op Operation) error {
	for {
		opCtx, ok := session.Start(ctx)
		if !ok {
			return nil
		}

		disposition, err := op.Execute(ctx, opCtx)
		result := session.End(opCtx, disposition, err)
		if result == Break {
			return err
		}
	}
}
