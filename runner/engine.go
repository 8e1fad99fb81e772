// Package runner implements the Run Engine and the Operation Protocol: it
// spawns a fixed pool of worker goroutines against a caller-supplied
// OperationFactory, issues strictly increasing operation IDs, optionally
// rate-limits and coordinated-omission-corrects their scheduling, retries
// transient errors up to a configured budget, and propagates the first
// fatal error while draining or aborting its peers.
package runner

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/scylladb/cql-stress-go/ratelimit"
	"github.com/scylladb/cql-stress-go/stats"
)

// stopThreshold is the sentinel operation-ID value: any issued ID at or
// above this terminates the issuing worker's loop cleanly. It must be
// representable as a uint64 but is deliberately far above any realistic
// operation count (2^63), matching spec.md §3's Run Engine State.
const stopThreshold uint64 = 1 << 63

// Engine holds the process-wide state shared by every worker in one run:
// the operation-ID counter (with its embedded stop sentinel), the optional
// rate limiter, the retry budget, and the stats registry every worker's
// Shard is drawn from.
type Engine struct {
	counter              atomic.Uint64
	rateLimiter          *ratelimit.Limiter
	maxConsecutiveErrors uint64
	statsRegistry        *stats.ShardedStats
}

// issueID fetch-adds the operation counter and returns the id assigned to
// the caller, or ok=false once the stop sentinel has been crossed.
func (e *Engine) issueID() (uint64, bool) {
	id := e.counter.Add(1) - 1
	if id >= stopThreshold {
		return 0, false
	}
	return id, true
}

// triggerStop writes the stop sentinel into the operation counter, so every
// subsequent issueID call observes it and returns ok=false. Idempotent:
// writing it twice (e.g. a duration watchdog racing a worker's fatal error)
// is harmless.
func (e *Engine) triggerStop() {
	e.counter.Store(stopThreshold)
}

// Controller is the caller's handle on a running engine: AskToStop requests
// a cooperative drain, Abort cancels every worker's context immediately.
type Controller struct {
	engine *Engine
	cancel context.CancelFunc
}

// AskToStop writes the stop sentinel. Workers finish their current
// operation, then observe the sentinel on their next Start call and return
// cleanly — a drain, not an abort.
func (c *Controller) AskToStop() {
	c.engine.triggerStop()
}

// Abort cancels every worker's context immediately, without draining.
// In-flight Execute calls are not forcibly interrupted — Go cannot preempt
// a running goroutine — but any operation respecting ctx cancellation (and
// any blocking rate-limiter sleep) returns as soon as it next observes
// ctx.Done().
func (c *Controller) Abort() {
	c.cancel()
}

// Stats exposes the run's stats registry, so a caller can attach a
// stats.Reporter alongside the run.
func (c *Controller) Stats() *stats.ShardedStats {
	return c.engine.statsRegistry
}

// Completion is the run's "completion future": Wait blocks until every
// worker has returned and yields the first fatal error observed, or nil if
// the run drained cleanly.
type Completion struct {
	done chan struct{}
	err  error
}

// Wait blocks until the run completes and returns its first fatal error, if
// any.
func (c *Completion) Wait() error {
	<-c.done
	return c.err
}

// Run validates cfg, spawns cfg.Concurrency worker goroutines each running
// one Operation from cfg.Factory, and returns a Controller plus a
// Completion future. It returns immediately; workers run asynchronously
// until they drain, are aborted, or a fatal error propagates.
func Run(ctx context.Context, cfg Config) (*Controller, *Completion, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)

	engine := &Engine{
		maxConsecutiveErrors: cfg.MaxConsecutiveErrorsPerOp,
		statsRegistry:        stats.NewShardedStats(cfg.LatencyMode),
	}
	if cfg.RateLimitPerSecond > 0 {
		engine.rateLimiter = ratelimit.New(cfg.RateLimitPerSecond, time.Now())
	}

	group, groupCtx := errgroup.WithContext(runCtx)

	for i := 0; i < cfg.Concurrency; i++ {
		op := cfg.Factory.Create()
		session := newWorkerSession(engine, engine.statsRegistry.NewShard())
		group.Go(func() error {
			return runWorker(groupCtx, session, op)
		})
	}

	if cfg.MaxDuration > 0 {
		go func() {
			timer := time.NewTimer(cfg.MaxDuration)
			defer timer.Stop()
			select {
			case <-timer.C:
				engine.triggerStop()
			case <-runCtx.Done():
			}
		}()
	}

	controller := &Controller{engine: engine, cancel: cancel}
	completion := &Completion{done: make(chan struct{})}

	go func() {
		err := group.Wait()
		cancel()
		completion.err = err
		close(completion.done)
	}()

	return controller, completion, nil
}
