// Package mixed implements a mixed-command Operation: one that samples a
// weighted distribution to choose among several caller-supplied Commands,
// clustering consecutive attempts onto the same Command for a run length
// sampled from a second distribution before resampling. This mirrors cassandra-stress's "mixed" workload
// (operation/mixed.rs), which alternates between its read/write/counter
// sub-operations the same way.
package mixed

import (
	"context"
	"fmt"

	"github.com/scylladb/cql-stress-go/distribution"
	"github.com/scylladb/cql-stress-go/runner"
)

// Command is one of the sub-operations a mixed workload samples among — a
// regular read, a counter write, and so on. Commands own their own driver
// calls; Operation only decides which one runs on a given attempt.
type Command = runner.Operation

// Operation samples a Command, weighted by a distribution.WeightedEnumerated,
// on every attempt whose predecessor exhausted its clustering run length.
type Operation struct {
	commands   []Command
	ratio      *distribution.WeightedEnumerated
	clustering distribution.Distribution

	current   Command
	remaining int64
}

// NewOperation builds a mixed Operation over commands, sampled proportional
// to weights (len(weights) must equal len(commands)). clustering controls
// the sticky run length: after choosing a command, Operation keeps running
// it for clustering.NextInt64() consecutive successful attempts (at least
// one) before resampling, matching operation/mixed.rs's
// current_operation_remaining behavior.
func NewOperation(commands []Command, weights []float64, clustering distribution.Distribution) (*Operation, error) {
	if len(commands) != len(weights) {
		return nil, fmt.Errorf("mixed: got %d commands but %d weights", len(commands), len(weights))
	}
	ratio, err := distribution.NewWeightedEnumerated(weights)
	if err != nil {
		return nil, err
	}
	return &Operation{commands: commands, ratio: ratio, clustering: clustering}, nil
}

// Execute runs the currently-selected Command, resampling it first if the
// previous run length has been exhausted. A Command's own Disposition and
// error are returned unchanged; an error does not consume a unit of the
// clustering run length, so a failed attempt is retried against the same
// Command rather than silently switching commands mid-retry.
func (o *Operation) Execute(ctx context.Context, opCtx runner.OperationContext) (runner.Disposition, error) {
	if o.remaining <= 0 {
		idx := o.ratio.NextInt64()
		o.current = o.commands[idx]
		o.remaining = o.clustering.NextInt64()
		if o.remaining <= 0 {
			o.remaining = 1
		}
	}

	disposition, err := o.current.Execute(ctx, opCtx)
	if err == nil {
		o.remaining--
	}
	return disposition, err
}

// Factory produces one Operation per worker from a set of per-Command
// factories, matching MixedOperationFactory::create — every worker gets its
// own independent Command instances (and thus its own driver-prepared
// statements, row generators, and so on), never sharing one across workers.
type Factory struct {
	CommandFactories []runner.OperationFactory
	Weights          []float64
	NewClustering    func() distribution.Distribution
}

// Create builds a fresh Operation, instantiating one Command from each
// configured CommandFactory and a fresh clustering distribution.
func (f *Factory) Create() runner.Operation {
	commands := make([]Command, len(f.CommandFactories))
	for i, cf := range f.CommandFactories {
		commands[i] = cf.Create()
	}
	op, err := NewOperation(commands, f.Weights, f.NewClustering())
	if err != nil {
		// CommandFactories/Weights are validated once at Factory
		// construction time (see NewFactory); reaching here means the
		// caller mutated the Factory after construction.
		panic(err)
	}
	return op
}

// NewFactory validates weights against commandFactories up front, so a
// misconfigured mixed workload fails at setup time rather than on the first
// worker's first attempt.
func NewFactory(commandFactories []runner.OperationFactory, weights []float64, newClustering func() distribution.Distribution) (*Factory, error) {
	if len(commandFactories) != len(weights) {
		return nil, fmt.Errorf("mixed: got %d command factories but %d weights", len(commandFactories), len(weights))
	}
	if _, err := distribution.NewWeightedEnumerated(weights); err != nil {
		return nil, err
	}
	return &Factory{CommandFactories: commandFactories, Weights: weights, NewClustering: newClustering}, nil
}
