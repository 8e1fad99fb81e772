package mixed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/scylladb/cql-stress-go/distribution"
	"github.com/scylladb/cql-stress-go/runner"
	"github.com/scylladb/cql-stress-go/workload/mixed"
)

// countingCommand records how many times it was executed and optionally
// fails its first n attempts.
type countingCommand struct {
	name  string
	calls int
	fail  int
}

func (c *countingCommand) Execute(context.Context, runner.OperationContext) (runner.Disposition, error) {
	c.calls++
	if c.calls <= c.fail {
		return runner.Continue, errors.New("injected failure")
	}
	return runner.Continue, nil
}

// TestExecuteHonorsWeights covers weights [1, 0]: the second command can
// never be chosen, matching distribution.TestWeightedEnumeratedDistribution's
// degenerate-weight behavior.
func TestExecuteHonorsWeights(t *testing.T) {
	a := &countingCommand{name: "a"}
	b := &countingCommand{name: "b"}

	op, err := mixed.NewOperation([]mixed.Command{a, b}, []float64{1, 0}, distribution.NewFixed(1))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 50; i++ {
		if _, err := op.Execute(context.Background(), runner.OperationContext{}); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}

	if a.calls != 50 {
		t.Fatalf("got %d calls to command a, want 50", a.calls)
	}
	if b.calls != 0 {
		t.Fatalf("got %d calls to command b, want 0 (weight 0)", b.calls)
	}
}

// TestExecuteClustersRunsBeforeResampling covers the sticky run-length
// behavior: with clustering fixed at 3, a chosen command runs 3 times before
// Operation resamples.
func TestExecuteClustersRunsBeforeResampling(t *testing.T) {
	a := &countingCommand{name: "a"}
	b := &countingCommand{name: "b"}

	op, err := mixed.NewOperation([]mixed.Command{a, b}, []float64{1, 1}, distribution.NewFixed(3))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 12; i++ {
		if _, err := op.Execute(context.Background(), runner.OperationContext{}); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}

	if a.calls+b.calls != 12 {
		t.Fatalf("got %d total calls, want 12", a.calls+b.calls)
	}
	// Whichever command ran first, it must have run in clusters of exactly
	// 3 before switching, so each command's call count must be a multiple
	// of 3.
	if a.calls%3 != 0 || b.calls%3 != 0 {
		t.Fatalf("calls not clustered in multiples of 3: a=%d b=%d", a.calls, b.calls)
	}
}

// TestExecuteRetriesSameCommandOnError covers that a failed attempt doesn't
// consume a unit of the clustering run length and doesn't switch commands
// mid-retry.
func TestExecuteRetriesSameCommandOnError(t *testing.T) {
	a := &countingCommand{name: "a", fail: 2}
	b := &countingCommand{name: "b"}

	op, err := mixed.NewOperation([]mixed.Command{a, b}, []float64{1, 0}, distribution.NewFixed(1))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if _, err := op.Execute(context.Background(), runner.OperationContext{}); err == nil {
			t.Fatalf("attempt %d: expected injected failure", i)
		}
	}
	if _, err := op.Execute(context.Background(), runner.OperationContext{}); err != nil {
		t.Fatalf("third attempt: %v", err)
	}
	if a.calls != 3 {
		t.Fatalf("got %d calls to command a, want 3", a.calls)
	}
	if b.calls != 0 {
		t.Fatalf("got %d calls to command b, want 0", b.calls)
	}
}

func TestNewOperationRejectsMismatchedWeights(t *testing.T) {
	a := &countingCommand{name: "a"}
	if _, err := mixed.NewOperation([]mixed.Command{a}, []float64{1, 2}, distribution.NewFixed(1)); err == nil {
		t.Fatal("expected an error for mismatched commands/weights lengths")
	}
}
