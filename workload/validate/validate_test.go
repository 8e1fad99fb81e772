package validate_test

import (
	"context"
	"errors"
	"testing"

	"github.com/scylladb/cql-stress-go/cqlvalue"
	"github.com/scylladb/cql-stress-go/distribution"
	"github.com/scylladb/cql-stress-go/gen"
	"github.com/scylladb/cql-stress-go/row"
	"github.com/scylladb/cql-stress-go/runner"
	"github.com/scylladb/cql-stress-go/workload/validate"
)

func fixedSize(n int64) gen.Config {
	return gen.Config{Size: distribution.NewFixed(n)}
}

func newRows(t *testing.T) *row.Generator {
	t.Helper()
	seq, err := distribution.NewSequence(1, 100)
	if err != nil {
		t.Fatal(err)
	}
	cols := []*gen.Generator{gen.NewGenerator(&gen.Blob{}, fixedSize(6), "C0")}
	rows, err := row.NewGenerator(seq, &gen.Blob{}, fixedSize(8), cols)
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

// echoStatement returns, one per call and in order, the rows it was
// preloaded with, simulating a driver round-trip that faithfully stores and
// returns a written row.
type echoStatement struct {
	expectations []cqlvalue.Value
	idx          int
}

func (s *echoStatement) Execute(context.Context, cqlvalue.Value) ([]cqlvalue.Value, error) {
	v := s.expectations[s.idx]
	s.idx++
	return v.([]cqlvalue.Value), nil
}

func TestExecuteSucceedsWhenRowsMatch(t *testing.T) {
	// Reconstruct the exact rows a read-and-validate pass would regenerate,
	// and hand them straight back through the "driver" — a matching round
	// trip should never report a mismatch.
	producer := newRows(t)
	var expected []cqlvalue.Value
	for i := 0; i < 3; i++ {
		expected = append(expected, cqlvalue.Value(producer.GenerateRow()))
	}

	stmt := &echoStatement{expectations: expected}
	op := validate.NewOperation(stmt, newRows(t))

	for i := 0; i < 3; i++ {
		if _, err := op.Execute(context.Background(), runner.OperationContext{}); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
}

type mismatchStatement struct{}

func (mismatchStatement) Execute(context.Context, cqlvalue.Value) ([]cqlvalue.Value, error) {
	return []cqlvalue.Value{[]byte("not-what-was-written")}, nil
}

func TestExecuteReportsMismatch(t *testing.T) {
	op := validate.NewOperation(mismatchStatement{}, newRows(t))

	_, err := op.Execute(context.Background(), runner.OperationContext{})
	if !errors.Is(err, validate.ErrMismatch) {
		t.Fatalf("got %v, want an error wrapping ErrMismatch", err)
	}
}

type failingStatement struct{}

func (failingStatement) Execute(context.Context, cqlvalue.Value) ([]cqlvalue.Value, error) {
	return nil, errors.New("read timeout")
}

func TestExecutePropagatesReadError(t *testing.T) {
	op := validate.NewOperation(failingStatement{}, newRows(t))

	_, err := op.Execute(context.Background(), runner.OperationContext{})
	if err == nil || errors.Is(err, validate.ErrMismatch) {
		t.Fatalf("got %v, want the statement's own error, not a mismatch", err)
	}
}
