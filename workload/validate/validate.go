// Package validate implements a read-and-validate Operation: it regenerates
// the row a previous write would have produced for a partition key and
// compares it against what the database actually returns, mirroring
// cassandra-stress's read path (operation/read.rs) and giving a concrete
// shape to spec.md's "Validation mismatch" error kind, otherwise only named
// in the abstract.
package validate

import (
	"context"
	"errors"
	"fmt"

	"github.com/scylladb/cql-stress-go/cqlvalue"
	"github.com/scylladb/cql-stress-go/row"
	"github.com/scylladb/cql-stress-go/runner"
)

// ErrMismatch wraps every validation failure Operation.Execute returns, so
// a caller can distinguish it from a driver/transport error via errors.Is.
var ErrMismatch = errors.New("validate: row does not match its regenerated expected value")

// Statement issues one read against whatever session the caller wires in,
// returning the row's values in row.Generator's column order (partition key
// first), or an error.
type Statement interface {
	Execute(ctx context.Context, pk cqlvalue.Value) ([]cqlvalue.Value, error)
}

// Operation regenerates the expected row for the next partition key in
// Rows's sequence, reads it back via Statement, and compares the two. Rows
// must be seeded identically to however the corresponding write phase seeded
// its own row.Generator, or every comparison will spuriously fail — this
// package only implements the comparison, not cross-process seed agreement.
type Operation struct {
	statement Statement
	rows      *row.Generator
}

// NewOperation builds a read-and-validate Operation.
func NewOperation(statement Statement, rows *row.Generator) *Operation {
	return &Operation{statement: statement, rows: rows}
}

// Execute regenerates the next expected row, reads it back, and compares.
func (o *Operation) Execute(ctx context.Context, _ runner.OperationContext) (runner.Disposition, error) {
	expected := o.rows.GenerateRow()
	pk := expected[0]

	actual, err := o.statement.Execute(ctx, pk)
	if err != nil {
		return runner.Continue, err
	}

	if !rowsEqual(expected, actual) {
		return runner.Continue, fmt.Errorf("%w: partition key %v", ErrMismatch, pk)
	}
	return runner.Continue, nil
}

func rowsEqual(expected, actual []cqlvalue.Value) bool {
	if len(expected) != len(actual) {
		return false
	}
	for i := range expected {
		if !cqlvalue.Equal(expected[i], actual[i]) {
			return false
		}
	}
	return true
}

// Factory produces one Operation per worker, each with its own Statement
// and row.Generator (generators are not safe for concurrent use).
type Factory struct {
	NewStatement func() Statement
	NewRows      func() *row.Generator
}

// Create builds a fresh read-and-validate Operation.
func (f *Factory) Create() runner.Operation {
	return NewOperation(f.NewStatement(), f.NewRows())
}
