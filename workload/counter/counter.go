// Package counter implements a counter-update Operation: one that builds a
// row of counter increments plus a partition key and hands it to a
// caller-supplied Statement, mirroring cassandra-stress's counter-write path
// (operation/counter_write.rs) and scylla-bench's counter_update.rs.
package counter

import (
	"context"

	"github.com/scylladb/cql-stress-go/cqlvalue"
	"github.com/scylladb/cql-stress-go/distribution"
	"github.com/scylladb/cql-stress-go/gen"
	"github.com/scylladb/cql-stress-go/row"
	"github.com/scylladb/cql-stress-go/runner"
)

// Statement issues one counter-update attempt against whatever session the
// caller wires in. values holds Columns increments (in column order),
// followed by the partition key, matching counter_write.rs's row layout.
type Statement interface {
	Execute(ctx context.Context, values []cqlvalue.Value) error
}

// Operation builds a counter-update row and executes it: Columns bare
// int64 increments sampled independently from Add, then a partition key
// drawn from Rows. Unlike a regular write, the non-key columns never go
// through a gen.Generator — counter_write.rs samples the increment directly
// from its configured add-distribution.
type Operation struct {
	statement Statement
	rows      *row.Generator
	add       distribution.Distribution
	columns   int
}

// NewOperation builds a counter-update Operation. columns is the number of
// counter columns the table defines (non_pk_columns_count in the original).
func NewOperation(statement Statement, rows *row.Generator, add distribution.Distribution, columns int) *Operation {
	return &Operation{statement: statement, rows: rows, add: add, columns: columns}
}

// Execute builds one counter-update row and issues it via Statement.
func (o *Operation) Execute(ctx context.Context, _ runner.OperationContext) (runner.Disposition, error) {
	values := make([]cqlvalue.Value, 0, o.columns+1)
	for i := 0; i < o.columns; i++ {
		values = append(values, gen.NextCounter(o.add))
	}
	values = append(values, o.rows.GeneratePartitionKey())

	if err := o.statement.Execute(ctx, values); err != nil {
		return runner.Continue, err
	}
	return runner.Continue, nil
}

// Factory produces one Operation per worker, each with its own Statement
// and row.Generator (generators are not safe for concurrent use).
type Factory struct {
	NewStatement func() Statement
	NewRows      func() *row.Generator
	NewAdd       func() distribution.Distribution
	Columns      int
}

// Create builds a fresh counter-update Operation.
func (f *Factory) Create() runner.Operation {
	return NewOperation(f.NewStatement(), f.NewRows(), f.NewAdd(), f.Columns)
}
