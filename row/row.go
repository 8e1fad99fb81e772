// Package row implements the Row Generator: it combines a shared
// partition-key-seed distribution with a partition-key generator and an
// ordered list of column generators to produce full CQL rows whose non-PK
// columns are a pure function of the generated partition key. This is what
// lets a read workload recompute and validate a row written earlier by a
// write workload that shared the same partition-key seed distribution,
// without persisting anything beyond the key itself.
package row

import (
	"errors"
	"fmt"

	"github.com/scylladb/cql-stress-go/cqlvalue"
	"github.com/scylladb/cql-stress-go/distribution"
	"github.com/scylladb/cql-stress-go/gen"
)

// ErrNonBlobPartitionKey is returned by NewGenerator when the supplied
// partition-key generator does not produce a byte sequence. The column-seed
// fold is defined only over bytes, so a non-blob-shaped partition key is a
// configuration error, caught at construction rather than surfacing as a
// panic or a silently wrong row the first time a row is generated.
var ErrNonBlobPartitionKey = errors.New("row: partition key generator must be blob-shaped")

// Generator produces full rows: a partition key followed by an ordered
// sequence of non-PK column values. Not safe for concurrent use; the shared
// pk-seed distribution is the only piece of shared state and is safe to draw
// from concurrently, but a Generator itself is meant to be owned by a single
// worker, the same way *gen.Generator is.
type Generator struct {
	pkSeedDistribution distribution.Distribution
	pkGenerator        *gen.Generator
	columnGenerators   []*gen.Generator
}

// NewGenerator builds a row Generator. pkSeedDistribution is shared across
// every Row Generator instance in a run (its NextInt64 must be safe to call
// concurrently). pkInner is the partition-key value generator (typically
// gen.HexBlob); it must implement gen.BlobShaped, since the column-seed fold
// operates on the generated key's bytes. pkConfig configures the
// partition-key generator's identity/size distributions (size is typically
// a fixed key size). columnGenerators is the ordered list of per-column
// generators (it may be empty, giving rows that hold only the key) that make up the rest of the row; each is expected
// to have been built with gen.NewGenerator so it already carries its own
// column salt.
func NewGenerator(pkSeedDistribution distribution.Distribution, pkInner gen.ValueGenerator, pkConfig gen.Config, columnGenerators []*gen.Generator) (*Generator, error) {
	if _, ok := pkInner.(gen.BlobShaped); !ok {
		return nil, fmt.Errorf("%w: got %T", ErrNonBlobPartitionKey, pkInner)
	}

	return &Generator{
		pkSeedDistribution: pkSeedDistribution,
		pkGenerator:        gen.NewPartitionKeyGenerator(pkInner, pkConfig),
		columnGenerators:   columnGenerators,
	}, nil
}

// GeneratePartitionKey draws the next partition-key seed from the shared
// distribution, seeds the partition-key generator with it, and returns the
// generated key. Exposed separately from GenerateRow for callers that need
// only a partition key (such as the counter workload); recomputing a row's
// column values from an existing key goes through RecomputeColumnSeed.
func (g *Generator) GeneratePartitionKey() cqlvalue.Value {
	pkSeed := g.pkSeedDistribution.NextInt64()
	g.pkGenerator.SetSeed(pkSeed)
	return g.pkGenerator.Generate()
}

// GenerateRow produces one full row: partition key first, then every
// non-PK column in configuration order, each seeded from the column seed
// recomputed from the partition key per RecomputeColumnSeed.
func (g *Generator) GenerateRow() []cqlvalue.Value {
	row := make([]cqlvalue.Value, 0, len(g.columnGenerators)+1)

	pk := g.GeneratePartitionKey()
	row = append(row, pk)

	columnSeed := RecomputeColumnSeed(pk)
	for _, c := range g.columnGenerators {
		c.SetSeed(columnSeed)
		row = append(row, c.Generate())
	}

	return row
}

// RecomputeColumnSeed folds a generated partition key into the seed used to
// drive every non-PK column generator. It is the Java String.hashCode-style
// byte fold cassandra-stress uses to recompute a row's expected column
// values from the partition key alone: start with s = 0, and for each byte
// b of the key (as an unsigned value, 0-255) compute s = s*31 + b in
// wrapping 64-bit arithmetic. pk must be a []byte (the shape every
// gen.BlobShaped generator produces); any other type is a programming error,
// since NewGenerator already rejected non-blob-shaped partition keys.
func RecomputeColumnSeed(pk cqlvalue.Value) int64 {
	key, ok := pk.([]byte)
	if !ok {
		panic(fmt.Sprintf("row: partition key value has unexpected type %T, want []byte", pk))
	}

	var s int64
	for _, b := range key {
		s = s*31 + int64(b)
	}
	return s
}
