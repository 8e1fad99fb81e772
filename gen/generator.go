// Package gen implements the deterministic per-column value generators:
// Blob, HexBlob, Text, the fixed-width integer family, Float/Double, Inet,
// Uuid, Varint, Decimal, Boolean, and the counter-add generator. Each one
// except the counter-add generator is driven by a pair of distributions
// (identity and size) and wrapped by Generator, which applies a per-column
// salt before seeding the identity distribution so that sibling columns
// generated from the same row seed diverge from one another. The counter-add
// generator (NextCounter) draws straight from a single distribution.
package gen

import (
	"github.com/scylladb/cql-stress-go/cqlvalue"
	"github.com/scylladb/cql-stress-go/distribution"
	"github.com/scylladb/cql-stress-go/internal/salt"
)

// ValueGenerator produces one CQL value per call, sampling from the
// identity and size distributions it is handed. Implementations are not
// safe for concurrent use; each goroutine driving a Generator owns its own
// ValueGenerator instance.
type ValueGenerator interface {
	Generate(identity, size distribution.Distribution) cqlvalue.Value
}

// BlobShaped marks a ValueGenerator whose output is always a raw byte
// sequence. The row package's column-seed fold (a Java String.hashCode-style
// byte fold) is only defined over byte sequences, so it requires its
// partition-key generator to implement this interface and rejects any that
// don't at construction time.
type BlobShaped interface {
	ValueGenerator
	blobShaped()
}

// Default identity/size distributions, matching the reference Generator's
// Java defaults (values/Generator.java): identity ranges over a span wide
// enough that collisions across a realistic row count are vanishingly
// unlikely, and size produces the "small blob" column widths c-s ships with
// out of the box.
const (
	defaultIdentityLo = 1
	defaultIdentityHi = 100_000_000_000
	defaultSizeLo     = 4
	defaultSizeHi     = 8
)

func defaultIdentityDistribution() distribution.Distribution {
	d, err := distribution.NewUniformReal(defaultIdentityLo, defaultIdentityHi)
	if err != nil {
		panic(err)
	}
	return d
}

func defaultSizeDistribution() distribution.Distribution {
	d, err := distribution.NewUniformReal(defaultSizeLo, defaultSizeHi)
	if err != nil {
		panic(err)
	}
	return d
}

// Generator wraps a ValueGenerator with the salt + identity/size
// distribution plumbing every CQL column generator shares.
type Generator struct {
	salt     int64
	identity distribution.Distribution
	size     distribution.Distribution
	inner    ValueGenerator
}

// Config configures a Generator's distributions. A nil Identity or Size
// falls back to the reference implementation's defaults.
type Config struct {
	Identity distribution.Distribution
	Size     distribution.Distribution
}

// NewGenerator returns a Generator for column colName, deriving its salt
// from "randomstr"+colName the same way cassandra-stress does.
func NewGenerator(inner ValueGenerator, cfg Config, colName string) *Generator {
	return newGenerator(inner, cfg, salt.ForColumn(colName))
}

// NewPartitionKeyGenerator returns a Generator salted the way the reference
// implementation salts the partition key column: from the fixed string
// "randomstrkey" rather than from a column name.
func NewPartitionKeyGenerator(inner ValueGenerator, cfg Config) *Generator {
	return newGenerator(inner, cfg, salt.ForSeedString("randomstrkey"))
}

func newGenerator(inner ValueGenerator, cfg Config, s int64) *Generator {
	identity := cfg.Identity
	if identity == nil {
		identity = defaultIdentityDistribution()
	}
	size := cfg.Size
	if size == nil {
		size = defaultSizeDistribution()
	}
	return &Generator{salt: s, identity: identity, size: size, inner: inner}
}

// SetSeed seeds the identity distribution with seed XOR the column's salt,
// decorrelating sibling columns derived from the same row seed.
func (g *Generator) SetSeed(seed int64) {
	g.identity.SetSeed(seed ^ g.salt)
}

// Generate produces the next value from the wrapped ValueGenerator.
func (g *Generator) Generate() cqlvalue.Value {
	return g.inner.Generate(g.identity, g.size)
}
