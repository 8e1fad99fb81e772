// Package salt derives per-column salts used to decorrelate sibling column
// values generated from the same parent seed. The derivation reproduces
// Cassandra's Murmur3Partitioner token: MurmurHash3_x64_128 with seed 0,
// keeping only the first 64-bit word and folding math.MinInt64 to
// math.MaxInt64 (the partitioner's own normalization, since the token space
// excludes MinInt64).
package salt

import (
	"math"

	"github.com/spaolacci/murmur3"
)

// ForColumn returns the Murmur3 partition token of "randomstr"+name, matching
// spec.md's salt derivation rule.
func ForColumn(name string) int64 {
	return ForSeedString("randomstr" + name)
}

// ForSeedString returns the Murmur3 partition token of s. It is exported
// separately from ForColumn because the partition key generator's salt is
// derived from a fixed seed string ("randomstrkey" in the reference schema)
// rather than from a column name.
func ForSeedString(s string) int64 {
	h1, _ := murmur3.Sum128([]byte(s))
	token := int64(h1)
	if token == math.MinInt64 {
		return math.MaxInt64
	}
	return token
}
