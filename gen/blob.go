package gen

import (
	"github.com/scylladb/cql-stress-go/distribution"
	crand "github.com/scylladb/cql-stress-go/rand"
)

// Blob generates a byte slice of the sampled size, filled from a Fast PRNG
// seeded with the bitwise complement of the identity draw that also seeds
// the size distribution. Ported from cassandra-stress's Bytes generator.
type Blob struct {
	rng crand.Fast
}

func (b *Blob) Generate(identity, size distribution.Distribution) any {
	seed := identity.NextInt64()
	size.SetSeed(seed)
	b.rng.SetSeed(^seed)
	n := int(size.NextInt64())

	result := make([]byte, 0, n)
	for len(result) < n {
		v := uint64(b.rng.NextInt64())
		var buf [8]byte
		for i := range buf {
			buf[i] = byte(v >> (8 * i))
		}
		remaining := n - len(result)
		if remaining > len(buf) {
			remaining = len(buf)
		}
		result = append(result, buf[:remaining]...)
	}
	return result
}

func (*Blob) blobShaped() {}
