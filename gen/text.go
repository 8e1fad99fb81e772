package gen

import (
	"github.com/scylladb/cql-stress-go/distribution"
	crand "github.com/scylladb/cql-stress-go/rand"
)

// Text generates a 7-bit ASCII string of the sampled size, from a Fast
// PRNG seeded with the complement of the identity draw, same shape as Blob
// but mapping each byte b to ((b & 127) + 32) & 127. The result lies in
// [0, 127], so it can contain control characters as well as printable ones.
// Ported from the Strings generator.
type Text struct {
	rng crand.Fast
}

func (t *Text) Generate(identity, size distribution.Distribution) any {
	seed := identity.NextInt64()
	size.SetSeed(seed)
	t.rng.SetSeed(^seed)
	n := int(size.NextInt64())

	result := make([]byte, 0, n)
	for len(result) < n {
		v := uint64(t.rng.NextInt64())
		var buf [8]byte
		for i := range buf {
			buf[i] = ((byte(v>>(8*i)) & 127) + 32) & 127
		}
		remaining := n - len(result)
		if remaining > len(buf) {
			remaining = len(buf)
		}
		result = append(result, buf[:remaining]...)
	}
	return string(result)
}
