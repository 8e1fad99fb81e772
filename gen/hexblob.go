package gen

import "github.com/scylladb/cql-stress-go/distribution"

// HexBlob generates one ASCII byte per nibble, drawing a fresh identity
// sample every 16 characters rather than spinning up a separate PRNG the
// way Blob and Text do. Used by cassandra-stress to generate blob-shaped
// partition keys. Ported from the HexBytes generator, including its
// 'A'+v (not 'A'+(v-10)) quirk: nibbles 10-15 land on 'A'+10..'A'+15
// ("K".."P"), not the standard hex digits 'A'..'F'.
type HexBlob struct{}

func (HexBlob) Generate(identity, size distribution.Distribution) any {
	seed := identity.NextInt64()
	size.SetSeed(seed)
	n := int(size.NextInt64())

	result := make([]byte, 0, n)
	for i := 0; i < n; i += 16 {
		value := uint64(identity.NextInt64())
		for j := 0; j < 16 && i+j < n; j++ {
			v := value & 0xF
			var digit byte
			if v < 10 {
				digit = '0' + byte(v)
			} else {
				digit = 'A' + byte(v)
			}
			result = append(result, digit)
			value >>= 4
		}
	}
	return result
}

func (HexBlob) blobShaped() {}
