package gen

import (
	"math/big"

	"github.com/scylladb/cql-stress-go/distribution"
)

// Varint generates a CQL varint directly from the signed identity draw.
type Varint struct{}

func (Varint) Generate(identity, _ distribution.Distribution) any {
	return big.NewInt(identity.NextInt64())
}
