package gen

import (
	"github.com/scylladb/cql-stress-go/distribution"
	inf "gopkg.in/inf.v0"
)

// Decimal generates a CQL decimal with a scale of zero, translating the
// identity draw into a BigDecimal the way Java's BigDecimal.valueOf(long)
// does.
type Decimal struct{}

func (Decimal) Generate(identity, _ distribution.Distribution) any {
	return inf.NewDec(identity.NextInt64(), 0)
}
