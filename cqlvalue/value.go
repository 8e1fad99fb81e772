// Package cqlvalue defines the typed representation value generators
// produce: the concrete Go types a gocql-bound query already expects, so
// generator output can be passed straight to gocql.Query.Bind without an
// adaptation layer.
package cqlvalue

import (
	"math/big"
	"net"
	"reflect"

	"github.com/gocql/gocql"
	inf "gopkg.in/inf.v0"
)

// Value is the dynamic type produced by a generator. It is always one of:
// []byte, string, int64, int32, int16, int8, float32, float64, bool,
// net.IP, gocql.UUID, *big.Int, *inf.Dec, or gen.Counter (an int64-based
// counter increment).
type Value = any

// Equal reports whether two Values are the same CQL value. big.Int and
// inf.Dec compare by value rather than pointer identity so that two
// independently generated values (e.g. a written row and its later
// validation reconstruction) can be compared meaningfully.
func Equal(a, b Value) bool {
	switch av := a.(type) {
	case *big.Int:
		bv, ok := b.(*big.Int)
		return ok && av.Cmp(bv) == 0
	case *inf.Dec:
		bv, ok := b.(*inf.Dec)
		return ok && av.Cmp(bv) == 0
	case net.IP:
		bv, ok := b.(net.IP)
		return ok && av.Equal(bv)
	case gocql.UUID:
		bv, ok := b.(gocql.UUID)
		return ok && av == bv
	default:
		return reflect.DeepEqual(a, b)
	}
}
