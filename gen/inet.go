package gen

import (
	"net"

	"github.com/scylladb/cql-stress-go/distribution"
)

// Inet generates a CQL inet value: an IPv4 address whose four octets are
// the big-endian bytes of the identity draw truncated to int32.
type Inet struct{}

func (Inet) Generate(identity, _ distribution.Distribution) any {
	v := uint32(int32(identity.NextInt64()))
	return net.IPv4(byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
