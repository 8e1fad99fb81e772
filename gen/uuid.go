package gen

import (
	"encoding/binary"

	"github.com/gocql/gocql"
	"github.com/scylladb/cql-stress-go/distribution"
)

// Uuid generates a CQL uuid by repeating the big-endian bytes of the
// identity draw into both the high and low 8 bytes of a 16-byte UUID.
type Uuid struct{}

func (Uuid) Generate(identity, _ distribution.Distribution) any {
	v := uint64(identity.NextInt64())
	var id gocql.UUID
	binary.BigEndian.PutUint64(id[0:8], v)
	binary.BigEndian.PutUint64(id[8:16], v)
	return id
}
