package gen

import "github.com/scylladb/cql-stress-go/distribution"

// Boolean generates a CQL boolean from the identity draw's parity.
// cassandra-stress itself computes `seed % 1 == 0`, which is always true;
// we deliberately diverge and return a genuinely varying boolean.
type Boolean struct{}

func (Boolean) Generate(identity, _ distribution.Distribution) any {
	return identity.NextInt64()%2 == 1
}
