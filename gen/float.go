package gen

import "github.com/scylladb/cql-stress-go/distribution"

// Float generates a CQL float from the raw (unclamped) identity real
// sample, narrowed to float32.
type Float struct{}

func (Float) Generate(identity, _ distribution.Distribution) any {
	return float32(identity.NextFloat64())
}

// Double generates a CQL double from the raw (unclamped) identity real
// sample.
type Double struct{}

func (Double) Generate(identity, _ distribution.Distribution) any {
	return identity.NextFloat64()
}
