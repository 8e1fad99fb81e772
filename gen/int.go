package gen

import "github.com/scylladb/cql-stress-go/distribution"

// BigInt generates a CQL bigint from the raw identity draw, truncated to
// int64 (a no-op truncation, since the draw is already int64).
type BigInt struct{}

func (BigInt) Generate(identity, _ distribution.Distribution) any {
	return identity.NextInt64()
}

// Int generates a CQL int, truncating the identity draw to int32.
type Int struct{}

func (Int) Generate(identity, _ distribution.Distribution) any {
	return int32(identity.NextInt64())
}

// SmallInt generates a CQL smallint, truncating the identity draw to int16.
type SmallInt struct{}

func (SmallInt) Generate(identity, _ distribution.Distribution) any {
	return int16(identity.NextInt64())
}

// TinyInt generates a CQL tinyint, truncating the identity draw to int8.
type TinyInt struct{}

func (TinyInt) Generate(identity, _ distribution.Distribution) any {
	return int8(identity.NextInt64())
}
