package gen

import "github.com/scylladb/cql-stress-go/distribution"

// Counter is a CQL counter increment value: a bare int64 drawn straight
// from an add-distribution, with no salt or identity/size wrapping. Unlike
// the other value generators it is not driven through Generator, matching
// cassandra-stress's counter-write path, where the increment is sampled
// directly from the command's configured add-distribution.
type Counter int64

// NextCounter draws the next increment from add.
func NextCounter(add distribution.Distribution) Counter {
	return Counter(add.NextInt64())
}
