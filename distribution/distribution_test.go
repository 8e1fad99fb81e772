package distribution_test

import (
	"testing"

	"github.com/scylladb/cql-stress-go/distribution"
)

func TestFixed(t *testing.T) {
	f := distribution.NewFixed(42)
	f.SetSeed(99) // no-op
	for i := 0; i < 5; i++ {
		if got := f.NextInt64(); got != 42 {
			t.Fatalf("got %d, want 42", got)
		}
	}
}

func TestSequenceScenarioA(t *testing.T) {
	s, err := distribution.NewSequence(1, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSeed(103)
	if got, want := s.NextInt64(), int64(4); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestSequenceCyclesAndWraps(t *testing.T) {
	s, err := distribution.NewSequence(1, 100)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSeed(0)

	// After SetSeed(0), the first 100 draws are the cyclic shift of
	// [1,100] starting at lo + 0 mod 100 = 1.
	for i := 0; i < 100; i++ {
		want := int64(1 + i)
		if got := s.NextInt64(); got != want {
			t.Fatalf("draw %d: got %d, want %d", i, got, want)
		}
	}
	if got, want := s.NextInt64(), int64(1); got != want {
		t.Fatalf("wrap: got %d, want %d", got, want)
	}
}

func TestSequenceNegativeSeed(t *testing.T) {
	s, err := distribution.NewSequence(0, 9)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSeed(-1)
	// -1 mod 10 (floored) = 9
	if got, want := s.NextInt64(), int64(9); got != want {
		t.Fatalf("got %d, want %d", got, want)
	}
}

func TestSequenceRejectsInvalidRange(t *testing.T) {
	if _, err := distribution.NewSequence(10, 10); err == nil {
		t.Fatal("expected error for lo == hi")
	}
	if _, err := distribution.NewSequence(10, 5); err == nil {
		t.Fatal("expected error for lo > hi")
	}
}

func TestUniformRealClampsToBounds(t *testing.T) {
	u, err := distribution.NewUniformReal(10, 20)
	if err != nil {
		t.Fatal(err)
	}
	u.SetSeed(1)
	for i := 0; i < 1000; i++ {
		v := u.NextInt64()
		if v < 10 || v > 20 {
			t.Fatalf("draw %d out of bounds: %d", i, v)
		}
	}
}

func TestUniformRealRejectsInvalidRange(t *testing.T) {
	if _, err := distribution.NewUniformReal(5, 5); err == nil {
		t.Fatal("expected error for lo == hi")
	}
}

// TestUniformRealSetSeedIsImmediatelyEffective covers Property 4 (seed
// determinism): reseeding one long-lived instance with seed i and sampling
// once must match what a brand-new instance seeded with i alone produces.
// A stale-instance bug (e.g. a seed that lands somewhere the next sample
// doesn't draw from) would only show up from the second reseed onward,
// since the first seed/sample cycle on a fresh instance is always correct.
func TestUniformRealSetSeedIsImmediatelyEffective(t *testing.T) {
	seeds := []int64{1, 2, 3, 4, 5}

	want := make([]int64, len(seeds))
	for i, seed := range seeds {
		fresh, err := distribution.NewUniformReal(0, 1000)
		if err != nil {
			t.Fatal(err)
		}
		fresh.SetSeed(seed)
		want[i] = fresh.NextInt64()
	}

	u, err := distribution.NewUniformReal(0, 1000)
	if err != nil {
		t.Fatal(err)
	}
	for i, seed := range seeds {
		u.SetSeed(seed)
		if got := u.NextInt64(); got != want[i] {
			t.Fatalf("seed %d (reuse draw %d): got %d, want %d (what a fresh instance seeded with %d alone produces)", seed, i, got, want[i], seed)
		}
	}
}

func TestNormalClampsToBounds(t *testing.T) {
	n, err := distribution.NewNormal(-5, 5, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	n.SetSeed(7)
	for i := 0; i < 1000; i++ {
		v := n.NextInt64()
		if v < -5 || v > 5 {
			t.Fatalf("draw %d out of bounds: %d", i, v)
		}
	}
}

func TestNormalRejectsInvalidParams(t *testing.T) {
	if _, err := distribution.NewNormal(5, 5, 0, 1); err == nil {
		t.Fatal("expected error for min == max")
	}
	if _, err := distribution.NewNormal(0, 5, 0, 0); err == nil {
		t.Fatal("expected error for stdev == 0")
	}
	if _, err := distribution.NewNormal(0, 5, 0, -1); err == nil {
		t.Fatal("expected error for negative stdev")
	}
}

func TestWeightedEnumeratedDistribution(t *testing.T) {
	w, err := distribution.NewWeightedEnumerated([]float64{1, 0})
	if err != nil {
		t.Fatal(err)
	}
	w.SetSeed(1)
	// with weights [1, 0] index 1 can never be chosen
	for i := 0; i < 1000; i++ {
		if got := w.NextInt64(); got != 0 {
			t.Fatalf("draw %d: got %d, want 0", i, got)
		}
	}
}

func TestWeightedEnumeratedRejectsInvalid(t *testing.T) {
	if _, err := distribution.NewWeightedEnumerated(nil); err == nil {
		t.Fatal("expected error for empty weights")
	}
	if _, err := distribution.NewWeightedEnumerated([]float64{1, -1}); err == nil {
		t.Fatal("expected error for negative weight")
	}
}
