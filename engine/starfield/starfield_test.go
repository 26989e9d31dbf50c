package starfield

import (
	"math/rand/v2"
	"testing"
)

func TestGenerateBoundsAndSizes(t *testing.T) {
	points := Generate(DefaultCount, DefaultBound, DefaultMinSize, DefaultMaxSize)
	if len(points) != DefaultCount {
		t.Fatalf("len = %d, want %d", len(points), DefaultCount)
	}
	seen := map[int]bool{}
	for i, p := range points {
		for _, c := range []float32{p.X, p.Y, p.Z} {
			if c < -DefaultBound || c >= DefaultBound {
				t.Fatalf("point %d coordinate %f outside [-10, 10)", i, c)
			}
		}
		if p.Size < DefaultMinSize || p.Size > DefaultMaxSize {
			t.Fatalf("point %d size %d outside [1, 3]", i, p.Size)
		}
		seen[p.Size] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all three size classes in 1000 draws, saw %v", seen)
	}
}

func TestGenerateWithIsReproducible(t *testing.T) {
	a := GenerateWith(rand.New(rand.NewPCG(1, 2)), 50, 10, 1, 3)
	b := GenerateWith(rand.New(rand.NewPCG(1, 2)), 50, 10, 1, 3)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateEdgeCases(t *testing.T) {
	if got := Generate(0, 10, 1, 3); len(got) != 0 {
		t.Fatalf("count 0 produced %d points", len(got))
	}
	if got := Generate(-5, 10, 1, 3); len(got) != 0 {
		t.Fatalf("negative count produced %d points", len(got))
	}
	for _, p := range GenerateWith(rand.New(rand.NewPCG(3, 4)), 100, 1, 3, 1) {
		if p.Size < 1 || p.Size > 3 {
			t.Fatalf("reversed size bounds gave size %d", p.Size)
		}
	}
}
