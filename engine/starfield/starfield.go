// Package starfield generates the static backdrop of point stars.
package starfield

import (
	"math/rand/v2"
	"time"
)

// Defaults used by the viewer.
const (
	DefaultCount   = 1000
	DefaultBound   = 10.0
	DefaultMinSize = 1
	DefaultMaxSize = 3
)

// Point is one backdrop star. Coordinates are in the fixed backdrop space, and
// Size is a pixel size class.
type Point struct {
	X, Y, Z float32
	Size    int
}

// Generate returns count stars uniformly distributed in the cube
// [-bound, bound)^3 with sizes drawn uniformly from [minSize, maxSize],
// seeded from the wall clock.
//
// Parameters:
//   - count: number of stars, non-positive yields none
//   - bound: half extent of the cube
//   - minSize, maxSize: inclusive size range, swapped if reversed
//
// Returns:
//   - []Point: the generated stars
func Generate(count int, bound float32, minSize, maxSize int) []Point {
	now := time.Now()
	rng := rand.New(rand.NewPCG(uint64(now.UnixNano()), uint64(now.UnixMicro())))
	return GenerateWith(rng, count, bound, minSize, maxSize)
}

// GenerateWith is Generate with a caller-supplied source, for reproducible fields.
func GenerateWith(rng *rand.Rand, count int, bound float32, minSize, maxSize int) []Point {
	if count <= 0 {
		return []Point{}
	}
	if minSize > maxSize {
		minSize, maxSize = maxSize, minSize
	}
	coord := func() float32 {
		return (rng.Float32()*2 - 1) * bound
	}

	points := make([]Point, count)
	for i := range points {
		points[i] = Point{
			X:    coord(),
			Y:    coord(),
			Z:    coord(),
			Size: minSize + rng.IntN(maxSize-minSize+1),
		}
	}
	return points
}
