package mountain

import (
	"math/rand/v2"

	"codeberg.org/anaseto/gruid"
)

// Seed is the saved state from which a random stream is rebuilt. A map is a
// pure function of its seed and the generation code.
type Seed struct {
	Hi uint64
	Lo uint64
}

// NewSeed expands a single user provided number into a stream seed.
func NewSeed(n uint64) Seed {
	src := rand.NewPCG(n, n^0x9e3779b97f4a7c15)
	return Seed{Hi: src.Uint64(), Lo: src.Uint64()}
}

// RNG is the random stream owned by a map during its generation. Every
// randomized decision of a map draws from it.
type RNG struct {
	rand *rand.Rand
}

// NewRNG builds a fresh stream from the given seed.
func NewRNG(s Seed) *RNG {
	return &RNG{rand: rand.New(rand.NewPCG(s.Hi, s.Lo))}
}

// Rand returns the underlying generator, for use with gruid helpers.
func (r *RNG) Rand() *rand.Rand {
	return r.rand
}

// IntN returns a number in [0, n). It returns 0 for n <= 0.
func (r *RNG) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	return r.rand.IntN(n)
}

// Range returns a number in [lo, hi]. Reversed bounds are swapped.
func (r *RNG) Range(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.rand.IntN(hi-lo+1)
}

// Float64 returns a number in [0.0, 1.0).
func (r *RNG) Float64() float64 {
	return r.rand.Float64()
}

// Chance reports true with probability num/den.
func (r *RNG) Chance(num, den int) bool {
	return r.IntN(den) < num
}

// Direction returns one of the 8 unit directions.
func (r *RNG) Direction() gruid.Point {
	return directions[r.rand.IntN(len(directions))]
}

// Weighted returns an index into weights, chosen with probability
// proportional to its weight.
func (r *RNG) Weighted(weights []int) int {
	sum := 0
	for _, w := range weights {
		sum += w
	}
	dice := r.Range(1, sum)
	for i, w := range weights {
		dice -= w
		if dice <= 0 {
			return i
		}
	}
	return len(weights) - 1
}

// Save draws a new seed from the stream, advancing it. An RNG rebuilt from
// the returned seed shares no state with r.
func (r *RNG) Save() Seed {
	return Seed{Hi: r.rand.Uint64(), Lo: r.rand.Uint64()}
}

var directions = [8]gruid.Point{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}
