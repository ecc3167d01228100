package mountain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterminism(t *testing.T) {
	a, b := NewRNG(NewSeed(42)), NewRNG(NewSeed(42))
	for range 1000 {
		require.Equal(t, a.IntN(1000), b.IntN(1000))
	}
	assert.NotEqual(t, NewSeed(1), NewSeed(2))
}

func TestRNGRange(t *testing.T) {
	rng := NewRNG(NewSeed(7))
	for range 1000 {
		n := rng.Range(3, 5)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
		n = rng.Range(5, 3)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 5)
	}
	assert.Equal(t, 4, rng.Range(4, 4))
	assert.Equal(t, 0, rng.IntN(0))
	assert.Equal(t, 0, rng.IntN(-3))
}

func TestRNGSave(t *testing.T) {
	rng := NewRNG(NewSeed(3))
	s := rng.Save()
	a, b := NewRNG(s), NewRNG(s)
	for range 100 {
		require.Equal(t, a.Float64(), b.Float64())
	}
	assert.NotEqual(t, s, rng.Save(), "saving advances the stream")
}

func TestRNGWeighted(t *testing.T) {
	rng := NewRNG(NewSeed(5))
	counts := make([]int, 3)
	for range 3000 {
		counts[rng.Weighted([]int{0, 1, 2})]++
	}
	assert.Zero(t, counts[0])
	assert.Greater(t, counts[2], counts[1])
}

func TestRNGDirection(t *testing.T) {
	rng := NewRNG(NewSeed(9))
	for range 100 {
		d := rng.Direction()
		assert.True(t, d.X >= -1 && d.X <= 1 && d.Y >= -1 && d.Y <= 1)
		assert.False(t, d.X == 0 && d.Y == 0)
	}
}
