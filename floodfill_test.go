package mountain

import (
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloodFill(t *testing.T) {
	gd := rl.NewGrid(10, 6)
	gd.Fill(Wall)
	// (4, 3) touches the first blob diagonally; the second blob and (8, 1)
	// are apart.
	fill(gd, gruid.NewRange(1, 1, 4, 3), Ground)
	fill(gd, gruid.NewRange(6, 3, 9, 5), Ground)
	gd.Set(gruid.Point{4, 3}, Ground)
	gd.Set(gruid.Point{8, 1}, Ground)

	n := FloodFill(gd, gruid.Point{1, 1}, Ground, Floor)
	assert.Equal(t, 7, n)
	assert.Equal(t, Floor, gd.At(gruid.Point{4, 3}), "diagonal neighbour reached")
	assert.Equal(t, Ground, gd.At(gruid.Point{6, 3}), "separate blob untouched")
	assert.Equal(t, Ground, gd.At(gruid.Point{8, 1}))
	assert.Equal(t, Wall, gd.At(gruid.Point{0, 0}))

	assert.Equal(t, 1, FloodFill(gd, gruid.Point{8, 1}, Ground, Floor))
	assert.Equal(t, Floor, gd.At(gruid.Point{8, 1}))
	assert.Zero(t, FloodFill(gd, gruid.Point{-1, 0}, Ground, Floor))
}

func TestRetry(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxAttempts = 4
	var seen []float64
	err := retry(&cfg, "test", NewSeed(1), func(rng *RNG) error {
		seen = append(seen, rng.Float64())
		if len(seen) < 3 {
			return ErrDisconnected
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, seen, 3)
	assert.NotEqual(t, seen[0], seen[1], "each attempt gets a fresh stream")

	calls := 0
	err = retry(&cfg, "test", NewSeed(1), func(rng *RNG) error {
		calls++
		return ErrNoStairs
	})
	assert.True(t, errors.Is(err, ErrRetriesExhausted))
	assert.Equal(t, cfg.MaxAttempts, calls)
}
