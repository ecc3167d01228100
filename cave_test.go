package mountain

import (
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCave(t *testing.T) {
	cfg := DefaultConfig()
	for i := range uint64(rounds) {
		req := &linkRequest{cfg: &cfg, portals: testPortals(GenCave, gruid.Point{30, 40}), seed: NewSeed(i), level: 1}
		m, arrivals, err := generateCave(req)
		require.NoError(t, err)
		require.Len(t, arrivals, 1)
		assert.Equal(t, cfg.CaveWidth, m.W)
		assert.Equal(t, cfg.CaveHeight, m.H)

		stair := arrivals[0]
		center := gruid.Point{m.W / 2, m.H / 2}
		assert.Equal(t, stair, m.Start)
		assert.Greater(t, stair.X, center.X)
		assert.LessOrEqual(t, abs(stair.Y-center.Y), 2)
		assert.Equal(t, Floor, m.Terrain.At(stair))

		di := m.Dungeon
		require.NotNil(t, di)
		assert.Equal(t, gruid.Point{m.W / 4, center.Y}, di.Pool)
		assert.Equal(t, Floor, m.Terrain.At(di.Pool))

		wet := func(c rl.Cell) bool { return c == Floor || c == Water }
		assert.True(t, connected(m.Terrain, stair, cells(m.Terrain, Floor), wet), "disconnected cave:\n%s", m)
		for _, p := range cells(m.Terrain, Ground) {
			assert.False(t, p.In(m.interior()), "undug ground at %v", p)
		}
		for _, p := range cells(m.Terrain, Floor) {
			assert.GreaterOrEqual(t, p.X, di.Pool.X, "dry floor west of the pool at %v", p)
		}
	}
}

func TestCaveDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	req := &linkRequest{cfg: &cfg, portals: testPortals(GenCave, gruid.Point{30, 40}), seed: NewSeed(5)}
	a, _, err := generateCave(req)
	require.NoError(t, err)
	b, _, err := generateCave(req)
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

func TestSeekStair(t *testing.T) {
	m := newMap(KindCave, "cave", 20, 9, Seed{}, Wall)
	center := gruid.Point{10, 4}
	_, ok := m.seekStair(center)
	assert.False(t, ok)

	m.Terrain.Set(gruid.Point{12, 6}, Ground)
	m.Terrain.Set(gruid.Point{14, 3}, Ground)
	p, ok := m.seekStair(center)
	require.True(t, ok)
	assert.Equal(t, gruid.Point{14, 3}, p)

	// Cells west of the centre are never searched.
	m = newMap(KindCave, "cave", 20, 9, Seed{}, Wall)
	m.Terrain.Set(gruid.Point{5, 4}, Ground)
	_, ok = m.seekStair(center)
	assert.False(t, ok)
}

func TestDigCaveWithoutStairs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CaveRules = []AutomatonRule{{NearMin: 0, FarMax: -1, Generations: 1}}
	_, _, err := digCave(&cfg, Seed{}, NewRNG(NewSeed(1)))
	assert.True(t, errors.Is(err, ErrNoStairs))
}
