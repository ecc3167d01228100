package mountain

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
	"github.com/stretchr/testify/require"
)

const rounds = 5

// classifiedMap builds an outdoor map up to slope marking, before fine
// terrain and structures.
func classifiedMap(cfg *Config, seed Seed) (*Map, *RNG) {
	rng := NewRNG(seed)
	m := newMap(KindOutdoor, "mountain", cfg.OutdoorWidth, cfg.OutdoorHeight, seed, Ground)
	rs := partition(m.W, m.H, cfg.RegionSize, rng)
	m.Outdoor = &OutdoorInfo{Regions: rs, Grotto: -1}
	m.Outdoor.Peak = buildElevation(rs, m.W, m.H, rng)
	clumpBiomes(rs, m.W)
	m.Outdoor.Grotto = placeSeaside(rs)
	m.markSlopes()
	return m, rng
}

// newTestWorld returns a world whose outdoor map has a quarry and dungeon
// entrances, trying successive seeds.
func newTestWorld(t *testing.T) *World {
	t.Helper()
	for i := range uint64(20) {
		w, err := NewWorld(DefaultConfig(), NewSeed(i))
		require.NoError(t, err)
		oi := w.Root().Outdoor
		if oi.Quarry != nil && len(oi.DungeonStairs) > 0 && oi.GrottoStairs != nil {
			return w
		}
	}
	t.Fatal("no seed produced a complete mountain")
	return nil
}

// connected reports whether every cell of to is connected to from through
// cells accepted by pass.
func connected(gd rl.Grid, from gruid.Point, to []gruid.Point, pass func(rl.Cell) bool) bool {
	rg := gd.Range()
	pr := paths.NewPathRange(rg)
	pr.CCMap(&connectPath{passable: func(p gruid.Point) bool {
		return p.In(rg) && pass(gd.At(p))
	}}, from)
	for _, p := range to {
		if pr.CCMapAt(p) == -1 {
			return false
		}
	}
	return true
}

// cells returns the positions of the grid holding one of the given terrains.
func cells(gd rl.Grid, ts ...rl.Cell) []gruid.Point {
	var ps []gruid.Point
	for p, t := range gd.All() {
		for _, u := range ts {
			if t == u {
				ps = append(ps, p)
				break
			}
		}
	}
	return ps
}

// testPortals returns unresolved portals at the given positions, as
// addPortalGroup would sort them.
func testPortals(gen GenKind, ps ...gruid.Point) []*Portal {
	m := newMap(KindOutdoor, "test", 200, 200, Seed{}, Ground)
	return m.addPortalGroup(ps, "test", gen, ObjStairsDown, NewSeed(99))
}
