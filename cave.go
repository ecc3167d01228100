package mountain

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

const poolRadius = 6

// generateCave builds the talus cave behind the grotto: an automaton cave
// with a pool in the west, ponds scattered in the east, and the stairs east
// of the centre.
func generateCave(req *linkRequest) (*Map, []gruid.Point, error) {
	cfg := req.cfg
	var m *Map
	var stair gruid.Point
	err := retry(cfg, "talus cave", req.seed, func(rng *RNG) error {
		var err error
		m, stair, err = digCave(cfg, req.seed, rng)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	ps := make([]gruid.Point, len(req.portals))
	for i := range ps {
		ps[i] = stair
	}
	m.Start = stair
	return m, ps, nil
}

// digCave makes one attempt at the talus cave. It returns the stair
// position.
func digCave(cfg *Config, seed Seed, rng *RNG) (*Map, gruid.Point, error) {
	m := newMap(KindCave, "talus cave", cfg.CaveWidth, cfg.CaveHeight, seed, Wall)
	Dig(m.Terrain, m.Range(), cfg.CaveRules, rng)
	center := gruid.Point{m.W / 2, m.H / 2}
	stair, ok := m.seekStair(center)
	if !ok {
		return nil, stair, ErrNoStairs
	}

	pool := gruid.Point{m.W / 4, center.Y}
	for y := pool.Y - poolRadius; y <= pool.Y+poolRadius; y++ {
		for x := pool.X - poolRadius; x <= pool.X+poolRadius; x++ {
			p := gruid.Point{x, y}
			d := p.Sub(pool)
			if d.X*d.X+d.Y*d.Y > poolRadius*poolRadius || !m.Contains(p) {
				continue
			}
			if m.Terrain.At(p) == Wall {
				m.Terrain.Set(p, Ground)
			}
		}
	}
	m.scatterPonds(pool.X, rng)

	m.Terrain.Set(stair, Ground)
	FloodFill(m.Terrain, stair, Ground, Floor)
	if m.Terrain.At(pool) != Floor {
		return nil, stair, fmt.Errorf("pool %v: %w", pool, ErrDisconnected)
	}
	for y := 1; y < m.H-1; y++ {
		for x := 1; x < m.W-1; x++ {
			p := gruid.Point{x, y}
			switch t := m.Terrain.At(p); {
			case t == Ground:
				m.Terrain.Set(p, Wall)
			case t == Floor && x < pool.X:
				m.Terrain.Set(p, Water)
			}
		}
	}
	m.Dungeon = &DungeonInfo{Pool: pool, Entries: []gruid.Point{stair}}
	return m, stair, nil
}

// seekStair looks for an open cell east of the centre, on rows near the
// centre row.
func (m *Map) seekStair(center gruid.Point) (gruid.Point, bool) {
	for _, dy := range []int{0, -1, 1, -2, 2} {
		y := center.Y + dy
		for x := m.W - 2; x > center.X; x-- {
			p := gruid.Point{x, y}
			if m.Terrain.At(p) != Wall {
				return p, true
			}
		}
	}
	return gruid.Point{}, false
}

// scatterPonds drops water east of the pool: each dry cell gets water at a
// random neighbour with probability one half.
func (m *Map) scatterPonds(poolX int, rng *RNG) {
	for x := poolX + 1; x < m.W-2; x++ {
		for y := 2; y < m.H-2; y++ {
			if !m.dry(x, y) || rng.IntN(2) != 0 {
				continue
			}
			m.Terrain.Set(gruid.Point{x, y}.Add(rng.Direction()), Water)
		}
	}
}

// dry reports whether there is no water in the 4x4 square with (x, y) at
// its lower right inner corner.
func (m *Map) dry(x, y int) bool {
	for j := y - 2; j < y+2; j++ {
		for i := x - 2; i < x+2; i++ {
			if m.Terrain.At(gruid.Point{i, j}) == Water {
				return false
			}
		}
	}
	return true
}
