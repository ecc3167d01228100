package mountain

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// generateMine builds the mine below the quarry: an entry room under each
// mine entrance, two automaton caverns, and tunnels chaining them.
func generateMine(req *linkRequest) (*Map, []gruid.Point, error) {
	cfg := req.cfg
	entries := anchors(req.portals, cfg.MineSize, cfg.MineSize, cfg.PortalScale)
	var m *Map
	err := retry(cfg, "mine", req.seed, func(rng *RNG) error {
		var err error
		m, err = digMine(cfg, req.seed, entries, rng)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	m.Start = entries[len(entries)/2]
	return m, entries, nil
}

// digMine makes one attempt at a mine with the given entries, sorted west
// to east.
func digMine(cfg *Config, seed Seed, entries []gruid.Point, rng *RNG) (*Map, error) {
	m := newMap(KindMine, "mine", cfg.MineSize, cfg.MineSize, seed, Wall)
	mi := len(entries) / 2
	mid := entries[mi]
	first, last := entries[0], entries[len(entries)-1]

	x := rng.Range(3, mid.X/2)
	w := rng.Range(20, mid.X-x-3)
	west := m.digCavern(cfg, x, w, mid, first, rng)
	x = rng.Range(mid.X+3, mid.X*3/2)
	w = rng.Range(20, m.W-x-3)
	east := m.digCavern(cfg, x, w, mid, last, rng)

	rooms := make([]gruid.Range, len(entries))
	for i, e := range entries {
		rooms[i] = entryRoom(e, rng).Intersect(m.interior())
		fill(m.Terrain, rooms[i], Ground)
	}
	chain := []gruid.Point{roomCenter(rooms[0]), m.cavernTarget(west)}
	for i := 1; i < len(rooms); i++ {
		chain = append(chain, roomCenter(rooms[i]))
		if i == mi {
			chain = append(chain, m.cavernTarget(east))
		}
	}
	if mi == 0 {
		chain = append(chain, m.cavernTarget(east))
	}
	for i := 1; i < len(chain); i++ {
		tunnel(m.Terrain, chain[i-1], chain[i], rng.IntN(2) == 0)
	}

	FloodFill(m.Terrain, mid, Ground, Floor)
	for _, e := range entries {
		if m.Terrain.At(e) != Floor {
			return nil, fmt.Errorf("entry %v: %w", e, ErrDisconnected)
		}
	}
	keepConnected(m.Terrain, mid, rng)
	m.Dungeon = &DungeonInfo{Rooms: rooms, Entries: entries}
	return m, nil
}

// digCavern digs an automaton cavern spanning columns [x, x+w), on the
// vertical side of mid opposite to side. It returns the cavern range.
func (m *Map) digCavern(cfg *Config, x, w int, mid, side gruid.Point, rng *RNG) gruid.Range {
	var y, h int
	if side.Y < mid.Y {
		y = rng.Range(mid.Y+3, mid.Y*3/2)
		h = rng.Range(20, m.H-y-3)
	} else {
		y = rng.Range(3, mid.Y/2)
		h = rng.Range(20, mid.Y-y-3)
	}
	rg := gruid.NewRange(x, y, x+w, y+h).Intersect(m.interior())
	Dig(m.Terrain, rg, cfg.MineRules, rng)
	return rg
}

// cavernTarget returns the open cell of a cavern nearest to its centre.
func (m *Map) cavernTarget(rg gruid.Range) gruid.Point {
	return nearestTerrain(m.Terrain, rg, roomCenter(rg), Ground)
}
