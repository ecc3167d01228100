package mountain

import (
	"log"
	"slices"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
)

// finalSiteBiomes lists the biomes of the final dungeon entrances.
var finalSiteBiomes = [...]Biome{BiomeRock, BiomeForest, BiomeForest}

// placeGrotto opens the cave mouth at the seed of the grotto region. It
// returns the cave mouth position, or nil when there is no grotto region.
func (m *Map) placeGrotto(r int, rng *RNG) *gruid.Point {
	if r < 0 {
		return nil
	}
	p := m.Outdoor.Regions.Table[r].Seed
	m.clearSite(p)
	m.addPortalGroup([]gruid.Point{p}, "cave mouth", GenCave, ObjCaveMouth, rng.Save())
	return &p
}

// clearSite clears natural terrain in the 5x5 square around p within the
// region of p, and p itself. Cleared cells bordering a higher region become
// slopes.
func (m *Map) clearSite(p gruid.Point) {
	rs := m.Outdoor.Regions
	r := rs.At(p)
	for y := p.Y - 2; y <= p.Y+2; y++ {
		for x := p.X - 2; x <= p.X+2; x++ {
			q := gruid.Point{x, y}
			if !m.Contains(q) || rs.At(q) != r {
				continue
			}
			if t := m.Terrain.At(q); t == Wall || t == Floor {
				continue
			}
			m.openGround(q)
		}
	}
	m.openGround(p)
}

// siteFinalDungeon places the entrances of the final dungeon away from the
// other stairs. Distance constraints are relaxed when a site cannot be
// found, and a site is skipped as a last resort.
func (m *Map) siteFinalDungeon(others []gruid.Point, rng *RNG) []gruid.Point {
	rs := m.Outdoor.Regions
	strata := map[Biome][]int{}
	for r, rg := range rs.Table {
		if m.Outdoor.Quarry.Has(r) || rs.IsEdge(r) {
			continue
		}
		strata[rg.Biome] = append(strata[rg.Biome], r)
	}
	used := mapset.New[gruid.Point]()
	var sites []gruid.Point
	for _, b := range finalSiteBiomes {
		regions := strata[b]
		if len(regions) == 0 {
			log.Printf("mapgen: no %s region for a dungeon entrance", b)
			continue
		}
		p, ok := m.findSite(regions, slices.Concat(others, sites), used, rng)
		if !ok {
			log.Printf("mapgen: no %s site for a dungeon entrance", b)
			continue
		}
		used.Put(p)
		sites = append(sites, p)
	}
	if len(sites) == 0 {
		return nil
	}
	for _, p := range sites {
		m.clearSite(p)
	}
	pts := m.addPortalGroup(sites, "dungeon entrance", GenMaze, ObjStairsDown, rng.Save())
	sites = sites[:0]
	for _, pt := range pts {
		sites = append(sites, pt.P)
	}
	return sites
}

func (m *Map) findSite(regions []int, avoid []gruid.Point, used mapset.Set[gruid.Point], rng *RNG) (gruid.Point, bool) {
	rs := m.Outdoor.Regions
	for _, dist := range []float64{20, 10, 5} {
		for range 200 {
			p := rs.randomPosition(regions[rng.IntN(len(regions))], rng)
			if used.Has(p) || m.PortalAt(p) != nil {
				continue
			}
			if farFrom(p, avoid, dist) {
				return p, true
			}
		}
	}
	return gruid.Point{}, false
}

// placeStart walks from the north east corner in random directions until it
// stands on bare ground free of objects.
func (m *Map) placeStart(rng *RNG) gruid.Point {
	p := gruid.Point{m.W - 8, 12}
	for range maxIterations {
		if m.Terrain.At(p) == Ground && len(m.ObjectsAt(p)) == 0 {
			return p
		}
		p = p.Add(rng.Direction())
		p.X = clamp(p.X, 0, m.W-1)
		p.Y = clamp(p.Y, 0, m.H-1)
	}
	for y := range m.H {
		for x := range m.W {
			q := gruid.Point{x, y}
			if m.Terrain.At(q) == Ground && len(m.ObjectsAt(q)) == 0 {
				return q
			}
		}
	}
	return p
}
