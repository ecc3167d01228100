package mountain

import (
	"fmt"
	"log"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// Biome represents the coarse terrain category of a region.
type Biome int

const (
	BiomeNone Biome = iota
	BiomeLake
	BiomeMarsh
	BiomeDesert
	BiomeScrub
	BiomeForest
	BiomeRock
	BiomeIce
)

func (b Biome) String() string {
	switch b {
	case BiomeNone:
		return "none"
	case BiomeLake:
		return "lake"
	case BiomeMarsh:
		return "marsh"
	case BiomeDesert:
		return "desert"
	case BiomeScrub:
		return "scrub"
	case BiomeForest:
		return "forest"
	case BiomeRock:
		return "rock"
	case BiomeIce:
		return "ice"
	default:
		return fmt.Sprintf("Biome(%d)", int(b))
	}
}

type terrainWeight struct {
	t rl.Cell
	w int
}

// biomeTerrain lists the fine terrain draws of each biome. Order matters for
// determinism.
var biomeTerrain = map[Biome][]terrainWeight{
	BiomeLake:   {{Water, 10}},
	BiomeMarsh:  {{Water, 10}, {Ground, 40}, {Reeds, 10}, {Saxaul, 10}},
	BiomeDesert: {{Ground, 80}, {Nitraria, 5}, {Ephedra, 5}, {Boulder, 5}},
	BiomeScrub:  {{Ground, 40}, {Nitraria, 10}, {Ephedra, 10}, {Boulder, 5}},
	BiomeForest: {{Ground, 45}, {Poplar, 15}, {Boulder, 5}},
	BiomeRock:   {{Ground, 45}, {Boulder, 5}},
	BiomeIce:    {{Ground, 75}, {Boulder, 5}},
}

// elevationBiome returns the biome of a region of the given elevation seeded
// at p, on a map of width w.
func elevationBiome(el int, p gruid.Point, block, w int) Biome {
	switch {
	case el <= 0:
		diag := float64(p.X+p.Y) < 0.75*float64(w)
		switch {
		case p.X < 2*block || diag && p.X <= p.Y:
			return BiomeLake
		case p.Y < 2*block || diag && p.Y < p.X:
			return BiomeMarsh
		default:
			return BiomeDesert
		}
	case el <= 2:
		return BiomeScrub
	case el <= 5:
		return BiomeForest
	case el == 6:
		return BiomeRock
	default:
		return BiomeIce
	}
}

// clumpBiomes classifies every region from its elevation and position.
func clumpBiomes(rs *Regions, w int) {
	for r := range rs.Table {
		rg := &rs.Table[r]
		rg.Biome = elevationBiome(rg.Elevation, rg.Seed, rs.Block, w)
	}
}

// placeSeaside finds or makes a region rising from the lake shore in the
// western columns. It returns the grotto region, or -1.
func placeSeaside(rs *Regions) int {
	lo, hi := rs.Rows, min(4*rs.Rows, len(rs.Table))
	isLake := func(r int) bool {
		return rs.Valid(r) && rs.Table[r].Biome == BiomeLake
	}
	for r := lo; r < hi; r++ {
		if rs.Table[r].Elevation >= 2 && isLake(r-rs.Rows) {
			return r
		}
	}
	for r := lo; r < hi; r++ {
		rg := rs.Table[r]
		if rg.Biome == BiomeLake || rg.Biome == BiomeMarsh || rs.IsEdge(r) {
			continue
		}
		if !isLake(r - rs.Rows) {
			continue
		}
		rs.Table[r].Elevation = 1
		rs.Table[r].Biome = BiomeScrub
		if n := r + 1; n%rs.Rows != 0 && !rs.IsEdge(n) {
			rs.Table[n].Elevation = 2
			rs.Table[n].Biome = BiomeForest
			if n := r + 2; n%rs.Rows != 0 && !rs.IsEdge(n) {
				rs.Table[n].Elevation = 1
				rs.Table[n].Biome = BiomeScrub
			}
		}
		return r
	}
	log.Printf("mapgen: no seaside region for the grotto")
	return -1
}

// shouldSlope reports whether p borders a region exactly one step higher.
func (m *Map) shouldSlope(p gruid.Point) bool {
	el := m.Elevation(p)
	for _, d := range directions {
		q := p.Add(d)
		if m.Contains(q) && m.Elevation(q) == el+1 {
			return true
		}
	}
	return false
}

// openGround clears p to bare ground, or to a slope when p borders a higher
// region.
func (m *Map) openGround(p gruid.Point) {
	if m.shouldSlope(p) {
		m.Terrain.Set(p, Slope)
		return
	}
	m.Terrain.Set(p, Ground)
}

// interior returns the map range without its one cell border.
func (m *Map) interior() gruid.Range {
	return gruid.NewRange(1, 1, m.W-1, m.H-1)
}

// markSlopes turns every interior cell bordering a higher region into a
// slope.
func (m *Map) markSlopes() {
	m.refreshSlopes(m.interior(), nil)
}

// refreshSlopes recomputes slopes in a window after regions changed
// elevation. Cells selected by cleared that are not slopes become Ground,
// as do stale slopes. Walls and floors of structures are left alone.
func (m *Map) refreshSlopes(window gruid.Range, cleared func(gruid.Point) bool) {
	window = window.Intersect(m.interior())
	for y := window.Min.Y; y < window.Max.Y; y++ {
		for x := window.Min.X; x < window.Max.X; x++ {
			p := gruid.Point{x, y}
			if t := m.Terrain.At(p); t == Wall || t == Floor {
				// built structure
				continue
			}
			switch {
			case m.shouldSlope(p):
				m.Terrain.Set(p, Slope)
			case cleared != nil && cleared(p):
				m.Terrain.Set(p, Ground)
			case m.Terrain.At(p) == Slope:
				m.Terrain.Set(p, Ground)
			}
		}
	}
}

// assignTerrain draws the fine terrain of every cell from its region biome.
// Cells other than Ground keep their terrain, except under lakes.
func (m *Map) assignTerrain(rng *RNG) {
	rs := m.Outdoor.Regions
	weights := make(map[Biome][]int, len(biomeTerrain))
	for b, tws := range biomeTerrain {
		ws := make([]int, len(tws))
		for i, tw := range tws {
			ws[i] = tw.w
		}
		weights[b] = ws
	}
	for y := range m.H {
		for x := range m.W {
			p := gruid.Point{x, y}
			b := rs.Table[rs.At(p)].Biome
			if b == BiomeNone {
				panic(fmt.Sprintf("unclassified region %d at %v", rs.At(p), p))
			}
			if b != BiomeLake && m.Terrain.At(p) != Ground {
				continue
			}
			tws := biomeTerrain[b]
			m.Terrain.Set(p, tws[rng.Weighted(weights[b])].t)
		}
	}
}

// BiomeCounts returns the number of cells of each biome.
func (m *Map) BiomeCounts() map[Biome]int {
	counts := map[Biome]int{}
	if m.Outdoor == nil {
		return counts
	}
	rs := m.Outdoor.Regions
	for _, r := range rs.Cells.Cells {
		counts[rs.Table[r].Biome]++
	}
	return counts
}
