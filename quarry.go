package mountain

import (
	"log"
	"math"

	"codeberg.org/anaseto/gruid"
	"github.com/zyedidia/generic/mapset"
)

const (
	quarryElevation = 3
	mineEntrances   = 3
)

// Quarry is the open pit dug below the peak, with the entrances to the
// mines.
type Quarry struct {
	Regions []int
	Stairs  []gruid.Point // west to east

	set mapset.Set[int]
}

// Has reports whether region r belongs to the quarry.
func (q *Quarry) Has(r int) bool {
	if q == nil {
		return false
	}
	if q.set.Size() == 0 {
		// Not serialized: rebuilt on first use.
		q.set = mapset.Of(q.Regions...)
	}
	return q.set.Has(r)
}

// findQuarryRegion looks for a region at quarry elevation south of the peak
// region, in its column or a nearby one.
func findQuarryRegion(rs *Regions, peak gruid.Point, rng *RNG) int {
	start := rs.At(peak) + rs.Rows*rng.Range(0, 2)
	end := (start/rs.Rows)*rs.Rows + rs.Rows - 1
	for _, shift := range []int{0, rs.Rows, 2 * rs.Rows, -rs.Rows, -2 * rs.Rows} {
		for r := start + shift; r < end+shift; r++ {
			if !rs.Valid(r) || rs.IsEdge(r) {
				continue
			}
			if rs.Table[r].Elevation == quarryElevation {
				return r
			}
		}
	}
	return -1
}

// digQuarry sinks the quarry regions, re-marks slopes around them, and
// places the mine entrances. It returns nil with a warning when no region
// fits.
func (m *Map) digQuarry(peak gruid.Point, rng *RNG) *Quarry {
	rs := m.Outdoor.Regions
	r := findQuarryRegion(rs, peak, rng)
	if r < 0 {
		log.Printf("mapgen: no site for the quarry")
		return nil
	}
	q := &Quarry{Regions: []int{r}, set: mapset.New[int]()}
	q.set.Put(r)
	for _, n := range []int{r + rs.Rows, r - rs.Rows} {
		if rs.Valid(n) && !rs.IsEdge(n) && rs.Table[n].Elevation > 2 {
			q.Regions = append(q.Regions, n)
			q.set.Put(n)
			break
		}
	}
	for _, r := range q.Regions {
		rs.Table[r].Elevation = 2
		rs.Table[r].Biome = BiomeRock
	}
	inQuarry := func(p gruid.Point) bool { return q.set.Has(rs.At(p)) }
	b := rs.regionBounds(q.Has)
	m.refreshSlopes(gruid.Range{Min: b.Min.Sub(gruid.Point{1, 1}), Max: b.Max.Add(gruid.Point{1, 1})}, inQuarry)

	for range mineEntrances {
		var p gruid.Point
		for i := range maxIterations {
			p = rs.randomPosition(q.Regions[rng.IntN(len(q.Regions))], rng)
			if farFrom(p, q.Stairs, 5) || i == maxIterations-1 {
				break
			}
		}
		if !Passable(m.Terrain.At(p)) {
			m.openGround(p)
		}
		q.Stairs = append(q.Stairs, p)
	}
	pts := m.addPortalGroup(q.Stairs, "mine entrance", GenMine, ObjMineEntrance, rng.Save())
	q.Stairs = q.Stairs[:0]
	for _, pt := range pts {
		q.Stairs = append(q.Stairs, pt.P)
	}
	return q
}

// farFrom reports whether p is at least dist away from every point of ps.
func farFrom(p gruid.Point, ps []gruid.Point, dist float64) bool {
	for _, q := range ps {
		d := p.Sub(q)
		if math.Hypot(float64(d.X), float64(d.Y)) < dist {
			return false
		}
	}
	return true
}
