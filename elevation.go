package mountain

import (
	"log"
	"math"

	"codeberg.org/anaseto/gruid"
)

const (
	maxElevation = 9
	hillTop      = 4
)

// buildElevation assigns an elevation to every region and returns the peak.
func buildElevation(rs *Regions, w, h int, rng *RNG) gruid.Point {
	for r := range rs.Table {
		if rs.IsEdge(r) {
			rs.Table[r].Elevation = 0
		}
	}
	peak := gruid.Point{
		rng.Range(int(0.35*float64(w)), int(0.65*float64(w))),
		rng.Range(int(0.35*float64(h)), int(0.65*float64(h))),
	}
	for _, r := range rs.Nearest(peak, 3) {
		rs.Table[r].Elevation = maxElevation
	}
	interpolateElevation(rs, peak, w, h)
	ensurePenultimateBand(rs, peak)
	raiseHills(rs, peak)
	return peak
}

// interpolateElevation gives unassigned regions a conical elevation that
// falls from the peak to zero at the map edge along each axis.
func interpolateElevation(rs *Regions, peak gruid.Point, w, h int) {
	for r := range rs.Table {
		rg := &rs.Table[r]
		if rg.Elevation >= 0 {
			continue
		}
		d := rg.Seed.Sub(peak)
		edge := min(edgeSpan(d.X, peak.X, w), edgeSpan(d.Y, peak.Y, h))
		dist := math.Hypot(float64(d.X), float64(d.Y))
		el := 0
		if edge > 0 {
			el = int(math.Floor(maxElevation * (float64(edge) - dist) / float64(edge)))
		}
		rg.Elevation = max(el, 0)
	}
}

// edgeSpan returns the distance from the peak coordinate c to the map edge
// in the direction of the sign of d, measured against the axis size n.
func edgeSpan(d, c, n int) int {
	switch {
	case d < 0:
		return c
	case d > 0:
		return n - c
	default:
		return n
	}
}

// ensurePenultimateBand promotes a region next to the summit to elevation 8
// when interpolation skipped that band.
func ensurePenultimateBand(rs *Regions, peak gruid.Point) {
	for _, rg := range rs.Table {
		if rg.Elevation == maxElevation-1 {
			return
		}
	}
	for _, r := range rs.Nearest(peak, 8) {
		switch rs.Table[r].Elevation {
		case maxElevation:
			continue
		case maxElevation - 2:
			rs.Table[r].Elevation = maxElevation - 1
			return
		}
	}
	log.Printf("mapgen: no region promoted to elevation %d near peak %v", maxElevation-1, peak)
}

// raiseHills extends a secondary hill range south of the peak along a
// diagonal midline.
func raiseHills(rs *Regions, peak gruid.Point) {
	for r := range rs.Table {
		rg := &rs.Table[r]
		if rs.IsEdge(r) || rg.Elevation > hillTop || rg.Seed.Y < peak.Y {
			continue
		}
		midline := peak.X + (rg.Seed.Y-peak.Y)/2
		dx := abs(midline - rg.Seed.X)
		if dx > 40 {
			continue
		}
		if el := hillTop - dx/10; el > rg.Elevation {
			rg.Elevation = el
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
