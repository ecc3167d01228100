package mountain

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// DungeonInfo holds the parts specific to indoor maps.
type DungeonInfo struct {
	Rooms    []gruid.Range  // room interiors
	RoomGrid CacheGrid[int] // room of each cell, -1 outside rooms (maze only)
	Entries  []gruid.Point  // anchors of the portals leading here
	Pool     gruid.Point    // centre of the cave pool
	Lair     gruid.Point    // centre of the last maze room

	// RoomEntered is bookkeeping for the exploration collaborator.
	RoomEntered []bool
}

// linkRequest describes a map to generate behind a group of portals.
type linkRequest struct {
	cfg     *Config
	parent  *Map
	portals []*Portal // west to east
	seed    Seed
	level   int
}

// generator builds the destination map of a portal group. It returns the
// map and the arrival position of each portal, in order.
type generator func(req *linkRequest) (*Map, []gruid.Point, error)

var generators = map[GenKind]generator{
	GenCave: generateCave,
	GenMine: generateMine,
	GenMaze: generateMaze,
}

// anchors maps the positions of a portal group on the parent map to
// positions on a w x h child map. The middle portal lands on the centre of
// the child; the others keep their relative arrangement, scaled, and
// clamped away from the border.
func anchors(portals []*Portal, w, h, scale int) []gruid.Point {
	if len(portals) == 0 {
		return nil
	}
	mid := portals[len(portals)/2].P
	centre := gruid.Point{w / 2, h / 2}
	taken := map[gruid.Point]bool{}
	as := make([]gruid.Point, len(portals))
	for i, pt := range portals {
		d := pt.P.Sub(mid)
		a := gruid.Point{
			clamp(centre.X+scale*d.X, anchorInset, w-anchorInset-1),
			clamp(centre.Y+scale*d.Y, anchorInset, h-anchorInset-1),
		}
		for n := 0; taken[a] && n < w; n++ {
			a.X = anchorInset + (a.X-anchorInset+1)%(w-2*anchorInset)
		}
		taken[a] = true
		as[i] = a
	}
	return as
}

const anchorInset = 10

// entryRoom returns the interior of a small room centred on p.
func entryRoom(p gruid.Point, rng *RNG) gruid.Range {
	kx, ky := rng.Range(1, 3), rng.Range(1, 3)
	return gruid.NewRange(p.X-kx, p.Y-ky, p.X+kx+1, p.Y+ky+1)
}

// roomCenter returns the centre cell of a room interior.
func roomCenter(rg gruid.Range) gruid.Point {
	return gruid.Point{(rg.Min.X + rg.Max.X - 1) / 2, (rg.Min.Y + rg.Max.Y - 1) / 2}
}

// fill sets every cell of rg within the grid to t.
func fill(gd rl.Grid, rg gruid.Range, t rl.Cell) {
	rg = rg.Intersect(gd.Range())
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		for x := rg.Min.X; x < rg.Max.X; x++ {
			gd.Set(gruid.Point{x, y}, t)
		}
	}
}

// tunnel digs an L-shaped tunnel of Ground between p and q, horizontal leg
// first unless vertical is set.
func tunnel(gd rl.Grid, p, q gruid.Point, vertical bool) {
	corner := gruid.Point{q.X, p.Y}
	if vertical {
		corner = gruid.Point{p.X, q.Y}
	}
	line(gd, p, corner)
	line(gd, corner, q)
}

// line digs a straight horizontal or vertical line of Ground.
func line(gd rl.Grid, p, q gruid.Point) {
	rg := gruid.NewRange(min(p.X, q.X), min(p.Y, q.Y), max(p.X, q.X)+1, max(p.Y, q.Y)+1)
	fill(gd, rg, Ground)
}

// overlaps reports whether two ranges share a cell.
func overlaps(a, b gruid.Range) bool {
	return a.Min.X < b.Max.X && b.Min.X < a.Max.X && a.Min.Y < b.Max.Y && b.Min.Y < a.Max.Y
}

// nearestTerrain returns the cell of terrain t nearest to p within rg, or p
// if there is none.
func nearestTerrain(gd rl.Grid, rg gruid.Range, p gruid.Point, t rl.Cell) gruid.Point {
	best, bestd := p, -1
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		for x := rg.Min.X; x < rg.Max.X; x++ {
			q := gruid.Point{x, y}
			if gd.At(q) != t {
				continue
			}
			d := q.Sub(p)
			if dist := d.X*d.X + d.Y*d.Y; bestd < 0 || dist < bestd {
				best, bestd = q, dist
			}
		}
	}
	return best
}
