package mountain

import (
	"log"

	"codeberg.org/anaseto/gruid"
)

const (
	minCaravanseraiSize = 14
	maxCaravanseraiSize = 26
)

// Caravanserai is the walled compound built in the desert. Rooms and
// Courtyard are ranges in map coordinates; rooms include their walls.
type Caravanserai struct {
	Bounds    gruid.Range
	Rooms     [4]gruid.Range
	Courtyard gruid.Range
	Doors     []gruid.Point
}

// findCaravanseraiSite looks for size x size desert regions along the
// eastern band, north to south, then along the southern band, west to east.
// It returns the coarse block of the top-left region.
func findCaravanseraiSite(rs *Regions, size int) (u, v int, ok bool) {
	desert := func(u, v int) bool {
		r := rs.Index(u, v)
		return r >= 0 && rs.Table[r].Biome == BiomeDesert
	}
	run := 0
	for y := 2; y <= rs.Rows-2; y++ {
		row := true
		for x := rs.Cols - 1 - size; x <= rs.Cols-2; x++ {
			if !desert(x, y) {
				row = false
				break
			}
		}
		if !row {
			run = 0
			continue
		}
		run++
		if run == size {
			return rs.Cols - 1 - size, y - size + 1, true
		}
	}
	run = 0
	for x := 2; x <= rs.Cols-2; x++ {
		col := true
		for y := rs.Rows - 1 - size; y <= rs.Rows-2; y++ {
			if !desert(x, y) {
				col = false
				break
			}
		}
		if !col {
			run = 0
			continue
		}
		run++
		if run == size {
			return x - size + 1, rs.Rows - 1 - size, true
		}
	}
	return 0, 0, false
}

// axes maps long/short axis coordinates to map coordinates.
type axes struct {
	tall bool
}

func (ax axes) point(a, b int) gruid.Point {
	if ax.tall {
		return gruid.Point{b, a}
	}
	return gruid.Point{a, b}
}

// rng returns the range of map cells with a in [a0, a1] and b in [b0, b1],
// bounds included.
func (ax axes) rng(a0, b0, a1, b1 int) gruid.Range {
	p, q := ax.point(a0, b0), ax.point(a1, b1)
	return gruid.NewRange(p.X, p.Y, q.X+1, q.Y+1)
}

// placeCaravanserai builds the caravanserai compound, or returns nil with a
// warning when no desert site is large enough.
func (m *Map) placeCaravanserai(rng *RNG) *Caravanserai {
	rs := m.Outdoor.Regions
	size := 3
	u, v, ok := findCaravanseraiSite(rs, size)
	if !ok {
		size = 2
		u, v, ok = findCaravanseraiSite(rs, size)
	}
	if !ok {
		log.Printf("mapgen: no site for the caravanserai")
		return nil
	}
	tl := rs.Table[rs.Index(u, v)].Seed
	br := rs.Table[rs.Index(u+size-1, v+size-1)].Seed
	x1, y1 := tl.X, tl.Y
	x2 := x1 + clamp(br.X-tl.X+1, minCaravanseraiSize, maxCaravanseraiSize)
	y2 := y1 + clamp(br.Y-tl.Y+1, minCaravanseraiSize, maxCaravanseraiSize)
	if d := x2 - (m.W - 3); d > 0 {
		x1, x2 = x1-d, x2-d
	}
	if d := 2 - x1; d > 0 {
		x1, x2 = x1+d, x2+d
	}
	if d := y2 - (m.H - 3); d > 0 {
		y1, y2 = y1-d, y2-d
	}
	if d := 2 - y1; d > 0 {
		y1, y2 = y1+d, y2+d
	}
	cs := &Caravanserai{Bounds: gruid.NewRange(x1, y1, x2+1, y2+1)}
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			p := gruid.Point{x, y}
			if x == x1 || x == x2 || y == y1 || y == y2 {
				m.Terrain.Set(p, Wall)
			} else {
				m.Terrain.Set(p, Floor)
			}
		}
	}
	m.clearAround(cs.Bounds)

	ax := axes{tall: x2-x1 <= y2-y1}
	a1, b1 := x1, y1
	a2, b2 := x2, y2
	if ax.tall {
		a1, b1, a2, b2 = y1, x1, y2, x2
	}
	ca, cb := (a1+a2)/2, (b1+b2)/2
	m.openGround(ax.point(ca, b2))
	m.openGround(ax.point(a2, cb+2))

	// Inner wall with the two western rooms behind it.
	wa := ca - rng.Range(2, max(2, (ca-a1)/3))
	m.drawWall(ax, wa, b1, wa, b2)
	nd := rng.Range(b1+1, cb-2)
	sd := rng.Range(cb+1, b2-1)
	cs.addDoor(m, ax.point(wa, nd))
	cs.addDoor(m, ax.point(wa, sd))
	wb := (nd + sd) / 2
	m.drawWall(ax, a1, wb, wa, wb)
	cs.Rooms[0] = ax.rng(a1, b1, wa, wb)
	cs.Rooms[1] = ax.rng(a1, wb, wa, b2)

	// Outer wall with the two northern rooms behind it.
	ow := (b1 + cb + 2) / 2
	if ow <= nd {
		ow = nd + 1
	}
	m.drawWall(ax, wa, ow, a2, ow)
	mid := (wa + a2) / 2
	wd := rng.Range(wa+2, mid-2)
	ed := rng.Range(mid+2, a2-2)
	cs.addDoor(m, ax.point(wd, ow))
	cs.addDoor(m, ax.point(ed, ow))
	wx := (wd + ed) / 2
	m.drawWall(ax, wx, b1, wx, ow)
	cs.Rooms[2] = ax.rng(wa, b1, wx, ow)
	cs.Rooms[3] = ax.rng(wx, b1, a2, ow)

	cs.Courtyard = ax.rng(wa+1, ow+1, a2-1, b2-1)
	for y := cs.Courtyard.Min.Y; y < cs.Courtyard.Max.Y; y++ {
		for x := cs.Courtyard.Min.X; x < cs.Courtyard.Max.X; x++ {
			m.openGround(gruid.Point{x, y})
		}
	}
	return cs
}

// drawWall draws a straight wall between two cells given in axis
// coordinates, leaving doors untouched.
func (m *Map) drawWall(ax axes, a0, b0, a1, b1 int) {
	rg := ax.rng(a0, b0, a1, b1)
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		for x := rg.Min.X; x < rg.Max.X; x++ {
			p := gruid.Point{x, y}
			if len(m.ObjectsAt(p)) > 0 {
				continue
			}
			m.Terrain.Set(p, Wall)
		}
	}
}

func (cs *Caravanserai) addDoor(m *Map, p gruid.Point) {
	m.placeDoor(p)
	cs.Doors = append(cs.Doors, p)
}

// clearAround turns blocking terrain on the ring just outside rg into
// Ground, so that gates cannot be blocked.
func (m *Map) clearAround(rg gruid.Range) {
	ring := gruid.NewRange(rg.Min.X-1, rg.Min.Y-1, rg.Max.X+1, rg.Max.Y+1)
	for y := ring.Min.Y; y < ring.Max.Y; y++ {
		for x := ring.Min.X; x < ring.Max.X; x++ {
			p := gruid.Point{x, y}
			if p.In(rg) || !m.Contains(p) {
				continue
			}
			if !Passable(m.Terrain.At(p)) {
				m.openGround(p)
			}
		}
	}
}

func clamp(x, lo, hi int) int {
	return max(lo, min(x, hi))
}
