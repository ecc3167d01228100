// This file contains map-related code.

package mountain

import (
	"fmt"
	"slices"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// MapKind represents the various kinds of generated maps.
type MapKind int

const (
	KindOutdoor MapKind = iota // the mountain itself
	KindCave                   // talus cave below the grotto
	KindMine                   // quarry mines
	KindMaze                   // final dungeon
)

func (k MapKind) String() string {
	switch k {
	case KindOutdoor:
		return "outdoor"
	case KindCave:
		return "cave"
	case KindMine:
		return "mine"
	case KindMaze:
		return "maze"
	default:
		return fmt.Sprintf("MapKind(%d)", int(k))
	}
}

// MapID identifies a map within a world.
type MapID int

// NoMap is the destination of unresolved portals.
const NoMap MapID = -1

// Map represents a generated level: terrain, objects and portals, along with
// kind-specific information.
type Map struct {
	ID       MapID
	Kind     MapKind
	Name     string
	Level    int
	Seed     Seed            // seed the map was generated from
	W, H     int             // map size
	Terrain  rl.Grid         // terrain
	Explored CacheGrid[bool] // cells explored by the player
	Objects  []*Object       // draw order: first objects are drawn under the others
	Portals  []*Portal       // links to other maps
	Start    gruid.Point     // initial position on the map

	Outdoor *OutdoorInfo // non-nil for outdoor maps
	Dungeon *DungeonInfo // non-nil for cave, mine and maze maps
}

// newMap returns a map filled with the given terrain.
func newMap(kind MapKind, name string, w, h int, seed Seed, fill rl.Cell) *Map {
	m := &Map{
		ID:       NoMap,
		Kind:     kind,
		Name:     name,
		Seed:     seed,
		W:        w,
		H:        h,
		Terrain:  rl.NewGrid(w, h),
		Explored: NewCacheGrid[bool](w, h),
	}
	m.Terrain.Fill(fill)
	return m
}

// Contains reports whether p is a position of the map.
func (m *Map) Contains(p gruid.Point) bool {
	return p.X >= 0 && p.X < m.W && p.Y >= 0 && p.Y < m.H
}

// Range returns the range of map positions.
func (m *Map) Range() gruid.Range {
	return gruid.NewRange(0, 0, m.W, m.H)
}

// TerrainAt returns the terrain at p. The position must be within the map.
func (m *Map) TerrainAt(p gruid.Point) rl.Cell {
	if !m.Contains(p) {
		panic(fmt.Sprintf("terrain access out of map %q: %v", m.Name, p))
	}
	return m.Terrain.At(p)
}

// Blocked reports whether the terrain at p blocks movement or whether there
// is a blocking object there.
func (m *Map) Blocked(p gruid.Point) bool {
	if !Passable(m.TerrainAt(p)) {
		return true
	}
	for _, o := range m.Objects {
		if o.Blocks && o.P == p {
			return true
		}
	}
	return false
}

// BlockedFrom reports whether a move from one position to an adjacent one is
// impossible. On outdoor maps, moves that change elevation by more than one
// step are rejected too.
func (m *Map) BlockedFrom(from, to gruid.Point) bool {
	if m.Blocked(to) {
		return true
	}
	if m.Outdoor == nil {
		return false
	}
	delta := m.Elevation(from) - m.Elevation(to)
	return delta > 1 || delta < -1
}

// Elevation returns the elevation at p. Indoor maps are flat and report 0.
// The position must be within the map.
func (m *Map) Elevation(p gruid.Point) int {
	if !m.Contains(p) {
		panic(fmt.Sprintf("elevation access out of map %q: %v", m.Name, p))
	}
	if m.Outdoor == nil {
		return 0
	}
	rs := m.Outdoor.Regions
	return rs.Table[rs.At(p)].Elevation
}

// Region returns the region of p on outdoor maps, or -1.
func (m *Map) Region(p gruid.Point) int {
	if m.Outdoor == nil {
		return -1
	}
	return m.Outdoor.Regions.At(p)
}

// Explore marks p as explored.
func (m *Map) Explore(p gruid.Point) {
	m.Explored.Set(p, true)
}

// IsExplored reports whether p was explored.
func (m *Map) IsExplored(p gruid.Point) bool {
	return m.Explored.At(p)
}

// Visit records the player entering p. It reports whether a region (or room,
// on the maze) and an elevation band were entered for the first time. The
// flags are owned by the exploration bookkeeping of the caller.
func (m *Map) Visit(p gruid.Point) (newArea, newElevation bool) {
	switch {
	case m.Outdoor != nil:
		rs := m.Outdoor.Regions
		r := rs.At(p)
		if !rs.Table[r].Entered {
			rs.Table[r].Entered = true
			newArea = true
		}
		el := rs.Table[r].Elevation
		if el >= 0 && el < len(m.Outdoor.ElevationVisited) && !m.Outdoor.ElevationVisited[el] {
			m.Outdoor.ElevationVisited[el] = true
			newElevation = true
		}
	case m.Dungeon != nil && len(m.Dungeon.RoomGrid.Cells) > 0:
		i := m.Dungeon.RoomGrid.At(p)
		if i >= 0 && i < len(m.Dungeon.RoomEntered) && !m.Dungeon.RoomEntered[i] {
			m.Dungeon.RoomEntered[i] = true
			newArea = true
		}
	}
	return newArea, newElevation
}

// ObjectsAt returns the objects at p, in draw order.
func (m *Map) ObjectsAt(p gruid.Point) []*Object {
	var objs []*Object
	for _, o := range m.Objects {
		if o.P == p {
			objs = append(objs, o)
		}
	}
	return objs
}

// AddObject appends an object, drawn over the existing ones.
func (m *Map) AddObject(o *Object) {
	m.Objects = append(m.Objects, o)
}

// InsertObjectUnder inserts an object at the start of the list, so that it
// is drawn under the other objects (corpses, decorations, stairs).
func (m *Map) InsertObjectUnder(o *Object) {
	m.Objects = slices.Insert(m.Objects, 0, o)
}

// RemoveObject removes the given object, if present.
func (m *Map) RemoveObject(o *Object) {
	i := slices.Index(m.Objects, o)
	if i < 0 {
		return
	}
	m.Objects = slices.Delete(m.Objects, i, i+1)
}

// PortalAt returns the portal at p, or nil.
func (m *Map) PortalAt(p gruid.Point) *Portal {
	for _, pt := range m.Portals {
		if pt.P == p {
			return pt
		}
	}
	return nil
}

// addPortal registers a portal along with the object representing it.
func (m *Map) addPortal(pt *Portal, kind ObjectKind) {
	m.Portals = slices.Insert(m.Portals, 0, pt)
	m.InsertObjectUnder(NewObject(kind, pt.P))
}

// CacheGrid represents a map-sized grid of any type.
type CacheGrid[T any] struct {
	W, H  int
	Cells []T
}

// NewCacheGrid returns a grid of zero values.
func NewCacheGrid[T any](w, h int) CacheGrid[T] {
	return CacheGrid[T]{W: w, H: h, Cells: make([]T, w*h)}
}

// At returns the value in the grid at a given position, or the zero value
// out of range.
func (cg CacheGrid[T]) At(p gruid.Point) T {
	if p.X < 0 || p.X >= cg.W || p.Y < 0 || p.Y >= cg.H {
		var zero T
		return zero
	}
	return cg.Cells[p.Y*cg.W+p.X]
}

// Set puts a value at the given position in the grid. Out of range positions
// are ignored.
func (cg CacheGrid[T]) Set(p gruid.Point, v T) {
	if p.X < 0 || p.X >= cg.W || p.Y < 0 || p.Y >= cg.H {
		return
	}
	cg.Cells[p.Y*cg.W+p.X] = v
}

// Fill sets every cell to v.
func (cg CacheGrid[T]) Fill(v T) {
	for i := range cg.Cells {
		cg.Cells[i] = v
	}
}
