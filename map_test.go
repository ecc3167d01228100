package mountain

import (
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerrainProperties(t *testing.T) {
	for t0 := Wall; t0 <= Poplar; t0++ {
		assert.NotEqual(t, "unknown terrain", TerrainName(t0))
	}
	assert.False(t, Passable(Wall))
	assert.True(t, Passable(Reeds))
	assert.True(t, BlocksSight(Reeds))
	assert.False(t, Passable(Water))
	assert.False(t, BlocksSight(Water))
	assert.False(t, Passable(Boulder))
	assert.False(t, BlocksSight(Boulder))
	assert.True(t, BlocksSight(Poplar))
	assert.True(t, Passable(Slope))
	assert.False(t, Passable(99), "unknown terrain blocks")
	assert.Equal(t, '^', TerrainRune(Slope))
}

func TestTerrainAtOutOfBounds(t *testing.T) {
	m := newMap(KindCave, "cave", 10, 10, Seed{}, Wall)
	assert.Panics(t, func() { m.TerrainAt(gruid.Point{10, 0}) })
	assert.NotPanics(t, func() { m.TerrainAt(gruid.Point{9, 9}) })
}

func TestElevationOutOfBounds(t *testing.T) {
	cave := newMap(KindCave, "cave", 10, 10, Seed{}, Wall)
	assert.Panics(t, func() { cave.Elevation(gruid.Point{-1, 3}) })

	cfg := DefaultConfig()
	m, _ := classifiedMap(&cfg, NewSeed(1))
	assert.Panics(t, func() { m.Elevation(gruid.Point{m.W, 0}) })
	assert.Panics(t, func() { m.Elevation(gruid.Point{0, m.H}) })
	assert.NotPanics(t, func() { m.Elevation(gruid.Point{m.W - 1, m.H - 1}) })
}

func TestDoors(t *testing.T) {
	m := newMap(KindMaze, "maze", 10, 10, Seed{}, Floor)
	p := gruid.Point{4, 4}
	m.AddObject(NewObject(ObjStairsDown, gruid.Point{1, 1}))
	m.placeDoor(p)
	require.True(t, m.Blocked(p))
	require.Equal(t, ObjClosedDoor, m.Objects[0].Kind, "doors are drawn under other objects")

	assert.True(t, m.Interact(p))
	assert.False(t, m.Blocked(p))
	objs := m.ObjectsAt(p)
	require.Len(t, objs, 1)
	assert.Equal(t, ObjOpenDoor, objs[0].Kind)
	assert.False(t, m.Interact(p), "open doors stay open")
	assert.False(t, m.Interact(gruid.Point{2, 2}))
}

func TestRemoveObject(t *testing.T) {
	m := newMap(KindMaze, "maze", 10, 10, Seed{}, Floor)
	a := NewObject(ObjStairsUp, gruid.Point{1, 1})
	b := NewObject(ObjStairsDown, gruid.Point{1, 1})
	m.AddObject(a)
	m.AddObject(b)
	m.RemoveObject(a)
	assert.Equal(t, []*Object{b}, m.ObjectsAt(gruid.Point{1, 1}))
	m.RemoveObject(a)
	assert.Len(t, m.Objects, 1)
}

func TestBlockedFrom(t *testing.T) {
	cfg := DefaultConfig()
	m, _ := classifiedMap(&cfg, NewSeed(2))
	rs := m.Outdoor.Regions
	found := false
	for y := 1; y < m.H-1 && !found; y++ {
		for x := 1; x < m.W-1 && !found; x++ {
			p := gruid.Point{x, y}
			q := p.Add(gruid.Point{1, 0})
			if d := m.Elevation(q) - m.Elevation(p); d >= 2 || d <= -2 {
				found = true
				assert.True(t, m.BlockedFrom(p, q), "steep step between %v and %v", p, q)
			}
		}
	}
	if !found {
		t.Logf("no steep step on the map")
	}
	p := rs.Table[rs.Index(10, 10)].Seed
	assert.Equal(t, m.Blocked(p), m.BlockedFrom(p, p))

	cave := newMap(KindCave, "cave", 10, 10, Seed{}, Floor)
	assert.Zero(t, cave.Elevation(gruid.Point{3, 3}))
	assert.Equal(t, -1, cave.Region(gruid.Point{3, 3}))
	assert.False(t, cave.BlockedFrom(gruid.Point{3, 3}, gruid.Point{4, 3}))
}

func TestVisitOutdoor(t *testing.T) {
	cfg := DefaultConfig()
	m, _ := classifiedMap(&cfg, NewSeed(2))
	p := m.Outdoor.Peak
	area, elev := m.Visit(p)
	assert.True(t, area)
	assert.True(t, elev)
	area, elev = m.Visit(p)
	assert.False(t, area)
	assert.False(t, elev)
	assert.True(t, m.Outdoor.ElevationVisited[maxElevation])
}

func TestCacheGrid(t *testing.T) {
	cg := NewCacheGrid[int](4, 3)
	cg.Fill(-1)
	cg.Set(gruid.Point{3, 2}, 7)
	cg.Set(gruid.Point{4, 2}, 8)
	assert.Equal(t, 7, cg.At(gruid.Point{3, 2}))
	assert.Equal(t, -1, cg.At(gruid.Point{0, 0}))
	assert.Zero(t, cg.At(gruid.Point{4, 2}))
}
