package mountain

import (
	"slices"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMountainDeterminism(t *testing.T) {
	cfg := DefaultConfig()
	a := generateMountain(&cfg, NewSeed(7))
	b := generateMountain(&cfg, NewSeed(7))
	require.Equal(t, a.String(), b.String())
	assert.Equal(t, a.Outdoor.Regions.Table, b.Outdoor.Regions.Table)
	assert.Equal(t, a.Outdoor.Regions.Cells, b.Outdoor.Regions.Cells)
	assert.Equal(t, a.Start, b.Start)
	require.Equal(t, len(a.Portals), len(b.Portals))
	for i := range a.Portals {
		assert.Equal(t, *a.Portals[i], *b.Portals[i])
	}
	c := generateMountain(&cfg, NewSeed(8))
	assert.NotEqual(t, a.String(), c.String())
}

func TestMountainMargins(t *testing.T) {
	cfg := DefaultConfig()
	for i := range uint64(rounds) {
		m := generateMountain(&cfg, NewSeed(i))
		rs := m.Outdoor.Regions
		for r, rg := range rs.Table {
			if rs.IsEdge(r) {
				assert.Zero(t, rg.Elevation, "edge region %d", r)
			}
			assert.NotEqual(t, BiomeNone, rg.Biome)
		}
		total := 0
		for _, n := range m.BiomeCounts() {
			total += n
		}
		assert.Equal(t, m.W*m.H, total)
	}
}

func TestRotunda(t *testing.T) {
	cfg := DefaultConfig()
	for i := range uint64(rounds) {
		m := generateMountain(&cfg, NewSeed(i))
		peak := m.Outdoor.Peak
		for y := -3; y <= 3; y++ {
			for x := -3; x <= 3; x++ {
				p := peak.Add(gruid.Point{x, y})
				require.Equal(t, maxElevation, m.Elevation(p), "rotunda cell %v", p)
			}
		}
		assert.Equal(t, Floor, m.Terrain.At(peak))
		for _, d := range []gruid.Point{{-2, -2}, {0, -2}, {2, -2}, {-2, 0}, {2, 0}, {-2, 2}, {0, 2}, {2, 2}} {
			assert.Equal(t, Wall, m.Terrain.At(peak.Add(d)), "pillar at %v", d)
		}
	}
}

func TestCaravanserai(t *testing.T) {
	cfg := DefaultConfig()
	placed := 0
	for i := range uint64(3 * rounds) {
		m := generateMountain(&cfg, NewSeed(i))
		cs := m.Outdoor.Caravanserai
		if cs == nil {
			continue
		}
		placed++
		b := cs.Bounds
		sz := b.Size()
		assert.True(t, b.Min.X >= 2 && b.Min.Y >= 2 && b.Max.X <= m.W-2 && b.Max.Y <= m.H-2, "bounds %v", b)
		assert.True(t, sz.X >= minCaravanseraiSize && sz.X <= maxCaravanseraiSize+1, "width %d", sz.X)
		assert.True(t, sz.Y >= minCaravanseraiSize && sz.Y <= maxCaravanseraiSize+1, "height %d", sz.Y)
		for _, room := range cs.Rooms {
			assert.Equal(t, room, room.Intersect(b), "room %v outside %v", room, b)
			assert.False(t, room.Empty())
		}
		assert.Equal(t, cs.Courtyard, cs.Courtyard.Intersect(b))
		require.Len(t, cs.Doors, 4)
		for _, d := range cs.Doors {
			assert.Equal(t, Floor, m.Terrain.At(d), "door at %v", d)
			assert.True(t, slices.ContainsFunc(m.ObjectsAt(d), func(o *Object) bool {
				return o.Kind == ObjClosedDoor
			}), "no door object at %v", d)
		}
		var floors []gruid.Point
		for _, p := range cells(m.Terrain, Floor) {
			if p.In(b) {
				floors = append(floors, p)
			}
		}
		from := roomCenter(cs.Courtyard)
		assert.True(t, connected(m.Terrain, from, floors, Passable), "caravanserai rooms unreachable:\n%s", m)
	}
	t.Logf("caravanserai placed on %d maps", placed)
}

func TestQuarry(t *testing.T) {
	cfg := DefaultConfig()
	for i := range uint64(rounds) {
		m := generateMountain(&cfg, NewSeed(i))
		q := m.Outdoor.Quarry
		if q == nil {
			continue
		}
		rs := m.Outdoor.Regions
		for _, r := range q.Regions {
			assert.True(t, q.Has(r))
			assert.Equal(t, 2, rs.Table[r].Elevation)
			assert.Equal(t, BiomeRock, rs.Table[r].Biome)
			assert.False(t, rs.IsEdge(r))
		}
		require.Len(t, q.Stairs, mineEntrances)
		assert.True(t, slices.IsSortedFunc(q.Stairs, comparePoints), "stairs %v", q.Stairs)
		group := -1
		for j, p := range q.Stairs {
			assert.True(t, q.Has(rs.At(p)), "stairs %v outside the quarry", p)
			assert.True(t, Passable(m.Terrain.At(p)))
			assert.True(t, farFrom(p, q.Stairs[:j], 5), "stairs %v too close", p)
			pt := m.PortalAt(p)
			require.NotNil(t, pt)
			assert.Equal(t, GenMine, pt.Gen)
			assert.False(t, pt.Resolved())
			if group < 0 {
				group = pt.Group
			}
			assert.Equal(t, group, pt.Group)
		}
	}
}

func TestGrottoAndDungeonEntrances(t *testing.T) {
	cfg := DefaultConfig()
	for i := range uint64(rounds) {
		m := generateMountain(&cfg, NewSeed(i))
		oi := m.Outdoor
		var others []gruid.Point
		if oi.Quarry != nil {
			others = append(others, oi.Quarry.Stairs...)
		}
		if oi.GrottoStairs != nil {
			p := *oi.GrottoStairs
			assert.Equal(t, oi.Grotto, oi.Regions.At(p))
			assert.Equal(t, Ground, m.Terrain.At(p))
			pt := m.PortalAt(p)
			require.NotNil(t, pt)
			assert.Equal(t, GenCave, pt.Gen)
			others = append(others, p)
		}
		assert.LessOrEqual(t, len(oi.DungeonStairs), len(finalSiteBiomes))
		assert.True(t, slices.IsSortedFunc(oi.DungeonStairs, comparePoints))
		for j, p := range oi.DungeonStairs {
			assert.Equal(t, Ground, m.Terrain.At(p))
			assert.False(t, oi.Quarry.Has(oi.Regions.At(p)))
			assert.True(t, farFrom(p, others, 5), "entrance %v near other stairs", p)
			assert.True(t, farFrom(p, oi.DungeonStairs[:j], 5), "entrance %v near other entrances", p)
			pt := m.PortalAt(p)
			require.NotNil(t, pt)
			assert.Equal(t, GenMaze, pt.Gen)
			assert.Equal(t, "dungeon entrance", pt.Name)
		}
	}
}

func TestStart(t *testing.T) {
	cfg := DefaultConfig()
	for i := range uint64(rounds) {
		m := generateMountain(&cfg, NewSeed(i))
		assert.Equal(t, Ground, m.Terrain.At(m.Start))
		assert.Empty(t, m.ObjectsAt(m.Start))
		assert.False(t, m.Blocked(m.Start))
	}
}

func TestMapString(t *testing.T) {
	m := newMap(KindMaze, "test", 4, 2, Seed{}, Wall)
	m.Terrain.Set(gruid.Point{1, 0}, Floor)
	m.Terrain.Set(gruid.Point{2, 1}, Water)
	m.AddObject(NewObject(ObjStairsUp, gruid.Point{3, 1}))
	assert.Equal(t, "#,##\n##~<", m.String())
	assert.Contains(t, m.Summary(), "test (maze, level 0, 4x2")
	assert.Equal(t, '~', TerrainRune(Water))
}
