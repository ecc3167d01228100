package mountain

import (
	"errors"
	"testing"

	"codeberg.org/anaseto/gruid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorldInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RegionSize = 7
	_, err := NewWorld(cfg, NewSeed(1))
	assert.True(t, errors.Is(err, ErrInvalidConfig))
}

// checkReturnPortals verifies that every portal of the group leads to the
// child and has a return portal there.
func checkReturnPortals(t *testing.T, w *World, origin *Map, group []*Portal) *Map {
	t.Helper()
	require.NotEmpty(t, group)
	child, err := w.Map(group[0].Dest)
	require.NoError(t, err)
	assert.Equal(t, origin.Level+1, child.Level)
	for _, pt := range group {
		require.True(t, pt.Resolved())
		assert.Equal(t, child.ID, pt.Dest)
		back := child.PortalAt(pt.DestP)
		require.NotNil(t, back, "no return portal at %v", pt.DestP)
		assert.Equal(t, GenNone, back.Gen)
		assert.Equal(t, origin.ID, back.Dest)
		assert.True(t, Passable(child.Terrain.At(pt.DestP)))
	}
	return child
}

func TestTraverseMine(t *testing.T) {
	w := newTestWorld(t)
	root := w.Root()
	stairs := root.Outdoor.Quarry.Stairs
	m, p, err := w.Traverse(root.ID, stairs[0])
	require.NoError(t, err)
	assert.Equal(t, KindMine, m.Kind)
	require.Len(t, w.Maps, 2)

	group := root.groupPortals(root.PortalAt(stairs[0]).Group)
	require.Len(t, group, mineEntrances)
	child := checkReturnPortals(t, w, root, group)
	assert.Same(t, m, child)
	assert.Equal(t, group[0].DestP, p)
	assert.Len(t, child.Portals, mineEntrances)

	// Each return portal leads back to its own origin.
	for _, pt := range group {
		back, q, err := w.Traverse(child.ID, pt.DestP)
		require.NoError(t, err)
		assert.Same(t, root, back)
		assert.Equal(t, pt.P, q)
	}

	// Traversing again reuses the same map.
	for _, s := range stairs {
		again, _, err := w.Traverse(root.ID, s)
		require.NoError(t, err)
		assert.Same(t, m, again)
	}
	assert.Len(t, w.Maps, 2)
}

func TestTraverseCave(t *testing.T) {
	w := newTestWorld(t)
	root := w.Root()
	p := *root.Outdoor.GrottoStairs
	m, arrival, err := w.Traverse(root.ID, p)
	require.NoError(t, err)
	assert.Equal(t, KindCave, m.Kind)
	assert.Equal(t, m.Start, arrival)
	require.Len(t, m.Portals, 1)
	back, q, err := w.Traverse(m.ID, arrival)
	require.NoError(t, err)
	assert.Same(t, root, back)
	assert.Equal(t, p, q)
}

func TestTraverseMaze(t *testing.T) {
	w := newTestWorld(t)
	root := w.Root()
	stairs := root.Outdoor.DungeonStairs
	m, _, err := w.Traverse(root.ID, stairs[len(stairs)-1])
	require.NoError(t, err)
	assert.Equal(t, KindMaze, m.Kind)
	group := root.groupPortals(root.PortalAt(stairs[0]).Group)
	require.Len(t, group, len(stairs))
	checkReturnPortals(t, w, root, group)
	assert.Equal(t, m.Dungeon.Entries[0], m.Start)
}

func TestTraverseSharedArrival(t *testing.T) {
	w := newTestWorld(t)
	saved := generators[GenMine]
	t.Cleanup(func() { generators[GenMine] = saved })
	arrival := gruid.Point{5, 5}
	generators[GenMine] = func(req *linkRequest) (*Map, []gruid.Point, error) {
		m := newMap(KindMine, "mine", 20, 20, req.seed, Floor)
		arrivals := make([]gruid.Point, len(req.portals))
		for i := range arrivals {
			arrivals[i] = arrival
		}
		return m, arrivals, nil
	}
	root := w.Root()
	stairs := root.Outdoor.Quarry.Stairs
	require.Len(t, stairs, mineEntrances)
	child, p, err := w.Traverse(root.ID, stairs[1])
	require.NoError(t, err)
	assert.Equal(t, arrival, p)
	group := root.groupPortals(root.PortalAt(stairs[1]).Group)
	require.Len(t, group, mineEntrances)
	for _, pt := range group {
		assert.Equal(t, child.ID, pt.Dest)
		assert.Equal(t, arrival, pt.DestP)
	}
	require.Len(t, child.Portals, 1)
	back, q, err := w.Traverse(child.ID, arrival)
	require.NoError(t, err)
	assert.Same(t, root, back)
	assert.Equal(t, group[0].P, q)
}

func TestTraverseErrors(t *testing.T) {
	w := newTestWorld(t)
	root := w.Root()
	_, _, err := w.Traverse(root.ID, root.Start)
	assert.True(t, errors.Is(err, ErrNoPortal))
	_, _, err = w.Traverse(MapID(42), root.Start)
	assert.True(t, errors.Is(err, ErrUnknownMap))

	pts := root.addPortalGroup([]gruid.Point{root.Start}, "rift", GenKind(42), ObjStairsDown, NewSeed(1))
	_, _, err = w.Traverse(root.ID, root.Start)
	assert.True(t, errors.Is(err, ErrUnknownGenerator))
	assert.False(t, pts[0].Resolved())
	assert.Len(t, w.Maps, 1)
}

func TestTraverseGeneratorFailure(t *testing.T) {
	w := newTestWorld(t)
	w.Config.MaxAttempts = 3
	saved := generators[GenMaze]
	t.Cleanup(func() { generators[GenMaze] = saved })
	attempts := 0
	generators[GenMaze] = func(req *linkRequest) (*Map, []gruid.Point, error) {
		err := retry(req.cfg, "broken maze", req.seed, func(*RNG) error {
			attempts++
			return ErrDisconnected
		})
		return nil, nil, err
	}
	root := w.Root()
	stairs := root.Outdoor.DungeonStairs
	_, _, err := w.Traverse(root.ID, stairs[0])
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRetriesExhausted))
	assert.Equal(t, 3, attempts)
	assert.Len(t, w.Maps, 1)
	for _, p := range stairs {
		assert.False(t, root.PortalAt(p).Resolved())
	}

	generators[GenMaze] = saved
	m, _, err := w.Traverse(root.ID, stairs[0])
	require.NoError(t, err)
	assert.Equal(t, KindMaze, m.Kind)
}
