package mountain

import (
	"fmt"
	"slices"

	"codeberg.org/anaseto/gruid"
)

// GenKind identifies the generator that builds the destination of a portal.
type GenKind int

const (
	GenNone GenKind = iota // return portals: destination set at creation
	GenCave
	GenMine
	GenMaze
)

func (g GenKind) String() string {
	switch g {
	case GenNone:
		return "none"
	case GenCave:
		return "cave"
	case GenMine:
		return "mine"
	case GenMaze:
		return "maze"
	default:
		return fmt.Sprintf("GenKind(%d)", int(g))
	}
}

// Portal links a position of a map to a position of another map. The
// destination is generated lazily: Dest is NoMap until the first traversal
// of any portal of the group.
type Portal struct {
	P     gruid.Point
	Name  string
	Gen   GenKind // generator of the destination
	Group int     // portals of a group lead to the same map
	Seed  Seed    // seed of the destination map
	Dest  MapID
	DestP gruid.Point
}

// Resolved reports whether the destination of the portal exists.
func (pt *Portal) Resolved() bool {
	return pt.Dest != NoMap
}

// resolve sets the destination of the portal. Destinations never change
// once set.
func (pt *Portal) resolve(dest MapID, p gruid.Point) {
	if pt.Resolved() {
		panic(fmt.Sprintf("portal %q at %v already resolved", pt.Name, pt.P))
	}
	pt.Dest = dest
	pt.DestP = p
}

// nextGroup returns an unused portal group id for the map.
func (m *Map) nextGroup() int {
	g := 0
	for _, pt := range m.Portals {
		g = max(g, pt.Group+1)
	}
	return g
}

// addPortalGroup adds unresolved portals at the given positions, sharing a
// group, a generator and a destination seed. Positions are sorted west to
// east.
func (m *Map) addPortalGroup(ps []gruid.Point, name string, gen GenKind, kind ObjectKind, seed Seed) []*Portal {
	ps = slices.Clone(ps)
	slices.SortStableFunc(ps, comparePoints)
	group := m.nextGroup()
	pts := make([]*Portal, 0, len(ps))
	for _, p := range ps {
		pt := &Portal{P: p, Name: name, Gen: gen, Group: group, Seed: seed, Dest: NoMap}
		m.addPortal(pt, kind)
		pts = append(pts, pt)
	}
	return pts
}

// groupPortals returns the portals of the given group, sorted west to east.
func (m *Map) groupPortals(group int) []*Portal {
	var pts []*Portal
	for _, pt := range m.Portals {
		if pt.Group == group {
			pts = append(pts, pt)
		}
	}
	slices.SortStableFunc(pts, func(a, b *Portal) int {
		return comparePoints(a.P, b.P)
	})
	return pts
}

// comparePoints orders points by x, then by y.
func comparePoints(p, q gruid.Point) int {
	if p.X != q.X {
		return p.X - q.X
	}
	return p.Y - q.Y
}
