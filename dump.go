package mountain

import (
	"fmt"
	"slices"
	"strings"

	"codeberg.org/anaseto/gruid"
)

// String returns a text rendering of the map, one line per row.
func (m *Map) String() string {
	var sb strings.Builder
	for p := range m.Terrain.All() {
		if p.X == 0 && p.Y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteRune(m.RuneAt(p))
	}
	return sb.String()
}

// RuneAt returns the rune drawn at p: the last object there, or the
// terrain.
func (m *Map) RuneAt(p gruid.Point) rune {
	for i := len(m.Objects) - 1; i >= 0; i-- {
		if o := m.Objects[i]; o.P == p {
			return o.Rune
		}
	}
	return TerrainRune(m.Terrain.At(p))
}

// Summary returns a short textual description of the map and its features.
func (m *Map) Summary() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s (%s, level %d, %dx%d, id %d)\n", m.Name, m.Kind, m.Level, m.W, m.H, m.ID)
	fmt.Fprintf(&sb, "seed: %016x%016x\n", m.Seed.Hi, m.Seed.Lo)
	fmt.Fprintf(&sb, "start: %v\n", m.Start)
	if oi := m.Outdoor; oi != nil {
		fmt.Fprintf(&sb, "peak: %v\n", oi.Peak)
		counts := m.BiomeCounts()
		biomes := make([]Biome, 0, len(counts))
		for b := range counts {
			biomes = append(biomes, b)
		}
		slices.Sort(biomes)
		for _, b := range biomes {
			fmt.Fprintf(&sb, "  %-7s %6d cells\n", b, counts[b])
		}
		if cs := oi.Caravanserai; cs != nil {
			fmt.Fprintf(&sb, "caravanserai: %v (%d doors)\n", cs.Bounds, len(cs.Doors))
		} else {
			sb.WriteString("caravanserai: none\n")
		}
		if q := oi.Quarry; q != nil {
			fmt.Fprintf(&sb, "quarry: regions %v, stairs %v\n", q.Regions, q.Stairs)
		} else {
			sb.WriteString("quarry: none\n")
		}
		if oi.GrottoStairs != nil {
			fmt.Fprintf(&sb, "grotto: region %d at %v\n", oi.Grotto, *oi.GrottoStairs)
		} else {
			sb.WriteString("grotto: none\n")
		}
		fmt.Fprintf(&sb, "dungeon entrances: %v\n", oi.DungeonStairs)
	}
	if di := m.Dungeon; di != nil {
		fmt.Fprintf(&sb, "rooms: %d\n", len(di.Rooms))
		switch m.Kind {
		case KindCave:
			fmt.Fprintf(&sb, "pool: %v\n", di.Pool)
		case KindMaze:
			fmt.Fprintf(&sb, "lair: %v\n", di.Lair)
		}
	}
	for _, pt := range m.Portals {
		dest := "unresolved"
		if pt.Resolved() {
			dest = fmt.Sprintf("map %d at %v", pt.Dest, pt.DestP)
		}
		fmt.Fprintf(&sb, "portal %s at %v (%s, group %d): %s\n", pt.Name, pt.P, pt.Gen, pt.Group, dest)
	}
	return sb.String()
}
