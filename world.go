package mountain

import (
	"fmt"

	"codeberg.org/anaseto/gruid"
)

// World gathers the maps of a game. The outdoor mountain is generated
// eagerly; the other maps appear as portals are traversed. A World is not
// safe for concurrent use.
type World struct {
	Config Config
	Seed   Seed
	Maps   []*Map // indexed by MapID
}

// NewWorld validates the configuration and generates the outdoor map of a
// new world.
func NewWorld(cfg Config, seed Seed) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{Config: cfg, Seed: seed}
	m := generateMountain(&w.Config, seed)
	w.add(m)
	return w, nil
}

func (w *World) add(m *Map) {
	m.ID = MapID(len(w.Maps))
	w.Maps = append(w.Maps, m)
}

// Root returns the outdoor map.
func (w *World) Root() *Map {
	return w.Maps[0]
}

// Map returns the map with the given id.
func (w *World) Map(id MapID) (*Map, error) {
	if id < 0 || int(id) >= len(w.Maps) {
		return nil, fmt.Errorf("map %d: %w", id, ErrUnknownMap)
	}
	return w.Maps[id], nil
}

// Traverse follows the portal at p on the given map, generating its
// destination first if needed. It returns the destination map and the
// arrival position. On generation failure no portal is resolved.
func (w *World) Traverse(from MapID, p gruid.Point) (*Map, gruid.Point, error) {
	m, err := w.Map(from)
	if err != nil {
		return nil, p, err
	}
	pt := m.PortalAt(p)
	if pt == nil {
		return nil, p, fmt.Errorf("%s %v: %w", m.Name, p, ErrNoPortal)
	}
	if !pt.Resolved() {
		if err := w.link(m, pt); err != nil {
			return nil, p, err
		}
	}
	dest, err := w.Map(pt.Dest)
	if err != nil {
		return nil, p, err
	}
	return dest, pt.DestP, nil
}

// link generates the destination of the group of pt, adds return portals on
// it, and resolves the portals of the group.
func (w *World) link(m *Map, pt *Portal) error {
	gen, ok := generators[pt.Gen]
	if !ok {
		return fmt.Errorf("portal %q (%v): %w", pt.Name, pt.Gen, ErrUnknownGenerator)
	}
	var group []*Portal
	for _, q := range m.groupPortals(pt.Group) {
		if !q.Resolved() && q.Gen == pt.Gen {
			group = append(group, q)
		}
	}
	req := &linkRequest{cfg: &w.Config, parent: m, portals: group, seed: pt.Seed, level: m.Level + 1}
	child, arrivals, err := gen(req)
	if err != nil {
		return fmt.Errorf("generating %v below %s: %w", pt.Gen, m.Name, err)
	}
	child.Level = req.level
	w.add(child)
	// Portals of a group may share an arrival cell. Only the first gets a
	// return portal there and the others resolve to it all the same.
	for i, q := range group {
		back := &Portal{P: arrivals[i], Name: "stairs up", Gen: GenNone, Dest: m.ID, DestP: q.P}
		if child.PortalAt(back.P) == nil {
			child.addPortal(back, ObjStairsUp)
		}
	}
	for i, q := range group {
		q.resolve(child.ID, arrivals[i])
	}
	return nil
}
