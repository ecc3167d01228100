package mountain

import (
	"fmt"
	"slices"

	"codeberg.org/anaseto/gruid"
)

const (
	mazeRooms       = 40
	mazeRoomMinSize = 6
	mazeRoomMaxSize = 10
)

// generateMaze builds the final dungeon: rooms joined by L-shaped tunnels,
// with doors where tunnels enter rooms.
func generateMaze(req *linkRequest) (*Map, []gruid.Point, error) {
	cfg := req.cfg
	entries := anchors(req.portals, cfg.MazeSize, cfg.MazeSize, cfg.PortalScale)
	var m *Map
	err := retry(cfg, "maze", req.seed, func(rng *RNG) error {
		var err error
		m, err = digMaze(cfg, req.seed, entries, rng)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	m.Start = entries[0]
	return m, entries, nil
}

// digMaze makes one attempt at the maze.
func digMaze(cfg *Config, seed Seed, entries []gruid.Point, rng *RNG) (*Map, error) {
	m := newMap(KindMaze, "maze", cfg.MazeSize, cfg.MazeSize, seed, Wall)
	di := &DungeonInfo{RoomGrid: NewCacheGrid[int](m.W, m.H), Entries: entries}
	di.RoomGrid.Fill(-1)
	for _, e := range entries {
		di.Rooms = append(di.Rooms, entryRoom(e, rng).Intersect(m.interior()))
	}
	for range mazeRooms - len(entries) {
		w := rng.Range(mazeRoomMinSize, mazeRoomMaxSize)
		h := rng.Range(mazeRoomMinSize, mazeRoomMaxSize)
		x := rng.Range(0, m.W-w-1)
		y := rng.Range(0, m.H-h-1)
		room := gruid.NewRange(x+1, y+1, x+w, y+h)
		if slices.ContainsFunc(di.Rooms, func(other gruid.Range) bool {
			return overlaps(expand(room), expand(other))
		}) {
			continue
		}
		prev := di.Rooms[len(di.Rooms)-len(entries)]
		fill(m.Terrain, room, Ground)
		tunnel(m.Terrain, roomCenter(prev), roomCenter(room), rng.IntN(2) == 0)
		di.Rooms = append(di.Rooms, room)
	}
	for i, room := range di.Rooms {
		fill(m.Terrain, room, Ground)
		for y := room.Min.Y; y < room.Max.Y; y++ {
			for x := room.Min.X; x < room.Max.X; x++ {
				di.RoomGrid.Set(gruid.Point{x, y}, i)
			}
		}
	}

	FloodFill(m.Terrain, entries[0], Ground, Floor)
	for _, e := range entries[1:] {
		if m.Terrain.At(e) != Floor {
			return nil, fmt.Errorf("entry %v: %w", e, ErrDisconnected)
		}
	}
	keepConnected(m.Terrain, entries[0], rng)
	m.Dungeon = di
	m.addDoors(entries)
	di.Lair = roomCenter(di.Rooms[len(di.Rooms)-1])
	di.RoomEntered = make([]bool, len(di.Rooms))
	return m, nil
}

// addDoors puts a closed door on every tunnel cell that enters a room
// through a gap in its wall.
func (m *Map) addDoors(entries []gruid.Point) {
	rg := m.Dungeon.RoomGrid
	for y := 1; y < m.H-1; y++ {
		for x := 1; x < m.W-1; x++ {
			p := gruid.Point{x, y}
			if m.Terrain.At(p) != Floor || rg.At(p) >= 0 || slices.Contains(entries, p) {
				continue
			}
			if m.wallsAround(p) != 4 || m.doorNear(p) {
				continue
			}
			for _, d := range cardinals {
				if m.doorway(p, d) {
					m.placeDoor(p)
					break
				}
			}
		}
	}
}

var cardinals = [4]gruid.Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// doorway reports whether p is a tunnel cell opening in direction d into a
// room.
func (m *Map) doorway(p, d gruid.Point) bool {
	perp := gruid.Point{d.Y, d.X}
	floor := func(q gruid.Point) bool { return m.Terrain.At(q) == Floor }
	wall := func(q gruid.Point) bool { return m.Terrain.At(q) == Wall }
	in := p.Add(d)
	back := p.Sub(d)
	return floor(in) && m.Dungeon.RoomGrid.At(in) >= 0 &&
		floor(in.Add(perp)) && floor(in.Sub(perp)) && floor(back) &&
		wall(p.Add(perp)) && wall(p.Sub(perp)) &&
		wall(back.Add(perp)) && wall(back.Sub(perp))
}

func (m *Map) wallsAround(p gruid.Point) int {
	n := 0
	for _, d := range directions {
		if m.Terrain.At(p.Add(d)) == Wall {
			n++
		}
	}
	return n
}

func (m *Map) doorNear(p gruid.Point) bool {
	for _, d := range directions {
		for _, o := range m.ObjectsAt(p.Add(d)) {
			if o.Kind == ObjClosedDoor {
				return true
			}
		}
	}
	return false
}

// expand returns rg grown by one cell on every side.
func expand(rg gruid.Range) gruid.Range {
	return gruid.NewRange(rg.Min.X-1, rg.Min.Y-1, rg.Max.X+1, rg.Max.Y+1)
}
