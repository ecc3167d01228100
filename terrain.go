// This file contains terrain-related code.

package mountain

import "codeberg.org/anaseto/gruid/rl"

// These constants represent the different kinds of map tiles.
const (
	Wall     rl.Cell = iota // obstructing and blocks vision
	Ground                  // bare outdoor ground, or undug cave passage
	Floor                   // built or validated floor
	Water                   // lake, pond or flooded cave
	Slope                   // passable boundary to a higher region
	Boulder                 // obstructing, but does not block vision
	Reeds                   // passable, blocks vision
	Saxaul                  // bush
	Nitraria                // bush
	Ephedra                 // low shrub
	Poplar                  // tree
)

type terrainInfo struct {
	name        string
	rune        rune
	blocks      bool
	blocksSight bool
}

var terrainTable = [...]terrainInfo{
	Wall:     {"wall", '#', true, true},
	Ground:   {"ground", '.', false, false},
	Floor:    {"floor", ',', false, false},
	Water:    {"water", '~', true, false},
	Slope:    {"slope", '^', false, false},
	Boulder:  {"boulder", '*', true, false},
	Reeds:    {"reeds", '|', false, true},
	Saxaul:   {"saxaul", '%', true, true},
	Nitraria: {"nitraria", '%', true, true},
	Ephedra:  {"ephedra", '"', false, false},
	Poplar:   {"poplar", 'T', true, true},
}

func terrain(t rl.Cell) terrainInfo {
	if t < 0 || int(t) >= len(terrainTable) {
		return terrainInfo{name: "unknown terrain", rune: '?', blocks: true, blocksSight: true}
	}
	return terrainTable[t]
}

// TerrainName returns the name of a terrain.
func TerrainName(t rl.Cell) string {
	return terrain(t).name
}

// TerrainRune returns the rune used to display a terrain.
func TerrainRune(t rl.Cell) rune {
	return terrain(t).rune
}

// Passable reports whether the terrain can be walked on.
func Passable(t rl.Cell) bool {
	return !terrain(t).blocks
}

// BlocksSight reports whether the terrain is opaque.
func BlocksSight(t rl.Cell) bool {
	return terrain(t).blocksSight
}
