package mountain

import "codeberg.org/anaseto/gruid"

// OutdoorInfo holds the parts specific to the outdoor mountain map.
// Footprints are nil when the structure could not be placed.
type OutdoorInfo struct {
	Regions       *Regions
	Peak          gruid.Point // centre of the summit rotunda
	Caravanserai  *Caravanserai
	Quarry        *Quarry
	Grotto        int          // grotto region, or -1
	GrottoStairs  *gruid.Point // cave mouth
	DungeonStairs []gruid.Point

	// ElevationVisited is bookkeeping for the exploration collaborator.
	ElevationVisited [maxElevation + 1]bool
}

// generateMountain builds the outdoor map from the given seed.
func generateMountain(cfg *Config, seed Seed) *Map {
	rng := NewRNG(seed)
	m := newMap(KindOutdoor, "mountain", cfg.OutdoorWidth, cfg.OutdoorHeight, seed, Ground)
	rs := partition(m.W, m.H, cfg.RegionSize, rng)
	m.Outdoor = &OutdoorInfo{Regions: rs, Grotto: -1}
	oi := m.Outdoor

	oi.Peak = buildElevation(rs, m.W, m.H, rng)
	clumpBiomes(rs, m.W)
	oi.Grotto = placeSeaside(rs)
	m.markSlopes()
	m.assignTerrain(rng)

	m.placeRotunda(oi.Peak)
	oi.Caravanserai = m.placeCaravanserai(rng)
	oi.Quarry = m.digQuarry(oi.Peak, rng)
	oi.GrottoStairs = m.placeGrotto(oi.Grotto, rng)
	var others []gruid.Point
	if oi.Quarry != nil {
		others = append(others, oi.Quarry.Stairs...)
	}
	if oi.GrottoStairs != nil {
		others = append(others, *oi.GrottoStairs)
	}
	oi.DungeonStairs = m.siteFinalDungeon(others, rng)
	m.Start = m.placeStart(rng)
	return m
}
