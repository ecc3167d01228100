package mountain

import "fmt"

// Config gathers the generation parameters of a world.
type Config struct {
	OutdoorWidth  int // outdoor map width
	OutdoorHeight int // outdoor map height
	RegionSize    int // coarse block size of the region partition

	CaveWidth  int
	CaveHeight int
	MineSize   int // mines are square
	MazeSize   int // the maze is square

	// PortalScale is the factor applied to the offsets between the
	// portals of a group when they are anchored on the child map.
	PortalScale int

	CaveRules []AutomatonRule
	MineRules []AutomatonRule

	// MaxAttempts bounds the number of generation attempts of a map.
	MaxAttempts int
}

// DefaultConfig returns the default world configuration.
func DefaultConfig() Config {
	return Config{
		OutdoorWidth:  200,
		OutdoorHeight: 200,
		RegionSize:    10,
		CaveWidth:     60,
		CaveHeight:    33,
		MineSize:      100,
		MazeSize:      80,
		PortalScale:   5,
		CaveRules: []AutomatonRule{
			{NearMin: 5, FarMax: 2, Generations: 4},
			{NearMin: 5, FarMax: -1, Generations: 3},
		},
		MineRules: []AutomatonRule{
			{NearMin: 5, FarMax: 2, Generations: 3},
			{NearMin: 5, FarMax: -1, Generations: 2},
		},
		MaxAttempts: 50,
	}
}

// Validate checks that the configuration can produce a world.
func (cfg *Config) Validate() error {
	switch {
	case cfg.RegionSize < 2:
		return fmt.Errorf("%w: region size %d", ErrInvalidConfig, cfg.RegionSize)
	case cfg.OutdoorWidth%cfg.RegionSize != 0 || cfg.OutdoorHeight%cfg.RegionSize != 0:
		return fmt.Errorf("%w: outdoor size %dx%d not a multiple of region size %d",
			ErrInvalidConfig, cfg.OutdoorWidth, cfg.OutdoorHeight, cfg.RegionSize)
	case cfg.OutdoorWidth/cfg.RegionSize < 8 || cfg.OutdoorHeight/cfg.RegionSize < 8:
		return fmt.Errorf("%w: outdoor map needs at least 8x8 regions", ErrInvalidConfig)
	case cfg.CaveWidth < 32 || cfg.CaveHeight < 16:
		return fmt.Errorf("%w: cave size %dx%d", ErrInvalidConfig, cfg.CaveWidth, cfg.CaveHeight)
	case cfg.MineSize < 60:
		return fmt.Errorf("%w: mine size %d", ErrInvalidConfig, cfg.MineSize)
	case cfg.MazeSize < 40:
		return fmt.Errorf("%w: maze size %d", ErrInvalidConfig, cfg.MazeSize)
	case cfg.PortalScale < 1:
		return fmt.Errorf("%w: portal scale %d", ErrInvalidConfig, cfg.PortalScale)
	case cfg.MaxAttempts < 1:
		return fmt.Errorf("%w: max attempts %d", ErrInvalidConfig, cfg.MaxAttempts)
	}
	return nil
}

// maxIterations bounds placement loops that rely on random draws.
const maxIterations = 10000
