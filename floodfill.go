package mountain

import (
	"fmt"
	"log"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/paths"
	"codeberg.org/anaseto/gruid/rl"
)

// floodPath implements the paths.Pather interface and is used to grow an
// 8-connected component of cells of a single terrain from a start cell.
type floodPath struct {
	gd    rl.Grid
	start gruid.Point
	src   rl.Cell
	nbs   paths.Neighbors
}

func (fp *floodPath) Neighbors(p gruid.Point) []gruid.Point {
	if p != fp.start && fp.gd.At(p) != fp.src {
		return nil
	}
	rg := fp.gd.Range()
	return fp.nbs.All(p, func(q gruid.Point) bool {
		return q.In(rg) && fp.gd.At(q) == fp.src
	})
}

// FloodFill converts every cell of terrain src 8-connected to from into dst,
// and returns the number of converted cells. The start cell is converted
// whatever its terrain.
func FloodFill(gd rl.Grid, from gruid.Point, src, dst rl.Cell) int {
	rg := gd.Range()
	if !from.In(rg) {
		return 0
	}
	pr := paths.NewPathRange(rg)
	pr.CCMap(&floodPath{gd: gd, start: from, src: src}, from)
	n := 0
	for y := rg.Min.Y; y < rg.Max.Y; y++ {
		for x := rg.Min.X; x < rg.Max.X; x++ {
			p := gruid.Point{x, y}
			if pr.CCMapAt(p) == -1 {
				continue
			}
			gd.Set(p, dst)
			n++
		}
	}
	return n
}

// keepConnected walls every cell not connected to p through cells other
// than walls, and returns the number of connected cells.
func keepConnected(gd rl.Grid, p gruid.Point, rng *RNG) int {
	rg := gd.Range()
	pr := paths.NewPathRange(rg)
	pass := func(q gruid.Point) bool {
		return q.In(rg) && gd.At(q) != Wall
	}
	pr.CCMap(&connectPath{passable: pass}, p)
	mgen := rl.MapGen{Rand: rng.Rand(), Grid: gd}
	return mgen.KeepCC(pr, p, Wall)
}

// connectPath implements the paths.Pather interface for 8-connected
// components of passable cells.
type connectPath struct {
	passable func(gruid.Point) bool
	nbs      paths.Neighbors
}

func (cp *connectPath) Neighbors(p gruid.Point) []gruid.Point {
	if !cp.passable(p) {
		return nil
	}
	return cp.nbs.All(p, cp.passable)
}

// retry runs attempt until it succeeds, at most cfg.MaxAttempts times. Each
// attempt gets a stream rebuilt from a seed saved out of the previous one,
// so that nothing of a discarded attempt leaks into the next.
func retry(cfg *Config, name string, seed Seed, attempt func(rng *RNG) error) error {
	rng := NewRNG(seed)
	var err error
	for i := range cfg.MaxAttempts {
		err = attempt(rng)
		if err == nil {
			return nil
		}
		log.Printf("mapgen: retrying %s (attempt %d): %v", name, i+1, err)
		rng = NewRNG(rng.Save())
	}
	return fmt.Errorf("%s (seed %x:%x): %w after %d attempts: %v",
		name, seed.Hi, seed.Lo, ErrRetriesExhausted, cfg.MaxAttempts, err)
}
