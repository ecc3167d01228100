package mountain

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// AutomatonRule is one phase of the cave digging automaton: for Generations
// steps, a cell becomes a wall if at least NearMin walls are in its 3x3
// window, or at most FarMax walls are in its 3x3 window plus the fat plus
// ring at distance 2.
type AutomatonRule struct {
	NearMin     int
	FarMax      int
	Generations int
}

// farRing is the fat plus ring around a cell: the cells at distance 2 of a
// 5x5 window, corners excluded.
var farRing = [12]gruid.Point{
	{-1, -2}, {0, -2}, {1, -2},
	{-1, 2}, {0, 2}, {1, 2},
	{-2, -1}, {-2, 0}, {-2, 1},
	{2, -1}, {2, 0}, {2, 1},
}

// Dig digs caves with a cellular automaton in gd within rg. Cells strictly
// inside rg are randomly dug first, then every rule is applied in order.
func Dig(gd rl.Grid, rg gruid.Range, rules []AutomatonRule, rng *RNG) {
	rg = rg.Intersect(gd.Range())
	inner := gruid.NewRange(rg.Min.X+1, rg.Min.Y+1, rg.Max.X-1, rg.Max.Y-1)
	if inner.Max.X <= inner.Min.X || inner.Max.Y <= inner.Min.Y {
		return
	}
	for y := inner.Min.Y; y < inner.Max.Y; y++ {
		for x := inner.Min.X; x < inner.Max.X; x++ {
			p := gruid.Point{x, y}
			if rng.Float64() < 0.6 {
				gd.Set(p, Ground)
			} else {
				gd.Set(p, Wall)
			}
		}
	}
	w, h := gd.Size().X, gd.Size().Y
	next := rl.NewGrid(w, h)
	for _, rule := range rules {
		for range rule.Generations {
			copyGrid(next, gd)
			for y := inner.Min.Y; y < inner.Max.Y; y++ {
				for x := inner.Min.X; x < inner.Max.X; x++ {
					p := gruid.Point{x, y}
					var near, far int
					if x < inner.Min.X+1 || x >= inner.Max.X-1 || y < inner.Min.Y+1 || y >= inner.Max.Y-1 {
						near, far = countWallsChecked(gd, p)
					} else {
						near, far = countWalls(gd, p)
					}
					if near >= rule.NearMin || far <= rule.FarMax {
						next.Set(p, Wall)
					} else {
						next.Set(p, Ground)
					}
				}
			}
			copyGrid(gd, next)
		}
	}
}

// countWalls counts walls around p without bounds checks. The 5x5 window
// around p must lie within the grid.
func countWalls(gd rl.Grid, p gruid.Point) (near, far int) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if gd.At(p.Add(gruid.Point{dx, dy})) == Wall {
				near++
			}
		}
	}
	far = near
	for _, d := range farRing {
		if gd.At(p.Add(d)) == Wall {
			far++
		}
	}
	return near, far
}

// countWallsChecked counts walls around p near the grid edge: cells out of
// the grid count as walls in the near window and are ignored in the far
// ring.
func countWallsChecked(gd rl.Grid, p gruid.Point) (near, far int) {
	rg := gd.Range()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			q := p.Add(gruid.Point{dx, dy})
			if !q.In(rg) || gd.At(q) == Wall {
				near++
			}
		}
	}
	far = near
	for _, d := range farRing {
		q := p.Add(d)
		if q.In(rg) && gd.At(q) == Wall {
			far++
		}
	}
	return near, far
}

// copyGrid copies src into dst, which must have the same size.
func copyGrid(dst, src rl.Grid) {
	sz := src.Size()
	for y := range sz.Y {
		for x := range sz.X {
			p := gruid.Point{x, y}
			dst.Set(p, src.At(p))
		}
	}
}
