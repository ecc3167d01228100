package mountain

import (
	"codeberg.org/anaseto/gruid"
	"github.com/kyroy/kdtree"
)

// Region is a cluster of cells sharing one elevation and one biome: the unit
// of macro terrain assignment on outdoor maps.
type Region struct {
	Seed      gruid.Point // Voronoi site
	Elevation int         // 0 to 9, -1 while unassigned
	Biome     Biome       // BiomeNone before classification
	Entered   bool        // exploration bookkeeping
}

// Regions is the Voronoi-like partition of an outdoor map. Region ids are
// indices into Table: the region seeded in coarse block (u, v) has id
// u*Rows+v.
type Regions struct {
	Block int            // coarse block size
	Cols  int            // number of coarse blocks horizontally
	Rows  int            // number of coarse blocks vertically
	Table []Region       // region records
	Cells CacheGrid[int] // region id of every cell

	tree *kdtree.KDTree // nearest neighbour index over seeds
}

// site is a region seed as seen by the kd-tree.
type site struct {
	gruid.Point
	region int
}

func (s site) Dimensions() int {
	return 2
}

func (s site) Dimension(i int) float64 {
	if i == 0 {
		return float64(s.X)
	}
	return float64(s.Y)
}

// partition scatters one jittered seed per coarse block and assigns every
// cell to its nearest seed.
func partition(w, h, block int, rng *RNG) *Regions {
	rs := &Regions{
		Block: block,
		Cols:  w / block,
		Rows:  h / block,
		Cells: NewCacheGrid[int](w, h),
	}
	rs.Table = make([]Region, 0, rs.Cols*rs.Rows)
	for u := range rs.Cols {
		for v := range rs.Rows {
			x := u*block + rng.IntN(block)
			y := v*block + rng.IntN(block)
			rs.Table = append(rs.Table, Region{Seed: gruid.Point{x, y}, Elevation: -1})
		}
	}
	rs.buildTree()
	for y := range h {
		for x := range w {
			p := gruid.Point{x, y}
			rs.Cells.Set(p, rs.Nearest(p, 1)[0])
		}
	}
	return rs
}

func (rs *Regions) buildTree() {
	pts := make([]kdtree.Point, len(rs.Table))
	for i, rg := range rs.Table {
		pts[i] = site{Point: rg.Seed, region: i}
	}
	rs.tree = kdtree.New(pts)
}

// Nearest returns the ids of the k regions whose seeds are nearest to p,
// nearest first.
func (rs *Regions) Nearest(p gruid.Point, k int) []int {
	if rs.tree == nil {
		// Loaded from a save: the index is not serialized.
		rs.buildTree()
	}
	knn := rs.tree.KNN(site{Point: p, region: -1}, k)
	ids := make([]int, len(knn))
	for i, q := range knn {
		ids[i] = q.(site).region
	}
	return ids
}

// At returns the region id of p.
func (rs *Regions) At(p gruid.Point) int {
	return rs.Cells.At(p)
}

// Index returns the id of the region seeded in coarse block (u, v), or -1
// if the block is out of range.
func (rs *Regions) Index(u, v int) int {
	if u < 0 || u >= rs.Cols || v < 0 || v >= rs.Rows {
		return -1
	}
	return u*rs.Rows + v
}

// BlockOf returns the coarse block coordinates of region r.
func (rs *Regions) BlockOf(r int) (u, v int) {
	return r / rs.Rows, r % rs.Rows
}

// IsEdge reports whether region r is seeded in the outermost coarse band.
func (rs *Regions) IsEdge(r int) bool {
	u, v := rs.BlockOf(r)
	return u == 0 || v == 0 || u == rs.Cols-1 || v == rs.Rows-1
}

// Valid reports whether r is a region id.
func (rs *Regions) Valid(r int) bool {
	return r >= 0 && r < len(rs.Table)
}

// randomPosition returns a random position of region r near its seed.
func (rs *Regions) randomPosition(r int, rng *RNG) gruid.Point {
	seed := rs.Table[r].Seed
	for range maxIterations {
		p := gruid.Point{rng.Range(seed.X-5, seed.X+5), rng.Range(seed.Y-5, seed.Y+5)}
		if p.X < 0 || p.Y < 0 || p.X >= rs.Cells.W || p.Y >= rs.Cells.H {
			continue
		}
		if rs.At(p) == r {
			return p
		}
	}
	return seed
}

// regionBounds returns the smallest range containing every cell of the
// given regions.
func (rs *Regions) regionBounds(in func(r int) bool) gruid.Range {
	lo := gruid.Point{rs.Cells.W, rs.Cells.H}
	hi := gruid.Point{-1, -1}
	for y := range rs.Cells.H {
		for x := range rs.Cells.W {
			p := gruid.Point{x, y}
			if !in(rs.At(p)) {
				continue
			}
			lo.X = min(lo.X, x)
			lo.Y = min(lo.Y, y)
			hi.X = max(hi.X, x)
			hi.Y = max(hi.Y, y)
		}
	}
	if hi.X < 0 {
		return gruid.Range{}
	}
	return gruid.Range{Min: lo, Max: hi.Add(gruid.Point{1, 1})}
}
