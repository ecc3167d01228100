package mountain

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

// VisibleFrom returns the cells visible from src within the given radius.
// Opaque terrain and objects block sight. Outdoors, regions more than one
// elevation step above the viewer block sight too.
func (m *Map) VisibleFrom(src gruid.Point, radius int) []gruid.Point {
	if !m.Contains(src) {
		return nil
	}
	rg := gruid.NewRange(-radius, -radius, radius+1, radius+1)
	fov := rl.NewFOV(rg.Add(src).Intersect(m.Range()))
	el := m.Elevation(src)
	transparent := func(p gruid.Point) bool {
		if !m.Contains(p) || BlocksSight(m.Terrain.At(p)) {
			return false
		}
		if m.Outdoor != nil && m.Elevation(p) > el+1 {
			return false
		}
		for _, o := range m.Objects {
			if o.P == p && o.BlocksSight {
				return false
			}
		}
		return true
	}
	return fov.SSCVisionMap(src, radius, transparent, false)
}
