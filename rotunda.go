package mountain

import (
	"log"
	"strings"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
)

const rotundaTemplate = `
.......
.#,#,#.
.,,,,,.
.#,,,#.
.,,,,,.
.#,#,#.
.......`

// placeRotunda builds the summit rotunda centred on the peak. Cells of the
// footprint join the peak region, so that the whole rotunda stands at the
// summit elevation.
func (m *Map) placeRotunda(peak gruid.Point) {
	v := &rl.Vault{}
	if err := v.Parse(strings.TrimSpace(rotundaTemplate)); err != nil {
		log.Printf("mapgen: bad rotunda vault: %v", err)
		return
	}
	rs := m.Outdoor.Regions
	summit := rs.At(peak)
	sz := v.Size()
	org := peak.Sub(gruid.Point{sz.X / 2, sz.Y / 2})
	footprint := gruid.NewRange(org.X, org.Y, org.X+sz.X, org.Y+sz.Y).Intersect(m.Range())
	for y := footprint.Min.Y; y < footprint.Max.Y; y++ {
		for x := footprint.Min.X; x < footprint.Max.X; x++ {
			p := gruid.Point{x, y}
			if rs.Table[rs.At(p)].Elevation != maxElevation {
				rs.Cells.Set(p, summit)
			}
		}
	}
	m.refreshSlopes(gruid.NewRange(peak.X-4, peak.Y-4, peak.X+5, peak.Y+5), nil)
	v.Iter(func(q gruid.Point, c rune) {
		p := org.Add(q)
		if !m.Contains(p) {
			return
		}
		switch c {
		case '.':
			m.openGround(p)
		case ',':
			m.Terrain.Set(p, Floor)
		case '#':
			m.Terrain.Set(p, Wall)
		}
	})
}
