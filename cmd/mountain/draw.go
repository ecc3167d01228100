package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/ui"
)

// camera returns the map position drawn at the top-left corner of a view of
// the given size, keeping the player centered when the map is larger than
// the view.
func (md *model) camera(size gruid.Point) gruid.Point {
	clamp := func(p, view, n int) int {
		if n <= view {
			return 0
		}
		return max(0, min(p-view/2, n-view))
	}
	return gruid.Point{clamp(md.pos.X, size.X, md.m.W), clamp(md.pos.Y, size.Y, md.m.H)}
}

func (md *model) drawMap(gd gruid.Grid) {
	m := md.m
	size := gd.Size()
	cam := md.camera(size)
	for y := range size.Y {
		for x := range size.X {
			p := gruid.Point{x, y}
			q := p.Add(cam)
			if !m.Contains(q) {
				continue
			}
			inFOV := md.fov.Has(q)
			if !inFOV && !md.reveal && !m.IsExplored(q) {
				continue
			}
			gd.Set(p, cellAt(m, q, inFOV || md.reveal))
		}
	}
	gd.Set(md.pos.Sub(cam), gruid.Cell{
		Rune:  '@',
		Style: gruid.Style{Fg: ColorForegroundEmph, Bg: ColorBackground, Attrs: AttrInMap | AttrBold},
	})
}

func (md *model) drawMessage(gd gruid.Grid) {
	ui.Text(md.msg).WithStyle(gruid.Style{Fg: ColorForegroundEmph}).Draw(gd)
}

func (md *model) drawStatus(gd gruid.Grid) {
	m := md.m
	st := gruid.Style{Fg: ColorForegroundSecondary}
	stt := ui.Textf("%s (level %d) %d,%d", m.Name, m.Level, md.pos.X, md.pos.Y).WithStyle(st)
	if m.Outdoor != nil {
		rs := m.Outdoor.Regions
		r := rs.Table[rs.At(md.pos)]
		stt = ui.Textf("%s (level %d) %d,%d %s elevation %d", m.Name, m.Level, md.pos.X, md.pos.Y, r.Biome, r.Elevation).WithStyle(st)
	}
	stt.Draw(gd)
	if md.reveal {
		ui.Text("[reveal]").WithStyle(gruid.Style{Fg: ColorYellow}).Draw(gd.Slice(gd.Range().Columns(UIWidth-8, UIWidth)))
	}
}
