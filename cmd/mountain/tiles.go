//go:build js || sdl

package main

import (
	"image"
	"image/color"

	"codeberg.org/anaseto/gruid"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const Tiles = true

// tileScale is the factor applied to glyphs of the base font.
const tileScale = 2

// ColorToRGBA maps palette colors to the selenized palette.
func ColorToRGBA(c gruid.Color, fg bool) color.Color {
	cl := paletteRGB(c, fg)
	return color.RGBA{cl.R, cl.G, cl.B, 255}
}

// fontTileManager draws cells with a fixed bitmap font.
type fontTileManager struct{}

func (tm *fontTileManager) TileSize() gruid.Point {
	face := basicfont.Face7x13
	return gruid.Point{tileScale * face.Advance, tileScale * face.Height}
}

func (tm *fontTileManager) GetImage(gc gruid.Cell) image.Image {
	return tm.render(gc)
}

func (tm *fontTileManager) render(gc gruid.Cell) *image.RGBA {
	face := basicfont.Face7x13
	bgc := ColorToRGBA(gc.Style.Bg, false)
	fgc := ColorToRGBA(gc.Style.Fg, true)
	if gc.Style.Attrs&AttrReverse != 0 {
		fgc, bgc = bgc, fgc
	}
	glyph := image.NewRGBA(image.Rect(0, 0, face.Advance, face.Height))
	draw.Draw(glyph, glyph.Bounds(), image.NewUniform(bgc), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  glyph,
		Src:  image.NewUniform(fgc),
		Face: face,
		Dot:  fixed.P(0, face.Ascent),
	}
	d.DrawString(string(gc.Rune))
	if gc.Style.Attrs&AttrBold != 0 {
		d.Dot = fixed.P(1, face.Ascent)
		d.DrawString(string(gc.Rune))
	}
	size := tm.TileSize()
	img := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	draw.NearestNeighbor.Scale(img, img.Bounds(), glyph, glyph.Bounds(), draw.Src, nil)
	return img
}
