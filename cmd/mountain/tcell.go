//go:build !sdl && !js

package main

import (
	"codeberg.org/anaseto/gruid"
	tcell "codeberg.org/anaseto/gruid-tcell"
	tc "github.com/gdamore/tcell/v2"
)

const Tiles = false

var driver gruid.Driver

func initDriver(_ bool, _, _ float64) {
	driver = tcell.NewDriver(tcell.Config{StyleManager: styler{}})
}

// styler implements the tcell.StyleManager interface.
type styler struct{}

func (sty styler) GetStyle(cst gruid.Style) tc.Style {
	st := tc.StyleDefault
	switch ColorMode {
	case ColorMode256:
		st = st.Foreground(tc.ColorValid + tc.Color(map16ColorTo256(cst.Fg, true)))
		st = st.Background(tc.ColorValid + tc.Color(map16ColorTo256(cst.Bg, false)))
	case ColorMode24bit:
		fg := paletteRGB(cst.Fg, true)
		bg := paletteRGB(cst.Bg, false)
		st = st.Foreground(tc.NewRGBColor(int32(fg.R), int32(fg.G), int32(fg.B)))
		st = st.Background(tc.NewRGBColor(int32(bg.R), int32(bg.G), int32(bg.B)))
	default:
		// ColorMode16 & ColorMode8
		if !ViewerConfig.DarkColors {
			cst.Fg = map16ColorToLight(cst.Fg)
			cst.Bg = map16ColorToLight(cst.Bg)
		}
		if ColorMode == ColorMode8 {
			cst.Fg = map16ColorTo8Color(cst.Fg)
			cst.Bg = map16ColorTo8Color(cst.Bg)
		}
		st = st.Foreground(tcellColor(cst.Fg)).Background(tcellColor(cst.Bg))
	}
	if cst.Attrs&AttrReverse != 0 {
		st = st.Reverse(true)
	}
	if cst.Attrs&AttrBold != 0 {
		st = st.Bold(true)
	}
	return st
}

// tcellColor converts a 16-palette color. Palette colors are shifted by one
// so that zero is the terminal default.
func tcellColor(c gruid.Color) tc.Color {
	if c == gruid.ColorDefault {
		return tc.ColorDefault
	}
	return tc.ColorValid + tc.Color(c) - 1
}

func map16ColorTo8Color(c gruid.Color) gruid.Color {
	if c >= 1+8 {
		c -= 8
	}
	return c
}

func map16ColorToLight(c gruid.Color) gruid.Color {
	switch c {
	case ColorBackgroundSecondary:
		return ColorForegroundEmph
	case ColorForegroundSecondary, ColorForegroundEmph:
		return ColorBackgroundSecondary
	default:
		return c
	}
}

// xterm solarized approximations, indexed by theme (dark, light):
// http://ethanschoonover.com/solarized
var solarized256 = map[gruid.Color][2]gruid.Color{
	ColorBackgroundSecondary: {235, 254},
	ColorForegroundEmph:      {245, 240},
	ColorForegroundSecondary: {240, 245},
	ColorYellow:              {136, 136},
	ColorOrange:              {166, 166},
	ColorRed:                 {160, 160},
	ColorMagenta:             {125, 125},
	ColorViolet:              {61, 61},
	ColorBlue:                {33, 33},
	ColorCyan:                {37, 37},
	ColorGreen:               {64, 64},
}

func map16ColorTo256(c gruid.Color, fg bool) gruid.Color {
	theme := 0
	if !ViewerConfig.DarkColors {
		theme = 1
	}
	if cl, ok := solarized256[c]; ok {
		return cl[theme]
	}
	// default foreground and background
	if fg {
		return [2]gruid.Color{244, 241}[theme]
	}
	return [2]gruid.Color{234, 230}[theme]
}

func clearCache() {
	// do nothing
}
