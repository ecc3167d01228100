package main

import (
	"codeberg.org/anaseto/gruid"
	"codeberg.org/anaseto/gruid/rl"
	"codeberg.org/steppe/mountain"
)

// These are the colors of the main palette. They use 16-palette color numbers
// compatible with terminals, and are mapped to finer colors depending on
// options and the driver.
const (
	ColorBackground          gruid.Color = gruid.ColorDefault
	ColorBackgroundSecondary gruid.Color = 1 + 0 // black
	ColorForeground          gruid.Color = gruid.ColorDefault
	ColorForegroundSecondary gruid.Color = 1 + 7  // white
	ColorForegroundEmph      gruid.Color = 1 + 15 // bright white
	ColorRed                 gruid.Color = 1 + 9  // bright red
	ColorGreen               gruid.Color = 1 + 2
	ColorYellow              gruid.Color = 1 + 3
	ColorBlue                gruid.Color = 1 + 4
	ColorMagenta             gruid.Color = 1 + 5
	ColorCyan                gruid.Color = 1 + 6
	ColorOrange              gruid.Color = 1 + 1  // red
	ColorViolet              gruid.Color = 1 + 12 // bright blue
)

// Those constants represent available styling attributes.
const (
	AttrInMap gruid.AttrMask = 1 << iota
	AttrReverse
	AttrBold
)

func terrainColor(t rl.Cell) gruid.Color {
	switch t {
	case mountain.Wall, mountain.Boulder:
		return ColorForegroundSecondary
	case mountain.Floor:
		return ColorForegroundEmph
	case mountain.Water:
		return ColorBlue
	case mountain.Slope:
		return ColorOrange
	case mountain.Reeds:
		return ColorCyan
	case mountain.Saxaul, mountain.Nitraria, mountain.Poplar:
		return ColorGreen
	case mountain.Ephedra:
		return ColorYellow
	default:
		return ColorForeground
	}
}

func objectColor(k mountain.ObjectKind) gruid.Color {
	switch k {
	case mountain.ObjClosedDoor, mountain.ObjOpenDoor:
		return ColorYellow
	default:
		return ColorMagenta
	}
}

// cellAt returns the map cell drawn at p. Remembered cells outside the field
// of view are drawn with the secondary background.
func cellAt(m *mountain.Map, p gruid.Point, inFOV bool) gruid.Cell {
	st := gruid.Style{Fg: terrainColor(m.Terrain.At(p)), Bg: ColorBackground, Attrs: AttrInMap}
	if objs := m.ObjectsAt(p); len(objs) > 0 {
		st.Fg = objectColor(objs[len(objs)-1].Kind)
	}
	if !inFOV {
		st.Bg = ColorBackgroundSecondary
	}
	return gruid.Cell{Rune: m.RuneAt(p), Style: st}
}

// rgb is a true color value.
type rgb struct{ R, G, B uint8 }

// selenized maps palette colors to their dark and light theme values from
// the selenized palette:
//
//	https://github.com/jan-warchol/selenized
var selenized = map[gruid.Color][2]rgb{
	ColorBackgroundSecondary: {{24, 73, 86}, {236, 227, 204}},
	ColorRed:                 {{250, 87, 80}, {210, 33, 45}},
	ColorGreen:               {{117, 185, 56}, {72, 145, 0}},
	ColorYellow:              {{219, 179, 45}, {173, 137, 0}},
	ColorBlue:                {{88, 163, 255}, {0, 114, 212}}, // bright version in dark theme
	ColorMagenta:             {{242, 117, 190}, {202, 72, 152}},
	ColorCyan:                {{65, 199, 185}, {0, 156, 143}},
	ColorOrange:              {{237, 134, 73}, {194, 93, 30}},
	ColorViolet:              {{175, 136, 235}, {135, 98, 198}},
	ColorForegroundEmph:      {{202, 216, 217}, {58, 77, 83}},
	ColorForegroundSecondary: {{114, 137, 143}, {144, 153, 149}},
}

var (
	selenizedFg = [2]rgb{{173, 188, 188}, {83, 103, 109}}
	selenizedBg = [2]rgb{{16, 60, 72}, {251, 243, 219}}
)

// paletteRGB returns the true color of c in the current theme.
func paletteRGB(c gruid.Color, fg bool) rgb {
	theme := 0
	if !ViewerConfig.DarkColors {
		theme = 1
	}
	if cl, ok := selenized[c]; ok {
		return cl[theme]
	}
	if fg {
		return selenizedFg[theme]
	}
	return selenizedBg[theme]
}
