//go:build sdl

package main

import (
	"codeberg.org/anaseto/gruid"
	sdl "codeberg.org/anaseto/gruid-sdl"
)

var driver gruid.Driver

func initDriver(fullscreen bool, sx, sy float64) {
	tm := &fontTileManager{}
	dr := sdl.NewDriver(sdl.Config{
		TileManager: tm,
		Fullscreen:  fullscreen,
		WindowTitle: "Mountain",
		WindowIcon:  tm.render(gruid.Cell{Rune: '^', Style: gruid.Style{Fg: ColorOrange}}),
	})
	if sx != 1 || sy != 1 {
		dr.SetScale(float32(sx), float32(sy))
	}
	driver = dr
}

func clearCache() {
	dr := driver.(*sdl.Driver)
	dr.ClearCache()
}
