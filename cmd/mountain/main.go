//go:build !js

// Command mountain lets a player walk through a generated world. Maps beyond
// the mountain are generated as their entrances are taken.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"syscall"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/steppe/mountain"
)

func main() {
	optSeed := flag.Uint64("seed", 0, "world seed (default: random)")
	optNew := flag.Bool("new", false, "start a new world even if a saved one exists")
	optVersion := flag.Bool("version", false, "print build info")
	opt16colors := new(bool)
	opt256colors := new(bool)
	optTrueColor := new(bool)
	optFullscreen := new(bool)
	optWidthScale, optHeightScale := new(float64), new(float64)
	if Tiles {
		optFullscreen = flag.Bool("F", false, "fullscreen")
		optWidthScale = flag.Float64("w", 1.0, "window width scale factor (default: 1.0, examples: 0.75, 1.25)")
		optHeightScale = flag.Float64("h", 1.0, "window height scale factor (default: 1.0, examples: 0.75, 1.25)")
	} else {
		opt16colors = flag.Bool("s", false, "use standard 16-color palette (default on most systems)")
		opt256colors = flag.Bool("x", false, "use xterm 256-color palette (solarized approximation)")
		optTrueColor = flag.Bool("t", false, "use true color selenized palette (not supported by all terminals)")
	}
	flag.Parse()

	if *optVersion {
		fmt.Printf("mountain\t%v\n", Version)
		if bi, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(bi)
		}
		os.Exit(0)
	}
	if runtime.GOOS == "windows" {
		ColorMode = ColorMode8
	}
	switch {
	case *opt256colors:
		ColorMode = ColorMode256
	case *opt16colors:
		ColorMode = ColorMode16
	case *optTrueColor:
		ColorMode = ColorMode24bit
	}
	log.SetPrefix("mountain ")
	if err := InitConfig(); err != nil {
		log.Print(err)
	}
	n := *optSeed
	if n == 0 {
		n = rand.Uint64()
	}
	md, err := loadOrCreate(mountain.NewSeed(n), *optNew)
	if err != nil {
		log.Fatal(err)
	}
	initDriver(*optFullscreen, *optWidthScale, *optHeightScale)
	Run(md)
}

// loadOrCreate returns a model for the saved world, if any and if fresh is
// false, or for a new world from the given seed.
func loadOrCreate(seed mountain.Seed, fresh bool) (*model, error) {
	if !fresh {
		data, err := LoadWorld()
		if err != nil {
			log.Printf("loading saved world: %v", err)
		} else if data != nil {
			sv, w, err := decodeSave(data)
			if err == nil {
				return newModel(w, sv.Map, sv.Pos)
			}
			log.Printf("ignoring saved world: %v", err)
		}
	}
	w, err := mountain.NewWorld(mountain.DefaultConfig(), seed)
	if err != nil {
		return nil, err
	}
	root := w.Root()
	return newModel(w, root.ID, root.Start)
}

// Run starts the viewer application.
func Run(md *model) {
	app := gruid.NewApp(gruid.AppConfig{
		Driver: driver,
		Model:  md,
	})
	if f := setLogOutput(); f != nil {
		defer func() {
			f.Close()
		}()
	}
	err := app.Start(context.Background())
	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatal(err)
	}
}

// setLogOutput sets standard log output to the logs file in the data
// directory.
func setLogOutput() *os.File {
	dataDir, err := DataDir()
	if err != nil {
		log.Print(err)
		return nil
	}
	f, err := os.Create(filepath.Join(dataDir, "logs.txt"))
	if err != nil {
		log.Print(err)
		return nil
	}
	if Tiles {
		log.SetOutput(io.MultiWriter(f, os.Stderr))
	} else {
		log.SetOutput(f)
	}
	return f
}

// subSig is a subscription that intercepts SIGTERM for closing the viewer
// gracefully.
func subSig(ctx context.Context, msgs chan<- gruid.Msg) {
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sig)
	select {
	case <-ctx.Done():
	case <-sig:
		msgs <- gruid.MsgQuit{}
	}
}
