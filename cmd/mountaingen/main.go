// Command mountaingen generates a world and prints or stores it.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"codeberg.org/steppe/mountain"
	"codeberg.org/steppe/mountain/internal/store"
)

func main() {
	optSeed := flag.Uint64("seed", 1, "world seed")
	optDump := flag.Bool("d", false, "print the maps")
	optDeep := flag.Bool("a", false, "generate every map reachable from the mountain")
	optOut := flag.String("o", "", "write the encoded world to the given file")
	optSave := flag.String("save", "", "store the world under the given name (see DB_TYPE)")
	optLoad := flag.String("load", "", "load the world stored under the given name instead of generating one")
	optList := flag.Bool("list", false, "list stored worlds")
	optVersion := flag.Bool("version", false, "print build info")
	flag.Parse()
	log.SetPrefix("mountaingen ")

	if *optVersion {
		if bi, ok := debug.ReadBuildInfo(); ok {
			fmt.Print(bi)
		}
		return
	}

	var db store.Storage
	if *optSave != "" || *optLoad != "" || *optList {
		var err error
		db, err = store.Open()
		if err != nil {
			log.Fatalf("opening store: %v", err)
		}
		defer db.Close()
	}
	if *optList {
		names, err := db.ListWorlds()
		if err != nil {
			log.Fatal(err)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return
	}

	var w *mountain.World
	var err error
	if *optLoad != "" {
		w, err = store.Get(db, *optLoad)
	} else {
		w, err = mountain.NewWorld(mountain.DefaultConfig(), mountain.NewSeed(*optSeed))
	}
	if err != nil {
		log.Fatal(err)
	}
	if *optDeep {
		if err := expand(w); err != nil {
			log.Fatal(err)
		}
	}
	for _, m := range w.Maps {
		fmt.Print(m.Summary())
		if *optDump {
			fmt.Println(m)
		}
		fmt.Println()
	}
	if *optOut != "" {
		data, err := w.Save()
		if err != nil {
			log.Fatal(err)
		}
		if err := os.WriteFile(*optOut, data, 0644); err != nil {
			log.Fatal(err)
		}
	}
	if *optSave != "" {
		if err := store.Put(db, *optSave, w); err != nil {
			log.Fatal(err)
		}
	}
}

// expand traverses every portal of every map, breadth first, so that the
// whole world gets generated.
func expand(w *mountain.World) error {
	for i := 0; i < len(w.Maps); i++ {
		m := w.Maps[i]
		for _, pt := range m.Portals {
			if pt.Resolved() {
				continue
			}
			if _, _, err := w.Traverse(m.ID, pt.P); err != nil {
				return err
			}
		}
	}
	return nil
}
