// Command mountainserve serves generated worlds over websockets.
//
// Clients send JSON requests {"type": ..., "payload": ...} on /ws: "new"
// with a seed, "map" with a map id, "traverse" with a map id and a
// position, "save" and "load" with a name, and "list".
package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"codeberg.org/steppe/mountain"
	"codeberg.org/steppe/mountain/internal/server"
	"codeberg.org/steppe/mountain/internal/store"
)

func main() {
	optAttempts := flag.Int("attempts", 0, "maximum generation attempts per map (0: default)")
	flag.Parse()
	log.SetPrefix("mountainserve ")

	cfg := mountain.DefaultConfig()
	if *optAttempts > 0 {
		cfg.MaxAttempts = *optAttempts
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	db, err := store.Open()
	if err != nil {
		log.Fatalf("Failed to initialize persistence: %v", err)
	}
	defer db.Close()

	http.Handle("/ws", server.New(cfg, db))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		db.Close()
		log.Fatal(err)
	}
}
