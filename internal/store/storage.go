// Package store keeps named world saves in a JSON file or in a PostgreSQL
// database.
package store

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"
)

// ErrNotFound is returned when no save has the requested name.
var ErrNotFound = errors.New("world not found")

// Record is a named world save. Data holds the encoded world.
type Record struct {
	Name      string    `json:"name"`
	Seed      string    `json:"seed"`
	Maps      int       `json:"maps"`
	Data      []byte    `json:"data"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Storage defines the interface for world save persistence. Implementations
// are safe for concurrent use.
type Storage interface {
	SaveWorld(rec *Record) error
	LoadWorld(name string) (*Record, error)
	ListWorlds() ([]string, error)
	DeleteWorld(name string) error
	Close() error
}

// Open returns the storage selected by the environment: PostgreSQL at
// DATABASE_URL when DB_TYPE is "postgres", a JSON file at DB_FILE otherwise.
func Open() (Storage, error) {
	switch dbType := os.Getenv("DB_TYPE"); dbType {
	case "postgres":
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			dsn = "host=localhost user=mountain password=mountain dbname=mountain sslmode=disable"
		}
		log.Println("Using PostgreSQL persistence")
		return NewPostgresStore(dsn)
	case "", "json":
		file := os.Getenv("DB_FILE")
		if file == "" {
			file = "worlds.json"
		}
		log.Println("Using JSON persistence")
		return NewJSONStore(file)
	default:
		return nil, fmt.Errorf("unknown DB_TYPE %q", dbType)
	}
}
