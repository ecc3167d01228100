package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore keeps world saves in a PostgreSQL database.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and creates the schema if
// needed.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	ps := &PostgresStore{db: db}
	if err := ps.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return ps, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS worlds (
		name TEXT PRIMARY KEY,
		seed TEXT NOT NULL,
		maps INTEGER NOT NULL,
		data BYTEA NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

// SaveWorld saves a record, replacing any record of the same name.
func (ps *PostgresStore) SaveWorld(rec *Record) error {
	query := `
	INSERT INTO worlds (name, seed, maps, data)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (name)
	DO UPDATE SET
		seed = $2, maps = $3, data = $4,
		updated_at = NOW()
	`
	_, err := ps.db.Exec(query, rec.Name, rec.Seed, rec.Maps, rec.Data)
	if err != nil {
		return fmt.Errorf("saving world %q: %w", rec.Name, err)
	}
	return nil
}

// LoadWorld returns the record with the given name.
func (ps *PostgresStore) LoadWorld(name string) (*Record, error) {
	query := `SELECT name, seed, maps, data, updated_at FROM worlds WHERE name = $1`
	var rec Record
	err := ps.db.QueryRow(query, name).Scan(&rec.Name, &rec.Seed, &rec.Maps, &rec.Data, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading world %q: %w", name, err)
	}
	return &rec, nil
}

// ListWorlds returns the names of the saved worlds, sorted.
func (ps *PostgresStore) ListWorlds() ([]string, error) {
	rows, err := ps.db.Query(`SELECT name FROM worlds ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing worlds: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteWorld removes the record with the given name.
func (ps *PostgresStore) DeleteWorld(name string) error {
	res, err := ps.db.Exec(`DELETE FROM worlds WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("deleting world %q: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return nil
}

// Close closes the database connection.
func (ps *PostgresStore) Close() error {
	log.Println("Closing database connection...")
	return ps.db.Close()
}
