package store

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"sync"
	"time"
)

// JSONStore keeps world saves in a local JSON file.
type JSONStore struct {
	filePath string
	mutex    sync.RWMutex
	worlds   map[string]*Record
}

// NewJSONStore opens the JSON store at filePath, creating the file if it
// does not exist.
func NewJSONStore(filePath string) (*JSONStore, error) {
	js := &JSONStore{
		filePath: filePath,
		worlds:   make(map[string]*Record),
	}
	if _, err := os.Stat(filePath); err == nil {
		if err := js.loadFromFile(); err != nil {
			return nil, fmt.Errorf("loading JSON store: %w", err)
		}
		return js, nil
	}
	if err := js.saveToFile(); err != nil {
		return nil, fmt.Errorf("creating JSON store file: %w", err)
	}
	return js, nil
}

func (js *JSONStore) loadFromFile() error {
	data, err := os.ReadFile(js.filePath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &js.worlds)
}

// saveToFile writes the whole store. The caller holds the lock.
func (js *JSONStore) saveToFile() error {
	data, err := json.MarshalIndent(js.worlds, "", "  ")
	if err != nil {
		return err
	}
	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, js.filePath)
}

// SaveWorld saves a record, replacing any record of the same name. The
// store is left unchanged when the file cannot be written.
func (js *JSONStore) SaveWorld(rec *Record) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()
	r := *rec
	r.UpdatedAt = time.Now().UTC()
	old, had := js.worlds[r.Name]
	js.worlds[r.Name] = &r
	if err := js.saveToFile(); err != nil {
		if had {
			js.worlds[r.Name] = old
		} else {
			delete(js.worlds, r.Name)
		}
		return err
	}
	return nil
}

// LoadWorld returns a copy of the record with the given name.
func (js *JSONStore) LoadWorld(name string) (*Record, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	rec, ok := js.worlds[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	r := *rec
	return &r, nil
}

// ListWorlds returns the names of the saved worlds, sorted.
func (js *JSONStore) ListWorlds() ([]string, error) {
	js.mutex.RLock()
	defer js.mutex.RUnlock()
	names := make([]string, 0, len(js.worlds))
	for name := range js.worlds {
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}

// DeleteWorld removes the record with the given name.
func (js *JSONStore) DeleteWorld(name string) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()
	old, ok := js.worlds[name]
	if !ok {
		return fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	delete(js.worlds, name)
	if err := js.saveToFile(); err != nil {
		js.worlds[name] = old
		return err
	}
	return nil
}

// Close closes the store (no-op for the JSON store).
func (js *JSONStore) Close() error {
	return nil
}
