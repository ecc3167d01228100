package store

import (
	"fmt"

	"codeberg.org/steppe/mountain"
)

// Put encodes w and saves it under name.
func Put(s Storage, name string, w *mountain.World) error {
	data, err := w.Save()
	if err != nil {
		return fmt.Errorf("encoding world %q: %w", name, err)
	}
	return s.SaveWorld(&Record{
		Name: name,
		Seed: fmt.Sprintf("%016x%016x", w.Seed.Hi, w.Seed.Lo),
		Maps: len(w.Maps),
		Data: data,
	})
}

// Get loads and decodes the world saved under name.
func Get(s Storage, name string) (*mountain.World, error) {
	rec, err := s.LoadWorld(name)
	if err != nil {
		return nil, err
	}
	w, err := mountain.LoadWorld(rec.Data)
	if err != nil {
		return nil, fmt.Errorf("decoding world %q: %w", name, err)
	}
	return w, nil
}
