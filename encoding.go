package mountain

import (
	"bytes"
	"compress/zlib"
	"encoding/gob"
	"fmt"
)

// SaveVersion identifies the save format. Saves of another version are
// rejected.
const SaveVersion = "mountain-1"

type worldSave struct {
	Version string
	World   *World
}

// Save returns encoded world data: every generated map, with its portals,
// objects and exploration state.
func (w *World) Save() ([]byte, error) {
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err := enc.Encode(&worldSave{Version: SaveVersion, World: w})
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	zw.Write(data.Bytes())
	err = zw.Close()
	return buf.Bytes(), err
}

// LoadWorld retrieves a world from data encoded with Save.
func LoadWorld(data []byte) (*World, error) {
	buf := bytes.NewReader(data)
	r, err := zlib.NewReader(buf)
	if err != nil {
		return nil, err
	}
	dec := gob.NewDecoder(r)
	ws := &worldSave{}
	err = dec.Decode(ws)
	if err != nil {
		return nil, err
	}
	if ws.Version != SaveVersion {
		return nil, fmt.Errorf("save version %q: expected %q", ws.Version, SaveVersion)
	}
	if ws.World == nil || len(ws.World.Maps) == 0 {
		return nil, fmt.Errorf("save without maps")
	}
	err = r.Close()
	return ws.World, err
}
