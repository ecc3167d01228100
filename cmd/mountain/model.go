// This file defines the model structure, as well as configuration and save
// encoding.

package main

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"log"
	"runtime"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/steppe/mountain"
	"github.com/zyedidia/generic/mapset"
)

const (
	UIWidth  = 80 // UI width
	UIHeight = 24 // UI height
)

// Version is the viewer version. Configs and saves of other versions are
// ignored.
const Version = "v0.1.0"

const sightRadius = 12

var ColorMode = ColorMode16 // default 16-color palette

// colorMode represents various color compatibility modes.
type colorMode int

const (
	ColorMode16    colorMode = iota
	ColorMode8               // use 8-color compatibility mode (default for windows)
	ColorMode256             // use solarized 256-color approximation
	ColorMode24bit           // use true color selenized palette
)

// ViewerConfig contains the current viewer config.
var ViewerConfig Config

// Config describes available configuration options.
type Config struct {
	DarkColors bool   // whether to use a dark color theme
	Version    string // config's viewer version
}

// ConfigSave returns encoded config data for saving.
func (c *Config) ConfigSave() ([]byte, error) {
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err := enc.Encode(c)
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

// DecodeConfigSave retrieves a config from data encoded with ConfigSave.
func DecodeConfigSave(data []byte) (*Config, error) {
	dec := gob.NewDecoder(bytes.NewReader(data))
	c := &Config{}
	if err := dec.Decode(c); err != nil {
		return nil, err
	}
	return c, nil
}

// InitConfig loads saved config, if any, and initializes ViewerConfig.
func InitConfig() error {
	ViewerConfig.DarkColors = true
	ViewerConfig.Version = Version
	_, err := LoadConfig()
	if err != nil {
		err = fmt.Errorf("error loading config: %v", err)
		if saverr := SaveConfig(); saverr != nil {
			log.Printf("error resetting badly loaded config: %v", saverr)
		}
	}
	return err
}

// viewerSave is the saved state of a viewer session: the world and where the
// player stands in it.
type viewerSave struct {
	Version string
	Map     mountain.MapID
	Pos     gruid.Point
	World   []byte
}

func encodeSave(w *mountain.World, id mountain.MapID, p gruid.Point) ([]byte, error) {
	wdata, err := w.Save()
	if err != nil {
		return nil, err
	}
	data := bytes.Buffer{}
	enc := gob.NewEncoder(&data)
	err = enc.Encode(&viewerSave{Version: Version, Map: id, Pos: p, World: wdata})
	if err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}

func decodeSave(data []byte) (*viewerSave, *mountain.World, error) {
	sv := &viewerSave{}
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(sv); err != nil {
		return nil, nil, err
	}
	if sv.Version != Version {
		return nil, nil, fmt.Errorf("incompatible save version %q", sv.Version)
	}
	w, err := mountain.LoadWorld(sv.World)
	if err != nil {
		return nil, nil, err
	}
	if _, err := w.Map(sv.Map); err != nil {
		return nil, nil, err
	}
	return sv, w, nil
}

// model implements gruid.Model: a player walking through a generated world.
type model struct {
	gd     gruid.Grid
	w      *mountain.World
	m      *mountain.Map           // current map
	pos    gruid.Point             // player position
	fov    mapset.Set[gruid.Point] // cells in view
	reveal bool                    // draw the whole map
	msg    string                  // last message
}

// newModel returns a model placing the player on the given map and position.
func newModel(w *mountain.World, id mountain.MapID, p gruid.Point) (*model, error) {
	m, err := w.Map(id)
	if err != nil {
		return nil, err
	}
	md := &model{gd: gruid.NewGrid(UIWidth, UIHeight), w: w, m: m, pos: p}
	md.enter()
	return md, nil
}

// enter records the player arrival at the current position.
func (md *model) enter() {
	m := md.m
	newArea, newElevation := m.Visit(md.pos)
	md.updateFOV()
	switch {
	case newElevation:
		md.msg = fmt.Sprintf("You climb to elevation %d.", m.Elevation(md.pos))
	case newArea && m.Outdoor != nil:
		rs := m.Outdoor.Regions
		md.msg = fmt.Sprintf("You enter a new %s area.", rs.Table[rs.At(md.pos)].Biome)
	case newArea:
		md.msg = "You enter a new room."
	}
	if pt := m.PortalAt(md.pos); pt != nil {
		md.msg = fmt.Sprintf("There is a %s here.", pt.Name)
	}
}

func (md *model) updateFOV() {
	md.fov = mapset.New[gruid.Point]()
	for _, p := range md.m.VisibleFrom(md.pos, sightRadius) {
		md.fov.Put(p)
		md.m.Explore(p)
	}
}

func (md *model) init() gruid.Effect {
	if runtime.GOOS == "js" {
		return nil
	}
	return gruid.Sub(subSig)
}

// Update implements gruid.Model.Update.
func (md *model) Update(msg gruid.Msg) gruid.Effect {
	switch msg := msg.(type) {
	case gruid.MsgInit:
		return md.init()
	case gruid.MsgQuit:
		md.save()
		return gruid.End()
	case gruid.MsgKeyDown:
		return md.updateKeyDown(msg)
	}
	return nil
}

var moveKeys = map[gruid.Key]gruid.Point{
	gruid.KeyArrowLeft:  {-1, 0},
	gruid.KeyArrowRight: {1, 0},
	gruid.KeyArrowUp:    {0, -1},
	gruid.KeyArrowDown:  {0, 1},
	"h":                 {-1, 0},
	"l":                 {1, 0},
	"k":                 {0, -1},
	"j":                 {0, 1},
	"y":                 {-1, -1},
	"u":                 {1, -1},
	"b":                 {-1, 1},
	"n":                 {1, 1},
}

func (md *model) updateKeyDown(msg gruid.MsgKeyDown) gruid.Effect {
	md.msg = ""
	if d, ok := moveKeys[msg.Key]; ok {
		md.move(d)
		return nil
	}
	switch msg.Key {
	case ">", "<", gruid.KeyEnter:
		md.traverse()
	case "x", "X":
		md.reveal = !md.reveal
	case "T":
		ViewerConfig.DarkColors = !ViewerConfig.DarkColors
		if err := SaveConfig(); err != nil {
			md.msg = fmt.Sprintf("Error saving config changes: %v", err)
		}
		clearCache()
		return gruid.Cmd(func() gruid.Msg { return gruid.MsgScreen{} })
	case "S":
		if md.save() {
			md.msg = "World saved."
		}
	case "q", "Q", gruid.KeyEscape:
		md.save()
		return gruid.End()
	}
	return nil
}

func (md *model) move(d gruid.Point) {
	m := md.m
	to := md.pos.Add(d)
	if !m.Contains(to) {
		return
	}
	if m.Interact(to) {
		md.msg = "You open the door."
		md.updateFOV()
		return
	}
	if m.BlockedFrom(md.pos, to) {
		if !m.Blocked(to) {
			md.msg = "It is too steep to climb there."
		} else {
			md.msg = fmt.Sprintf("The %s blocks the way.", mountain.TerrainName(m.Terrain.At(to)))
		}
		return
	}
	md.pos = to
	md.enter()
}

func (md *model) traverse() {
	if md.m.PortalAt(md.pos) == nil {
		md.msg = "There is no way out here."
		return
	}
	m, p, err := md.w.Traverse(md.m.ID, md.pos)
	if err != nil {
		log.Printf("traverse: %v", err)
		md.msg = fmt.Sprintf("The way is blocked: %v", err)
		return
	}
	md.m, md.pos = m, p
	md.enter()
	md.msg = fmt.Sprintf("You arrive in the %s.", md.m.Name)
}

// save stores the current state and reports whether it succeeded.
func (md *model) save() bool {
	data, err := encodeSave(md.w, md.m.ID, md.pos)
	if err == nil {
		err = SaveWorld(data)
	}
	if err != nil {
		log.Printf("saving: %v", err)
		md.msg = fmt.Sprintf("Could not save: %v", err)
		return false
	}
	return true
}

// Draw implements gruid.Model.Draw.
func (md *model) Draw() gruid.Grid {
	md.gd.Fill(gruid.Cell{Rune: ' '})
	md.drawMessage(md.gd.Slice(md.gd.Range().Line(0)))
	md.drawMap(md.gd.Slice(md.gd.Range().Shift(0, 1, 0, -1)))
	md.drawStatus(md.gd.Slice(md.gd.Range().Line(UIHeight - 1)))
	return md.gd
}
