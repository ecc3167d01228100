//go:build js

package main

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"math/rand/v2"
	"syscall/js"

	"codeberg.org/anaseto/gruid"
	jsd "codeberg.org/anaseto/gruid-js"
	"codeberg.org/steppe/mountain"
)

var driver gruid.Driver

func initDriver() {
	driver = jsd.NewDriver(jsd.Config{
		TileManager: &fontTileManager{},
		AppCanvasId: "gamecanvas",
		AppDivId:    "gamediv",
	})
}

func clearCache() {
	dr := driver.(*jsd.Driver)
	dr.ClearCache()
}

func main() {
	initDriver()
	log.SetPrefix("mountain ")
	if err := InitConfig(); err != nil {
		log.Print(err)
	}
	md, err := loadOrCreate()
	if err != nil {
		log.Fatal(err)
	}
	app := gruid.NewApp(gruid.AppConfig{
		Driver: driver,
		Model:  md,
	})
	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
}

// loadOrCreate returns a model for the world saved in local storage, or for
// a new random world.
func loadOrCreate() (*model, error) {
	if data, err := LoadWorld(); err == nil && data != nil {
		sv, w, err := decodeSave(data)
		if err == nil {
			return newModel(w, sv.Map, sv.Pos)
		}
		log.Printf("ignoring saved world: %v", err)
	}
	w, err := mountain.NewWorld(mountain.DefaultConfig(), mountain.NewSeed(rand.Uint64()))
	if err != nil {
		return nil, err
	}
	root := w.Root()
	return newModel(w, root.ID, root.Start)
}

// GetItem retrieves a base64 encoded item from localStorage. It returns nil if
// the item does not exist in the storage. It returns an error if localStorage
// is not available, or an item existed but could not be decoded.
func GetItem(item string) ([]byte, error) {
	storage := js.Global().Get("localStorage")
	if storage.Type() != js.TypeObject {
		return nil, errors.New("localStorage not found")
	}
	v := storage.Call("getItem", item)
	if v.Type() != js.TypeString {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(v.String())
}

// SetItem sets an item to a given value in the localStorage. The value will be
// base64 encoded.
func SetItem(item string, value []byte) error {
	storage := js.Global().Get("localStorage")
	if storage.Type() != js.TypeObject {
		return errors.New("localStorage not found")
	}
	storage.Call("setItem", item, base64.StdEncoding.EncodeToString(value))
	return nil
}

// RemoveItem removes an item from localStorage.
func RemoveItem(item string) {
	storage := js.Global().Get("localStorage")
	if storage.Type() != js.TypeObject {
		log.Print("localStorage not found")
		return
	}
	storage.Call("removeItem", item)
}

const (
	worldItem  = "mountainsave"
	configItem = "mountainconfig"
)

// SaveWorld stores encoded viewer state in local storage.
func SaveWorld(data []byte) error {
	return SetItem(worldItem, data)
}

// LoadWorld returns the viewer state stored in local storage, or nil.
func LoadWorld() ([]byte, error) {
	return GetItem(worldItem)
}

// SaveConfig saves the viewer's config to local storage.
func SaveConfig() error {
	data, err := ViewerConfig.ConfigSave()
	if err != nil {
		return err
	}
	return SetItem(configItem, data)
}

// LoadConfig loads the viewer's config from local storage.
func LoadConfig() (bool, error) {
	data, err := GetItem(configItem)
	if err != nil || data == nil {
		return false, err
	}
	c, err := DecodeConfigSave(data)
	if err != nil {
		return false, err
	}
	if c.Version != ViewerConfig.Version {
		log.Print("ignoring incompatible old config")
		RemoveItem(configItem)
		return false, nil
	}
	ViewerConfig = *c
	return true, nil
}

// subSig is defined for build compatibility purposes, it is not used for the
// js backend.
func subSig(ctx context.Context, msgs chan<- gruid.Msg) {
}
