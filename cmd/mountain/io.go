//go:build !js

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// DataDir returns the viewer's data directory location.
func DataDir() (string, error) {
	var xdg string
	if runtime.GOOS == "windows" {
		xdg = os.Getenv("LOCALAPPDATA")
	} else {
		xdg = os.Getenv("XDG_DATA_HOME")
	}
	if xdg == "" {
		xdg = filepath.Join(os.Getenv("HOME"), ".local", "share")
	}
	dataDir := filepath.Join(xdg, "mountain")
	if _, err := os.Stat(dataDir); err != nil {
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			return "", fmt.Errorf("building data directory: %v", err)
		}
	}
	return dataDir, nil
}

// SaveFile writes data to the given file of the data directory, going through
// a temporary file so that an interrupted write leaves the old file intact.
func SaveFile(filename string, data []byte) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	tempFile := filepath.Join(dataDir, "temp-"+filename)
	f, err := os.OpenFile(tempFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tempFile, filepath.Join(dataDir, filename))
}

// readFile returns the content of the given file of the data directory, or
// nil if it does not exist.
func readFile(filename string) ([]byte, error) {
	dataDir, err := DataDir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dataDir, filename))
	if os.IsNotExist(err) {
		return nil, nil
	}
	return data, err
}

// SaveWorld writes encoded viewer state to the save file.
func SaveWorld(data []byte) error {
	return SaveFile("save", data)
}

// LoadWorld returns the content of the save file, or nil if there is none.
func LoadWorld() ([]byte, error) {
	return readFile("save")
}

// SaveConfig saves the viewer's config to the config file.
func SaveConfig() error {
	data, err := ViewerConfig.ConfigSave()
	if err != nil {
		return err
	}
	return SaveFile("config", data)
}

// LoadConfig loads the viewer's config from the config file.
func LoadConfig() (bool, error) {
	data, err := readFile("config")
	if err != nil || data == nil {
		return false, err
	}
	c, err := DecodeConfigSave(data)
	if err != nil {
		return false, err
	}
	if c.Version != ViewerConfig.Version {
		log.Print("ignoring incompatible old config")
		if err := RemoveDataFile("config"); err != nil {
			log.Printf("removing old config: %v", err)
		}
		return false, nil
	}
	ViewerConfig = *c
	return true, nil
}

// RemoveDataFile removes the given file in the data directory.
func RemoveDataFile(file string) error {
	dataDir, err := DataDir()
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(dataDir, file))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
