package config

import (
	"os"
	"path/filepath"
)

const appDirName = ".jot"

// DataDir returns the base data directory for jot.
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDirName), nil
}

// ConfigPath returns the path to the TOML settings file.
func ConfigPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "config.toml"), nil
}

// NotesPath returns the path to the JSON notes file used by the file backend.
func NotesPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "notes.json"), nil
}

// BoltPath returns the path to the bbolt database used by the bolt backend.
func BoltPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "notes.db"), nil
}

// LogPath returns the path to the log file. The UI owns stdout, so logs go
// to a file.
func LogPath() (string, error) {
	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "jot.log"), nil
}
