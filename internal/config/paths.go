package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// DataDirEnv overrides the data directory when set. Useful for
// running several instances side by side or keeping state on another
// volume.
const DataDirEnv = "LEVAO_DATA_DIR"

// DataDir returns the directory holding the config file and SQLite
// database. Resolution order:
//  1. $LEVAO_DATA_DIR when set
//  2. %APPDATA%\levao on Windows
//  3. ~/.levao everywhere else
func DataDir() string {
	if dir := os.Getenv(DataDirEnv); dir != "" {
		return dir
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "levao")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ".levao"
	}
	return filepath.Join(home, ".levao")
}

// DBPath returns the path to the SQLite database file.
func DBPath() string {
	return filepath.Join(DataDir(), "levao.db")
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0700)
}
