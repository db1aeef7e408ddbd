package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.smarttask).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName), nil
}

// GetConfigDir returns the directory holding session state and crash logs:
// the local .smarttask directory when it exists, the global one otherwise.
func GetConfigDir() string {
	if info, err := os.Stat(DirName); err == nil && info.IsDir() {
		return DirName
	}
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return DirName
	}
	return dir
}

// GetDataDir returns the directory holding students.txt and tasks.txt.
// Resolution order (first match wins):
// 1. Explicit config via "data.dir" (Viper/env/flag)
// 2. Local directory: .smarttask/data (if exists)
// 3. XDG_DATA_HOME/smarttask (if XDG_DATA_HOME is set)
// 4. Global fallback: ~/.smarttask/data
func GetDataDir() string {
	if path := viper.GetString("data.dir"); path != "" {
		return path
	}

	localData := filepath.Join(DirName, DataSubdir)
	if info, err := os.Stat(localData); err == nil && info.IsDir() {
		return localData
	}

	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return filepath.Join(xdgData, AppName)
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "./" + DataSubdir
	}
	return filepath.Join(dir, DataSubdir)
}

// ResolveLogFile makes a relative log.file path relative to the config dir.
func ResolveLogFile(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(GetConfigDir(), path)
}
