// Package config provides centralized configuration constants for smarttask.
// All default values should be defined here to ensure a single source of truth.
package config

import (
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

const (
	// AppName is used for the binary, env prefix and XDG directory.
	AppName = "smarttask"

	// DirName is the local and global configuration directory name.
	DirName = ".smarttask"

	// ConfigName is the config file base name searched by viper.
	ConfigName = ".smarttask"

	// EnvPrefix prefixes every environment override, e.g. SMARTTASK_DATA_DIR.
	EnvPrefix = "SMARTTASK"

	// DataSubdir holds the data files below a configuration directory.
	DataSubdir = "data"

	// SessionFile records the logged-in student.
	SessionFile = "session.yaml"
)

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Defaults applied when neither a config file nor the environment sets a value.
const (
	DefaultBackend   = BackendFile
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "console"
	DefaultLogOutput = "stderr"
	DefaultLogFile   = "smarttask.log"
	DefaultCategory  = "Personal"
	DefaultPriority  = "medium"
)

// DefaultBcryptCost mirrors bcrypt's own default.
const DefaultBcryptCost = bcrypt.DefaultCost

// SetDefaults registers every default with viper.
func SetDefaults() {
	viper.SetDefault("data.backend", DefaultBackend)
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.format", DefaultLogFormat)
	viper.SetDefault("log.output", DefaultLogOutput)
	viper.SetDefault("log.file", DefaultLogFile)
	viper.SetDefault("auth.bcryptCost", DefaultBcryptCost)
	viper.SetDefault("display.defaultCategory", DefaultCategory)
	viper.SetDefault("display.defaultPriority", DefaultPriority)
}
