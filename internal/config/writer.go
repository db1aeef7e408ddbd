package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrConfigExists is returned when a config file is already present and overwrite was not requested.
var ErrConfigExists = errors.New("config file already exists")

type fileConfig struct {
	Data struct {
		Dir     string `yaml:"dir,omitempty"`
		Backend string `yaml:"backend"`
	} `yaml:"data"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		Output string `yaml:"output"`
		File   string `yaml:"file"`
	} `yaml:"log"`
	Auth struct {
		BcryptCost int `yaml:"bcryptCost"`
	} `yaml:"auth"`
	Display struct {
		DefaultCategory string `yaml:"defaultCategory"`
		DefaultPriority string `yaml:"defaultPriority"`
	} `yaml:"display"`
}

func defaultFileConfig() fileConfig {
	var fc fileConfig
	fc.Data.Backend = DefaultBackend
	fc.Log.Level = DefaultLogLevel
	fc.Log.Format = DefaultLogFormat
	fc.Log.Output = DefaultLogOutput
	fc.Log.File = DefaultLogFile
	fc.Auth.BcryptCost = DefaultBcryptCost
	fc.Display.DefaultCategory = DefaultCategory
	fc.Display.DefaultPriority = DefaultPriority
	return fc
}

// DefaultConfigPath is where `config init` writes when no path is given.
func DefaultConfigPath() (string, error) {
	dir, err := GetGlobalConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigName+".yaml"), nil
}

// WriteDefaultConfig writes a commented config file holding every default.
func WriteDefaultConfig(path string, overwrite bool) error {
	if path == "" {
		return fmt.Errorf("config path cannot be empty")
	}
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}

	body, err := yaml.Marshal(defaultFileConfig())
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	content := "# smarttask configuration\n# Every key can be overridden with SMARTTASK_<SECTION>_<KEY>.\n" + string(body)
	return os.WriteFile(path, []byte(content), 0644)
}
