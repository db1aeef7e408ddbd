/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose bool          `mapstructure:"verbose"`
	Config  string        `mapstructure:"config"`
	Data    DataConfig    `mapstructure:"data" validate:"required"`
	Log     LogConfig     `mapstructure:"log" validate:"required"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Display DisplayConfig `mapstructure:"display"`
}

// DataConfig holds data storage configuration
type DataConfig struct {
	// Dir overrides data directory resolution when set.
	Dir     string `mapstructure:"dir"`
	Backend string `mapstructure:"backend" validate:"required,oneof=file sqlite"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=console json"`
	Output string `mapstructure:"output" validate:"required,oneof=stderr file"`
	// File is required when Output is "file"; relative paths resolve against the config dir.
	File string `mapstructure:"file" validate:"required_if=Output file"`
}

// AuthConfig holds password hashing settings.
type AuthConfig struct {
	BcryptCost int `mapstructure:"bcryptCost" validate:"omitempty,min=4,max=31"`
}

// DisplayConfig holds presentation defaults for the CLI.
type DisplayConfig struct {
	DefaultCategory string `mapstructure:"defaultCategory"`
	DefaultPriority string `mapstructure:"defaultPriority" validate:"omitempty,oneof=high medium low"`
}
