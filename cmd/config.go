package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/types"
	"github.com/spf13/viper"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// configErr is set by InitConfig and reported by the root command's pre-run,
// so a broken config file fails the command instead of the process.
var configErr error

// validate is a single instance of Translate, it caches struct info
var validate = validator.New()

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(cfg *types.AppConfig) error {
	if err := validate.Struct(cfg); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	configErr = nil
	bindGlobalFlags()

	// It's okay if .env file doesn't exist.
	_ = godotenv.Load()

	// Environment variable handling must be set up before reading the config file.
	viper.SetEnvPrefix(config.EnvPrefix)                   // e.g., SMARTTASK_VERBOSE
	viper.AutomaticEnv()                                   // Read in environment variables that match
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // SMARTTASK_DATA_DIR -> data.dir

	cfgFileFlag := viper.GetString("config")

	if cfgFileFlag != "" {
		viper.SetConfigFile(cfgFileFlag)
	} else {
		if info, err := os.Stat(config.DirName); err == nil && info.IsDir() {
			// Project-local config dir: ./.smarttask/.smarttask.yaml
			viper.AddConfigPath(config.DirName)
		} else {
			if home, err := os.UserHomeDir(); err == nil {
				viper.AddConfigPath(home) // $HOME/.smarttask.yaml
			}
			viper.AddConfigPath(".")
		}
		viper.SetConfigName(config.ConfigName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
			if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		case cfgFileFlag != "" && os.IsNotExist(err):
			configErr = fmt.Errorf("config file not found: %s", cfgFileFlag)
			return
		default:
			configErr = fmt.Errorf("read config file %s: %w", viper.ConfigFileUsed(), err)
			return
		}
	}

	config.SetDefaults()

	GlobalAppConfig = types.AppConfig{}
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		configErr = fmt.Errorf("unmarshal config: %w", err)
		return
	}
	GlobalAppConfig.Log.File = config.ResolveLogFile(GlobalAppConfig.Log.File)

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		configErr = err
	}
}

// GetConfig returns the loaded application configuration.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
