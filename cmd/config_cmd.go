/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/internal/logger"
	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the configuration file",
	// The config commands must keep working when the file itself is broken.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVersion(version)
		logger.SetCommand(cmd.CommandPath(), args)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a config file with every default value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := ""
		if len(args) > 0 {
			path = args[0]
		} else {
			p, err := config.DefaultConfigPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}
			path = p
		}
		force, _ := cmd.Flags().GetBool("force")

		if err := config.WriteDefaultConfig(path, force); err != nil {
			if errors.Is(err, config.ErrConfigExists) {
				return fmt.Errorf("%w (use --force to overwrite)", err)
			}
			return err
		}
		if !isQuiet() {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render("✓ Wrote "+path))
		}
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print where config, session and data live",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := map[string]string{
			"config":  viper.ConfigFileUsed(),
			"session": config.SessionPath(),
			"data":    config.GetDataDir(),
		}
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), paths)
		}
		cfgPath := paths["config"]
		if cfgPath == "" {
			cfgPath = "(none, using defaults)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Config:  %s\nSession: %s\nData:    %s\n", cfgPath, paths["session"], paths["data"])
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configErr != nil {
			return configErr
		}
		cfg := GetConfig()
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), cfg)
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configPathCmd, configShowCmd)
	configInitCmd.Flags().Bool("force", false, "overwrite an existing file")
}
