/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"os"

	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "1.0.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smarttask",
	Short: "SmartTask - a to-do list for students",
	Long: `SmartTask keeps a personal to-do list for each registered student.

Register once, log in, then add, edit, complete and filter your tasks.
Data lives in two plain text files (students.txt, tasks.txt) in the data directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.SetVersion(version)
		logger.SetBasePath(config.GetConfigDir())
		logger.SetCommand(cmd.CommandPath(), args)
		return configErr
	},
}

// GetVersion returns the application version.
func GetVersion() string {
	return version
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		PrintError(userMessage(err), err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./.smarttask/.smarttask.yaml or $HOME/.smarttask.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().Bool("json", false, "print machine-readable JSON")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "print only essential output")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding students.txt and tasks.txt")

	bindGlobalFlags()
}

// bindGlobalFlags ties persistent flags to viper keys. It is safe to call again after viper.Reset.
func bindGlobalFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("config", flags.Lookup("config"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("data.dir", flags.Lookup("data-dir"))
}
