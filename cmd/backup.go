/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:     "backup <dir>",
	Short:   "Copy the data files into a directory",
	Example: `  smarttask backup ~/smarttask-backup`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		if err := ctx.Backup(args[0]); err != nil {
			return err
		}
		if !isQuiet() && !isJSON() {
			fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render("✓ Backed up to "+args[0]))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
}
