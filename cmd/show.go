/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"time"

	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:     "show [id]",
	Aliases: []string{"view"},
	Short:   "Show one task in detail",
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, closeApp, err := openApp()
		if err != nil {
			return err
		}
		defer closeApp()

		s, err := currentStudent(ctx)
		if err != nil {
			return err
		}
		id, err := resolveTaskArg(ctx, s.Email, args, nil, "Select a task to view")
		if err != nil {
			return err
		}
		t, err := ctx.TaskFor(s.Email, id)
		if err != nil {
			return err
		}

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), t)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTaskDetail(t, time.Now()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
