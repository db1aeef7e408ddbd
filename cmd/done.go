/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done [id]",
	Aliases: []string{"complete", "finish"},
	Short:   "Mark a task as completed",
	Long: `Mark a task as completed.

Without an id, pick one of your pending tasks from a list (terminal only).
Completing a task twice is reported but is not an error.`,
	Args: cobra.MaximumNArgs(1),
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
		id, err := resolveTaskArg(ctx, s.Email, args, notCompleted, "Select a task to mark as done")
		if err != nil {
			return err
		}

		res, err := ctx.CompleteTask(s.Email, id)
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	},
}

func init() {
	rootCmd.AddCommand(doneCmd)
}
