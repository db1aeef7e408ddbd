/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a task",
	Long: `Delete a task permanently.

Asks for confirmation in a terminal unless --force is given.`,
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
		id, err := resolveTaskArg(ctx, s.Email, args, nil, "Select a task to delete")
		if err != nil {
			return err
		}
		t, err := ctx.TaskFor(s.Email, id)
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !force && !confirmOrAbort(cmd, fmt.Sprintf("Delete task #%d %q? [y/N]: ", t.ID, t.Title)) {
			return nil
		}

		res, err := ctx.DeleteTask(s.Email, id)
		if err != nil {
			return err
		}
		return printResult(cmd, res)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	deleteCmd.Flags().BoolP("force", "f", false, "skip confirmation")
}
