/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"errors"

	"github.com/josephgoksu/smarttask/internal/app"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

// editCmd represents the edit command
var editCmd = &cobra.Command{
	Use:     "edit [id]",
	Aliases: []string{"update"},
	Short:   "Change fields of a task",
	Long: `Change fields of a task. Only the flags you pass are changed.

Without an id, pick the task from a list (terminal only).`,
	Example: `  smarttask edit 3 --priority low
  smarttask edit 3 --title "Lab report v2" --due "2025-01-12 09:00"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().String("title", "", "new title")
	addTaskFlags(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	patch, err := patchFromFlags(cmd)
	if err != nil {
		return err
	}
	if patch.Empty() {
		return errors.New("nothing to change: pass at least one of --title, --description, --category, --priority, --due")
	}

	ctx, closeApp, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp()

	s, err := currentStudent(ctx)
	if err != nil {
		return err
	}
	id, err := resolveTaskArg(ctx, s.Email, args, nil, "Select a task to edit")
	if err != nil {
		return err
	}

	res, err := ctx.EditTask(s.Email, id, patch)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}

// patchFromFlags collects only the flags the user set.
func patchFromFlags(cmd *cobra.Command) (app.TaskPatch, error) {
	var patch app.TaskPatch
	flags := cmd.Flags()

	if flags.Changed("title") {
		v, _ := flags.GetString("title")
		patch.Title = &v
	}
	if flags.Changed("description") {
		v, _ := flags.GetString("description")
		patch.Description = &v
	}
	if flags.Changed("category") {
		v, _ := flags.GetString("category")
		patch.Category = &v
	}
	if flags.Changed("priority") {
		v, _ := flags.GetString("priority")
		p := models.ParsePriority(v)
		patch.Priority = &p
	}
	if flags.Changed("due") {
		v, _ := flags.GetString("due")
		due, err := parseDue(v)
		if err != nil {
			return app.TaskPatch{}, err
		}
		patch.DueDate = &due
	}
	return patch, nil
}
