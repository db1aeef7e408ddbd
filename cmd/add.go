/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"strings"
	"time"

	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"new", "a"},
	Short:   "Add a task",
	Long: `Add a task to your list.

Without --due the task is due now. Category defaults to Personal and
priority to medium (both configurable under display.* in the config file).`,
	Example: `  smarttask add "Lab report" --category Lab --priority high --due "2025-01-10 10:00"
  smarttask add "Read chapter 4" -d "pages 80-120"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addTaskFlags(addCmd)
}

// addTaskFlags registers the task field flags shared by add and edit.
func addTaskFlags(c *cobra.Command) {
	c.Flags().StringP("description", "d", "", "task description")
	c.Flags().String("category", "", "category (Lab, Study, Personal, Assignment, Project or any label)")
	c.Flags().StringP("priority", "p", "", "priority: high, medium or low")
	c.Flags().String("due", "", `due date as "YYYY-MM-DD HH:MM"`)
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx, closeApp, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp()

	s, err := currentStudent(ctx)
	if err != nil {
		return err
	}

	display := GetConfig().Display
	in := task.NewTask{
		Title:    strings.Join(args, " "),
		Category: display.DefaultCategory,
		Priority: models.ParsePriority(display.DefaultPriority),
		DueDate:  time.Now(),
	}
	in.Description, _ = cmd.Flags().GetString("description")
	if v, _ := cmd.Flags().GetString("category"); v != "" {
		in.Category = v
	}
	if v, _ := cmd.Flags().GetString("priority"); v != "" {
		in.Priority = models.ParsePriority(v)
	}
	if v, _ := cmd.Flags().GetString("due"); v != "" {
		due, err := parseDue(v)
		if err != nil {
			return err
		}
		in.DueDate = due
	}

	res, err := ctx.AddTask(s.Email, in)
	if err != nil {
		return err
	}
	return printResult(cmd, res)
}
