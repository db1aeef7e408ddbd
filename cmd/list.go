/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List your tasks",
	Long: `List your tasks ordered by due date, earliest first.

Narrow the list with --category and --priority. "All" (the default)
disables a filter. Overdue rows are shown in red, rows due today in
orange and completed rows struck through. With --by-priority, high
priority tasks come first and due date orders tasks of equal priority.`,
	Example: `  smarttask list
  smarttask list --category Lab --priority high
  smarttask list --by-priority
  smarttask list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("category", models.FilterAll, "category filter")
	listCmd.Flags().StringP("priority", "p", models.FilterAll, "priority filter: All, High, Medium or Low")
	listCmd.Flags().Bool("by-priority", false, "order by priority before due date")
}

func runList(cmd *cobra.Command, args []string) error {
	ctx, closeApp, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp()

	s, err := currentStudent(ctx)
	if err != nil {
		return err
	}

	f := task.Filter{}
	f.Category, _ = cmd.Flags().GetString("category")
	f.Priority, _ = cmd.Flags().GetString("priority")

	tasks := ctx.Tasks.QueryByStudent(s.Email, f)
	if byPriority, _ := cmd.Flags().GetBool("by-priority"); byPriority {
		sortByPriority(tasks)
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), tasks)
	}
	if isQuiet() {
		for _, t := range tasks {
			fmt.Fprintln(cmd.OutOrStdout(), t.ID)
		}
		return nil
	}
	if len(tasks) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render("No tasks found. Add one with: smarttask add \"<title>\""))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.RenderTaskTable(tasks, time.Now()))
	fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render(fmt.Sprintf("%d task(s)", len(tasks))))
	return nil
}

// sortByPriority reorders tasks high priority first. The sort is stable, so
// tasks of equal priority keep their due-date order.
func sortByPriority(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Priority.Rank() > tasks[j].Priority.Rank()
	})
}
