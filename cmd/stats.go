/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"

	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show task statistics",
	Long:  `Show total, pending, completed, overdue and due-today counts for your tasks.`,
	Args:  cobra.NoArgs,
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
		st := ctx.Tasks.StatsFor(s.Email)

		if isJSON() {
			return printJSON(cmd.OutOrStdout(), st)
		}
		if isQuiet() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d %d %d %d %d\n", st.Total, st.Pending, st.Completed, st.Overdue, st.DueToday)
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.RenderStats(s.FullName(), st))
		return nil
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the category and priority filter labels",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), map[string][]string{
				"categories": models.Categories,
				"priorities": models.PriorityFilters,
			})
		}
		fmt.Fprint(cmd.OutOrStdout(), ui.RenderFilterLabels())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd, categoriesCmd)
}
