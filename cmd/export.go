/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/josephgoksu/smarttask/internal/app"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your tasks as JSON, YAML or TOML",
	Long: `Export your tasks and statistics.

Writes to stdout unless --output names a file. The --category and
--priority filters narrow the exported tasks; statistics always cover
all of your tasks.`,
	Example: `  smarttask export --format yaml
  smarttask export --format toml --output tasks.toml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringP("format", "f", app.FormatJSON, "output format: "+strings.Join(app.ExportFormats, ", "))
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().String("category", models.FilterAll, "category filter")
	exportCmd.Flags().String("priority", models.FilterAll, "priority filter")
}

func runExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	f := task.Filter{}
	f.Category, _ = cmd.Flags().GetString("category")
	f.Priority, _ = cmd.Flags().GetString("priority")

	ctx, closeApp, err := openApp()
	if err != nil {
		return err
	}
	defer closeApp()

	s, err := currentStudent(ctx)
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("create %s: %w", output, err)
		}
		defer func() { _ = file.Close() }()
		w = file
	}

	if err := ctx.ExportTasks(w, s.Email, format, f); err != nil {
		return err
	}
	if output != "" && !isQuiet() {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.StyleSuccess.Render("✓ Exported to "+output))
	}
	return nil
}
