package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/josephgoksu/smarttask/internal/app"
	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/internal/logger"
	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func isQuiet() bool {
	return viper.GetBool("quiet")
}

func isVerbose() bool {
	return viper.GetBool("verbose")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// openApp loads both stores from the configured data directory.
// The returned close function must be deferred by the caller.
func openApp() (*app.Context, func(), error) {
	cfg := GetConfig()

	log, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}

	dataDir := config.GetDataDir()
	logger.SetDataDir(dataDir)

	ctx, err := app.Open(*cfg, dataDir, log)
	if err != nil {
		_ = log.Close()
		return nil, nil, err
	}
	log.Debugw("data directory opened", "dir", dataDir, "backend", cfg.Data.Backend)

	closeFn := func() {
		if err := ctx.Close(); err != nil {
			LogError("failed to close data directory", err)
		}
		_ = log.Close()
	}
	return ctx, closeFn, nil
}

// currentStudent resolves the logged-in student from the session file.
func currentStudent(ctx *app.Context) (models.Student, error) {
	sess, err := config.LoadSession()
	if err != nil {
		return models.Student{}, err
	}
	s, err := ctx.Student(sess.Email)
	if err != nil {
		return models.Student{}, err
	}
	logger.SetStudent(s.Email)
	return s, nil
}

// parseTaskID parses a positional task id.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(arg), "#"))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid task id %q: expected a positive number", arg)
	}
	return id, nil
}

// parseDue parses the YYYY-MM-DD HH:MM form used for due dates.
func parseDue(s string) (time.Time, error) {
	t, err := time.ParseInLocation(ui.DateTimeLayout, strings.TrimSpace(s), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected format YYYY-MM-DD HH:MM", s)
	}
	return t, nil
}

// readPassword prompts on the terminal without echo.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	if !ui.IsInteractive() {
		return "", errors.New("password is required (use --password when not running in a terminal)")
	}
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

func confirmOrAbort(cmd *cobra.Command, prompt string) bool {
	if isJSON() || !ui.IsInteractive() {
		return true
	}
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
		return false
	}
	return true
}

// printResult renders an app.TaskResult as JSON or a one-line message.
func printResult(cmd *cobra.Command, res app.TaskResult) error {
	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res)
	}
	if isQuiet() {
		if res.Task != nil {
			fmt.Fprintln(cmd.OutOrStdout(), res.Task.ID)
		}
		return nil
	}
	if res.Success {
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render("✓ "+res.Message))
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleWarning.Render(res.Message))
	}
	if res.Hint != "" && isVerbose() {
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSubtle.Render("Next: "+res.Hint))
	}
	return nil
}
