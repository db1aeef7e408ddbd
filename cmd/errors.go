package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/smarttask/internal/app"
	"github.com/josephgoksu/smarttask/internal/auth"
	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/store"
	"github.com/spf13/viper"
)

// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
var ErrNoTasksFound = errors.New("no tasks found matching your criteria")

// PrintError prints an error message without exiting, allowing for recovery.
// With --verbose the technical error is printed instead of the friendly message.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, userMsg)
	}
}

// LogError logs an error without printing to stderr if verbose mode is off.
func LogError(msg string, err error) {
	if viper.GetBool("verbose") {
		if err != nil {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s: %v\n", msg, err)
		} else {
			fmt.Fprintf(os.Stderr, "[DEBUG] %s\n", msg)
		}
	}
}

// userMessage maps known errors to the message shown without --verbose.
func userMessage(err error) string {
	switch {
	case errors.Is(err, config.ErrNoSession), errors.Is(err, app.ErrUnknownStudent):
		return "You are not logged in. Run 'smarttask login' first."
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, auth.ErrEmailTaken):
		return "An account with this email already exists."
	case errors.Is(err, task.ErrTaskNotFound):
		return "Task not found."
	case errors.Is(err, task.ErrEmptyTitle):
		return "A task needs a title."
	case errors.Is(err, store.ErrDataDirBusy):
		return "Another smarttask command is using the data directory. Try again in a moment."
	case errors.Is(err, ErrNoTasksFound):
		return "No tasks found."
	case errors.Is(err, errCancelled):
		return "Cancelled."
	default:
		return "Error: " + err.Error()
	}
}
