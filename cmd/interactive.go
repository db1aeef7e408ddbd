package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/josephgoksu/smarttask/internal/app"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/internal/ui"
	"github.com/josephgoksu/smarttask/models"
	"github.com/manifoldco/promptui"
)

// errCancelled is returned when the user interrupts a prompt.
var errCancelled = errors.New("operation cancelled")

// resolveTaskArg returns the task id from args, or asks the user to pick one
// of their tasks matching keep when no id was given.
func resolveTaskArg(ctx *app.Context, email string, args []string, keep func(models.Task) bool, label string) (int, error) {
	if len(args) > 0 {
		return parseTaskID(args[0])
	}
	if !ui.IsInteractive() || isJSON() {
		return 0, errors.New("task id is required")
	}
	t, err := selectTaskInteractive(ctx, email, keep, label)
	if err != nil {
		return 0, err
	}
	return t.ID, nil
}

// selectTaskInteractive presents a prompt to the user to select a task from a list.
func selectTaskInteractive(ctx *app.Context, email string, keep func(models.Task) bool, label string) (models.Task, error) {
	var tasks []models.Task
	for _, t := range ctx.Tasks.QueryByStudent(email, task.Filter{}) {
		if keep == nil || keep(t) {
			tasks = append(tasks, t)
		}
	}
	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Title | cyan }} (#{{ .ID }}, {{ .Category }}, due {{ .DueDate.Format "2006-01-02 15:04" }})`,
		Inactive: `  {{ .Title | faint }} (#{{ .ID }}, {{ .Category }})`,
		Selected: `{{ "✔" | green }} {{ .Title | faint }} (#{{ .ID }})`,
		Details: `
--------- Task Details ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Title:\t" | faint }} {{ .Title }}
{{ "Description:\t" | faint }} {{ .Description }}
{{ "Priority:\t" | faint }} {{ .Priority }}`,
	}

	searcher := func(input string, index int) bool {
		t := tasks[index]
		input = strings.ToLower(input)
		return strings.Contains(strings.ToLower(t.Title), input) || strings.Contains(strconv.Itoa(t.ID), input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     tasks,
		Templates: templates,
		Searcher:  searcher,
		Size:      10,
	}

	i, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return models.Task{}, errCancelled
		}
		return models.Task{}, fmt.Errorf("select task: %w", err)
	}
	return tasks[i], nil
}

func notCompleted(t models.Task) bool { return !t.Completed }
