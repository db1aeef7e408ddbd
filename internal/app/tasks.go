package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/models"
)

// TaskResult contains the result of a task operation.
// This is the canonical response type rendered by the CLI as text or JSON.
type TaskResult struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Task    *models.Task `json:"task,omitempty"`
	Hint    string       `json:"hint,omitempty"`
}

// TaskPatch names the fields an edit changes; nil fields keep their value.
type TaskPatch struct {
	Title       *string
	Description *string
	Category    *string
	Priority    *models.TaskPriority
	DueDate     *time.Time
}

// Empty reports whether the patch changes nothing.
func (p TaskPatch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Category == nil && p.Priority == nil && p.DueDate == nil
}

// TaskFor returns the task only when the student owns it.
// Tasks of other students are reported as task.ErrTaskNotFound.
func (c *Context) TaskFor(email string, id int) (models.Task, error) {
	t, err := c.Tasks.Get(id)
	if err != nil {
		return models.Task{}, err
	}
	if !t.OwnedBy(email) {
		return models.Task{}, task.ErrTaskNotFound
	}
	return t, nil
}

// AddTask creates a task owned by email.
func (c *Context) AddTask(email string, in task.NewTask) (TaskResult, error) {
	in.StudentEmail = email
	t, err := c.Tasks.Add(in)
	if err != nil {
		return TaskResult{}, err
	}
	return TaskResult{
		Success: true,
		Message: fmt.Sprintf("Task %d added", t.ID),
		Task:    &t,
		Hint:    "smarttask list",
	}, nil
}

// EditTask applies patch to one of the student's tasks.
func (c *Context) EditTask(email string, id int, patch TaskPatch) (TaskResult, error) {
	current, err := c.TaskFor(email, id)
	if err != nil {
		return TaskResult{}, err
	}

	u := task.TaskUpdate{
		Title:       current.Title,
		Description: current.Description,
		Category:    current.Category,
		Priority:    current.Priority,
		DueDate:     current.DueDate,
	}
	if patch.Title != nil {
		u.Title = *patch.Title
	}
	if patch.Description != nil {
		u.Description = *patch.Description
	}
	if patch.Category != nil {
		u.Category = *patch.Category
	}
	if patch.Priority != nil {
		u.Priority = *patch.Priority
	}
	if patch.DueDate != nil {
		u.DueDate = *patch.DueDate
	}

	if err := c.Tasks.Update(id, u); err != nil {
		return TaskResult{}, err
	}
	updated, err := c.Tasks.Get(id)
	if err != nil {
		return TaskResult{}, err
	}
	return TaskResult{Success: true, Message: fmt.Sprintf("Task %d updated", id), Task: &updated}, nil
}

// CompleteTask marks one of the student's tasks as done. An already
// completed task is not an error; the result reports Success=false.
func (c *Context) CompleteTask(email string, id int) (TaskResult, error) {
	if _, err := c.TaskFor(email, id); err != nil {
		return TaskResult{}, err
	}

	err := c.Tasks.Complete(id)
	switch {
	case errors.Is(err, task.ErrAlreadyCompleted):
		t, _ := c.Tasks.Get(id)
		return TaskResult{Success: false, Message: fmt.Sprintf("Task %d is already completed", id), Task: &t}, nil
	case err != nil:
		return TaskResult{}, err
	}

	t, _ := c.Tasks.Get(id)
	return TaskResult{Success: true, Message: fmt.Sprintf("Task %d completed", id), Task: &t}, nil
}

// DeleteTask removes one of the student's tasks.
func (c *Context) DeleteTask(email string, id int) (TaskResult, error) {
	t, err := c.TaskFor(email, id)
	if err != nil {
		return TaskResult{}, err
	}
	if !c.Tasks.Delete(id) {
		return TaskResult{}, task.ErrTaskNotFound
	}
	return TaskResult{Success: true, Message: fmt.Sprintf("Task %d deleted", id), Task: &t}, nil
}
