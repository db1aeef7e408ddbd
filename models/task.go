package models

import (
	"strings"
	"time"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "high"
	PriorityMedium TaskPriority = "medium"
	PriorityLow    TaskPriority = "low"
)

// FilterAll is the filter label that disables category or priority narrowing.
const FilterAll = "All"

// Categories lists the category labels offered to filter controls.
// The first entry is always FilterAll.
var Categories = []string{FilterAll, "Lab", "Study", "Personal", "Assignment", "Project"}

// PriorityFilters lists the priority labels offered to filter controls.
var PriorityFilters = []string{FilterAll, "High", "Medium", "Low"}

// ParsePriority maps free text onto a priority. Matching is case-insensitive;
// anything unrecognised becomes PriorityMedium.
func ParsePriority(text string) TaskPriority {
	switch TaskPriority(strings.ToLower(strings.TrimSpace(text))) {
	case PriorityHigh:
		return PriorityHigh
	case PriorityLow:
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// Rank orders priorities for display, high first.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Task is a single to-do item owned by a student.
type Task struct {
	ID           int          `json:"id" yaml:"id" toml:"id" validate:"gte=1"`
	StudentEmail string       `json:"studentEmail" yaml:"studentEmail" toml:"studentEmail" validate:"required"`
	Title        string       `json:"title" yaml:"title" toml:"title" validate:"required,max=255"`
	Description  string       `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Category     string       `json:"category" yaml:"category" toml:"category"`
	Priority     TaskPriority `json:"priority" yaml:"priority" toml:"priority" validate:"oneof=high medium low"`
	CreatedAt    time.Time    `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
	DueDate      time.Time    `json:"dueDate" yaml:"dueDate" toml:"dueDate"`
	Completed    bool         `json:"completed" yaml:"completed" toml:"completed"`
}

// Overdue reports whether the task is still open past its due date.
func (t Task) Overdue(now time.Time) bool {
	return !t.Completed && now.After(t.DueDate)
}

// DueToday reports whether the task is still open and due on now's calendar day.
func (t Task) DueToday(now time.Time) bool {
	if t.Completed {
		return false
	}
	now = now.In(t.DueDate.Location())
	y1, m1, d1 := t.DueDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// OwnedBy compares the owning email case-insensitively.
func (t Task) OwnedBy(email string) bool {
	return strings.EqualFold(t.StudentEmail, email)
}
