package ui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DateTimeLayout is how due dates are shown and typed on the command line.
const DateTimeLayout = "2006-01-02 15:04"

var titleCaser = cases.Title(language.English)

// PriorityLabel returns the display label for a priority, e.g. "High".
func PriorityLabel(p models.TaskPriority) string {
	return titleCaser.String(string(p))
}

// StyledPriority renders the priority label in its badge color.
func StyledPriority(p models.TaskPriority) string {
	label := PriorityLabel(p)
	switch p {
	case models.PriorityHigh:
		return StylePriorityHigh.Render(label)
	case models.PriorityLow:
		return StylePriorityLow.Render(label)
	default:
		return StylePriorityMedium.Render(label)
	}
}

// StatusLabel summarizes a task's state relative to now.
func StatusLabel(t models.Task, now time.Time) string {
	switch {
	case t.Completed:
		return "Done"
	case t.Overdue(now):
		return "Overdue"
	case t.DueToday(now):
		return "Due today"
	default:
		return "Pending"
	}
}

// rowStyle picks the highlight for a task row; nil means default.
func rowStyle(t models.Task, now time.Time) *lipgloss.Style {
	switch {
	case t.Completed:
		return &StyleCompleted
	case t.Overdue(now):
		return &StyleOverdue
	case t.DueToday(now):
		return &StyleDueToday
	default:
		return nil
	}
}

// RenderTaskTable renders tasks with overdue rows in red, rows due today in
// orange and completed rows dimmed.
func RenderTaskTable(tasks []models.Task, now time.Time) string {
	table := &Table{
		Headers:  []string{"ID", "Title", "Category", "Priority", "Due", "Status"},
		MaxWidth: 40,
		RowStyle: func(row int) *lipgloss.Style {
			return rowStyle(tasks[row], now)
		},
	}
	for _, t := range tasks {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(t.ID),
			t.Title,
			t.Category,
			PriorityLabel(t.Priority),
			t.DueDate.Format(DateTimeLayout),
			StatusLabel(t, now),
		})
	}
	return table.Render()
}

// RenderTaskDetail renders one task as a panel.
func RenderTaskDetail(t models.Task, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("Category:"), t.Category)
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("Priority:"), StyledPriority(t.Priority))
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("Due:     "), t.DueDate.Format(DateTimeLayout))
	fmt.Fprintf(&sb, "%s %s\n", StyleSubtle.Render("Created: "), t.CreatedAt.Format(DateTimeLayout))
	fmt.Fprintf(&sb, "%s %s", StyleSubtle.Render("Status:  "), StatusLabel(t, now))
	if t.Description != "" {
		sb.WriteString("\n\n" + WrapText(t.Description, 60))
	}

	panel := NewPanel(fmt.Sprintf("#%d %s", t.ID, t.Title), sb.String())
	switch {
	case t.Completed:
		panel.WithBorderColor(ColorSuccess)
	case t.Overdue(now):
		panel.WithBorderColor(ColorError)
	case t.DueToday(now):
		panel.WithBorderColor(ColorWarning)
	}
	return panel.Render()
}

// RenderStats renders the statistics panel for one student.
func RenderStats(name string, st task.Stats) string {
	line := func(label string, n int, style lipgloss.Style) string {
		return fmt.Sprintf("%-10s %s", label, style.Render(strconv.Itoa(n)))
	}
	body := strings.Join([]string{
		line("Total", st.Total, StyleTitle),
		line("Pending", st.Pending, StyleText),
		line("Completed", st.Completed, StyleSuccess),
		line("Overdue", st.Overdue, StyleError),
		line("Due today", st.DueToday, StyleWarning),
	}, "\n")
	return RenderPanel("Statistics for "+name, body)
}

// RenderFilterLabels lists the category and priority filter choices.
func RenderFilterLabels() string {
	return fmt.Sprintf("%s %s\n%s %s\n",
		StyleSubtle.Render("Categories:"), strings.Join(models.Categories, ", "),
		StyleSubtle.Render("Priorities:"), strings.Join(models.PriorityFilters, ", "),
	)
}
