package task

import (
	"sort"
	"strings"

	"github.com/josephgoksu/smarttask/models"
)

// Filter narrows QueryByStudent. "All" or an empty value disables a criterion.
type Filter struct {
	Category string
	Priority string
}

func (f Filter) matches(t models.Task) bool {
	if !isAll(f.Category) && !strings.EqualFold(t.Category, strings.TrimSpace(f.Category)) {
		return false
	}
	if !isAll(f.Priority) && t.Priority != models.ParsePriority(f.Priority) {
		return false
	}
	return true
}

func isAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, models.FilterAll)
}

// Stats summarizes one student's tasks.
type Stats struct {
	Total     int `json:"total" yaml:"total" toml:"total"`
	Pending   int `json:"pending" yaml:"pending" toml:"pending"`
	Completed int `json:"completed" yaml:"completed" toml:"completed"`
	Overdue   int `json:"overdue" yaml:"overdue" toml:"overdue"`
	DueToday  int `json:"dueToday" yaml:"dueToday" toml:"dueToday"`
}

// QueryByStudent returns copies of the student's matching tasks ordered by
// due date. Tasks with equal due dates keep their stored order.
func (s *Store) QueryByStudent(email string, f Filter) []models.Task {
	out := make([]models.Task, 0)
	for _, t := range s.tasks {
		if t.OwnedBy(email) && f.matches(t) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Before(out[j].DueDate)
	})
	return out
}

// StatsFor counts the student's tasks against the store clock.
func (s *Store) StatsFor(email string) Stats {
	now := s.now()
	var st Stats
	for _, t := range s.tasks {
		if !t.OwnedBy(email) {
			continue
		}
		st.Total++
		if t.Completed {
			st.Completed++
		}
		if t.Overdue(now) {
			st.Overdue++
		}
		if t.DueToday(now) {
			st.DueToday++
		}
	}
	st.Pending = st.Total - st.Completed
	return st
}
