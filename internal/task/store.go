// Package task owns the in-memory task list, its persistence to tasks.txt,
// and the per-student queries the presentation layer needs.
package task

import (
	"errors"
	"strings"
	"time"

	"github.com/josephgoksu/smarttask/internal/logger"
	"github.com/josephgoksu/smarttask/models"
	"github.com/josephgoksu/smarttask/store"
)

var (
	// ErrTaskNotFound is returned when no task has the requested id.
	ErrTaskNotFound = errors.New("task not found")
	// ErrAlreadyCompleted is returned by Complete for a task that is already done.
	ErrAlreadyCompleted = errors.New("task already completed")
	// ErrEmptyTitle is returned when a title is blank after trimming.
	ErrEmptyTitle = errors.New("task title is required")
)

// NewTask carries the caller-supplied fields of a task being created.
type NewTask struct {
	StudentEmail string
	Title        string
	Description  string
	Category     string
	Priority     models.TaskPriority
	DueDate      time.Time
}

// TaskUpdate replaces every editable field at once.
type TaskUpdate struct {
	Title       string
	Description string
	Category    string
	Priority    models.TaskPriority
	DueDate     time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for creation stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used for load and save failures.
func WithLogger(l *logger.Logger) Option {
	return func(s *Store) { s.log = l.WithComponent("task") }
}

// Store is the task list backed by tasks.txt. Every mutation rewrites the
// whole file before returning. It is not safe for concurrent use.
type Store struct {
	lines  store.LineStore
	log    *logger.Logger
	now    func() time.Time
	tasks  []models.Task
	nextID int
}

// NewStore builds a Store and loads it from lines.
func NewStore(lines store.LineStore, opts ...Option) *Store {
	s := &Store{
		lines:  lines,
		log:    logger.Nop(),
		now:    time.Now,
		nextID: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load()
	return s
}

// Load replaces the in-memory list with tasks.txt and recomputes the next id.
func (s *Store) Load() {
	s.tasks = s.tasks[:0]
	s.nextID = 1

	lines, err := s.lines.Read(store.TasksFile)
	if err != nil {
		s.log.Errorw("failed to read tasks", "file", store.TasksFile, "error", err)
		return
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		t, err := models.DecodeTask(line)
		if err != nil {
			s.log.Warnw("skipping unparseable task record", "file", store.TasksFile, "line", i+1, "error", err)
			continue
		}
		s.tasks = append(s.tasks, t)
		if t.ID >= s.nextID {
			s.nextID = t.ID + 1
		}
	}
	s.log.Debugw("tasks loaded", "count", len(s.tasks), "nextID", s.nextID)
}

// Len returns the number of tasks across all students.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Add creates a task with the next id and persists the list.
func (s *Store) Add(in NewTask) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	t := models.Task{
		ID:           s.nextID,
		StudentEmail: strings.TrimSpace(in.StudentEmail),
		Title:        title,
		Description:  in.Description,
		Category:     in.Category,
		Priority:     normalizePriority(in.Priority),
		CreatedAt:    s.now(),
		DueDate:      in.DueDate,
	}
	s.nextID++
	s.tasks = append(s.tasks, t)
	s.save()

	return t, nil
}

// Get returns a copy of the task with this id.
func (s *Store) Get(id int) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, ErrTaskNotFound
	}
	return s.tasks[i], nil
}

// Update replaces title, description, category, priority and due date.
func (s *Store) Update(id int, u TaskUpdate) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	title := strings.TrimSpace(u.Title)
	if title == "" {
		return ErrEmptyTitle
	}

	t := &s.tasks[i]
	t.Title = title
	t.Description = u.Description
	t.Category = u.Category
	t.Priority = normalizePriority(u.Priority)
	t.DueDate = u.DueDate
	s.save()
	return nil
}

// Delete removes the task and reports whether it existed. Ids are never reused.
func (s *Store) Delete(id int) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.save()
	return true
}

// Complete marks an open task as done.
func (s *Store) Complete(id int) error {
	i := s.indexOf(id)
	if i < 0 {
		return ErrTaskNotFound
	}
	if s.tasks[i].Completed {
		return ErrAlreadyCompleted
	}
	s.tasks[i].Completed = true
	s.save()
	return nil
}

func (s *Store) indexOf(id int) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) save() {
	lines := make([]string, 0, len(s.tasks))
	for _, t := range s.tasks {
		lines = append(lines, models.EncodeTask(t))
	}
	if err := s.lines.Write(store.TasksFile, lines); err != nil {
		s.log.Errorw("failed to save tasks", "file", store.TasksFile, "error", err)
	}
}

func normalizePriority(p models.TaskPriority) models.TaskPriority {
	return models.ParsePriority(string(p))
}
