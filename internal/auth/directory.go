// Package auth keeps the set of registered students and checks their credentials.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/josephgoksu/smarttask/internal/logger"
	"github.com/josephgoksu/smarttask/models"
	"github.com/josephgoksu/smarttask/store"
)

var (
	// ErrEmailTaken is returned by Register when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email, wrong password and inactive accounts alike.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Option configures a Directory.
type Option func(*Directory)

// WithClock replaces time.Now for creation and last-login stamps.
func WithClock(now func() time.Time) Option {
	return func(d *Directory) { d.now = now }
}

// WithHasher replaces the default bcrypt hasher.
func WithHasher(h Hasher) Option {
	return func(d *Directory) { d.hasher = h }
}

// WithLogger sets the logger used for load and save failures.
func WithLogger(l *logger.Logger) Option {
	return func(d *Directory) { d.log = l.WithComponent("auth") }
}

// Directory is the in-memory student set backed by students.txt.
// It is not safe for concurrent use.
type Directory struct {
	lines    store.LineStore
	hasher   Hasher
	log      *logger.Logger
	now      func() time.Time
	students []models.Student
}

// NewDirectory builds a Directory and loads it from lines.
func NewDirectory(lines store.LineStore, opts ...Option) *Directory {
	d := &Directory{
		lines:  lines,
		hasher: NewBcryptHasher(0),
		log:    logger.Nop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.Load()
	return d
}

// Load replaces the in-memory set with the contents of students.txt.
// Unreadable storage leaves the directory empty; malformed lines are skipped.
func (d *Directory) Load() {
	d.students = d.students[:0]

	lines, err := d.lines.Read(store.StudentsFile)
	if err != nil {
		d.log.Errorw("failed to read students", "file", store.StudentsFile, "error", err)
		return
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		s, err := models.DecodeStudent(line)
		if err != nil {
			d.log.Warnw("skipping unparseable student record", "file", store.StudentsFile, "line", i+1, "error", err)
			continue
		}
		d.students = append(d.students, s)
	}
	d.log.Debugw("students loaded", "count", len(d.students))
}

// Len returns the number of registered students.
func (d *Directory) Len() int {
	return len(d.students)
}

// EmailExists reports whether a student with this email is registered, ignoring case.
func (d *Directory) EmailExists(email string) bool {
	return d.find(email) >= 0
}

// Lookup returns a copy of the student with this email.
func (d *Directory) Lookup(email string) (models.Student, bool) {
	i := d.find(email)
	if i < 0 {
		return models.Student{}, false
	}
	return d.students[i].Clone(), true
}

// Register creates an active student and persists the directory.
// Field validation is the caller's job (models.ValidateRegistration).
func (d *Directory) Register(in models.RegisterInput) (models.Student, error) {
	if d.EmailExists(in.Email) {
		return models.Student{}, ErrEmailTaken
	}

	hashed, err := d.hasher.Hash(in.Password)
	if err != nil {
		return models.Student{}, err
	}

	s := models.Student{
		Email:          strings.TrimSpace(in.Email),
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		StudentID:      strings.TrimSpace(in.StudentID),
		Major:          strings.TrimSpace(in.Major),
		HashedPassword: hashed,
		CreatedAt:      d.now(),
		Active:         true,
	}
	d.students = append(d.students, s)
	d.save()

	d.log.Infow("student registered", "email", s.Email)
	return s.Clone(), nil
}

// Login checks credentials and stamps the last-login time on success.
func (d *Directory) Login(email, password string) (models.Student, error) {
	i := d.find(email)
	if i < 0 {
		return models.Student{}, ErrInvalidCredentials
	}
	s := &d.students[i]
	if !s.Active || !d.hasher.Verify(s.HashedPassword, password) {
		return models.Student{}, ErrInvalidCredentials
	}

	now := d.now()
	s.LastLoginAt = &now
	d.save()

	return s.Clone(), nil
}

func (d *Directory) find(email string) int {
	key := models.Student{Email: strings.TrimSpace(email)}
	for i := range d.students {
		if d.students[i].SameAs(key) {
			return i
		}
	}
	return -1
}

func (d *Directory) save() {
	lines := make([]string, 0, len(d.students))
	for _, s := range d.students {
		lines = append(lines, models.EncodeStudent(s))
	}
	if err := d.lines.Write(store.StudentsFile, lines); err != nil {
		d.log.Errorw("failed to save students", "file", store.StudentsFile, "error", err)
	}
}
