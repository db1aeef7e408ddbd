package app

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/smarttask/internal/auth"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/models"
	"github.com/josephgoksu/smarttask/store"
	"github.com/josephgoksu/smarttask/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

var fixedNow = time.Date(2025, 1, 9, 8, 0, 0, 0, time.Local)

func setupTestContext(t *testing.T) *Context {
	t.Helper()

	lines, err := store.NewFlatFileStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	clock := func() time.Time { return fixedNow }
	return NewContext(lines, nil, Options{
		BcryptCost:  bcrypt.MinCost,
		AuthOptions: []auth.Option{auth.WithClock(clock)},
		TaskOptions: []task.Option{task.WithClock(clock)},
	})
}

func register(t *testing.T, c *Context, email string) {
	t.Helper()
	_, err := c.Register(models.RegisterInput{FirstName: "A", LastName: "B", Email: email, Password: "secret1"})
	require.NoError(t, err)
}

func TestEndToEnd(t *testing.T) {
	c := setupTestContext(t)

	_, err := c.Register(models.RegisterInput{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = c.Register(models.RegisterInput{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "secret1"})
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	_, err = c.Login("a@b.com", "wrong-password")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	s, err := c.Login("a@b.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", s.Email)
	require.NotNil(t, s.LastLoginAt)

	res, err := c.AddTask(s.Email, task.NewTask{
		Title:    "Lab report",
		Category: "Lab",
		Priority: models.PriorityHigh,
		DueDate:  time.Date(2025, 1, 10, 10, 0, 0, 0, time.Local),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Task.ID)

	require.NoError(t, c.Tasks.Complete(1))
	assert.ErrorIs(t, c.Tasks.Complete(1), task.ErrAlreadyCompleted)
	assert.True(t, c.Tasks.Delete(1))

	res, err = c.AddTask(s.Email, task.NewTask{Title: "Next", DueDate: fixedNow})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Task.ID, "id 1 is never reused")
}

func TestRegister_ValidatesForm(t *testing.T) {
	c := setupTestContext(t)

	_, err := c.Register(models.RegisterInput{FirstName: "A", LastName: "B", Email: "not-an-email", Password: "secret1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email format")

	_, err = c.Register(models.RegisterInput{FirstName: "A", LastName: "B", Email: "a@b.com", Password: "123"})
	require.Error(t, err)
	assert.False(t, c.Students.EmailExists("a@b.com"))
}

func TestTaskFor_OtherStudentsTasksAreHidden(t *testing.T) {
	c := setupTestContext(t)
	register(t, c, "ada@uni.edu")
	register(t, c, "bob@uni.edu")

	res, err := c.AddTask("bob@uni.edu", task.NewTask{Title: "bob's", DueDate: fixedNow})
	require.NoError(t, err)
	id := res.Task.ID

	_, err = c.TaskFor("ada@uni.edu", id)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	_, err = c.CompleteTask("ada@uni.edu", id)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	_, err = c.DeleteTask("ada@uni.edu", id)
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	_, err = c.EditTask("ada@uni.edu", id, TaskPatch{})
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	got, err := c.TaskFor("BOB@uni.edu", id)
	require.NoError(t, err)
	assert.False(t, got.Completed)
}

func TestCompleteTask_AlreadyCompleted(t *testing.T) {
	c := setupTestContext(t)
	res, err := c.AddTask("ada@uni.edu", task.NewTask{Title: "t", DueDate: fixedNow})
	require.NoError(t, err)

	first, err := c.CompleteTask("ada@uni.edu", res.Task.ID)
	require.NoError(t, err)
	assert.True(t, first.Success)

	second, err := c.CompleteTask("ada@uni.edu", res.Task.ID)
	require.NoError(t, err)
	assert.False(t, second.Success)
	assert.Contains(t, second.Message, "already completed")
	assert.True(t, second.Task.Completed)
}

func TestEditTask_KeepsUnsetFields(t *testing.T) {
	c := setupTestContext(t)
	due := time.Date(2025, 2, 1, 9, 0, 0, 0, time.Local)
	res, err := c.AddTask("ada@uni.edu", task.NewTask{
		Title: "Essay", Description: "draft", Category: "Assignment", Priority: models.PriorityLow, DueDate: due,
	})
	require.NoError(t, err)

	title := "Final essay"
	prio := models.PriorityHigh
	edited, err := c.EditTask("ada@uni.edu", res.Task.ID, TaskPatch{Title: &title, Priority: &prio})
	require.NoError(t, err)

	assert.Equal(t, "Final essay", edited.Task.Title)
	assert.Equal(t, models.PriorityHigh, edited.Task.Priority)
	assert.Equal(t, "draft", edited.Task.Description)
	assert.Equal(t, "Assignment", edited.Task.Category)
	assert.True(t, edited.Task.DueDate.Equal(due))

	blank := " "
	_, err = c.EditTask("ada@uni.edu", res.Task.ID, TaskPatch{Title: &blank})
	assert.ErrorIs(t, err, task.ErrEmptyTitle)

	assert.True(t, TaskPatch{}.Empty())
	assert.False(t, TaskPatch{Title: &title}.Empty())
}

func TestStudent(t *testing.T) {
	c := setupTestContext(t)
	register(t, c, "ada@uni.edu")

	s, err := c.Student("ADA@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, "A B", s.FullName())

	_, err = c.Student("ghost@uni.edu")
	assert.ErrorIs(t, err, ErrUnknownStudent)
}

func TestExportTasks(t *testing.T) {
	c := setupTestContext(t)
	_, err := c.AddTask("ada@uni.edu", task.NewTask{Title: "Lab", Category: "Lab", Priority: models.PriorityHigh, DueDate: fixedNow.Add(time.Hour)})
	require.NoError(t, err)
	_, err = c.AddTask("ada@uni.edu", task.NewTask{Title: "Read", Category: "Study", DueDate: fixedNow.Add(2 * time.Hour)})
	require.NoError(t, err)
	_, err = c.AddTask("bob@uni.edu", task.NewTask{Title: "Other", DueDate: fixedNow})
	require.NoError(t, err)

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.ExportTasks(&buf, "ada@uni.edu", FormatJSON, task.Filter{}))

		var doc TaskExport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, "ada@uni.edu", doc.Student)
		assert.Len(t, doc.Tasks, 2)
		assert.Equal(t, 2, doc.Stats.Total)
	})

	t.Run("yaml honours filters", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.ExportTasks(&buf, "ada@uni.edu", "YAML", task.Filter{Category: "Study"}))

		var doc TaskExport
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
		require.Len(t, doc.Tasks, 1)
		assert.Equal(t, "Read", doc.Tasks[0].Title)
		assert.Equal(t, 2, doc.Stats.Total, "stats cover every task of the student")
	})

	t.Run("toml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.ExportTasks(&buf, "ada@uni.edu", FormatTOML, task.Filter{Priority: "High"}))

		var doc TaskExport
		_, err := toml.Decode(buf.String(), &doc)
		require.NoError(t, err)
		require.Len(t, doc.Tasks, 1)
		assert.Equal(t, models.PriorityHigh, doc.Tasks[0].Priority)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		assert.Error(t, c.ExportTasks(&buf, "ada@uni.edu", "csv", task.Filter{}))
	})
}

func TestOpen_FileBackend(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	cfg := types.AppConfig{Data: types.DataConfig{Backend: "file"}, Auth: types.AuthConfig{BcryptCost: bcrypt.MinCost}}

	c, err := Open(cfg, dir, nil)
	require.NoError(t, err)
	register(t, c, "ada@uni.edu")

	_, err = Open(cfg, dir, nil)
	assert.ErrorIs(t, err, store.ErrDataDirBusy, "a second process must not open a locked data dir")

	backupDir := filepath.Join(t.TempDir(), "backup")
	require.NoError(t, c.Backup(backupDir))
	_, err = os.Stat(filepath.Join(backupDir, store.StudentsFile))
	assert.NoError(t, err)

	require.NoError(t, c.Close())

	reopened, err := Open(cfg, dir, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	assert.True(t, reopened.Students.EmailExists("ada@uni.edu"))
}

func TestOpen_SQLiteBackend(t *testing.T) {
	dir := t.TempDir()
	cfg := types.AppConfig{Data: types.DataConfig{Backend: "sqlite"}, Auth: types.AuthConfig{BcryptCost: bcrypt.MinCost}}

	c, err := Open(cfg, dir, nil)
	require.NoError(t, err)
	_, err = c.AddTask("ada@uni.edu", task.NewTask{Title: "persist me", DueDate: fixedNow})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = os.Stat(filepath.Join(dir, store.SQLiteFile))
	require.NoError(t, err)

	reopened, err := Open(cfg, dir, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	got := reopened.Tasks.QueryByStudent("ada@uni.edu", task.Filter{})
	require.Len(t, got, 1)
	assert.Equal(t, "persist me", got[0].Title)
}

func TestOpen_UnknownBackend(t *testing.T) {
	dir := t.TempDir()
	_, err := Open(types.AppConfig{Data: types.DataConfig{Backend: "mongo"}}, dir, nil)
	require.Error(t, err)

	// the lock must be released on failure
	c, err := Open(types.AppConfig{}, dir, nil)
	require.NoError(t, err)
	require.NoError(t, c.Close())
}
