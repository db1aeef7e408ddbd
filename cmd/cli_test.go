package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephgoksu/smarttask/internal/app"
	"github.com/josephgoksu/smarttask/internal/auth"
	"github.com/josephgoksu/smarttask/internal/config"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/models"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliEnv isolates HOME, the data directory and viper state for one test.
type cliEnv struct {
	t       *testing.T
	home    string
	dataDir string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", "")
	t.Setenv("SMARTTASK_AUTH_BCRYPTCOST", "4")
	t.Cleanup(func() {
		resetCommandState()
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return &cliEnv{t: t, home: home, dataDir: filepath.Join(home, "data")}
}

// resetCommandState puts every flag back to its default so runs do not leak into each other.
func resetCommandState() {
	viper.Reset()
	var reset func(c *cobra.Command)
	reset = func(c *cobra.Command) {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(f *pflag.Flag) {
				_ = f.Value.Set(f.DefValue)
				f.Changed = false
			})
		}
		for _, sub := range c.Commands() {
			reset(sub)
		}
	}
	reset(rootCmd)
}

func (e *cliEnv) run(args ...string) (string, error) {
	e.t.Helper()
	resetCommandState()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--data-dir", e.dataDir))
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *cliEnv) mustRun(args ...string) string {
	e.t.Helper()
	out, err := e.run(args...)
	require.NoError(e.t, err, "smarttask %s\n%s", strings.Join(args, " "), out)
	return out
}

func (e *cliEnv) register(email, password string) {
	e.t.Helper()
	e.mustRun("register", "--first", "Ada", "--last", "Lovelace", "--email", email,
		"--student-id", "S-1", "--major", "Mathematics", "--password", password)
}

func TestCLI_RegisterLoginLogout(t *testing.T) {
	env := newCLIEnv(t)

	out := env.mustRun("register", "--first", "Ada", "--last", "Lovelace", "--email", "ada@uni.edu",
		"--student-id", "S-1", "--major", "Mathematics", "--password", "secret1")
	assert.Contains(t, out, "Registered Ada Lovelace (ada@uni.edu)")

	raw, err := os.ReadFile(filepath.Join(env.dataDir, "students.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "ada@uni.edu|Ada|Lovelace|S-1|Mathematics|"))
	assert.NotContains(t, string(raw), "secret1")

	_, err = env.run("register", "--first", "A", "--last", "L", "--email", "ADA@uni.edu", "--password", "secret1")
	assert.ErrorIs(t, err, auth.ErrEmailTaken)

	_, err = env.run("register", "--first", "A", "--last", "L", "--email", "not-an-email", "--password", "secret1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid email format")

	_, err = env.run("whoami")
	assert.ErrorIs(t, err, config.ErrNoSession)

	_, err = env.run("login", "--email", "ada@uni.edu", "--password", "wrong-pass")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	out = env.mustRun("login", "--email", "Ada@Uni.edu", "--password", "secret1")
	assert.Contains(t, out, "Welcome, Ada Lovelace")

	out = env.mustRun("whoami", "--quiet")
	assert.Equal(t, "ada@uni.edu\n", out)

	env.mustRun("logout")
	_, err = env.run("whoami")
	assert.ErrorIs(t, err, config.ErrNoSession)
}

func TestCLI_TaskLifecycle(t *testing.T) {
	env := newCLIEnv(t)
	env.register("ada@uni.edu", "secret1")
	env.mustRun("login", "--email", "ada@uni.edu", "--password", "secret1")

	out := env.mustRun("add", "Lab report", "--category", "Lab", "--priority", "high", "--due", "2099-01-10 10:00", "--quiet")
	assert.Equal(t, "1\n", out)
	out = env.mustRun("add", "Read", "chapter", "4", "-d", "pages 80-120", "--due", "2020-01-01 09:00", "--quiet")
	assert.Equal(t, "2\n", out)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("list", "--json")), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Read chapter 4", tasks[0].Title, "earliest due date first")
	assert.Equal(t, "Personal", tasks[0].Category, "default category")
	assert.Equal(t, models.PriorityMedium, tasks[0].Priority)

	tasks = nil
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("list", "--by-priority", "--json")), &tasks))
	require.Len(t, tasks, 2)
	assert.Equal(t, "Lab report", tasks[0].Title, "high priority first")

	tasks = nil
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("list", "--category", "lab", "--json")), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)

	out = env.mustRun("done", "1")
	assert.Contains(t, out, "Task 1 completed")

	var res app.TaskResult
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("done", "#1", "--json")), &res))
	assert.False(t, res.Success)
	assert.Contains(t, res.Message, "already completed")

	var st task.Stats
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("stats", "--json")), &st))
	assert.Equal(t, task.Stats{Total: 2, Pending: 1, Completed: 1, Overdue: 1, DueToday: 0}, st)

	env.mustRun("edit", "2", "--title", "Read chapter 5", "--priority", "low")
	var shown models.Task
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("show", "2", "--json")), &shown))
	assert.Equal(t, "Read chapter 5", shown.Title)
	assert.Equal(t, models.PriorityLow, shown.Priority)
	assert.Equal(t, "pages 80-120", shown.Description, "unchanged fields are kept")

	_, err := env.run("edit", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to change")

	_, err = env.run("done")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "task id is required")

	_, err = env.run("show", "99")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)

	out = env.mustRun("delete", "2", "--force")
	assert.Contains(t, out, "Task 2 deleted")

	tasks = nil
	require.NoError(t, json.Unmarshal([]byte(env.mustRun("list", "--json")), &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, 1, tasks[0].ID)
}

func TestCLI_TasksArePrivate(t *testing.T) {
	env := newCLIEnv(t)
	env.register("ada@uni.edu", "secret1")
	env.register("alan@uni.edu", "secret2")

	env.mustRun("login", "--email", "ada@uni.edu", "--password", "secret1")
	env.mustRun("add", "Ada's task")

	env.mustRun("login", "--email", "alan@uni.edu", "--password", "secret2")
	out := env.mustRun("list", "--quiet")
	assert.Empty(t, out)

	_, err := env.run("done", "1")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
	_, err = env.run("delete", "1", "--force")
	assert.ErrorIs(t, err, task.ErrTaskNotFound)
}

func TestCLI_ExportAndBackup(t *testing.T) {
	env := newCLIEnv(t)
	env.register("ada@uni.edu", "secret1")
	env.mustRun("login", "--email", "ada@uni.edu", "--password", "secret1")
	env.mustRun("add", "Lab report", "--category", "Lab", "--due", "2099-01-10 10:00")

	target := filepath.Join(env.home, "tasks.yaml")
	env.mustRun("export", "--format", "yaml", "--output", target)
	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "student: ada@uni.edu")
	assert.Contains(t, string(raw), "title: Lab report")

	out := env.mustRun("export", "--format", "toml")
	assert.Contains(t, out, `student = "ada@uni.edu"`)

	_, err = env.run("export", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")

	backupDir := filepath.Join(env.home, "backup")
	env.mustRun("backup", backupDir)
	assert.FileExists(t, filepath.Join(backupDir, "students.txt"))
	assert.FileExists(t, filepath.Join(backupDir, "tasks.txt"))
}

func TestCLI_ConfigInitAndShow(t *testing.T) {
	env := newCLIEnv(t)
	path := filepath.Join(env.home, ".smarttask.yaml")

	env.mustRun("config", "init", path)
	assert.FileExists(t, path)

	_, err := env.run("config", "init", path)
	assert.ErrorIs(t, err, config.ErrConfigExists)

	env.mustRun("config", "init", path, "--force")

	out := env.mustRun("config", "show", "--json")
	var cfg map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &cfg))
	data, ok := cfg["Data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "file", data["Backend"])
	assert.Equal(t, env.dataDir, data["Dir"])
}

func TestCLI_InvalidConfigFailsCommand(t *testing.T) {
	env := newCLIEnv(t)
	path := filepath.Join(env.home, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data:\n  backend: postgres\n"), 0644))

	_, err := env.run("list", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}
