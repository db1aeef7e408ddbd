// Package logger provides structured logging and crash recovery for smarttask.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"sync"
	"time"
)

const (
	// CrashLogDir is the directory for crash logs relative to .smarttask
	CrashLogDir = "crash_logs"

	// MaxCrashLogs is the maximum number of crash logs to keep
	MaxCrashLogs = 10

	maxInputLen = 500
)

// CrashContext stores context for crash logging.
type CrashContext struct {
	mu        sync.RWMutex
	command   string
	args      string
	student   string
	version   string
	basePath  string
	dataDir   string
	startedAt time.Time
}

var globalContext = &CrashContext{}

// SetBasePath sets the base path for crash logs (typically the .smarttask directory).
func SetBasePath(path string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.basePath = path
}

// SetVersion sets the application version for crash logs.
func SetVersion(version string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.version = version
}

// SetCommand records the command being executed and its arguments.
// Arguments may contain passwords on misuse, so they are truncated and the
// caller is expected to pass only positional args.
func SetCommand(cmd string, args []string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.command = cmd
	globalContext.args = truncateForLog(strings.TrimSpace(strings.Join(args, " ")), maxInputLen)
	globalContext.startedAt = time.Now()
}

// SetStudent records the email of the signed-in student, if any.
func SetStudent(email string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.student = email
}

// SetDataDir records which data directory the process was working against.
func SetDataDir(dir string) {
	globalContext.mu.Lock()
	defer globalContext.mu.Unlock()
	globalContext.dataDir = dir
}

func truncateForLog(value string, maxLen int) string {
	if len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "... [truncated]"
}

// CrashLog represents a crash log entry.
type CrashLog struct {
	Timestamp  time.Time     `json:"timestamp"`
	Version    string        `json:"version"`
	Command    string        `json:"command"`
	Args       string        `json:"args,omitempty"`
	Student    string        `json:"student,omitempty"`
	DataDir    string        `json:"data_dir,omitempty"`
	Uptime     time.Duration `json:"uptime"`
	PanicValue string        `json:"panic_value"`
	StackTrace string        `json:"stack_trace"`
	GoVersion  string        `json:"go_version"`
	OS         string        `json:"os"`
	Arch       string        `json:"arch"`
}

// HandlePanic is a deferred function that recovers from panics and logs them.
// Usage: defer logger.HandlePanic()
func HandlePanic() {
	if r := recover(); r != nil {
		log := createCrashLog(r)
		if err := writeCrashLog(log); err != nil {
			fmt.Fprintf(os.Stderr, "\n[CRASH] Failed to write crash log: %v\n", err)
			fmt.Fprintf(os.Stderr, "[CRASH] Panic: %v\n%s\n", r, debug.Stack())
		}

		fmt.Fprint(os.Stderr, crashNotice(getCrashLogPath(log.Timestamp)))

		os.Exit(1)
	}
}

// crashNotice is the message shown to the user after a panic.
func crashNotice(logPath string) string {
	return "\nsmarttask encountered an unexpected error.\n\n" +
		"A crash log has been saved to:\n" +
		"  " + logPath + "\n\n"
}

func createCrashLog(panicValue any) CrashLog {
	globalContext.mu.RLock()
	defer globalContext.mu.RUnlock()

	now := time.Now()
	var uptime time.Duration
	if !globalContext.startedAt.IsZero() {
		uptime = now.Sub(globalContext.startedAt)
	}

	return CrashLog{
		Timestamp:  now,
		Version:    globalContext.version,
		Command:    globalContext.command,
		Args:       globalContext.args,
		Student:    globalContext.student,
		DataDir:    globalContext.dataDir,
		Uptime:     uptime,
		PanicValue: fmt.Sprintf("%v", panicValue),
		StackTrace: string(debug.Stack()),
		GoVersion:  runtime.Version(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}
}

func writeCrashLog(log CrashLog) error {
	dir := getCrashLogDir()

	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create crash log dir: %w", err)
	}

	// Non-fatal, continue with writing
	if err := cleanOldCrashLogs(dir); err != nil {
		fmt.Fprintf(os.Stderr, "[WARN] Failed to clean old crash logs: %v\n", err)
	}

	path := getCrashLogPath(log.Timestamp)
	if err := os.WriteFile(path, []byte(formatCrashLog(log)), 0644); err != nil {
		return fmt.Errorf("write crash log: %w", err)
	}
	return nil
}

func getCrashLogDir() string {
	globalContext.mu.RLock()
	basePath := globalContext.basePath
	globalContext.mu.RUnlock()

	if basePath == "" {
		basePath = ".smarttask"
	}
	return filepath.Join(basePath, CrashLogDir)
}

func getCrashLogPath(t time.Time) string {
	filename := fmt.Sprintf("crash_%s.log", t.Format("20060102_150405"))
	return filepath.Join(getCrashLogDir(), filename)
}

func section(sb *strings.Builder, title, body string) {
	sb.WriteString("\n" + strings.Repeat("-", 80) + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	sb.WriteString(body)
	if !strings.HasSuffix(body, "\n") {
		sb.WriteString("\n")
	}
}

// formatCrashLog formats a CrashLog as human-readable text.
func formatCrashLog(log CrashLog) string {
	var sb strings.Builder

	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString("SMARTTASK CRASH LOG\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n\n")

	sb.WriteString(fmt.Sprintf("Timestamp: %s\n", log.Timestamp.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Version:   %s\n", log.Version))
	sb.WriteString(fmt.Sprintf("Command:   %s\n", log.Command))
	if log.Student != "" {
		sb.WriteString(fmt.Sprintf("Student:   %s\n", log.Student))
	}
	if log.DataDir != "" {
		sb.WriteString(fmt.Sprintf("Data dir:  %s\n", log.DataDir))
	}
	sb.WriteString(fmt.Sprintf("Uptime:    %s\n", log.Uptime))
	sb.WriteString(fmt.Sprintf("Go:        %s\n", log.GoVersion))
	sb.WriteString(fmt.Sprintf("OS/Arch:   %s/%s\n", log.OS, log.Arch))

	section(&sb, "PANIC VALUE", log.PanicValue)
	section(&sb, "STACK TRACE", log.StackTrace)
	if log.Args != "" {
		section(&sb, "ARGUMENTS", log.Args)
	}

	sb.WriteString("\n" + strings.Repeat("=", 80) + "\n")
	sb.WriteString("END OF CRASH LOG\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	return sb.String()
}

// cleanOldCrashLogs removes old crash logs, keeping only MaxCrashLogs most recent.
// The caller writes one more afterwards, so room is made for it.
func cleanOldCrashLogs(dir string) error {
	crashLogs, err := crashLogNames(dir)
	if err != nil {
		return err
	}

	// os.ReadDir returns entries sorted by name, which embeds the timestamp.
	toRemove := len(crashLogs) - (MaxCrashLogs - 1)
	for i := 0; i < toRemove; i++ {
		if err := os.Remove(filepath.Join(dir, crashLogs[i])); err != nil {
			return fmt.Errorf("remove old crash log %s: %w", crashLogs[i], err)
		}
	}
	return nil
}

func crashLogNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "crash_") && strings.HasSuffix(e.Name(), ".log") {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// ListCrashLogs returns the paths of all crash logs, oldest first.
func ListCrashLogs() ([]string, error) {
	dir := getCrashLogDir()
	names, err := crashLogNames(dir)
	if err != nil {
		return nil, err
	}
	logs := make([]string, 0, len(names))
	for _, n := range names {
		logs = append(logs, filepath.Join(dir, n))
	}
	return logs, nil
}
