package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/josephgoksu/smarttask/types"
)

func TestNew_LevelAndFormat(t *testing.T) {
	l, err := New(types.LogConfig{Level: "debug", Format: "json", Output: "stderr"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if !l.Desugar().Core().Enabled(-1) {
		t.Error("Expected debug level to be enabled")
	}

	if _, err := New(types.LogConfig{Level: "loud"}); err == nil {
		t.Error("Expected error for unknown level")
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "smarttask.log")
	l, err := New(types.LogConfig{Level: "info", Format: "json", Output: "file", File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	l.WithComponent("test").Infow("hello", "k", "v")
	_ = l.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(content), `"component":"test"`) {
		t.Errorf("Expected component field in %q", content)
	}
}
