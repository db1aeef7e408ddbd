package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestWriteDefaultConfig_NewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", ConfigName+".yaml")

	if err := WriteDefaultConfig(path, false); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	for _, want := range []string{"backend: file", "level: warn", "bcryptCost: 10", "defaultCategory: Personal"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("expected config to contain %q, got:\n%s", want, content)
		}
	}
}

func TestWriteDefaultConfig_ReadableByViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := WriteDefaultConfig(path, false); err != nil {
		t.Fatalf("WriteDefaultConfig: %v", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		t.Fatalf("viper could not read generated config: %v", err)
	}
	if v.GetString("log.output") != DefaultLogOutput {
		t.Errorf("expected log.output %q, got %q", DefaultLogOutput, v.GetString("log.output"))
	}
	if v.GetInt("auth.bcryptCost") != DefaultBcryptCost {
		t.Errorf("expected auth.bcryptCost %d, got %d", DefaultBcryptCost, v.GetInt("auth.bcryptCost"))
	}
}

func TestWriteDefaultConfig_Existing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}

	err := WriteDefaultConfig(path, false)
	if !errors.Is(err, ErrConfigExists) {
		t.Fatalf("expected ErrConfigExists, got %v", err)
	}

	if err := WriteDefaultConfig(path, true); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	content, _ := os.ReadFile(path)
	if strings.Contains(string(content), "debug") {
		t.Error("expected existing file to be replaced")
	}
}

func TestWriteDefaultConfig_EmptyPath(t *testing.T) {
	if err := WriteDefaultConfig("", false); err == nil {
		t.Error("expected error for empty path")
	}
}
