package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootHelp(t *testing.T) {
	newCLIEnv(t)
	resetCommandState()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--help"})
	require.NoError(t, rootCmd.Execute())

	help := out.String()
	assert.Contains(t, help, "SmartTask")
	for _, name := range []string{"register", "login", "add", "list", "done", "stats", "export"} {
		assert.Contains(t, help, name)
	}
}

func TestGetVersion(t *testing.T) {
	assert.Equal(t, version, GetVersion())
	assert.NotEmpty(t, GetVersion())
}

func TestParseTaskID(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"3", 3, false},
		{"#12", 12, false},
		{" 7 ", 7, false},
		{"0", 0, true},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseTaskID(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDue(t *testing.T) {
	got, err := parseDue("2025-01-10 14:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 1, 10, 14, 30, 0, 0, time.Local), got)

	_, err = parseDue("10/01/2025")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD HH:MM")
}
