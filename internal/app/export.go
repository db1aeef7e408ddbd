package app

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/josephgoksu/smarttask/internal/task"
	"github.com/josephgoksu/smarttask/models"
	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// ExportFormats lists the accepted export formats.
var ExportFormats = []string{FormatJSON, FormatYAML, FormatTOML}

// TaskExport is the document written by ExportTasks.
type TaskExport struct {
	Student string        `json:"student" yaml:"student" toml:"student"`
	Tasks   []models.Task `json:"tasks" yaml:"tasks" toml:"tasks"`
	Stats   task.Stats    `json:"stats" yaml:"stats" toml:"stats"`
}

// ExportTasks writes the student's filtered tasks and overall stats to w.
func (c *Context) ExportTasks(w io.Writer, email, format string, f task.Filter) error {
	doc := TaskExport{
		Student: email,
		Tasks:   c.Tasks.QueryByStudent(email, f),
		Stats:   c.Tasks.StatsFor(email),
	}
	return encodeExport(w, strings.ToLower(strings.TrimSpace(format)), doc)
}

func encodeExport(w io.Writer, format string, doc TaskExport) error {
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unsupported export format %q (want one of %s)", format, strings.Join(ExportFormats, ", "))
	}
}
