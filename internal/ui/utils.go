package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// IsInteractive checks if stdin and stdout are terminals.
// Prompts are skipped when output is piped or input is scripted.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// Panel represents a styled panel with optional title and content.
type Panel struct {
	Title       string
	Content     string
	BorderColor lipgloss.Color
	Width       int
}

// NewPanel creates a new panel with default styling.
func NewPanel(title, content string) *Panel {
	return &Panel{
		Title:       title,
		Content:     content,
		BorderColor: ColorSecondary,
	}
}

// WithBorderColor sets the border color and returns the panel.
func (p *Panel) WithBorderColor(color lipgloss.Color) *Panel {
	p.BorderColor = color
	return p
}

// WithWidth sets the panel width and returns the panel.
func (p *Panel) WithWidth(width int) *Panel {
	p.Width = width
	return p
}

// Render returns the styled panel as a string.
func (p *Panel) Render() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.BorderColor).
		Padding(0, 1)

	if p.Width > 0 {
		style = style.Width(p.Width)
	}

	content := p.Content
	if p.Title != "" {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
		content = titleStyle.Render(p.Title) + "\n" + p.Content
	}

	return style.Render(content)
}

// RenderPanel is a convenience function to create and render a panel.
func RenderPanel(title, content string) string {
	return NewPanel(title, content).Render()
}

// RenderSuccessPanel renders a panel with success styling (green border).
func RenderSuccessPanel(title, content string) string {
	return NewPanel(title, content).WithBorderColor(ColorSuccess).Render()
}

// RenderWarningPanel renders a panel with warning styling (orange border).
func RenderWarningPanel(title, content string) string {
	return NewPanel(title, content).WithBorderColor(ColorWarning).Render()
}

// Truncate truncates a string to maxLen characters, adding ellipsis if needed.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// WrapText wraps text to the specified width.
func WrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	var result strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			result.WriteString("\n")
		}
		if len(line) <= width {
			result.WriteString(line)
			continue
		}

		currentLine := ""
		for _, word := range strings.Fields(line) {
			switch {
			case currentLine == "":
				currentLine = word
			case len(currentLine)+1+len(word) <= width:
				currentLine += " " + word
			default:
				result.WriteString(currentLine + "\n")
				currentLine = word
			}
		}
		result.WriteString(currentLine)
	}

	return result.String()
}
