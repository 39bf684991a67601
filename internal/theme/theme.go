// Package theme loads user color themes from TOML and turns them into style
// templates. Theme values are terminal colors understood by lipgloss (ANSI
// index, 256-color index, or hex).
package theme

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"

	"caret/internal/style"
)

// Config is the on-disk shape of a theme file.
type Config struct {
	Colors map[string]string `toml:"colors"`
}

// Theme resolves rendering roles to terminal colors.
type Theme struct {
	colors map[string]string
}

// Default mirrors the built-in palette: error red, bug magenta, warning
// yellow, note green, help cyan, secondary cyan.
func Default() *Theme {
	return &Theme{colors: map[string]string{
		"error":     "1",
		"bug":       "5",
		"warning":   "3",
		"note":      "2",
		"help":      "6",
		"secondary": "6",
		"code":      "7",
		"gutter":    "6",
		"file_name": "7",
		"note_text": "7",
	}}
}

// Parse decodes a TOML theme. Unknown roles are kept and simply unused;
// missing roles fall back to the default palette.
func Parse(data []byte) (*Theme, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	t := Default()
	for role, value := range cfg.Colors {
		t.colors[role] = value
	}
	return t, nil
}

// Load reads a theme file from disk.
func Load(path string) (*Theme, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Color returns the configured value for a role, empty if absent.
func (t *Theme) Color(role string) string {
	return t.colors[role]
}

func (t *Theme) fn(role string) style.Fn {
	value, ok := t.colors[role]
	if !ok {
		return style.Identity
	}
	st := lipgloss.NewStyle().Foreground(lipgloss.Color(value))
	return func(s string) string { return st.Render(s) }
}

// Template builds a style template from the theme. When enabled is false the
// identity template is returned so output carries no escape sequences.
func (t *Theme) Template(enabled bool) style.Template {
	if !enabled {
		return style.Plain()
	}
	bold := lipgloss.NewStyle().Bold(true)
	return style.Template{
		Error:     t.fn("error"),
		Bug:       t.fn("bug"),
		Warning:   t.fn("warning"),
		Note:      t.fn("note"),
		Help:      t.fn("help"),
		Bold:      func(s string) string { return bold.Render(s) },
		Secondary: t.fn("secondary"),
		Code:      t.fn("code"),
		Gutter:    t.fn("gutter"),
		FileName:  t.fn("file_name"),
		NoteText:  t.fn("note_text"),
	}
}
