// Package caret renders compiler-style diagnostics for the terminal: a
// header line, per-file code snippets with line numbers, caret and dash
// underlines, multi-line brackets in the left gutter, and trailing notes.
//
// Files are loaded once (tabs expanded; a FileSet also strips a BOM and
// collapses CRLF) and outlive the diagnostics built over them. A diagnostic is assembled through chainable
// builder calls and then emitted:
//
//	f := caret.NewFile("main.sg", src)
//	out, err := caret.Emit(caret.New(caret.Error).
//		WithHeader("E0042", "unresolved name").
//		WithLabel(caret.Primary, f.MustSpan(5, 5), "not found in this scope"))
package caret

import (
	"io"

	"caret/internal/diag"
	"caret/internal/diagfmt"
	"caret/internal/source"
	"caret/internal/style"
)

// Aliases expose the internal model without widening the API surface.
type (
	Diagnostic = diag.Diagnostic
	Severity   = diag.Severity
	LabelStyle = diag.LabelStyle
	Logger     = diag.Logger
	File       = source.File
	FileRange  = source.FileRange
	FileSet    = source.FileSet
	Range      = source.Range
	StyleFn    = style.Fn
	Options    = diagfmt.PrettyOpts
)

const (
	Error   = diag.SevError
	Bug     = diag.SevBug
	Warning = diag.SevWarning
	Note    = diag.SevNote
	Help    = diag.SevHelp

	Primary   = diag.LabelPrimary
	Secondary = diag.LabelSecondary
)

// New starts a diagnostic of the given severity.
func New(sev Severity) *Diagnostic { return diag.New(sev) }

// NewFile normalizes content and indexes its lines.
func NewFile(name, content string) *File { return source.NewFile(name, content) }

// NewFileSet creates an empty file registry.
func NewFileSet() *FileSet { return source.NewFileSet() }

// DefaultOptions returns plain rendering with notes shown.
func DefaultOptions() Options { return diagfmt.DefaultOpts() }

// Emit renders with default options.
func Emit(d *Diagnostic) (string, error) {
	return diagfmt.Render(d, diagfmt.DefaultOpts())
}

// EmitOpts renders with explicit options.
func EmitOpts(d *Diagnostic, opts Options) (string, error) {
	return diagfmt.Render(d, opts)
}

// Fprint renders to w, appending a trailing newline.
func Fprint(w io.Writer, d *Diagnostic, opts Options) error {
	return diagfmt.Pretty(w, d, opts)
}
