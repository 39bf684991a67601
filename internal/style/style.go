// Package style defines the styling primitives the renderer composes:
// string→string style functions, the fixed gutter alphabet, and templates
// binding roles (severity colors, line numbers, code body) to functions.
package style

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Fn wraps a string in terminal styling. Functions compose by left-fold.
type Fn func(string) string

// Identity returns its input unchanged. Disabled templates are built from it.
func Identity(s string) string { return s }

// Compose folds fns left to right into a single Fn.
func Compose(fns ...Fn) Fn {
	return func(s string) string {
		for _, fn := range fns {
			s = fn(s)
		}
		return s
	}
}

// Apply runs every fn over s in order.
func Apply(s string, fns []Fn) string {
	for _, fn := range fns {
		s = fn(s)
	}
	return s
}

// AutoEnable reports whether w is an interactive terminal; callers use it to
// decide the Color option when nothing was requested explicitly.
func AutoEnable(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func sprint(c *color.Color) Fn {
	f := c.SprintFunc()
	return func(s string) string { return f(s) }
}

// Template binds rendering roles to style functions. A disabled template maps
// every role to Identity so output stays a clean character sequence.
type Template struct {
	Error   Fn
	Bug     Fn
	Warning Fn
	Note    Fn
	Help    Fn

	Bold      Fn
	Secondary Fn // default label color for secondary labels
	Code      Fn // snippet body
	Gutter    Fn // line numbers, sidebar bars, gap dots, note bullets
	FileName  Fn
	NoteText  Fn
}

// Colored builds the default ANSI template.
func Colored() Template {
	return Template{
		Error:     sprint(color.New(color.FgRed)),
		Bug:       sprint(color.New(color.FgMagenta)),
		Warning:   sprint(color.New(color.FgYellow)),
		Note:      sprint(color.New(color.FgGreen)),
		Help:      sprint(color.New(color.FgCyan)),
		Bold:      sprint(color.New(color.Bold)),
		Secondary: sprint(color.New(color.FgCyan)),
		Code:      sprint(color.New(color.FgWhite)),
		Gutter:    sprint(color.New(color.FgCyan)),
		FileName:  sprint(color.New(color.FgWhite)),
		NoteText:  sprint(color.New(color.FgWhite)),
	}
}

// Plain builds the identity template used for tests and non-tty writers.
func Plain() Template {
	return Template{
		Error:     Identity,
		Bug:       Identity,
		Warning:   Identity,
		Note:      Identity,
		Help:      Identity,
		Bold:      Identity,
		Secondary: Identity,
		Code:      Identity,
		Gutter:    Identity,
		FileName:  Identity,
		NoteText:  Identity,
	}
}
