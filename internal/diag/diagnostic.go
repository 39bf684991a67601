package diag

import (
	"caret/internal/source"
	"caret/internal/style"
)

// LabelStyle selects the marker set and color of a label.
type LabelStyle uint8

const (
	// LabelPrimary underlines with ^ in the severity color.
	LabelPrimary LabelStyle = iota
	// LabelSecondary underlines with - in the secondary color.
	LabelSecondary
)

// Label is a (style, range, content) annotation pointing at a source region.
// Content may span multiple lines.
type Label struct {
	Style   LabelStyle
	Range   source.FileRange
	Content string
}

// Color is a free-form colorization of a source region, resolved against
// other modifications by priority.
type Color struct {
	Range  source.FileRange
	Styles []style.Fn
}

// Header carries the optional {severity}[{code}]: {message} headline.
type Header struct {
	Code    string
	Message string
}

// Diagnostic accumulates everything one rendered message needs: severity,
// optional header, visible ranges, labels, notes, and colorizations. It is
// built through the chainable With* mutators and consumed read-only by the
// renderer.
type Diagnostic struct {
	Severity Severity
	Header   *Header
	Ranges   []source.FileRange
	Labels   []Label
	Notes    []string
	Colors   []Color

	logger Logger
}

// New constructs an empty diagnostic of the given severity.
func New(sev Severity) *Diagnostic {
	return &Diagnostic{Severity: sev, logger: NopLogger{}}
}

// WithLogger replaces the out-of-band warning sink.
func (d *Diagnostic) WithLogger(l Logger) *Diagnostic {
	if l != nil {
		d.logger = l
	}
	return d
}

// WithHeader sets the headline. The last call wins.
func (d *Diagnostic) WithHeader(code, message string) *Diagnostic {
	d.Header = &Header{Code: code, Message: message}
	return d
}

// WithRange makes a source region visible in the snippet even when no label
// points at it.
func (d *Diagnostic) WithRange(fr source.FileRange) *Diagnostic {
	d.Ranges = append(d.Ranges, fr)
	return d
}

// WithLabel attaches an annotation. Two labels over the identical region of
// the same file collapse to the first one; the duplicate is dropped with a
// warning.
func (d *Diagnostic) WithLabel(st LabelStyle, fr source.FileRange, content string) *Diagnostic {
	for i := range d.Labels {
		if d.Labels[i].Range.SameBounds(fr) {
			d.logger.Warn("duplicate label range " + fr.Range.String() + " ignored")
			return d
		}
	}
	d.Labels = append(d.Labels, Label{Style: st, Range: fr, Content: content})
	return d
}

// WithNote appends a trailing note line.
func (d *Diagnostic) WithNote(message string) *Diagnostic {
	d.Notes = append(d.Notes, message)
	return d
}

// WithColor colorizes a region of the snippet. Overlaps with other colors and
// with label underlines resolve by priority at render time.
func (d *Diagnostic) WithColor(fr source.FileRange, fns ...style.Fn) *Diagnostic {
	d.Colors = append(d.Colors, Color{Range: fr, Styles: fns})
	return d
}
