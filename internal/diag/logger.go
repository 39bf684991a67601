package diag

import (
	"fmt"
	"io"
)

// Logger receives out-of-band warnings from the builder. The only current
// producer is the duplicate-label policy.
type Logger interface {
	Warn(msg string)
}

// NopLogger drops every warning.
type NopLogger struct{}

func (NopLogger) Warn(string) {}

// WriterLogger writes warnings to W, one per line.
type WriterLogger struct {
	W io.Writer
}

func (l WriterLogger) Warn(msg string) {
	fmt.Fprintf(l.W, "warning: %s\n", msg)
}
