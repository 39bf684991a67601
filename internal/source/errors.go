package source

import (
	"errors"
	"fmt"
)

// Rendering aborts on any of these; messages are part of the public contract.
var (
	ErrInvalidLineNumber  = errors.New("Line is out of bounds of the file.")
	ErrInvalidRangeBounds = errors.New("Range is out of bounds of the file.")
)

// MixedIndentationError reports a line whose leading whitespace character
// differs from the one established by the surrounding snippet.
type MixedIndentationError struct {
	File string
	Line uint32
}

func (e *MixedIndentationError) Error() string {
	return fmt.Sprintf("Mixed indentation found in file %s at line %d.", e.File, e.Line)
}
