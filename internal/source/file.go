package source

import (
	"fmt"
	"strings"

	"fortio.org/safecast"
)

// File is named source content decomposed into per-line ranges. Content is
// normalized on construction: tabs are expanded to four spaces. All positions
// into the file are 1-based codepoint indices over the normalized content.
type File struct {
	ID      FileID
	Name    string
	Content string
	Flags   FileFlags

	runes []rune
	lines []Range
}

// NewFile normalizes content (tab expansion) and records one Range per line.
// Every line range covers its trailing newline when one is present.
func NewFile(name, content string) *File {
	content = strings.ReplaceAll(content, "\t", "    ")
	f := &File{
		Name:    name,
		Content: content,
		runes:   []rune(content),
	}
	f.lines = splitLines(f.runes)
	return f
}

func splitLines(runes []rune) []Range {
	lines := make([]Range, 0, 16)
	start := uint32(1)
	for i, r := range runes {
		if r == '\n' {
			pos, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			lines = append(lines, Range{Start: start, End: pos})
			start = pos + 1
		}
	}
	total, err := safecast.Conv[uint32](len(runes))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if start <= total {
		lines = append(lines, Range{Start: start, End: total})
	}
	return lines
}

// NumRunes returns the codepoint length of the normalized content.
func (f *File) NumRunes() uint32 {
	n, err := safecast.Conv[uint32](len(f.runes))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}

// LineCount returns the number of lines in the file.
func (f *File) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(f.lines))
	if err != nil {
		panic(fmt.Errorf("line count overflow: %w", err))
	}
	return n
}

// RangeForLine returns the range of the 1-based line n.
func (f *File) RangeForLine(n uint32) (Range, error) {
	if n < 1 || n > f.LineCount() {
		return Range{}, ErrInvalidLineNumber
	}
	return f.lines[n-1], nil
}

// LineRange returns a range spanning lines first..last inclusive.
func (f *File) LineRange(first, last uint32) (Range, error) {
	a, err := f.RangeForLine(first)
	if err != nil {
		return Range{}, err
	}
	b, err := f.RangeForLine(last)
	if err != nil {
		return Range{}, err
	}
	return a.Merge(b), nil
}

// PositionToLine maps a position to its 1-based line number and line range.
func (f *File) PositionToLine(pos uint32) (uint32, Range, error) {
	if pos < 1 || pos > f.NumRunes() {
		return 0, Range{}, ErrInvalidRangeBounds
	}
	// binary search for the line whose range contains pos
	lo, hi := 0, len(f.lines)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		line := f.lines[mid]
		switch {
		case pos < line.Start:
			hi = mid - 1
		case pos > line.End:
			lo = mid + 1
		default:
			n, err := safecast.Conv[uint32](mid + 1)
			if err != nil {
				panic(fmt.Errorf("line number overflow: %w", err))
			}
			return n, line, nil
		}
	}
	return 0, Range{}, ErrInvalidLineNumber
}

// Span builds a FileRange over [start, end] after validating the bounds.
func (f *File) Span(start, end uint32) (FileRange, error) {
	if start < 1 || end > f.NumRunes() || start > end {
		return FileRange{}, ErrInvalidRangeBounds
	}
	return FileRange{File: f, Range: Range{Start: start, End: end}}, nil
}

// MustSpan is Span that panics on invalid bounds. Callers with known-good
// coordinates (tests, generated positions) use it to stay chainable.
func (f *File) MustSpan(start, end uint32) FileRange {
	fr, err := f.Span(start, end)
	if err != nil {
		panic(fmt.Errorf("span %d-%d in %s: %w", start, end, f.Name, err))
	}
	return fr
}

// Slice returns the content substring covered by r, clipped to the file.
func (f *File) Slice(r Range) string {
	if len(f.runes) == 0 || r.Start > f.NumRunes() {
		return ""
	}
	start := r.Start
	if start < 1 {
		start = 1
	}
	end := r.End
	if end > f.NumRunes() {
		end = f.NumRunes()
	}
	if start > end {
		return ""
	}
	return string(f.runes[start-1 : end])
}

// Line pairs a 1-based line number with that line's range.
type Line struct {
	Number uint32
	Range  Range
}

// LinesInRange returns every line whose range loosely overlaps r.
func (f *File) LinesInRange(r Range) []Line {
	out := make([]Line, 0, 4)
	for i, line := range f.lines {
		if _, ok := line.LooselyFitsIn(r); ok {
			out = append(out, Line{Number: uint32(i + 1), Range: line})
		}
	}
	return out
}

// Normalized is the result of de-indenting a snippet: the text with the
// minimum indentation stripped from every line, the original indent of each
// covered line, and the stripped amount.
type Normalized struct {
	Text      string
	Indents   map[uint32]uint32
	MinIndent uint32
}

// NormalizedContentForRange expands r to whole lines and strips the common
// leading indentation. Blank lines do not participate in the minimum. A line
// whose leading whitespace mixes characters differently than the established
// one fails with MixedIndentationError.
func (f *File) NormalizedContentForRange(r Range) (Normalized, error) {
	lines := f.LinesInRange(r)
	if len(lines) == 0 {
		return Normalized{Indents: map[uint32]uint32{}}, nil
	}

	indents := make(map[uint32]uint32, len(lines))
	var indentChar rune
	minIndent := uint32(0)
	haveMin := false

	for _, line := range lines {
		text := f.Slice(line.Range)
		indent := uint32(0)
		blank := true
		for _, ch := range text {
			if ch == ' ' || ch == '\t' {
				if indentChar == 0 {
					indentChar = ch
				} else if ch != indentChar {
					return Normalized{}, &MixedIndentationError{File: f.Name, Line: line.Number}
				}
				indent++
				continue
			}
			if ch != '\n' {
				blank = false
			}
			break
		}
		indents[line.Number] = indent
		if !blank && (!haveMin || indent < minIndent) {
			minIndent = indent
			haveMin = true
		}
	}

	var b strings.Builder
	for _, line := range lines {
		text := []rune(f.Slice(line.Range))
		// never strip past the line's own leading run
		strip := minIndent
		if own := indents[line.Number]; strip > own {
			strip = own
		}
		b.WriteString(string(text[strip:]))
	}
	return Normalized{Text: b.String(), Indents: indents, MinIndent: minIndent}, nil
}
