package diag

import (
	"fmt"
	"sort"
	"strings"

	"caret/internal/source"
)

type summaryLine struct {
	Severity string
	Code     string
	Path     string
	Line     uint32
	Column   uint32
	Message  string
}

// FormatSummary renders diagnostics into a stable, single-line-per-entry
// representation suitable for golden files and short CLI-style listings.
// Entries are sorted deterministically and returned as a single string
// (empty when nothing remains).
func FormatSummary(diags []*Diagnostic) string {
	if len(diags) == 0 {
		return ""
	}

	rendered := make([]summaryLine, 0, len(diags))
	for _, d := range diags {
		if d == nil {
			continue
		}
		rendered = append(rendered, summarize(d))
	}

	sort.SliceStable(rendered, func(i, j int) bool {
		di, dj := rendered[i], rendered[j]
		if di.Path != dj.Path {
			return di.Path < dj.Path
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Column != dj.Column {
			return di.Column < dj.Column
		}
		if di.Severity != dj.Severity {
			return di.Severity < dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})

	var b strings.Builder
	for i, d := range rendered {
		fmt.Fprintf(&b, "%s %s %s:%d:%d %s", d.Severity, d.Code, d.Path, d.Line, d.Column, d.Message)
		if i < len(rendered)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func summarize(d *Diagnostic) summaryLine {
	out := summaryLine{Severity: d.Severity.String()}
	if d.Header != nil {
		out.Code = d.Header.Code
		out.Message = sanitizeMessage(d.Header.Message)
	}
	path, line, col := primaryLocation(d)
	out.Path = path
	out.Line = line
	out.Column = col
	if out.Message == "" && len(d.Labels) > 0 {
		out.Message = sanitizeMessage(d.Labels[0].Content)
	}
	return out
}

func primaryLocation(d *Diagnostic) (string, uint32, uint32) {
	var fr source.FileRange
	switch {
	case len(d.Labels) > 0 && d.Labels[0].Range.File != nil:
		fr = d.Labels[0].Range
	case len(d.Ranges) > 0 && d.Ranges[0].File != nil:
		fr = d.Ranges[0]
	default:
		return "", 0, 0
	}
	line, lineRange, err := fr.File.PositionToLine(fr.Start)
	if err != nil {
		return fr.File.Name, 0, 0
	}
	return fr.File.Name, line, fr.Start - lineRange.Start + 1
}

func sanitizeMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "\r\n", "\n")
	msg = strings.ReplaceAll(msg, "\r", "\n")
	msg = strings.ReplaceAll(msg, "\n", " ")
	return strings.TrimSpace(msg)
}
