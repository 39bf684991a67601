package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"caret/internal/diag"
	"caret/internal/runes"
	"caret/internal/style"
)

// Pretty форматирует диагностику в человекочитаемый вид и пишет в w.
// Печатает заголовок (если задан), затем по одному контейнеру на файл:
// строку-основание {name}:{first}:{last}, сниппеты с подчёркиваниями и
// скобками в левом поле, затем заметки.
func Pretty(w io.Writer, d *diag.Diagnostic, opts PrettyOpts) error {
	out, err := Render(d, opts)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// Render returns the rendered diagnostic as one string, lines joined by \n.
func Render(d *diag.Diagnostic, opts PrettyOpts) (string, error) {
	tpl := style.Plain()
	if opts.Color {
		tpl = style.Colored()
	}
	return RenderTemplate(d, opts, tpl)
}

// RenderTemplate renders with an explicit template; themes build their own.
func RenderTemplate(d *diag.Diagnostic, opts PrettyOpts, tpl style.Template) (string, error) {
	r := newRenderer(d, opts, tpl)
	containers := collectContainers(d)
	for _, c := range containers {
		for _, g := range c.groups {
			if err := r.renderGroup(c, g); err != nil {
				return "", err
			}
		}
	}
	return r.assemble(containers), nil
}

func (r *renderer) assemble(containers []*container) string {
	var out []string

	if h := r.d.Header; h != nil {
		title := r.d.Severity.String()
		if h.Code != "" {
			title += "[" + h.Code + "]"
		}
		line := r.tpl.Bold(r.severityFn()(title)) + r.tpl.Bold(": "+h.Message)
		out = append(out, line)
	}

	numWidth := 1
	for _, c := range containers {
		if w := len(strconv.FormatUint(uint64(c.lastLine()), 10)); w > numWidth {
			numWidth = w
		}
	}

	for ci, c := range containers {
		base := style.CornerTopSharp
		if ci > 0 {
			base = style.TeeRight
		}
		name := r.formatPath(c.file.Name)
		header := runes.Rep(" ", numWidth) + " " +
			r.tpl.Gutter(string(base)+string(style.BarHorizontal)) + " " +
			r.tpl.FileName(fmt.Sprintf("%s:%d:%d", name, c.firstLine(), c.lastLine()))
		out = append(out, strings.TrimRight(header, " "))

		for gi, g := range c.groups {
			if gi > 0 {
				gap := runes.Rep(" ", numWidth) + " " + r.tpl.Gutter(string(style.GapDot))
				out = append(out, strings.TrimRight(gap, " "))
			}
			for _, row := range g.rows {
				out = append(out, r.renderRow(row, numWidth, g.maxDepth))
			}
		}
	}

	if r.opts.ShowNotes {
		for _, note := range r.d.Notes {
			line := runes.Rep(" ", numWidth+1) +
				r.tpl.Gutter(string(style.NoteBullet)) + " " + r.tpl.NoteText(note)
			out = append(out, strings.TrimRight(line, " "))
		}
	}

	return strings.Join(out, "\n")
}

func (r *renderer) renderRow(row *row, numWidth, maxDepth int) string {
	var b strings.Builder

	numStr := ""
	if row.num > 0 {
		numStr = strconv.FormatUint(uint64(row.num), 10)
	}
	if numStr != "" {
		b.WriteString(r.tpl.Gutter(numStr))
	}
	b.WriteString(runes.Rep(" ", numWidth-len(numStr)))
	b.WriteString(" ")
	b.WriteString(r.tpl.Gutter(string(style.BarVertical)))
	b.WriteString(" ")

	for _, c := range row.prefix {
		if c.ch == 0 {
			b.WriteString(" ")
			continue
		}
		b.WriteString(style.Apply(string(c.ch), c.fns))
	}
	if maxDepth > 0 {
		offset := maxDepth - len(row.prefix) + 1
		pad := " "
		var fns []style.Fn
		if row.padChar != 0 {
			pad = string(row.padChar)
			fns = row.padFns
		}
		b.WriteString(style.Apply(runes.Rep(pad, offset), fns))
	}
	b.WriteString(row.applyMods())

	return strings.TrimRight(b.String(), " ")
}

func (r *renderer) formatPath(name string) string {
	out := name
	switch r.opts.PathMode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(name); err == nil {
			out = filepath.ToSlash(abs)
		}
	case PathModeBasename:
		out = filepath.Base(name)
	case PathModeRelative:
		out = name
	case PathModeAuto:
		if len(name) >= 40 && filepath.IsAbs(name) {
			out = filepath.Base(name)
		}
	}
	if r.opts.MaxPathWidth > 0 {
		out = runes.Truncate(out, r.opts.MaxPathWidth)
	}
	return out
}
