package diagfmt

import (
	"sort"
	"strings"

	"caret/internal/diag"
	"caret/internal/runes"
	"caret/internal/source"
	"caret/internal/style"
)

// renderer owns all transient per-render state. The input diagnostic stays
// read-only, so distinct renderings never interfere.
type renderer struct {
	d      *diag.Diagnostic
	tpl    style.Template
	opts   PrettyOpts
	depths map[int]int // label index -> gutter depth
}

func newRenderer(d *diag.Diagnostic, opts PrettyOpts, tpl style.Template) *renderer {
	r := &renderer{d: d, tpl: tpl, opts: opts, depths: make(map[int]int)}
	r.computeDepths()
	return r
}

func (r *renderer) severityFn() style.Fn {
	switch r.d.Severity {
	case diag.SevError:
		return r.tpl.Error
	case diag.SevBug:
		return r.tpl.Bug
	case diag.SevWarning:
		return r.tpl.Warning
	case diag.SevNote:
		return r.tpl.Note
	case diag.SevHelp:
		return r.tpl.Help
	}
	return style.Identity
}

func (r *renderer) labelFns(st diag.LabelStyle) []style.Fn {
	if st == diag.LabelPrimary {
		return []style.Fn{r.severityFn()}
	}
	return []style.Fn{r.tpl.Secondary}
}

func (r *renderer) labelPriority(st diag.LabelStyle) int {
	if st == diag.LabelPrimary {
		return prioPrimary
	}
	return prioSecondary
}

func underlineRune(st diag.LabelStyle) rune {
	if st == diag.LabelPrimary {
		return style.CaretPrimary
	}
	return style.DashSecondary
}

func pointerRune(st diag.LabelStyle) rune {
	if st == diag.LabelPrimary {
		return style.CaretPrimary
	}
	return style.QuoteSecondary
}

// multiLabel tracks one multi-line label while its group renders.
type multiLabel struct {
	idx         int
	label       diag.Label
	first, last uint32 // covered line numbers
	depth       int
	fns         []style.Fn
	priority    int
	pointer     rune
	startRow    int
	endRow      int
}

type mlInfo struct {
	idx         int
	file        *source.File
	rng         source.Range
	first, last uint32
}

// computeDepths assigns every multi-line label its gutter depth: labels are
// clustered into transitively-closed sets of overlapping spans, each cluster
// sorted by start ascending (ties: start+end descending), and the 1-based
// position doubled so a track remains free for the end connector.
func (r *renderer) computeDepths() {
	var infos []mlInfo
	for i, l := range r.d.Labels {
		if l.Range.File == nil {
			continue
		}
		span := l.Range.File.LinesInRange(l.Range.Range)
		if len(span) < 2 {
			continue
		}
		infos = append(infos, mlInfo{
			idx:   i,
			file:  l.Range.File,
			rng:   l.Range.Range,
			first: span[0].Number,
			last:  span[len(span)-1].Number,
		})
	}

	assigned := make(map[int]bool)
	for s := range infos {
		if assigned[infos[s].idx] {
			continue
		}
		cluster := r.closure(infos, s)
		sort.SliceStable(cluster, func(i, j int) bool {
			a, b := cluster[i], cluster[j]
			if a.rng.Start != b.rng.Start {
				return a.rng.Start < b.rng.Start
			}
			return a.rng.Start+a.rng.End > b.rng.Start+b.rng.End
		})
		for pos, info := range cluster {
			r.depths[info.idx] = 2 * (pos + 1)
			assigned[info.idx] = true
		}
	}
}

// closure expands seed into every multi-line label related to it: one whose
// range overlaps a member's range or that shares a line with a member,
// transitively.
func (r *renderer) closure(infos []mlInfo, seed int) []mlInfo {
	inSet := map[int]bool{seed: true}
	queue := []int{seed}
	for len(queue) > 0 {
		cur := infos[queue[0]]
		queue = queue[1:]
		for j := range infos {
			if inSet[j] || infos[j].file != cur.file {
				continue
			}
			_, overlaps := infos[j].rng.LooselyFitsIn(cur.rng)
			sharesLine := infos[j].first <= cur.last && infos[j].last >= cur.first
			if overlaps || sharesLine {
				inSet[j] = true
				queue = append(queue, j)
			}
		}
	}
	idxs := make([]int, 0, len(inSet))
	for j := range inSet {
		idxs = append(idxs, j)
	}
	sort.Ints(idxs)
	out := make([]mlInfo, 0, len(idxs))
	for _, j := range idxs {
		out = append(out, infos[j])
	}
	return out
}

// relativeRange translates a file-global range to 1-based columns on one
// rendered line. Trimmed ranges strip the line's own indentation, untrimmed
// ones strip the group's minimum. A range ending before column 1 is dropped.
func relativeRange(fr source.FileRange, line source.Line, norm source.Normalized) (source.Range, bool) {
	clipped, ok := fr.Range.LooselyFitsIn(line.Range)
	if !ok {
		return source.Range{}, false
	}
	shift := int64(norm.MinIndent)
	if fr.Trimmed {
		shift = int64(norm.Indents[line.Number])
	}
	start := int64(clipped.Start) - int64(line.Range.Start) + 1 - shift
	end := int64(clipped.End) - int64(line.Range.Start) + 1 - shift
	if end <= 0 {
		return source.Range{}, false
	}
	if start < 1 {
		start = 1
	}
	return source.Range{Start: uint32(start), End: uint32(end)}, true
}

// lineItem is a label or color discovered on one rendered line.
type lineItem struct {
	isColor  bool
	labelIdx int
	label    diag.Label
	color    diag.Color
}

// itemsOnLine selects everything loosely overlapping the line and orders it:
// labels before colors; labels by start descending (ties end ascending) so
// later-starting, more nested labels are processed first; colors by end
// descending.
func (r *renderer) itemsOnLine(file *source.File, line source.Line) []lineItem {
	var labels, colors []lineItem
	for i, l := range r.d.Labels {
		if l.Range.File != file {
			continue
		}
		if _, ok := l.Range.Range.LooselyFitsIn(line.Range); !ok {
			continue
		}
		labels = append(labels, lineItem{labelIdx: i, label: l})
	}
	sort.SliceStable(labels, func(i, j int) bool {
		a, b := labels[i].label.Range, labels[j].label.Range
		if a.Start != b.Start {
			return a.Start > b.Start
		}
		return a.End < b.End
	})
	for _, c := range r.d.Colors {
		if c.Range.File != file {
			continue
		}
		if _, ok := c.Range.Range.LooselyFitsIn(line.Range); !ok {
			continue
		}
		colors = append(colors, lineItem{isColor: true, color: c})
	}
	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].color.Range.End > colors[j].color.Range.End
	})
	return append(labels, colors...)
}

func lineBody(file *source.File, line source.Line, norm source.Normalized) []rune {
	text := []rune(file.Slice(line.Range))
	if n := len(text); n > 0 && text[n-1] == '\n' {
		text = text[:n-1]
	}
	strip := norm.MinIndent
	if own := norm.Indents[line.Number]; strip > own {
		strip = own
	}
	if int(strip) > len(text) {
		strip = uint32(len(text))
	}
	return text[strip:]
}

// renderGroup lays out one run of consecutive lines: code rows, single-line
// underlines and their stacks, multi-line brackets, vertical connectors.
func (r *renderer) renderGroup(c *container, g *group) error {
	file := c.file
	last := g.lines[len(g.lines)-1]
	groupRange := g.lines[0].Range.Merge(last.Range)
	norm, err := file.NormalizedContentForRange(groupRange)
	if err != nil {
		return err
	}

	var mls []*multiLabel
	for i, l := range r.d.Labels {
		depth, ok := r.depths[i]
		if !ok || l.Range.File != file {
			continue
		}
		span := file.LinesInRange(l.Range.Range)
		first, lastLn := span[0].Number, span[len(span)-1].Number
		if lastLn < g.lines[0].Number || first > last.Number {
			continue
		}
		mls = append(mls, &multiLabel{
			idx:      i,
			label:    l,
			first:    first,
			last:     lastLn,
			depth:    depth,
			fns:      r.labelFns(l.Style),
			priority: r.labelPriority(l.Style),
			pointer:  pointerRune(l.Style),
			startRow: -1,
			endRow:   -1,
		})
		if depth > g.maxDepth {
			g.maxDepth = depth
		}
	}

	var rows []*row
	for _, line := range g.lines {
		codeRow := &row{
			num:  line.Number,
			body: lineBody(file, line, norm),
			base: []style.Fn{r.tpl.Code},
		}
		codeRowIdx := len(rows)
		rows = append(rows, codeRow)
		underlineIdx := -1

		items := r.itemsOnLine(file, line)
		fit := 0
		for _, it := range items {
			if it.isColor {
				continue
			}
			if _, ok := it.label.Range.Range.FitsIn(line.Range); ok {
				fit++
			}
		}

		for _, it := range items {
			if it.isColor {
				if rel, ok := relativeRange(it.color.Range, line, norm); ok {
					codeRow.addMod(rel, it.color.Styles, prioUser)
				}
				continue
			}
			if _, ok := it.label.Range.Range.FitsIn(line.Range); ok {
				r.placeSingleLine(&rows, codeRowIdx, &underlineIdx, it.label, line, norm, fit)
				continue
			}
			for _, ml := range mls {
				if ml.idx == it.labelIdx && ml.first == line.Number {
					r.startMulti(&rows, codeRowIdx, ml, mls, line, norm, g.maxDepth)
					break
				}
			}
		}

		for _, ml := range mls {
			if ml.last == line.Number {
				r.endMulti(&rows, ml, line, norm, g.maxDepth)
			}
		}
	}

	for _, ml := range mls {
		if ml.startRow < 0 || ml.endRow < 0 {
			continue
		}
		for i := ml.startRow + 1; i < ml.endRow; i++ {
			rows[i].setPrefix(ml.depth, style.BarVertical, ml.fns, gutterReplaceable)
		}
	}

	g.rows = rows
	return nil
}

// placeSingleLine renders a label fully contained in one line: a lone label
// gets its underline and message inline; stacked labels share the underline
// row and route their messages down through vertical connectors.
func (r *renderer) placeSingleLine(rows *[]*row, codeRowIdx int, underlineIdx *int, label diag.Label, line source.Line, norm source.Normalized, fit int) {
	rel, ok := relativeRange(label.Range, line, norm)
	if !ok {
		return
	}
	fns := r.labelFns(label.Style)
	priority := r.labelPriority(label.Style)
	ul := underlineRune(label.Style)
	ulLen := int(rel.Len())
	content := strings.Split(label.Content, "\n")

	if fit == 1 {
		body := runes.Rep(" ", int(rel.Start)-1) + runes.Rep(string(ul), ulLen)
		if content[0] != "" {
			body += " " + content[0]
		}
		sub := &row{body: []rune(body)}
		sub.addMod(source.Range{Start: rel.Start, End: uint32(len(sub.body))}, fns, priority)
		*rows = append(*rows, sub)
		for _, extra := range content[1:] {
			cont := &row{body: []rune(runes.Rep(" ", int(rel.Start)+ulLen) + extra)}
			cont.addMod(source.Range{Start: rel.Start + uint32(ulLen) + 1, End: uint32(len(cont.body))}, fns, priority)
			*rows = append(*rows, cont)
		}
	} else {
		if *underlineIdx < 0 {
			*rows = append(*rows, &row{})
			*underlineIdx = len(*rows) - 1
		}
		urow := (*rows)[*underlineIdx]
		for col := int(rel.Start); col <= int(rel.End); col++ {
			urow.setBodyRune(col, ul, fns, priority, bodyReplaceable)
		}
		*rows = append(*rows, &row{})
		for i := *underlineIdx + 1; i < len(*rows); i++ {
			(*rows)[i].setBodyRune(int(rel.Start), style.BarVertical, fns, priority, bodyReplaceable)
		}
		first := &row{body: []rune(runes.Rep(" ", int(rel.Start)-1) + content[0])}
		first.addMod(source.Range{Start: rel.Start, End: uint32(len(first.body))}, fns, priority)
		*rows = append(*rows, first)
		for _, extra := range content[1:] {
			cont := &row{body: []rune(runes.Rep(" ", int(rel.Start)-1) + extra)}
			cont.addMod(source.Range{Start: rel.Start, End: uint32(len(cont.body))}, fns, priority)
			*rows = append(*rows, cont)
		}
	}

	if label.Style == diag.LabelPrimary {
		(*rows)[codeRowIdx].addMod(rel, fns, prioPrimary)
	}
}

// startMulti opens a bracket. A label that is alone in starting at the very
// first column of the line hooks its corner onto the code row; otherwise a
// dedicated sub-line carries the corner and a horizontal run to the pointer.
func (r *renderer) startMulti(rows *[]*row, codeRowIdx int, ml *multiLabel, mls []*multiLabel, line source.Line, norm source.Normalized, maxDepth int) {
	starters := 0
	for _, other := range mls {
		if other.first == line.Number && other.label.Range.Start == line.Range.Start {
			starters++
		}
	}
	if ml.label.Range.Start == line.Range.Start && starters == 1 {
		(*rows)[codeRowIdx].setPrefix(ml.depth, style.CornerTop, ml.fns, gutterReplaceable)
		ml.startRow = codeRowIdx
		return
	}

	rel, ok := relativeRange(ml.label.Range, line, norm)
	if !ok {
		rel = source.Range{Start: 1, End: 1}
	}
	sub := &row{padChar: style.BarHorizontal, padFns: ml.fns}
	sub.setPrefix(ml.depth, style.CornerTop, ml.fns, gutterReplaceable)
	for col := ml.depth + 1; col <= maxDepth; col++ {
		sub.setPrefix(col, style.BarHorizontal, ml.fns, padReplaceable)
	}
	sub.body = []rune(runes.Rep(string(style.BarHorizontal), int(rel.Start)-1) + string(ml.pointer))
	sub.addMod(source.Range{Start: 1, End: uint32(len(sub.body))}, ml.fns, ml.priority)
	*rows = append(*rows, sub)
	ml.startRow = len(*rows) - 1
}

// endMulti closes a bracket after the label's last covered line: the corner
// row carries a horizontal run out to the pointer under the label end, then
// the message, then any continuation lines.
func (r *renderer) endMulti(rows *[]*row, ml *multiLabel, line source.Line, norm source.Normalized, maxDepth int) {
	var end *row
	if n := len(*rows); n > 0 && (*rows)[n-1].isEmpty() {
		end = (*rows)[n-1]
	} else {
		end = &row{}
		*rows = append(*rows, end)
	}
	end.padChar = style.BarHorizontal
	end.padFns = ml.fns
	end.setPrefix(ml.depth, style.CornerBot, ml.fns, gutterReplaceable)
	for col := ml.depth + 1; col <= maxDepth; col++ {
		end.setPrefix(col, style.BarHorizontal, ml.fns, padReplaceable)
	}

	rel, ok := relativeRange(ml.label.Range, line, norm)
	if !ok {
		rel = source.Range{Start: 1, End: 1}
	}
	diff := int(rel.End) - 1
	if diff < 0 {
		diff = 0
	}
	content := strings.Split(ml.label.Content, "\n")
	body := runes.Rep(string(style.BarHorizontal), diff) + string(ml.pointer)
	if content[0] != "" {
		body += " " + content[0]
	}
	end.body = []rune(body)
	end.addMod(source.Range{Start: 1, End: uint32(len(end.body))}, ml.fns, ml.priority)
	for i := len(*rows) - 1; i >= 0; i-- {
		if (*rows)[i] == end {
			ml.endRow = i
			break
		}
	}
	for _, extra := range content[1:] {
		cont := &row{body: []rune(runes.Rep(" ", diff+2) + extra)}
		cont.addMod(source.Range{Start: uint32(diff) + 3, End: uint32(len(cont.body))}, ml.fns, ml.priority)
		*rows = append(*rows, cont)
	}
}
