package diagfmt

import (
	"sort"
	"strings"

	"caret/internal/source"
	"caret/internal/style"
)

// Color-modification priorities. Higher claims a character first; ties go to
// the first-inserted modification.
const (
	prioUser      = 20
	prioSecondary = 29
	prioPrimary   = 30
)

// colorMod colorizes a relative column range of one row's body.
type colorMod struct {
	rng      source.Range // 1-based columns into the body
	fns      []style.Fn
	priority int
}

// cell is one gutter column: a bracket character plus its color.
type cell struct {
	ch  rune
	fns []style.Fn
}

// row is one output line before final assembly: an optional line number, the
// gutter prefix, the body with its pending color modifications, and padding
// state for the gutter-to-body gap.
type row struct {
	num    uint32 // 0 = unnumbered sub-line
	body   []rune
	mods   []colorMod
	base   []style.Fn // style for unclaimed body characters
	prefix []cell

	// padChar fills the internal-offset gap between prefix and body; zero
	// means a plain space. Set to ─ on bracket rows so horizontal runs stay
	// unbroken.
	padChar rune
	padFns  []style.Fn
}

func (r *row) isEmpty() bool {
	if len(r.body) != 0 || r.num != 0 {
		return false
	}
	for _, c := range r.prefix {
		if c.ch != 0 && c.ch != ' ' {
			return false
		}
	}
	return true
}

func (r *row) addMod(rng source.Range, fns []style.Fn, priority int) {
	r.mods = append(r.mods, colorMod{rng: rng, fns: fns, priority: priority})
}

// gutterReplaceable lists the prefix characters a later mark may upgrade.
// Corners and content characters are final.
func gutterReplaceable(ch rune) bool {
	switch ch {
	case 0, ' ', style.DashSecondary, style.BarHorizontal, style.BarVertical:
		return true
	}
	return false
}

// padReplaceable is gutterReplaceable minus the vertical bar, so horizontal
// padding never erases a crossing connector.
func padReplaceable(ch rune) bool {
	switch ch {
	case 0, ' ', style.DashSecondary, style.BarHorizontal:
		return true
	}
	return false
}

// bodyReplaceable lists the body characters a vertical connector may claim.
func bodyReplaceable(ch rune) bool {
	switch ch {
	case 0, ' ', style.DashSecondary, style.BarVertical:
		return true
	}
	return false
}

// setPrefix writes ch into the 1-based gutter column, growing the prefix as
// needed. The replaceable predicate guards what may be overwritten.
func (r *row) setPrefix(col int, ch rune, fns []style.Fn, replaceable func(rune) bool) {
	for len(r.prefix) < col {
		r.prefix = append(r.prefix, cell{})
	}
	if !replaceable(r.prefix[col-1].ch) {
		return
	}
	r.prefix[col-1] = cell{ch: ch, fns: fns}
}

// setBodyRune writes ch into the 1-based body column, growing the body with
// spaces as needed, honoring the replaceable predicate.
func (r *row) setBodyRune(col int, ch rune, fns []style.Fn, priority int, replaceable func(rune) bool) {
	for len(r.body) < col {
		r.body = append(r.body, ' ')
	}
	if !replaceable(r.body[col-1]) {
		return
	}
	r.body[col-1] = ch
	r.addMod(source.Range{Start: uint32(col), End: uint32(col)}, fns, priority)
}

// applyMods resolves the row's color modifications: highest priority claims
// each character first, insertion order breaks ties, unclaimed characters get
// the base style.
func (r *row) applyMods() string {
	body := r.body
	for len(body) > 0 && body[len(body)-1] == ' ' {
		body = body[:len(body)-1]
	}
	if len(body) == 0 {
		return ""
	}
	order := make([]int, len(r.mods))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return r.mods[order[i]].priority > r.mods[order[j]].priority
	})

	claimed := make([]bool, len(body))
	parts := make([]string, len(body))
	for _, mi := range order {
		m := r.mods[mi]
		lo, hi := int(m.rng.Start), int(m.rng.End)
		if lo < 1 {
			lo = 1
		}
		if hi > len(body) {
			hi = len(body)
		}
		for i := lo; i <= hi; i++ {
			if claimed[i-1] {
				continue
			}
			parts[i-1] = style.Apply(string(body[i-1]), m.fns)
			claimed[i-1] = true
		}
	}
	for i := range body {
		if !claimed[i] {
			parts[i] = style.Apply(string(body[i]), r.base)
		}
	}
	return strings.Join(parts, "")
}
