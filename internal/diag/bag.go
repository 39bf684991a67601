package diag

import (
	"sort"
)

// Bag is a bounded, sortable collection of diagnostics.
type Bag struct {
	items []*Diagnostic
	max   uint16
}

func NewBag(max int) *Bag {
	return &Bag{
		items: make([]*Diagnostic, 0, max),
		max:   uint16(max),
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d *Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика уровня
// error или bug.
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity == SevError || b.items[i].Severity == SevBug {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if uint16(newTotal) > b.max {
		b.max = uint16(newTotal)
	}
	b.items = append(b.items, other.items...)
}

// anchor returns the sort key of a diagnostic: its first label range when one
// exists, else its first visible range.
func anchor(d *Diagnostic) (file string, start, end uint32) {
	if len(d.Labels) > 0 {
		fr := d.Labels[0].Range
		if fr.File != nil {
			return fr.File.Name, fr.Start, fr.End
		}
	}
	if len(d.Ranges) > 0 && d.Ranges[0].File != nil {
		return d.Ranges[0].File.Name, d.Ranges[0].Start, d.Ranges[0].End
	}
	return "", 0, 0
}

// Sort сортирует диагностики по: file, start, end, severity, header code
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		fi, si, ei := anchor(b.items[i])
		fj, sj, ej := anchor(b.items[j])
		if fi != fj {
			return fi < fj
		}
		if si != sj {
			return si < sj
		}
		if ei != ej {
			return ei < ej
		}
		if b.items[i].Severity != b.items[j].Severity {
			return b.items[i].Severity < b.items[j].Severity
		}
		return headerCode(b.items[i]) < headerCode(b.items[j])
	})
}

func headerCode(d *Diagnostic) string {
	if d.Header == nil {
		return ""
	}
	return d.Header.Code
}
