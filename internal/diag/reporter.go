package diag

// Reporter — минимальный контракт получения диагностик от производителей.
// Реализации: BagReporter (кладёт в Bag), fan-out по необходимости.
type Reporter interface {
	Report(d *Diagnostic)
}

// BagReporter — адаптер, который пишет в *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d *Diagnostic) {
	if r.Bag == nil || d == nil {
		return
	}
	r.Bag.Add(d)
}
