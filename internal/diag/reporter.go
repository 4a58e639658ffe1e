package diag

// Reporter — минимальный контракт получения диагностик от проверок.
// Реализации: BagReporter (кладёт в Bag), NopReporter.
type Reporter interface {
	Report(d Diagnostic)
}

// BagReporter stores every reported diagnostic in the underlying Bag.
type BagReporter struct {
	Bag *Bag
}

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter discards diagnostics.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}
