package diag

import (
	"sort"

	"fortio.org/safecast"
)

// Bag накапливает диагностики с учётом лимита.
type Bag struct {
	items   []Diagnostic
	max     uint16
	dropped int
	// худшая severity среди отброшенных, чтобы HasErrors/HasWarnings не врали
	droppedWorst Severity
}

func NewBag(max int) *Bag {
	capped, err := safecast.Conv[uint16](max)
	if err != nil {
		capped = ^uint16(0)
	}
	return &Bag{
		items: make([]Diagnostic, 0, capped),
		max:   capped,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит);
// отброшенные учитываются в Dropped и в HasErrors/HasWarnings.
func (b *Bag) Add(d Diagnostic) bool {
	if len(b.items) >= int(b.max) {
		b.dropped++
		if d.Severity > b.droppedWorst {
			b.droppedWorst = d.Severity
		}
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Dropped возвращает число диагностик, не поместившихся в лимит.
func (b *Bag) Dropped() int {
	return b.dropped
}

func (b *Bag) Cap() uint16 {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error,
// включая отброшенные по лимиту.
func (b *Bag) HasErrors() bool {
	if b.dropped > 0 && b.droppedWorst >= SevError {
		return true
	}
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning,
// включая отброшенные по лимиту.
func (b *Bag) HasWarnings() bool {
	if b.dropped > 0 && b.droppedWorst >= SevWarning {
		return true
	}
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
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
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := len(b.items) + len(other.items)
	if total, err := safecast.Conv[uint16](newTotal); err == nil && total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
	b.dropped += other.dropped
	if other.droppedWorst > b.droppedWorst {
		b.droppedWorst = other.droppedWorst
	}
}

// Sort сортирует диагностики по: file, severity (desc), code, message
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		if di.Code != dj.Code {
			return di.Code < dj.Code
		}
		return di.Message < dj.Message
	})
}
