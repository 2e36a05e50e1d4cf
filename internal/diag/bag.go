package diag

import (
	"math"
	"slices"
	"sort"

	"fortio.org/safecast"
)

// Bag is an append-only collection of diagnostics with an upper bound.
type Bag struct {
	items []Diagnostic
	max   uint32
}

// NewBag creates a bag holding at most max diagnostics. Non-positive max means unlimited.
func NewBag(max int) *Bag {
	limit, err := safecast.Conv[uint32](max)
	if err != nil || max <= 0 {
		limit = math.MaxUint32
	}
	capHint := max
	if capHint <= 0 || capHint > 64 {
		capHint = 64
	}
	return &Bag{
		items: make([]Diagnostic, 0, capHint),
		max:   limit,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d Diagnostic) bool {
	if uint64(len(b.items)) >= uint64(b.max) {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() uint32 {
	return b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика с Severity >= Error
func (b *Bag) HasErrors() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevError {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика с Severity >= Warning
func (b *Bag) HasWarnings() bool {
	for i := range b.items {
		if b.items[i].Severity >= SevWarning {
			return true
		}
	}
	return false
}

// длина
func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез! (он указывает на внутренний массив Bag)
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Snapshot returns a copy of the diagnostics that stays valid after further Adds.
func (b *Bag) Snapshot() []Diagnostic {
	return slices.Clone(b.items)
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает max, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	newTotal := uint64(len(b.items) + len(other.items))
	if newTotal > uint64(b.max) {
		if n, err := safecast.Conv[uint32](newTotal); err == nil {
			b.max = n
		}
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует диагностики по: file, start, end, severity (desc), code (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		return Less(b.items[i], b.items[j])
	})
}

// Less is the ordering used by Sort.
func Less(di, dj Diagnostic) bool {
	if di.Primary.File != dj.Primary.File {
		return di.Primary.File < dj.Primary.File
	}
	if di.Primary.Start != dj.Primary.Start {
		return di.Primary.Start < dj.Primary.Start
	}
	if di.Primary.End != dj.Primary.End {
		return di.Primary.End < dj.Primary.End
	}
	// затем по severity (по убыванию: Error > Warning > Info)
	if di.Severity != dj.Severity {
		return di.Severity > dj.Severity
	}
	return di.Code < dj.Code
}
