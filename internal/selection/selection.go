// Package selection tracks which data cells of the active chart are selected.
package selection

import (
	"fmt"
	"sort"
	"strings"

	"tracker-cli/internal/model"
)

type Mode int

const (
	Single Mode = iota
	Multi
)

func (m Mode) String() string {
	if m == Multi {
		return "multi"
	}
	return "single"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "single":
		return Single, nil
	case "multi", "multiple":
		return Multi, nil
	default:
		return Single, fmt.Errorf("unknown selection mode: %s", s)
	}
}

// Bounds is the data-cell extent of a chart.
type Bounds struct {
	Rows int
	Cols int
}

func BoundsOf(c model.Chart) Bounds {
	return Bounds{Rows: len(c.Rows), Cols: len(c.Headers)}
}

func (b Bounds) Contains(ref model.CellRef) bool {
	return ref.Row >= 0 && ref.Row < b.Rows && ref.Col >= 0 && ref.Col < b.Cols
}

// Tracker is the selection set plus the selection mode. The zero value is an
// empty single-mode selection.
type Tracker struct {
	mode Mode
	// order keeps insertion order; the first entry decides SelectColumn's column.
	order []model.CellRef
	set   map[model.CellRef]struct{}
}

func New(mode Mode) *Tracker {
	return &Tracker{mode: mode}
}

func (t *Tracker) Mode() Mode { return t.mode }

// SetMode switches the mode and clears the selection.
func (t *Tracker) SetMode(m Mode) {
	t.mode = m
	t.Clear()
}

// Request applies a user select request: single mode replaces the selection
// with ref, multi mode toggles it. Refs outside b are ignored; the result
// reports whether the selection changed.
func (t *Tracker) Request(ref model.CellRef, b Bounds) bool {
	if !b.Contains(ref) {
		return false
	}
	if t.mode == Single {
		if t.Len() == 1 && t.Contains(ref) {
			return false
		}
		t.Clear()
		t.add(ref)
		return true
	}
	if t.Contains(ref) {
		t.remove(ref)
	} else {
		t.add(ref)
	}
	return true
}

// SelectColumn replaces the selection with every data cell in the column of
// the first selected cell. No-op on an empty selection.
func (t *Tracker) SelectColumn(b Bounds) bool {
	if t.Len() == 0 {
		return false
	}
	col := t.order[0].Col
	t.Clear()
	if col < 0 || col >= b.Cols {
		return true
	}
	for r := 0; r < b.Rows; r++ {
		t.add(model.CellRef{Row: r, Col: col})
	}
	return true
}

func (t *Tracker) Clear() {
	t.order = nil
	t.set = nil
}

func (t *Tracker) Len() int { return len(t.order) }

func (t *Tracker) Contains(ref model.CellRef) bool {
	_, ok := t.set[ref]
	return ok
}

// Cells returns the selection in row-major order.
func (t *Tracker) Cells() []model.CellRef {
	out := append([]model.CellRef(nil), t.order...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

// Prune drops refs that no longer fit b (after rows or columns are removed).
func (t *Tracker) Prune(b Bounds) {
	for _, ref := range append([]model.CellRef(nil), t.order...) {
		if !b.Contains(ref) {
			t.remove(ref)
		}
	}
}

func (t *Tracker) add(ref model.CellRef) {
	if t.set == nil {
		t.set = map[model.CellRef]struct{}{}
	}
	if _, ok := t.set[ref]; ok {
		return
	}
	t.set[ref] = struct{}{}
	t.order = append(t.order, ref)
}

func (t *Tracker) remove(ref model.CellRef) {
	if _, ok := t.set[ref]; !ok {
		return
	}
	delete(t.set, ref)
	for i, x := range t.order {
		if x == ref {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}
