// Package view is the boundary between the chart model and whatever paints
// it. Materialize turns a chart into render instructions; Serialize reads a
// rendered document back into a chart.
package view

import (
	"fmt"
	"strings"

	"tracker-cli/internal/model"
)

// Presentation classes. Backgrounds use model.Background.Class().
const (
	ClassDataCell = "data-cell"
	ClassSelected = "selected-cell"
	ClassCardSlot = "card-slot"
	cardPrefix    = "card-"
)

// Document is one rendered chart.
type Document struct {
	ChartID string
	Title   string
	Headers []string
	Rows    []RowView
}

type RowView struct {
	Name    string
	Penalty [model.PenaltySlots]SlotView
	Cells   []CellView
}

type SlotView struct {
	Classes []string
}

type CellView struct {
	Classes []string
	// Mark is the glyph shown in the cell ("" when unmarked).
	Mark string
}

func (v CellView) HasClass(cls string) bool {
	for _, c := range v.Classes {
		if c == cls {
			return true
		}
	}
	return false
}

// Adapter paints documents. Implementations must treat the document as a
// projection of the model and never feed presentation state back into it.
type Adapter interface {
	Render(doc Document, sel []model.CellRef)
}

// AdapterFunc adapts a function to Adapter.
type AdapterFunc func(doc Document, sel []model.CellRef)

func (f AdapterFunc) Render(doc Document, sel []model.CellRef) { f(doc, sel) }

// Nop discards renders; used by the CLI.
var Nop Adapter = AdapterFunc(func(Document, []model.CellRef) {})

// Materialize produces the render instructions for c.
func Materialize(c model.Chart) Document {
	doc := Document{
		ChartID: c.ID,
		Title:   c.Name,
		Headers: append([]string{}, c.Headers...),
		Rows:    make([]RowView, 0, len(c.Rows)),
	}
	for _, r := range c.Rows {
		rv := RowView{Name: r.Name, Cells: make([]CellView, 0, len(r.Data))}
		for i, p := range r.Penalty {
			classes := []string{ClassCardSlot}
			if p != model.PenaltyEmpty {
				classes = append(classes, cardPrefix+p.String())
			}
			rv.Penalty[i] = SlotView{Classes: classes}
		}
		for _, cell := range r.Data {
			cv := CellView{Classes: []string{ClassDataCell}, Mark: cell.Mark.Glyph()}
			if cls := cell.Background.Class(); cls != "" {
				cv.Classes = append(cv.Classes, cls)
			}
			rv.Cells = append(rv.Cells, cv)
		}
		doc.Rows = append(doc.Rows, rv)
	}
	return doc
}

// WithSelection returns a copy of doc whose selected cells carry
// ClassSelected. Serialize ignores the class.
func WithSelection(doc Document, sel []model.CellRef) Document {
	out := doc
	out.Rows = make([]RowView, len(doc.Rows))
	for i, rv := range doc.Rows {
		out.Rows[i] = rv
		out.Rows[i].Cells = make([]CellView, len(rv.Cells))
		for j, cv := range rv.Cells {
			cv.Classes = append([]string(nil), cv.Classes...)
			out.Rows[i].Cells[j] = cv
		}
	}
	for _, ref := range sel {
		if ref.Row < 0 || ref.Row >= len(out.Rows) || ref.Col < 0 || ref.Col >= len(out.Rows[ref.Row].Cells) {
			continue
		}
		cv := &out.Rows[ref.Row].Cells[ref.Col]
		if !cv.HasClass(ClassSelected) {
			cv.Classes = append(cv.Classes, ClassSelected)
		}
	}
	return out
}

// Background reads the background kind from the class list.
func (v CellView) Background() model.Background {
	for _, b := range model.Backgrounds() {
		if v.HasClass(b.Class()) {
			return b
		}
	}
	return model.BackgroundNone
}

func (s SlotView) State() model.PenaltyState { return slotState(s) }

// Serialize reads a document back into a chart. Text fields are trimmed; a
// cell without a mark glyph has no mark and a cell without one of the
// background classes has no background.
func Serialize(doc Document) model.Chart {
	c := model.Chart{
		ID:      doc.ChartID,
		Name:    strings.TrimSpace(doc.Title),
		Headers: make([]string, 0, len(doc.Headers)),
		Rows:    make([]model.Row, 0, len(doc.Rows)),
	}
	for _, h := range doc.Headers {
		c.Headers = append(c.Headers, strings.TrimSpace(h))
	}
	for _, rv := range doc.Rows {
		r := model.Row{Name: strings.TrimSpace(rv.Name), Data: make([]model.Cell, 0, len(rv.Cells))}
		for i, slot := range rv.Penalty {
			r.Penalty[i] = slotState(slot)
		}
		for _, cv := range rv.Cells {
			cell := model.Cell{Background: cv.Background()}
			if cv.Mark != "" {
				cell.Mark, _ = model.ParseMark(cv.Mark)
			}
			r.Data = append(r.Data, cell)
		}
		c.Rows = append(c.Rows, r)
	}
	return c
}

func slotState(s SlotView) model.PenaltyState {
	for _, cls := range s.Classes {
		if !strings.HasPrefix(cls, cardPrefix) || cls == ClassCardSlot {
			continue
		}
		if p, ok := model.ParsePenaltyState(strings.TrimPrefix(cls, cardPrefix)); ok {
			return p
		}
	}
	return model.PenaltyEmpty
}

type FieldKind int

const (
	FieldTitle FieldKind = iota
	FieldHeader
	FieldRowName
)

// FieldRef names one editable text field of a document.
type FieldRef struct {
	Kind  FieldKind
	Index int
}

func (f FieldRef) String() string {
	switch f.Kind {
	case FieldHeader:
		return fmt.Sprintf("header %d", f.Index)
	case FieldRowName:
		return fmt.Sprintf("name %d", f.Index)
	default:
		return "title"
	}
}

// ReadField returns the text of an editable field.
func ReadField(doc Document, ref FieldRef) (string, error) {
	switch ref.Kind {
	case FieldTitle:
		return doc.Title, nil
	case FieldHeader:
		if ref.Index < 0 || ref.Index >= len(doc.Headers) {
			return "", fmt.Errorf("no such field: %s", ref)
		}
		return doc.Headers[ref.Index], nil
	case FieldRowName:
		if ref.Index < 0 || ref.Index >= len(doc.Rows) {
			return "", fmt.Errorf("no such field: %s", ref)
		}
		return doc.Rows[ref.Index].Name, nil
	default:
		return "", fmt.Errorf("no such field: %s", ref)
	}
}
