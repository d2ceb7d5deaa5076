package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tracker-cli/internal/model"
	"tracker-cli/internal/view"
)

type mode int

const (
	modeGrid mode = iota
	modeEdit
	modeConfirmDelete
	modePicker
	modeHelp
)

const statusTTL = 5 * time.Second

type statusClearMsg struct{ seq int }

func clearStatusAfter(seq int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return statusClearMsg{seq: seq} })
}

// renderState is the TUI side of the view adapter. The session writes into it
// on every render; appModel values share one pointer across Update copies.
type renderState struct {
	doc     view.Document
	sel     []model.CellRef
	renders int
}

func (rs *renderState) Render(doc view.Document, sel []model.CellRef) {
	rs.doc = doc
	rs.sel = append([]model.CellRef(nil), sel...)
	rs.renders++
}

// withFieldText returns a copy of doc whose field ref shows text. Only the
// slice holding the field is copied.
func withFieldText(doc view.Document, ref view.FieldRef, text string) view.Document {
	out := doc
	switch ref.Kind {
	case view.FieldTitle:
		out.Title = text
	case view.FieldHeader:
		out.Headers = append([]string(nil), doc.Headers...)
		if ref.Index >= 0 && ref.Index < len(out.Headers) {
			out.Headers[ref.Index] = text
		}
	case view.FieldRowName:
		out.Rows = append([]view.RowView(nil), doc.Rows...)
		if ref.Index >= 0 && ref.Index < len(out.Rows) {
			out.Rows[ref.Index].Name = text
		}
	}
	return out
}
