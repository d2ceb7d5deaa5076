// Package history keeps per-chart undo/redo stacks of chart snapshots.
package history

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"

	"tracker-cli/internal/model"
)

// Entry is one stored snapshot. Label names the edit that followed it.
type Entry struct {
	Label string
	Chart model.Chart
}

// Engine is a linear undo/redo history. Stored charts are deep copies and
// never alias live state. Limit > 0 caps the undo stack, dropping the oldest
// entries.
type Engine struct {
	Limit int

	undo []Entry
	redo []Entry
}

func New(limit int) *Engine {
	return &Engine{Limit: limit}
}

// Snapshot deep-copies c.
func Snapshot(c model.Chart) (model.Chart, error) {
	var out model.Chart
	if err := deepcopy.Copy(&out, &c); err != nil {
		return model.Chart{}, fmt.Errorf("snapshot chart: %w", err)
	}
	return out, nil
}

// Push records the state immediately before an edit and clears the redo
// stack.
func (e *Engine) Push(label string, before model.Chart) error {
	snap, err := Snapshot(before)
	if err != nil {
		return err
	}
	e.undo = append(e.undo, Entry{Label: label, Chart: snap})
	if e.Limit > 0 && len(e.undo) > e.Limit {
		e.undo = append([]Entry(nil), e.undo[len(e.undo)-e.Limit:]...)
	}
	e.redo = nil
	return nil
}

// Undo moves current onto the redo stack and returns the most recent undo
// snapshot. ok is false when there is nothing to undo.
func (e *Engine) Undo(current model.Chart) (model.Chart, bool, error) {
	if len(e.undo) == 0 {
		return model.Chart{}, false, nil
	}
	snap, err := Snapshot(current)
	if err != nil {
		return model.Chart{}, false, err
	}
	last := e.undo[len(e.undo)-1]
	e.undo = e.undo[:len(e.undo)-1]
	e.redo = append(e.redo, Entry{Label: last.Label, Chart: snap})
	return last.Chart.Clone(), true, nil
}

// Redo mirrors Undo.
func (e *Engine) Redo(current model.Chart) (model.Chart, bool, error) {
	if len(e.redo) == 0 {
		return model.Chart{}, false, nil
	}
	snap, err := Snapshot(current)
	if err != nil {
		return model.Chart{}, false, err
	}
	last := e.redo[len(e.redo)-1]
	e.redo = e.redo[:len(e.redo)-1]
	e.undo = append(e.undo, Entry{Label: last.Label, Chart: snap})
	return last.Chart.Clone(), true, nil
}

// Reset discards both stacks.
func (e *Engine) Reset() {
	e.undo = nil
	e.redo = nil
}

func (e *Engine) CanUndo() bool { return len(e.undo) > 0 }
func (e *Engine) CanRedo() bool { return len(e.redo) > 0 }

func (e *Engine) UndoLen() int { return len(e.undo) }
func (e *Engine) RedoLen() int { return len(e.redo) }

// NextUndoLabel names the edit Undo would revert.
func (e *Engine) NextUndoLabel() string {
	if len(e.undo) == 0 {
		return ""
	}
	return e.undo[len(e.undo)-1].Label
}

// NextRedoLabel names the edit Redo would reapply.
func (e *Engine) NextRedoLabel() string {
	if len(e.redo) == 0 {
		return ""
	}
	return e.redo[len(e.redo)-1].Label
}
