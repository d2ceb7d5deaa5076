// Package session ties the chart store, selection, history and view together.
// Every user command goes through a Session; historied edits go through
// Mutate.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"tracker-cli/internal/export"
	"tracker-cli/internal/history"
	"tracker-cli/internal/model"
	"tracker-cli/internal/mutate"
	"tracker-cli/internal/selection"
	"tracker-cli/internal/store"
	"tracker-cli/internal/view"
)

var ErrNoActiveChart = errors.New("no active chart")

type Options struct {
	// Charts must already be loaded.
	Charts *store.Charts

	View         view.Adapter
	Log          *slog.Logger
	Mode         selection.Mode
	HistoryLimit int
}

// Session is not safe for concurrent use.
type Session struct {
	charts *store.Charts
	sel    *selection.Tracker
	hist   *history.Engine
	view   view.Adapter
	log    *slog.Logger
}

func New(opts Options) *Session {
	v := opts.View
	if v == nil {
		v = view.Nop
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Session{
		charts: opts.Charts,
		sel:    selection.New(opts.Mode),
		hist:   history.New(opts.HistoryLimit),
		view:   v,
		log:    log,
	}
}

// SetView swaps the adapter and renders the current state into it.
func (s *Session) SetView(v view.Adapter) {
	if v == nil {
		v = view.Nop
	}
	s.view = v
	s.Render()
}

// Render pushes the active chart and selection to the view.
func (s *Session) Render() {
	c, ok := s.charts.Active()
	if !ok {
		return
	}
	s.view.Render(view.Materialize(c), s.sel.Cells())
}

func (s *Session) ActiveID() string { return s.charts.ActiveID() }

// Chart returns a copy of the active chart.
func (s *Session) Chart() (model.Chart, bool) { return s.charts.Active() }

func (s *Session) Charts() []store.Summary { return s.charts.List() }

func (s *Session) Selection() []model.CellRef { return s.sel.Cells() }

func (s *Session) Mode() selection.Mode { return s.sel.Mode() }

func (s *Session) CanUndo() bool { return s.hist.CanUndo() }
func (s *Session) CanRedo() bool { return s.hist.CanRedo() }

func (s *Session) UndoLabel() string { return s.hist.NextUndoLabel() }
func (s *Session) RedoLabel() string { return s.hist.NextRedoLabel() }

// Mutate is the only path to a historied edit: it snapshots the active chart,
// applies fn, persists and re-renders. An fn that leaves the chart unchanged
// records nothing. The returned bool reports whether an edit was recorded.
//
// A persistence failure is returned after the in-memory state and history
// have been updated.
func (s *Session) Mutate(ctx context.Context, label string, fn func(model.Chart) (model.Chart, error)) (bool, error) {
	return s.apply(ctx, label, fn, false)
}

func (s *Session) apply(ctx context.Context, label string, fn func(model.Chart) (model.Chart, error), clearSel bool) (bool, error) {
	before, ok := s.charts.Active()
	if !ok {
		return false, ErrNoActiveChart
	}
	after, err := fn(before.Clone())
	if err != nil {
		return false, err
	}
	after.ID = before.ID
	if reflect.DeepEqual(before, after) {
		return false, nil
	}
	if err := s.hist.Push(label, before); err != nil {
		return false, err
	}
	s.log.Debug("chart edited", "label", label, "chart", before.ID)

	persistErr := s.charts.Update(ctx, after)
	if clearSel {
		s.sel.Clear()
	} else {
		s.sel.Prune(selection.BoundsOf(after))
	}
	s.Render()
	return true, persistErr
}

// NewChart creates a default chart and makes it active.
func (s *Session) NewChart(ctx context.Context) (string, error) {
	id, err := s.charts.Create(ctx)
	s.reset()
	return id, err
}

// SaveChart persists the current state explicitly.
func (s *Session) SaveChart(ctx context.Context) error {
	return s.charts.Save(ctx)
}

// DeleteChart removes the active chart. Deleting the only chart leaves a
// fresh default one behind.
func (s *Session) DeleteChart(ctx context.Context) error {
	return s.DeleteChartByID(ctx, s.charts.ActiveID())
}

func (s *Session) DeleteChartByID(ctx context.Context, id string) error {
	if !s.charts.Has(id) {
		return store.NotFoundError{Kind: "chart", ID: id}
	}
	wasActive := id == s.charts.ActiveID()
	err := s.charts.Delete(ctx, id)
	if wasActive {
		s.reset()
	} else {
		s.Render()
	}
	return err
}

// SelectChart switches the active chart, clearing selection and history.
func (s *Session) SelectChart(id string) error {
	if err := s.charts.SetActive(id); err != nil {
		return err
	}
	s.reset()
	return nil
}

// RenameChart renames any chart. Renaming the active chart is a historied
// title edit.
func (s *Session) RenameChart(ctx context.Context, id, name string) error {
	if id == s.charts.ActiveID() {
		_, err := s.EditField(ctx, view.FieldRef{Kind: view.FieldTitle}, name)
		return err
	}
	return s.charts.Rename(ctx, id, name)
}

func (s *Session) reset() {
	s.sel.Clear()
	s.hist.Reset()
	s.Render()
}

func (s *Session) SetSelectionMode(m selection.Mode) {
	s.sel.SetMode(m)
	s.Render()
}

// SelectCell applies a selection request. Refs outside the data cells are
// ignored.
func (s *Session) SelectCell(ref model.CellRef) bool {
	c, ok := s.charts.Active()
	if !ok {
		return false
	}
	changed := s.sel.Request(ref, selection.BoundsOf(c))
	if changed {
		s.Render()
	}
	return changed
}

// SelectColumn widens a non-empty selection to the column of its first cell.
func (s *Session) SelectColumn() bool {
	c, ok := s.charts.Active()
	if !ok {
		return false
	}
	changed := s.sel.SelectColumn(selection.BoundsOf(c))
	if changed {
		s.Render()
	}
	return changed
}

func (s *Session) ClearSelection() {
	s.sel.Clear()
	s.Render()
}

// ApplyFormat runs a format action over the selection as one edit. With an
// empty selection nothing is recorded or persisted.
func (s *Session) ApplyFormat(ctx context.Context, actionID string) (bool, error) {
	a, err := mutate.ParseAction(actionID)
	if err != nil {
		return false, err
	}
	if s.sel.Len() == 0 {
		return false, nil
	}
	targets := s.sel.Cells()
	return s.Mutate(ctx, string(a), func(c model.Chart) (model.Chart, error) {
		return mutate.Apply(c, a, targets)
	})
}

// FormatCells selects exactly refs and applies the action to them.
func (s *Session) FormatCells(ctx context.Context, actionID string, refs []model.CellRef) (bool, error) {
	if _, err := mutate.ParseAction(actionID); err != nil {
		return false, err
	}
	c, ok := s.charts.Active()
	if !ok {
		return false, ErrNoActiveChart
	}
	prev := s.sel.Mode()
	s.sel.SetMode(selection.Multi)
	b := selection.BoundsOf(c)
	for _, ref := range refs {
		if !s.sel.Contains(ref) {
			s.sel.Request(ref, b)
		}
	}
	changed, err := s.ApplyFormat(ctx, actionID)
	s.sel.SetMode(prev)
	s.Render()
	return changed, err
}

func (s *Session) CyclePenalty(ctx context.Context, row, slot int) (bool, error) {
	return s.Mutate(ctx, fmt.Sprintf("penalty %d/%d", row, slot), func(c model.Chart) (model.Chart, error) {
		return mutate.CyclePenalty(c, row, slot)
	})
}

// EditField commits a header, row name or chart name edit.
func (s *Session) EditField(ctx context.Context, ref view.FieldRef, text string) (bool, error) {
	return s.Mutate(ctx, "edit "+ref.String(), func(c model.Chart) (model.Chart, error) {
		switch ref.Kind {
		case view.FieldTitle:
			return mutate.SetTitle(c, text), nil
		case view.FieldHeader:
			return mutate.SetHeader(c, ref.Index, text)
		case view.FieldRowName:
			return mutate.SetRowName(c, ref.Index, text)
		}
		return c, fmt.Errorf("no such field: %s", ref)
	})
}

func (s *Session) AddColumn(ctx context.Context, header string) (bool, error) {
	return s.apply(ctx, "add column", func(c model.Chart) (model.Chart, error) {
		return mutate.AddColumn(c, header), nil
	}, true)
}

func (s *Session) RemoveColumn(ctx context.Context, col int) (bool, error) {
	return s.apply(ctx, fmt.Sprintf("remove column %d", col), func(c model.Chart) (model.Chart, error) {
		return mutate.RemoveColumn(c, col)
	}, true)
}

func (s *Session) AddRow(ctx context.Context, name string) (bool, error) {
	return s.apply(ctx, "add row", func(c model.Chart) (model.Chart, error) {
		return mutate.AddRow(c, name), nil
	}, true)
}

func (s *Session) RemoveRow(ctx context.Context, row int) (bool, error) {
	return s.apply(ctx, fmt.Sprintf("remove row %d", row), func(c model.Chart) (model.Chart, error) {
		return mutate.RemoveRow(c, row)
	}, true)
}

// Undo restores the state before the most recent edit.
func (s *Session) Undo(ctx context.Context) (bool, error) {
	return s.travel(ctx, "undo", s.hist.Undo)
}

// Redo reapplies the most recently undone edit.
func (s *Session) Redo(ctx context.Context) (bool, error) {
	return s.travel(ctx, "redo", s.hist.Redo)
}

func (s *Session) travel(ctx context.Context, op string, step func(model.Chart) (model.Chart, bool, error)) (bool, error) {
	current, ok := s.charts.Active()
	if !ok {
		return false, ErrNoActiveChart
	}
	next, ok, err := step(current)
	if err != nil || !ok {
		return false, err
	}
	next.ID = current.ID
	s.log.Debug("history step", "op", op, "chart", current.ID)
	persistErr := s.charts.Update(ctx, next)
	s.sel.Prune(selection.BoundsOf(next))
	s.Render()
	return true, persistErr
}

// ExportSnapshot hands a copy of the active chart to exp. It never changes
// chart state or history.
func (s *Session) ExportSnapshot(ctx context.Context, exp export.Exporter, path string) (string, error) {
	c, ok := s.charts.Active()
	if !ok {
		return "", export.ExportError{Op: "export", Err: ErrNoActiveChart}
	}
	out, err := exp.Export(ctx, c, path)
	if err != nil {
		var ee export.ExportError
		if !errors.As(err, &ee) {
			err = export.ExportError{Op: "export", Err: err}
		}
		s.log.Warn("snapshot export failed", "chart", c.ID, "err", err)
		return "", err
	}
	s.log.Info("snapshot exported", "chart", c.ID, "path", out)
	return out, nil
}
