package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tracker-cli/internal/docs"
	"tracker-cli/internal/mutate"
	"tracker-cli/internal/selection"
	"tracker-cli/internal/view"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.mode == modePicker {
			m.picker.SetSize(m.pickerSize())
		}
		if m.mode == modeHelp {
			m.helpView.Width, m.helpView.Height = m.helpSize()
		}
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeEdit:
			return m.updateEdit(msg)
		case modeConfirmDelete:
			return m.updateConfirmDelete(msg)
		case modePicker:
			return m.updatePicker(msg)
		case modeHelp:
			return m.updateHelp(msg)
		default:
			return m.updateGrid(msg)
		}
	}
	return m, nil
}

var formatKeys = []struct {
	binding func(keyMap) key.Binding
	action  mutate.Action
}{
	{func(k keyMap) key.Binding { return k.Tick }, mutate.MarkTick},
	{func(k keyMap) key.Binding { return k.Cross }, mutate.MarkCross},
	{func(k keyMap) key.Binding { return k.Question }, mutate.MarkQuestion},
	{func(k keyMap) key.Binding { return k.ClearMarks }, mutate.ClearMarks},
	{func(k keyMap) key.Binding { return k.BgLightGreen }, mutate.BgLightGreen},
	{func(k keyMap) key.Binding { return k.BgYellow }, mutate.BgYellow},
	{func(k keyMap) key.Binding { return k.BgOrange }, mutate.BgOrange},
	{func(k keyMap) key.Binding { return k.BgDarkRed }, mutate.BgDarkRed},
	{func(k keyMap) key.Binding { return k.BgDiagonal }, mutate.BgDiagonalLines},
	{func(k keyMap) key.Binding { return k.ClearBG }, mutate.ClearBG},
}

func (m appModel) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	for _, fk := range formatKeys {
		if key.Matches(msg, fk.binding(k)) {
			return m.applyFormat(fk.action)
		}
	}

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Up):
		m.cur.Row--
		m.clampCursor()
	case key.Matches(msg, k.Down):
		m.cur.Row++
		m.clampCursor()
	case key.Matches(msg, k.Left):
		m.cur.Col--
		m.clampCursor()
	case key.Matches(msg, k.Right):
		m.cur.Col++
		m.clampCursor()

	case key.Matches(msg, k.Select):
		if m.cur.onData() {
			m.sess.OnCellSelectRequest(m.cur.ref())
			return m, nil
		}
		return m.startEdit(m.fieldAtCursor())

	case key.Matches(msg, k.ToggleMode):
		next := selection.Multi
		if m.sess.Mode() == selection.Multi {
			next = selection.Single
		}
		m.sess.SetSelectionMode(next)
		return m, m.setStatus(next.String() + " selection")

	case key.Matches(msg, k.SelectColumn):
		if !m.sess.SelectColumn() {
			return m, m.setStatus("select a cell first")
		}

	case key.Matches(msg, k.Clear):
		m.sess.ClearSelection()

	case key.Matches(msg, k.Penalty1):
		return m.cyclePenalty(0)
	case key.Matches(msg, k.Penalty2):
		return m.cyclePenalty(1)

	case key.Matches(msg, k.Edit):
		if m.cur.onData() {
			return m, m.setStatus("move to a header or a name to edit it")
		}
		return m.startEdit(m.fieldAtCursor())
	case key.Matches(msg, k.Rename):
		return m.startEdit(view.FieldRef{Kind: view.FieldTitle})

	case key.Matches(msg, k.Undo):
		label := m.sess.UndoLabel()
		ok, err := m.sess.Undo(m.ctx)
		m.clampCursor()
		if err != nil {
			return m, m.setStatusErr(err)
		}
		if !ok {
			return m, m.setStatus("nothing to undo")
		}
		return m, m.setStatus("undid " + label)
	case key.Matches(msg, k.Redo):
		label := m.sess.RedoLabel()
		ok, err := m.sess.Redo(m.ctx)
		m.clampCursor()
		if err != nil {
			return m, m.setStatusErr(err)
		}
		if !ok {
			return m, m.setStatus("nothing to redo")
		}
		return m, m.setStatus("redid " + label)

	case key.Matches(msg, k.NewChart):
		_, err := m.sess.NewChart(m.ctx)
		m.cur = cursor{}
		if err != nil {
			return m, m.setStatusErr(err)
		}
		return m, m.setStatus("new chart")
	case key.Matches(msg, k.DeleteChart):
		m.mode = modeConfirmDelete
		m.confirmFocus = confirmFocusCancel
	case key.Matches(msg, k.Picker):
		w, h := m.pickerSize()
		m.picker = newChartList(m.sess.Charts(), w, h)
		m.mode = modePicker

	case key.Matches(msg, k.Save):
		if err := m.sess.SaveChart(m.ctx); err != nil {
			return m, m.setStatusErr(err)
		}
		return m, m.setStatus("saved")
	case key.Matches(msg, k.Export):
		path, err := m.sess.ExportSnapshot(m.ctx, m.exporter, m.exportDir)
		if err != nil {
			return m, m.setStatusErr(err)
		}
		return m, m.setStatus("snapshot written to " + path)
	case key.Matches(msg, k.Copy):
		if _, err := m.sess.ExportSnapshot(m.ctx, m.clipboard, ""); err != nil {
			return m, m.setStatusErr(err)
		}
		return m, m.setStatus("copied chart as text")

	case key.Matches(msg, k.Help):
		w, h := m.helpSize()
		body, _ := docs.Get("keys")
		m.helpView = viewport.New(w, h)
		m.helpView.SetContent(renderMarkdown(body, w))
		m.mode = modeHelp
	}
	return m, nil
}

func (m appModel) applyFormat(a mutate.Action) (tea.Model, tea.Cmd) {
	if len(m.sess.Selection()) == 0 {
		return m, m.setStatus("select cells first")
	}
	if _, err := m.sess.OnFormatActionRequested(m.ctx, string(a)); err != nil {
		return m, m.setStatusErr(err)
	}
	return m, nil
}

func (m appModel) cyclePenalty(slot int) (tea.Model, tea.Cmd) {
	if m.cur.Row < 0 {
		return m, m.setStatus("move to a row first")
	}
	if _, err := m.sess.OnPenaltySlotActivated(m.ctx, m.cur.Row, slot); err != nil {
		return m, m.setStatusErr(err)
	}
	return m, nil
}

// fieldAtCursor maps the cursor to an editable text field: the corner is the
// chart title, the header row holds headers and the name column row names.
func (m appModel) fieldAtCursor() view.FieldRef {
	switch {
	case m.cur.Row < 0 && m.cur.Col >= 0:
		return view.FieldRef{Kind: view.FieldHeader, Index: m.cur.Col}
	case m.cur.Row >= 0 && m.cur.Col < 0:
		return view.FieldRef{Kind: view.FieldRowName, Index: m.cur.Row}
	default:
		return view.FieldRef{Kind: view.FieldTitle}
	}
}

func (m appModel) startEdit(ref view.FieldRef) (tea.Model, tea.Cmd) {
	text, err := view.ReadField(m.rs.doc, ref)
	if err != nil {
		return m, m.setStatusErr(err)
	}
	m.editRef = ref
	m.input.SetValue(text)
	m.input.CursorEnd()
	m.mode = modeEdit
	return m, m.input.Focus()
}

func (m appModel) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.input.Blur()
		m.mode = modeGrid
		return m, nil
	case tea.KeyEnter:
		m.input.Blur()
		m.mode = modeGrid
		doc := withFieldText(m.rs.doc, m.editRef, m.input.Value())
		changed, err := m.sess.OnFieldEdited(m.ctx, doc, m.editRef)
		if err != nil {
			return m, m.setStatusErr(err)
		}
		if !changed {
			return m, nil
		}
		return m, m.setStatus("updated " + m.editRef.String())
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab", "left", "right", "h", "l":
		m.confirmFocus = m.confirmFocus.toggle()
		return m, nil
	case "esc", "n", "q", "ctrl+g":
		m.mode = modeGrid
		return m, nil
	case "y":
		return m.deleteChart()
	case "enter":
		if m.confirmFocus == confirmFocusConfirm {
			return m.deleteChart()
		}
		m.mode = modeGrid
		return m, nil
	}
	return m, nil
}

func (m appModel) deleteChart() (tea.Model, tea.Cmd) {
	m.mode = modeGrid
	name := m.rs.doc.Title
	err := m.sess.DeleteChart(m.ctx)
	m.cur = cursor{}
	if err != nil {
		return m, m.setStatusErr(err)
	}
	return m, m.setStatus(fmt.Sprintf("deleted %q", name))
}

func (m appModel) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picker.FilterState() != list.Filtering {
		switch msg.String() {
		case "esc", "tab", "q":
			m.mode = modeGrid
			return m, nil
		case "enter":
			m.mode = modeGrid
			it, ok := m.picker.SelectedItem().(chartItem)
			if !ok {
				return m, nil
			}
			if err := m.sess.SelectChart(it.summary.ID); err != nil {
				return m, m.setStatusErr(err)
			}
			m.cur = cursor{}
			return m, m.setStatus("opened " + it.summary.Name)
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m appModel) updateHelp(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "?", "q":
		m.mode = modeGrid
		return m, nil
	}
	var cmd tea.Cmd
	m.helpView, cmd = m.helpView.Update(msg)
	return m, cmd
}

func (m appModel) pickerSize() (int, int) {
	return clampInt(m.width-4, 20, 100), clampInt(m.height-4, 5, 40)
}

func (m appModel) helpSize() (int, int) {
	return clampInt(m.width-4, 20, 100), clampInt(m.height-4, 5, 60)
}
