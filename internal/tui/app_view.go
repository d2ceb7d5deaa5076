package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tracker-cli/internal/view"
)

func (m appModel) View() string {
	switch m.mode {
	case modeConfirmDelete:
		title := m.rs.doc.Title
		if strings.TrimSpace(title) == "" {
			title = "Untitled Chart"
		}
		body := fmt.Sprintf("Delete %q? This cannot be undone.", title)
		modal := renderConfirmModal(m.width, "Delete chart", body, "Delete", "Cancel", m.confirmFocus)
		return centerIn(m.width, m.height, modal)
	case modePicker:
		return lipgloss.NewStyle().Padding(1, 2).Render(m.picker.View())
	case modeHelp:
		footer := styleMuted().Render("esc/?: close   ↑/↓: scroll")
		return lipgloss.NewStyle().Padding(1, 2).Render(m.helpView.View() + "\n\n" + footer)
	}

	parts := []string{m.viewHeader(), "", m.viewGrid(), ""}
	if m.mode == modeEdit {
		parts = append(parts, m.viewEditLine())
	} else {
		parts = append(parts, m.viewStatus())
	}
	parts = append(parts, m.help.View(m.keys))
	return strings.Join(parts, "\n")
}

func (m appModel) viewHeader() string {
	title := strings.TrimSpace(m.rs.doc.Title)
	if title == "" {
		title = "Untitled Chart"
	}
	left := lipgloss.NewStyle().Bold(true).Foreground(colorSurfaceFg).Render(title)

	info := []string{m.sess.Mode().String()}
	if n := len(m.rs.sel); n > 0 {
		info = append(info, fmt.Sprintf("%d selected", n))
	}
	if l := m.sess.UndoLabel(); l != "" {
		info = append(info, "undo: "+l)
	}
	if l := m.sess.RedoLabel(); l != "" {
		info = append(info, "redo: "+l)
	}
	right := styleMuted().Render(strings.Join(info, "  "))

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		return left + "  " + right
	}
	return left + strings.Repeat(" ", gap) + right
}

func (m appModel) viewGrid() string {
	doc := view.WithSelection(m.rs.doc, m.rs.sel)
	grid := renderGrid(doc, m.cur)
	lines := strings.Split(grid, "\n")
	for i, ln := range lines {
		if lipgloss.Width(ln) > m.width {
			lines[i] = fitWidth(ln, m.width)
		}
	}
	return strings.Join(lines, "\n")
}

func (m appModel) viewEditLine() string {
	label := lipgloss.NewStyle().Bold(true).Render("Edit " + m.editRef.String() + ":")
	return label + " " + m.input.View()
}

func (m appModel) viewStatus() string {
	if m.status == "" {
		return ""
	}
	st := styleMuted()
	if m.statusErr {
		st = lipgloss.NewStyle().Foreground(colorStatusError)
	}
	return st.Render(fitWidth(m.status, m.width))
}
