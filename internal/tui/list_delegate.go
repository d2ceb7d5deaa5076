package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"tracker-cli/internal/store"
)

type chartItem struct {
	summary store.Summary
}

func (it chartItem) FilterValue() string { return it.summary.Name }

func (it chartItem) Title() string {
	t := it.summary.Name
	if it.summary.Active {
		t += " (open)"
	}
	return t
}

func (it chartItem) Description() string {
	if it.summary.CreatedAt.UnixMilli() == 0 {
		return it.summary.ID
	}
	return it.summary.CreatedAt.Local().Format("2006-01-02 15:04") + "  " + it.summary.ID
}

// chartDelegate draws one line per chart: a cursor marker, the name and the
// creation time.
type chartDelegate struct{}

func (chartDelegate) Height() int                             { return 1 }
func (chartDelegate) Spacing() int                            { return 0 }
func (chartDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (chartDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(chartItem)
	width := m.Width()
	if !ok || width < 4 {
		return
	}

	marker, st := "  ", lipgloss.NewStyle().Foreground(colorSurfaceFg)
	if index == m.Index() {
		marker = "> "
		st = lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true)
	}
	name := it.Title()
	desc := it.Description()
	gap := width - xansi.StringWidth(marker+name) - xansi.StringWidth(desc)
	var line string
	if gap >= 2 {
		line = marker + name + strings.Repeat(" ", gap) + styleMuted().Render(desc)
	} else {
		line = fitWidth(marker+name, width)
	}
	fmt.Fprint(w, st.Render(line))
}

func newChartList(summaries []store.Summary, width, height int) list.Model {
	items := make([]list.Item, 0, len(summaries))
	active := 0
	for i, s := range summaries {
		items = append(items, chartItem{summary: s})
		if s.Active {
			active = i
		}
	}
	l := list.New(items, chartDelegate{}, width, height)
	l.Title = "Charts"
	l.SetShowHelp(false)
	l.SetStatusBarItemName("chart", "charts")
	l.Select(active)
	return l
}
