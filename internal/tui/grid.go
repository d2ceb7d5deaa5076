package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"tracker-cli/internal/model"
	"tracker-cli/internal/view"
)

const (
	nameColMin    = 8
	nameColMax    = 22
	penaltyColW   = 9
	dataColMin    = 6
	dataColMax    = 18
	gridColumnGap = 1
)

// cursor addresses a grid position. Row -1 is the header row and Col -1 the
// name column; the penalty column is driven by keys, not the cursor.
type cursor struct {
	Row int
	Col int
}

func (c cursor) onData() bool { return c.Row >= 0 && c.Col >= 0 }

func (c cursor) ref() model.CellRef { return model.CellRef{Row: c.Row, Col: c.Col} }

// clamp keeps the cursor inside a rows x cols grid.
func (c cursor) clamp(rows, cols int) cursor {
	if c.Row >= rows {
		c.Row = rows - 1
	}
	if c.Row < -1 {
		c.Row = -1
	}
	if c.Col >= cols {
		c.Col = cols - 1
	}
	if c.Col < -1 {
		c.Col = -1
	}
	return c
}

type gridLayout struct {
	nameW int
	dataW []int
}

func layoutGrid(doc view.Document) gridLayout {
	l := gridLayout{nameW: xansi.StringWidth("Names") + 2}
	for _, r := range doc.Rows {
		if w := xansi.StringWidth(r.Name) + 2; w > l.nameW {
			l.nameW = w
		}
	}
	l.nameW = clampInt(l.nameW, nameColMin, nameColMax)
	l.dataW = make([]int, len(doc.Headers))
	for i, h := range doc.Headers {
		l.dataW[i] = clampInt(xansi.StringWidth(h)+2, dataColMin, dataColMax)
	}
	return l
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// renderGrid draws the chart table. doc should already carry selection
// classes (view.WithSelection).
func renderGrid(doc view.Document, cur cursor) string {
	l := layoutGrid(doc)
	sep := lipgloss.NewStyle().Foreground(colorGrid).Render(glyphVRule())

	var lines []string

	head := []string{
		gridTextCell("Names", l.nameW, cur == cursor{Row: -1, Col: -1}, true),
		gridTextCell("Penalty", penaltyColW, false, true),
	}
	for i, h := range doc.Headers {
		head = append(head, gridTextCell(h, l.dataW[i], cur == cursor{Row: -1, Col: i}, true))
	}
	lines = append(lines, strings.Join(head, sep))

	total := l.nameW + penaltyColW + len(doc.Headers)*gridColumnGap + gridColumnGap
	for _, w := range l.dataW {
		total += w
	}
	lines = append(lines, lipgloss.NewStyle().Foreground(colorGrid).Render(strings.Repeat(glyphHRule(), total)))

	for r, rv := range doc.Rows {
		cols := []string{
			gridTextCell(rv.Name, l.nameW, cur == cursor{Row: r, Col: -1}, false),
			penaltyCell(rv.Penalty),
		}
		for c, cv := range rv.Cells {
			w := dataColMin
			if c < len(l.dataW) {
				w = l.dataW[c]
			}
			cols = append(cols, dataCell(cv, w, cur == cursor{Row: r, Col: c}))
		}
		lines = append(lines, strings.Join(cols, sep))
	}
	return strings.Join(lines, "\n")
}

func gridTextCell(s string, width int, focused bool, header bool) string {
	content := fitWidth(" "+s, width)
	st := lipgloss.NewStyle()
	if header {
		st = st.Bold(true).Foreground(colorChromeFg)
	}
	if focused {
		st = st.Foreground(colorAccentFg).Background(colorAccent)
	}
	return st.Render(content)
}

func penaltyCell(slots [model.PenaltySlots]view.SlotView) string {
	parts := make([]string, len(slots))
	for i, s := range slots {
		p := s.State()
		st := styleMuted()
		if c, ok := penaltyColors[p]; ok {
			st = lipgloss.NewStyle().Foreground(c)
		}
		parts[i] = st.Render(glyphCard(p))
	}
	content := strings.Join(parts, " ")
	pad := penaltyColW - xansi.StringWidth(content)
	left := pad / 2
	return strings.Repeat(" ", left) + content + strings.Repeat(" ", pad-left)
}

func dataCell(cv view.CellView, width int, focused bool) string {
	bg := cv.Background()
	fill := " "
	if bg == model.BackgroundDiagonal {
		fill = glyphDiagonal()
	}
	content := centerPad(glyphMarkFromView(cv.Mark), width, fill)
	if focused {
		content = "[" + xansi.Cut(content, 1, width-1) + "]"
	}

	st := styleCellBackground(bg)
	if bg == model.BackgroundDiagonal {
		st = st.Foreground(colorMuted)
	}
	if cv.HasClass(view.ClassSelected) {
		st = st.Reverse(true)
	}
	if focused {
		st = st.Bold(true)
	}
	return st.Render(content)
}

// centerPad centers s in width columns using fill for the padding. With a
// mark present a single space separates it from the fill.
func centerPad(s string, width int, fill string) string {
	w := xansi.StringWidth(s)
	if s != "" && fill != " " {
		s = " " + s + " "
		w += 2
	}
	if w >= width {
		return fitWidth(s, width)
	}
	pad := width - w
	left := pad / 2
	return strings.Repeat(fill, left) + s + strings.Repeat(fill, pad-left)
}
