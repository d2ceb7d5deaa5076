package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"tracker-cli/internal/model"
)

var penaltyLetters = map[model.PenaltyState]string{
	model.PenaltyEmpty:  ".",
	model.PenaltyYellow: "Y",
	model.PenaltyOrange: "O",
	model.PenaltyRed:    "R",
}

var backgroundTags = map[model.Background]string{
	model.BackgroundLightGreen: "[G]",
	model.BackgroundYellow:     "[Y]",
	model.BackgroundOrange:     "[O]",
	model.BackgroundDarkRed:    "[R]",
	model.BackgroundDiagonal:   "[/]",
}

// CellText is the plain-text form of a cell: the mark glyph followed by a
// background tag, e.g. "✅ [O]".
func CellText(c model.Cell) string {
	parts := make([]string, 0, 2)
	if g := c.Mark.Glyph(); g != "" {
		parts = append(parts, g)
	}
	if tag, ok := backgroundTags[c.Background]; ok {
		parts = append(parts, tag)
	}
	return strings.Join(parts, " ")
}

// RenderText lays the chart out as an aligned plain-text table followed by
// the same footer the image carries.
func RenderText(c model.Chart, now time.Time) string {
	table := make([][]string, 0, len(c.Rows)+1)
	table = append(table, append([]string{"Names", "Penalty"}, c.Headers...))
	for _, r := range c.Rows {
		line := make([]string, 0, len(r.Data)+2)
		line = append(line, r.Name, penaltyText(r.Penalty))
		for _, cell := range r.Data {
			line = append(line, CellText(cell))
		}
		table = append(table, line)
	}

	widths := make([]int, 0, len(table[0]))
	for _, line := range table {
		for i, s := range line {
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if w := ansi.StringWidth(s); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, line := range table {
		cols := make([]string, len(line))
		for j, s := range line {
			cols[j] = s + strings.Repeat(" ", widths[j]-ansi.StringWidth(s))
		}
		b.WriteString(strings.TrimRight(strings.Join(cols, " | "), " "))
		b.WriteByte('\n')
		if i == 0 {
			seps := make([]string, len(widths))
			for j, w := range widths {
				seps[j] = strings.Repeat("-", w)
			}
			b.WriteString(strings.Join(seps, "-+-"))
			b.WriteByte('\n')
		}
	}
	fmt.Fprintf(&b, "\n%s - %s\n", c.Name, now.Format("2006-01-02 15:04:05"))
	return b.String()
}

func penaltyText(slots [model.PenaltySlots]model.PenaltyState) string {
	out := make([]string, len(slots))
	for i, p := range slots {
		out[i] = penaltyLetters[p]
	}
	return strings.Join(out, " ")
}
