package publish

import (
	"bytes"
	"strings"

	"tracker-cli/internal/model"
)

type RenderOptions struct {
	// Shortcodes writes marks as GitHub emoji shortcodes (":x:") instead of
	// glyphs. The HTML renderer turns them back into emoji.
	Shortcodes bool
}

var markShortcodes = map[model.Mark]string{
	model.MarkTick:     ":white_check_mark:",
	model.MarkCross:    ":x:",
	model.MarkQuestion: ":question:",
}

var penaltyEmoji = map[model.PenaltyState]string{
	model.PenaltyEmpty:  "·",
	model.PenaltyYellow: "🟨",
	model.PenaltyOrange: "🟧",
	model.PenaltyRed:    "🟥",
}

// RenderChartMarkdown renders the chart as a heading plus a GFM table.
func RenderChartMarkdown(c model.Chart, opt RenderOptions) string {
	var buf bytes.Buffer
	writeLn := func(s string) {
		buf.WriteString(s)
		buf.WriteString("\n")
	}

	title := strings.TrimSpace(c.Name)
	if title == "" {
		title = "Untitled Chart"
	}
	writeLn("# " + title)
	writeLn("")

	head := append([]string{"Names", "Penalty"}, c.Headers...)
	writeLn(tableRow(head))
	sep := make([]string, len(head))
	for i := range sep {
		sep[i] = "---"
	}
	writeLn(tableRow(sep))

	for _, r := range c.Rows {
		cols := make([]string, 0, len(r.Data)+2)
		cols = append(cols, r.Name, penaltyCell(r.Penalty))
		for _, cell := range r.Data {
			cols = append(cols, markdownCell(cell, opt))
		}
		writeLn(tableRow(cols))
	}

	if legend := legendFor(c); legend != "" {
		writeLn("")
		writeLn(legend)
	}
	return buf.String()
}

func tableRow(cols []string) string {
	esc := make([]string, len(cols))
	for i, s := range cols {
		esc[i] = escapeCell(s)
	}
	return "| " + strings.Join(esc, " | ") + " |"
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}

func penaltyCell(slots [model.PenaltySlots]model.PenaltyState) string {
	out := make([]string, len(slots))
	for i, p := range slots {
		out[i] = penaltyEmoji[p]
	}
	return strings.Join(out, " ")
}

func markdownCell(cell model.Cell, opt RenderOptions) string {
	var parts []string
	if cell.Mark != model.MarkNone {
		if opt.Shortcodes {
			parts = append(parts, markShortcodes[cell.Mark])
		} else {
			parts = append(parts, cell.Mark.Glyph())
		}
	}
	if cell.Background != model.BackgroundNone {
		parts = append(parts, "_"+cell.Background.String()+"_")
	}
	return strings.Join(parts, " ")
}

// legendFor lists the penalty colors present in the chart.
func legendFor(c model.Chart) string {
	seen := map[model.PenaltyState]bool{}
	for _, r := range c.Rows {
		for _, p := range r.Penalty {
			if p != model.PenaltyEmpty {
				seen[p] = true
			}
		}
	}
	var parts []string
	for _, p := range []model.PenaltyState{model.PenaltyYellow, model.PenaltyOrange, model.PenaltyRed} {
		if seen[p] {
			parts = append(parts, penaltyEmoji[p]+" "+p.String())
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "Penalty cards: " + strings.Join(parts, ", ")
}
