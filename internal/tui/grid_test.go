package tui

import (
	"strings"
	"testing"

	"tracker-cli/internal/model"
	"tracker-cli/internal/view"
)

func TestRenderGrid_ASCII(t *testing.T) {
	setGlyphs(glyphSetASCII)
	t.Cleanup(func() { setGlyphs(glyphSetUnicode) })

	c := model.NewDefaultChart("chart-1-1", "Cup")
	c.Rows[0].Data[1].Mark = model.MarkTick
	c.Rows[1].Data[0].Background = model.BackgroundDiagonal
	c.Rows[2].Penalty[0] = model.PenaltyRed

	doc := view.WithSelection(view.Materialize(c), []model.CellRef{{Row: 2, Col: 2}})
	lines := strings.Split(renderGrid(doc, cursor{Row: 0, Col: 1}), "\n")
	if len(lines) != 2+len(c.Rows) {
		t.Fatalf("expected header, rule and %d rows; got %d lines", len(c.Rows), len(lines))
	}
	for _, want := range []string{"Names", "Penalty", "Column 1", "Column 3"} {
		if !strings.Contains(lines[0], want) {
			t.Fatalf("expected %q in header %q", want, lines[0])
		}
	}
	if strings.Trim(lines[1], "-") != "" {
		t.Fatalf("expected an ASCII rule; got %q", lines[1])
	}
	if !strings.Contains(lines[2], "[   v    ]") {
		t.Fatalf("expected focused tick cell in %q", lines[2])
	}
	if !strings.Contains(lines[3], "//////////") {
		t.Fatalf("expected diagonal fill in %q", lines[3])
	}
	if !strings.Contains(lines[4], "   R .   ") {
		t.Fatalf("expected penalty cards in %q", lines[4])
	}
}

func TestCursor_Clamp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want cursor
	}{
		{in: cursor{Row: -5, Col: -5}, want: cursor{Row: -1, Col: -1}},
		{in: cursor{Row: 9, Col: 9}, want: cursor{Row: 2, Col: 3}},
		{in: cursor{Row: 1, Col: 0}, want: cursor{Row: 1, Col: 0}},
	}
	for _, tt := range tests {
		if got := tt.in.clamp(3, 4); got != tt.want {
			t.Fatalf("clamp(%v) = %v; want %v", tt.in, got, tt.want)
		}
	}
	if (cursor{Row: -1, Col: 0}).onData() || !(cursor{Row: 0, Col: 0}).onData() {
		t.Fatalf("unexpected onData")
	}
}

func TestCenterPad(t *testing.T) {
	t.Parallel()

	if got := centerPad("v", 5, " "); got != "  v  " {
		t.Fatalf("unexpected pad %q", got)
	}
	if got := centerPad("v", 7, "/"); got != "// v //" {
		t.Fatalf("unexpected diagonal pad %q", got)
	}
	if got := centerPad("", 3, "/"); got != "///" {
		t.Fatalf("unexpected empty pad %q", got)
	}
}
