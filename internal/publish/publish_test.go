package publish

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tracker-cli/internal/model"
)

func sampleChart() model.Chart {
	c := model.NewDefaultChart("chart-10-1", "Weekend | League")
	c.Rows[0].Penalty = [model.PenaltySlots]model.PenaltyState{model.PenaltyYellow, model.PenaltyRed}
	c.Rows[1].Data[2] = model.Cell{Mark: model.MarkCross, Background: model.BackgroundYellow}
	return c
}

func TestRenderChartMarkdown_Table(t *testing.T) {
	t.Parallel()

	md := RenderChartMarkdown(sampleChart(), RenderOptions{})
	for _, want := range []string{
		`# Weekend | League`,
		`| Names | Penalty | Column 1 | Column 2 | Column 3 |`,
		`| --- | --- | --- | --- | --- |`,
		`| Player 1 | 🟨 🟥 |  |  |  |`,
		`| Player 2 | · · |  |  | ❌ _yellow_ |`,
		`Penalty cards: 🟨 yellow, 🟥 red`,
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("expected %q in:\n%s", want, md)
		}
	}
}

func TestRenderChartMarkdown_EscapesPipes(t *testing.T) {
	t.Parallel()

	c := sampleChart()
	c.Headers[0] = "a|b"
	md := RenderChartMarkdown(c, RenderOptions{Shortcodes: true})
	if !strings.Contains(md, `a\|b`) {
		t.Fatalf("expected escaped pipe:\n%s", md)
	}
	if !strings.Contains(md, ":x: _yellow_") {
		t.Fatalf("expected shortcode mark:\n%s", md)
	}
}

func TestRenderChartHTML_RendersTableAndEmoji(t *testing.T) {
	t.Parallel()

	c := sampleChart()
	c.Name = "<b>Cup</b>"
	page, err := RenderChartHTML(c)
	if err != nil {
		t.Fatalf("RenderChartHTML: %v", err)
	}
	if !strings.Contains(page, "<table>") {
		t.Fatalf("expected a table:\n%s", page)
	}
	if strings.Contains(page, ":x:") {
		t.Fatalf("expected shortcodes to be converted:\n%s", page)
	}
	if strings.Contains(page, "<b>Cup</b>") {
		t.Fatalf("expected raw html to be escaped:\n%s", page)
	}
}

func TestWriteChart_RespectsOverwrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	c := sampleChart()
	res, err := WriteChart(c, dir, WriteOptions{HTML: true})
	if err != nil {
		t.Fatalf("WriteChart: %v", err)
	}
	if len(res.Written) != 2 {
		t.Fatalf("expected md+html; got %v", res.Written)
	}
	b, err := os.ReadFile(filepath.Join(dir, "chart-10-1.md"))
	if err != nil || !strings.HasPrefix(string(b), "# Weekend") {
		t.Fatalf("unexpected markdown file: %v %q", err, b)
	}

	if _, err := WriteChart(c, dir, WriteOptions{}); err == nil {
		t.Fatalf("expected error without --overwrite")
	}
	if _, err := WriteChart(c, dir, WriteOptions{Overwrite: true}); err != nil {
		t.Fatalf("WriteChart overwrite: %v", err)
	}
}

func TestRenderTerminal_NoTTY(t *testing.T) {
	t.Parallel()

	out, err := RenderTerminal("# Hello\n\nworld", 40, "notty")
	if err != nil {
		t.Fatalf("RenderTerminal: %v", err)
	}
	if !strings.Contains(out, "Hello") || !strings.Contains(out, "world") {
		t.Fatalf("unexpected output %q", out)
	}
}
