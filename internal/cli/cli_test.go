package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

// newCLIEnv isolates config and store dirs and returns a runner that prefixes
// --dir and decodes the JSON envelope.
func newCLIEnv(t *testing.T) (dir string, mustRun func(args ...string) map[string]any) {
	t.Helper()
	t.Setenv("TRACKER_CONFIG_DIR", t.TempDir())
	t.Setenv("TRACKER_BACKEND", "")
	t.Setenv("TRACKER_LOG_LEVEL", "")
	dir = t.TempDir()

	mustRun = func(args ...string) map[string]any {
		t.Helper()
		full := append([]string{"--dir", dir}, args...)
		stdout, stderr, err := runCLI(t, full)
		if err != nil {
			t.Fatalf("command failed: tracker %v\nerr: %v\nstderr:\n%s\nstdout:\n%s", full, err, stderr, stdout)
		}
		var env map[string]any
		if err := json.Unmarshal(stdout, &env); err != nil {
			t.Fatalf("unmarshal stdout as json envelope: %v\nstdout:\n%s\nargs: %v", err, stdout, full)
		}
		if _, ok := env["data"]; !ok {
			t.Fatalf("expected JSON envelope to contain data key; got: %v", env)
		}
		return env
	}
	return dir, mustRun
}

func data(env map[string]any) map[string]any {
	m, _ := env["data"].(map[string]any)
	return m
}

func chartOf(env map[string]any) map[string]any {
	m, _ := data(env)["chart"].(map[string]any)
	return m
}

func cellAt(chart map[string]any, row, col int) map[string]any {
	rows, _ := chart["rows"].([]any)
	r, _ := rows[row].(map[string]any)
	cells, _ := r["data"].([]any)
	c, _ := cells[col].(map[string]any)
	return c
}

func TestCLI_ChartsListStartsWithDefaultChart(t *testing.T) {
	_, mustRun := newCLIEnv(t)

	env := mustRun("charts", "list")
	list, _ := env["data"].([]any)
	if len(list) != 1 {
		t.Fatalf("expected one default chart; got %#v", env["data"])
	}
	first, _ := list[0].(map[string]any)
	if first["name"] != "Chart 1" || first["active"] != true {
		t.Fatalf("unexpected summary: %#v", first)
	}
}

func TestCLI_FormatCellsPersists(t *testing.T) {
	_, mustRun := newCLIEnv(t)

	env := mustRun("cells", "format", "markTick", "0,0", "1,0")
	if data(env)["changed"] != true || data(env)["label"] != "markTick" {
		t.Fatalf("unexpected change payload: %#v", data(env))
	}

	shown := chartOf(mustRun("charts", "show"))
	for _, row := range []int{0, 1} {
		if got := cellAt(shown, row, 0)["mark"]; got != "✅" {
			t.Fatalf("row %d: expected persisted tick; got %#v", row, got)
		}
	}
	if got := cellAt(shown, 2, 0)["mark"]; got != nil {
		t.Fatalf("row 2 must stay unmarked; got %#v", got)
	}

	env = mustRun("cells", "format", "bgDiagonalLines", "0,0")
	if got := cellAt(chartOf(env), 0, 0); got["mark"] != "✅" || got["bgClass"] != "bg-diagonal-lines" {
		t.Fatalf("marks and backgrounds must combine; got %#v", got)
	}
}

func TestCLI_FormatNoChangeAndUnknownAction(t *testing.T) {
	dir, mustRun := newCLIEnv(t)

	env := mustRun("cells", "format", "clearMarks", "0,0")
	if data(env)["changed"] != false {
		t.Fatalf("expected no change; got %#v", data(env))
	}

	_, stderr, err := runCLI(t, []string{"--dir", dir, "cells", "format", "sparkle", "0,0"})
	if err == nil {
		t.Fatalf("expected error for unknown action")
	}
	if !strings.Contains(string(stderr), "unknown") {
		t.Fatalf("expected unknown action on stderr; got %q", stderr)
	}
}

func TestCLI_PenaltyAndEdits(t *testing.T) {
	_, mustRun := newCLIEnv(t)

	mustRun("cells", "penalty", "0", "1")
	env := mustRun("cells", "penalty", "0", "1")
	rows, _ := chartOf(env)["rows"].([]any)
	r0, _ := rows[0].(map[string]any)
	pen, _ := r0["penalty"].([]any)
	if len(pen) != 2 || pen[0] != "empty" || pen[1] != "orange" {
		t.Fatalf("unexpected penalty: %#v", pen)
	}

	mustRun("edit", "header", "0", " Goals ")
	mustRun("edit", "name", "2", "Alex")
	env = mustRun("edit", "title", "Cup Final")
	c := chartOf(env)
	headers, _ := c["headers"].([]any)
	rows, _ = c["rows"].([]any)
	r2, _ := rows[2].(map[string]any)
	if headers[0] != "Goals" || r2["name"] != "Alex" || c["name"] != "Cup Final" {
		t.Fatalf("unexpected chart after edits: %#v", c)
	}
}

func TestCLI_ColumnsAndRows(t *testing.T) {
	_, mustRun := newCLIEnv(t)

	env := mustRun("columns", "add", "Extra")
	headers, _ := chartOf(env)["headers"].([]any)
	if len(headers) != 4 || headers[3] != "Extra" {
		t.Fatalf("unexpected headers: %#v", headers)
	}
	if got := cellAt(chartOf(env), 2, 3); got["mark"] != nil || got["bgClass"] != nil {
		t.Fatalf("new column must be empty; got %#v", got)
	}

	env = mustRun("rows", "rm", "0")
	rows, _ := chartOf(env)["rows"].([]any)
	first, _ := rows[0].(map[string]any)
	if len(rows) != 2 || first["name"] != "Player 2" {
		t.Fatalf("unexpected rows: %#v", rows)
	}
}

func TestCLI_NewUseAndDelete(t *testing.T) {
	_, mustRun := newCLIEnv(t)

	firstID, _ := data(mustRun("charts", "show"))["id"].(string)
	secondID, _ := data(mustRun("charts", "new", "--name", "Second"))["id"].(string)
	if secondID == "" || secondID == firstID {
		t.Fatalf("expected a new chart id; got %q (first %q)", secondID, firstID)
	}
	if got, _ := data(mustRun("charts", "show"))["id"].(string); got != secondID {
		t.Fatalf("expected the new chart to stay active; got %q", got)
	}
	if got := chartOf(mustRun("charts", "show"))["name"]; got != "Second" {
		t.Fatalf("expected named chart; got %#v", got)
	}

	mustRun("charts", "use", firstID)
	if got, _ := data(mustRun("charts", "show"))["id"].(string); got != firstID {
		t.Fatalf("expected %s active after use; got %s", firstID, got)
	}

	env := mustRun("charts", "rm", firstID)
	if got := data(env)["active"]; got != secondID {
		t.Fatalf("expected the remaining chart to become active; got %#v", got)
	}
	env = mustRun("charts", "rm", secondID)
	active, _ := data(env)["active"].(string)
	if active == "" || active == secondID {
		t.Fatalf("deleting the last chart must leave a fresh one; got %q", active)
	}
	list, _ := mustRun("charts", "list")["data"].([]any)
	if len(list) != 1 {
		t.Fatalf("expected exactly one chart; got %#v", list)
	}
}

func TestCLI_ChartFlagUnknown(t *testing.T) {
	dir, _ := newCLIEnv(t)

	_, stderr, err := runCLI(t, []string{"--dir", dir, "--chart", "chart-1-1", "charts", "show"})
	if err == nil {
		t.Fatalf("expected not found error")
	}
	if !strings.Contains(string(stderr), "not found") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestCLI_JSONBackend(t *testing.T) {
	dir, mustRun := newCLIEnv(t)
	t.Setenv("TRACKER_BACKEND", "json")

	mustRun("cells", "format", "markCross", "1,1")
	b, err := os.ReadFile(filepath.Join(dir, "charts.json"))
	if err != nil {
		t.Fatalf("read charts.json: %v", err)
	}
	if !strings.Contains(string(b), "❌") {
		t.Fatalf("expected the cross glyph in the blob; got %s", b)
	}
}

func TestCLI_Ephemeral(t *testing.T) {
	dir, mustRun := newCLIEnv(t)

	mustRun("--ephemeral", "cells", "format", "markTick", "0,0")
	if got := cellAt(chartOf(mustRun("--ephemeral", "charts", "show")), 0, 0)["mark"]; got != nil {
		t.Fatalf("ephemeral runs must not persist; got %#v", got)
	}
	assertEmptyDir(t, dir)
}

func TestCLI_EphemeralIgnoresBackendEnvAndUIState(t *testing.T) {
	dir, mustRun := newCLIEnv(t)
	t.Setenv("TRACKER_BACKEND", "sqlite")

	mustRun("--ephemeral", "cells", "format", "markTick", "0,0")
	mustRun("--ephemeral", "charts", "new", "--name", "Scratch")
	assertEmptyDir(t, dir)
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		t.Fatalf("read dir: %v", err)
	}
	for _, e := range entries {
		t.Errorf("unexpected file after ephemeral run: %s", e.Name())
	}
}

func TestCLI_ExportText(t *testing.T) {
	_, mustRun := newCLIEnv(t)
	out := t.TempDir()

	env := mustRun("export", "--image-format", "txt", "--out", out)
	path, _ := data(env)["path"].(string)
	if filepath.Dir(path) != out || !strings.HasSuffix(path, ".txt") {
		t.Fatalf("unexpected export path %q", path)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}
	if !strings.Contains(string(b), "Player 3") {
		t.Fatalf("unexpected snapshot:\n%s", b)
	}
}

func TestCLI_ExportBadFormat(t *testing.T) {
	dir, _ := newCLIEnv(t)

	_, _, err := runCLI(t, []string{"--dir", dir, "export", "--image-format", "gif"})
	if err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestCLI_Publish(t *testing.T) {
	_, mustRun := newCLIEnv(t)

	env := mustRun("publish", "--html")
	if md, _ := data(env)["markdown"].(string); !strings.Contains(md, "| Names | Penalty |") {
		t.Fatalf("unexpected markdown: %q", md)
	}
	if page, _ := data(env)["html"].(string); !strings.Contains(page, "<table>") {
		t.Fatalf("unexpected html: %q", page)
	}

	to := t.TempDir()
	env = mustRun("publish", "--to", to, "--html")
	written, _ := data(env)["written"].([]any)
	if len(written) != 2 {
		t.Fatalf("expected md and html files; got %#v", written)
	}
	for _, w := range written {
		if _, err := os.Stat(w.(string)); err != nil {
			t.Fatalf("expected %v to exist: %v", w, err)
		}
	}
}

func TestCLI_Docs(t *testing.T) {
	dir, mustRun := newCLIEnv(t)

	topics, _ := data(mustRun("docs"))["topics"].([]any)
	if len(topics) == 0 {
		t.Fatalf("expected topics")
	}

	stdout, _, err := runCLI(t, []string{"--dir", dir, "docs", "keys", "--raw"})
	if err != nil {
		t.Fatalf("docs --raw: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "# Keys") {
		t.Fatalf("unexpected raw docs: %q", stdout)
	}

	if _, _, err := runCLI(t, []string{"--dir", dir, "docs", "nope"}); err == nil {
		t.Fatalf("expected error for unknown topic")
	}
}

func TestCLI_TextFormat(t *testing.T) {
	dir, _ := newCLIEnv(t)

	stdout, _, err := runCLI(t, []string{"--dir", dir, "--format", "text", "charts", "show"})
	if err != nil {
		t.Fatalf("charts show: %v", err)
	}
	s := string(stdout)
	if !strings.Contains(s, " | ") || !strings.Contains(s, "Column 2") {
		t.Fatalf("expected a text table; got:\n%s", s)
	}

	stdout, _, err = runCLI(t, []string{"--dir", dir, "--format", "text", "charts", "list"})
	if err != nil {
		t.Fatalf("charts list: %v", err)
	}
	if !strings.HasPrefix(string(stdout), "* chart-") {
		t.Fatalf("expected the active marker; got %q", stdout)
	}
}
