package logs

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_FansOutToTerminalAndFile(t *testing.T) {
	Level.Set(slog.LevelInfo)
	t.Cleanup(func() { Level.Set(slog.LevelWarn) })

	var term bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "tracker.log")
	logger, closeLog, err := New(Options{Terminal: &term, FilePath: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("chart created", "chart", "chart-1-1")
	logger.Debug("hidden")
	if err := closeLog(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if !strings.Contains(term.String(), "chart=chart-1-1") {
		t.Fatalf("expected text log on terminal; got %q", term.String())
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), `"chart":"chart-1-1"`) {
		t.Fatalf("expected json log in file; got %q", b)
	}
	if strings.Contains(term.String()+string(b), "hidden") {
		t.Fatalf("debug records must be filtered at info level")
	}
}

func TestSetLevel(t *testing.T) {
	t.Setenv(envLevel, "error")
	t.Cleanup(func() { Level.Set(slog.LevelWarn) })

	if err := SetLevel(""); err != nil {
		t.Fatalf("SetLevel: %v", err)
	}
	if Level.Level() != slog.LevelError {
		t.Fatalf("expected env level; got %s", Level.Level())
	}
	if err := SetLevel("debug"); err != nil || Level.Level() != slog.LevelDebug {
		t.Fatalf("expected debug; got %s (%v)", Level.Level(), err)
	}
	if err := SetLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
