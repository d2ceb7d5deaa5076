// Package logs builds the process logger: slog handlers fanned out with
// slog-multi to the terminal and a log file in the store directory.
package logs

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	slogmulti "github.com/samber/slog-multi"
)

// Level is shared by every handler built here, so flags can adjust it after
// the logger exists.
var Level = new(slog.LevelVar)

const envLevel = "TRACKER_LOG_LEVEL"

type Options struct {
	// Terminal receives human-readable text logs. Nil disables it (the TUI
	// owns the terminal).
	Terminal io.Writer

	// FilePath, when set, appends logs to this file.
	FilePath string
}

// New returns a logger and a close func for the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	var handlers []slog.Handler
	closer := func() error { return nil }

	if opts.Terminal != nil {
		handlers = append(handlers, slog.NewTextHandler(opts.Terminal, &slog.HandlerOptions{
			Level: Level,
		}))
	}

	if opts.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.FilePath), 0o755); err != nil {
			return nil, closer, err
		}
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, closer, err
		}
		closer = f.Close
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: Level,
		}))
	}

	if len(handlers) == 0 {
		return Discard(), closer, nil
	}
	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// SetLevel parses debug|info|warn|error; "" falls back to $TRACKER_LOG_LEVEL,
// then warn.
func SetLevel(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		s = strings.TrimSpace(os.Getenv(envLevel))
	}
	if s == "" {
		Level.Set(slog.LevelWarn)
		return nil
	}
	lv, err := ParseLevel(s)
	if err != nil {
		return err
	}
	Level.Set(lv)
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level: %s", s)
	}
}
