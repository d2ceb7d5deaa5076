package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"tracker-cli/internal/export"
	"tracker-cli/internal/session"
	"tracker-cli/internal/store"
	"tracker-cli/internal/view"
)

type Options struct {
	Session *session.Session
	Store   store.Store
	Config  *store.Config

	// Exporter writes snapshots for the S key; defaults to PNG files.
	Exporter  export.Exporter
	ExportDir string

	Log *slog.Logger

	// Ephemeral skips remembering the active chart and mode on exit.
	Ephemeral bool
}

// Run opens the interactive grid and blocks until the user quits. The last
// active chart and selection mode are remembered in the store directory unless
// the run is ephemeral.
func Run(ctx context.Context, opts Options) error {
	applyColorProfilePreference()
	applyThemePreference()
	glyphPref := ""
	if opts.Config != nil {
		glyphPref = opts.Config.Glyphs
	}
	applyGlyphPreference(glyphPref)

	m := newAppModel(ctx, appOptions{
		Session:   opts.Session,
		Exporter:  opts.Exporter,
		ExportDir: opts.ExportDir,
		Log:       opts.Log,
	})
	_, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	opts.Session.SetView(view.Nop)
	if opts.Ephemeral {
		return err
	}

	st := &store.UIState{
		ActiveChartID: opts.Session.ActiveID(),
		SelectionMode: opts.Session.Mode().String(),
	}
	if saveErr := opts.Store.SaveUIState(st); saveErr != nil && opts.Log != nil {
		opts.Log.Warn("save ui state failed", "err", saveErr)
	}
	return err
}
