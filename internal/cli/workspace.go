package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tracker-cli/internal/export"
	"tracker-cli/internal/logs"
	"tracker-cli/internal/selection"
	"tracker-cli/internal/session"
	"tracker-cli/internal/store"
)

// workspace is everything a command needs: the store dir, preferences and a
// session over the loaded charts.
type workspace struct {
	store store.Store
	cfg   *store.Config
	ui    *store.UIState
	sess  *session.Session

	// ephemeral workspaces never touch the store dir.
	ephemeral bool
}

// openWorkspace resolves the store dir, sets up logging and loads charts. The
// chart to operate on is --chart, then the remembered active chart, then the
// most recent one.
func openWorkspace(cmd *cobra.Command, app *App, terminalLogs bool) (*workspace, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	dir := strings.TrimSpace(app.Dir)
	if dir == "" {
		d, err := store.DefaultDir()
		if err != nil {
			return nil, err
		}
		dir = d
	}
	s := store.Store{Dir: dir}

	level := app.LogLevel
	if level == "" {
		level = cfg.LogLevel
	}
	if err := logs.SetLevel(level); err != nil {
		return nil, err
	}
	opts := logs.Options{}
	if terminalLogs {
		opts.Terminal = cmd.ErrOrStderr()
	}
	if !app.Ephemeral {
		opts.FilePath = s.LogPath()
	}
	logger, closeLog, err := logs.New(opts)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	app.log, app.closeLog = logger, closeLog

	var blob store.BlobStore
	if app.Ephemeral {
		// $TRACKER_BACKEND must not pull an ephemeral run back onto disk.
		blob = store.NewMemoryBlob(nil)
	} else {
		blob, err = s.Blob(cfg.Backend)
		if err != nil {
			return nil, err
		}
	}
	charts := store.NewCharts(blob, logger)
	if err := charts.Load(cmd.Context()); err != nil {
		return nil, err
	}

	ui, err := s.LoadUIState()
	if err != nil {
		logger.Warn("load ui state failed", "err", err)
		ui = &store.UIState{Version: 1}
	}

	modeName := ui.SelectionMode
	if modeName == "" {
		modeName = cfg.SelectionMode
	}
	mode, err := selection.ParseMode(modeName)
	if err != nil {
		logger.Warn("ignoring selection mode", "err", err)
		mode = selection.Single
	}

	sess := session.New(session.Options{
		Charts:       charts,
		Log:          logger,
		Mode:         mode,
		HistoryLimit: cfg.HistoryLimit,
	})

	ws := &workspace{store: s, cfg: cfg, ui: ui, sess: sess, ephemeral: app.Ephemeral}
	switch id := strings.TrimSpace(app.ChartID); {
	case id != "":
		if err := sess.SelectChart(id); err != nil {
			return nil, err
		}
	case ui.ActiveChartID != "" && charts.Has(ui.ActiveChartID):
		_ = sess.SelectChart(ui.ActiveChartID)
	}
	return ws, nil
}

// rememberActive stores the active chart so the next invocation (CLI or TUI)
// starts there. Ephemeral workspaces only update the in-memory copy.
func (ws *workspace) rememberActive() error {
	ws.ui.ActiveChartID = ws.sess.ActiveID()
	if ws.ephemeral {
		return nil
	}
	return ws.store.SaveUIState(ws.ui)
}

// exporterFor picks the snapshot format: the flag, then config, then PNG.
func exporterFor(cfg *store.Config, flagFormat string) (export.File, error) {
	name := strings.TrimSpace(flagFormat)
	if name == "" && cfg != nil {
		name = cfg.ExportFormat
	}
	f, err := export.ParseFormat(name)
	if err != nil {
		return export.File{}, err
	}
	return export.File{Format: f}, nil
}

func cwd() string {
	d, err := os.Getwd()
	if err != nil {
		return "."
	}
	return d
}
