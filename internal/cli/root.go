package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tracker-cli/internal/format"
	"tracker-cli/internal/tui"
)

type App struct {
	Dir        string
	ChartID    string
	PrettyJSON bool
	Format     string
	LogLevel   string
	Ephemeral  bool

	log      *slog.Logger
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "tracker",
		Short:        "Tracker: local-first penalty and annotation charts (CLI + TUI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive grid
  tracker

  # Scriptable commands
  tracker charts list
  tracker cells format markTick 0,1 1,1

  # Direct chart lookup (shortcut for: tracker charts show <chart-id>)
  tracker chart-1712000000000-42
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(cmd, app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			return app.closeLog()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Dir, "dir", envOr("TRACKER_DIR", ""), "Path to store dir (default: ~/.tracker/data)")
	cmd.PersistentFlags().StringVar(&app.ChartID, "chart", envOr("TRACKER_CHART", ""), "Chart id to operate on (default: the last active chart)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("TRACKER_FORMAT", "json"), "Output format (json|text)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("TRACKER_LOG_LEVEL", ""), "Log level (debug|info|warn|error)")
	cmd.PersistentFlags().BoolVar(&app.Ephemeral, "ephemeral", false, "Keep charts in memory only (nothing is written)")

	cmd.AddCommand(newChartsCmd(app))
	cmd.AddCommand(newCellsCmd(app))
	cmd.AddCommand(newEditCmd(app))
	cmd.AddCommand(newColumnsCmd(app))
	cmd.AddCommand(newRowsCmd(app))
	cmd.AddCommand(newExportCmd(app))
	cmd.AddCommand(newPublishCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

func runTUI(cmd *cobra.Command, app *App) error {
	ws, err := openWorkspace(cmd, app, false)
	if err != nil {
		return writeErr(cmd, err)
	}
	exp, err := exporterFor(ws.cfg, "")
	if err != nil {
		return writeErr(cmd, err)
	}
	return tui.Run(cmd.Context(), tui.Options{
		Session:   ws.sess,
		Store:     ws.store,
		Config:    ws.cfg,
		Exporter:  exp,
		ExportDir: cwd(),
		Log:       app.log,
		Ephemeral: ws.ephemeral,
	})
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
