package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tracker-cli/internal/session"
)

func newChartsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Chart commands (list, create, delete, switch)",
	}
	cmd.AddCommand(newChartsListCmd(app))
	cmd.AddCommand(newChartsNewCmd(app))
	cmd.AddCommand(newChartsRmCmd(app))
	cmd.AddCommand(newChartsRenameCmd(app))
	cmd.AddCommand(newChartsShowCmd(app))
	cmd.AddCommand(newChartsUseCmd(app))
	return cmd
}

func newChartsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List charts, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": chartList(ws.sess.Charts())})
		},
	}
}

func newChartsNewCmd(app *App) *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Create a chart with the default layout and make it active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			id, err := ws.sess.NewChart(cmd.Context())
			if err != nil {
				return writeErr(cmd, err)
			}
			if n := strings.TrimSpace(name); n != "" {
				if err := ws.sess.RenameChart(cmd.Context(), id, n); err != nil {
					return writeErr(cmd, err)
				}
			}
			if err := ws.rememberActive(); err != nil {
				return writeErr(cmd, err)
			}
			return writeActive(cmd, app, ws)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Optional chart name")
	return cmd
}

func newChartsRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <chart-id>",
		Short: "Delete a chart (deleting the last chart leaves a fresh one)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ws.sess.DeleteChartByID(cmd.Context(), strings.TrimSpace(args[0])); err != nil {
				return writeErr(cmd, err)
			}
			if err := ws.rememberActive(); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"deleted": args[0],
				"active":  ws.sess.ActiveID(),
			}})
		},
	}
}

func newChartsRenameCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <chart-id> <name>",
		Short: "Rename a chart",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if strings.TrimSpace(args[1]) == "" {
				return writeErr(cmd, errors.New("name must not be empty"))
			}
			if err := ws.sess.RenameChart(cmd.Context(), strings.TrimSpace(args[0]), args[1]); err != nil {
				return writeErr(cmd, err)
			}
			if err := ws.sess.SelectChart(strings.TrimSpace(args[0])); err != nil {
				return writeErr(cmd, err)
			}
			return writeActive(cmd, app, ws)
		},
	}
}

func newChartsShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [chart-id]",
		Short: "Show a chart (default: the active chart)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				app.ChartID = strings.TrimSpace(args[0])
			}
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeActive(cmd, app, ws)
		},
	}
}

func newChartsUseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "use <chart-id>",
		Short: "Make a chart the active one for later commands and the TUI",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app.ChartID = strings.TrimSpace(args[0])
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			if err := ws.rememberActive(); err != nil {
				return writeErr(cmd, err)
			}
			return writeActive(cmd, app, ws)
		},
	}
}

func writeActive(cmd *cobra.Command, app *App, ws *workspace) error {
	c, ok := ws.sess.Chart()
	if !ok {
		return writeErr(cmd, session.ErrNoActiveChart)
	}
	return writeOut(cmd, app, map[string]any{"data": chartPayload(c)})
}
