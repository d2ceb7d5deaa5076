package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tracker-cli/internal/session"
)

func newColumnsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Add or remove columns",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <header>",
		Short: "Append a column of empty cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
				return s.AddColumn(ctx, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <col>",
		Short: "Remove a column (the last one is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			col, err := parseIndex("col", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
				return s.RemoveColumn(ctx, col)
			})
		},
	})
	return cmd
}

func newRowsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Add or remove rows",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add <name>",
		Short: "Append a row with empty penalties and cells",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
				return s.AddRow(ctx, args[0])
			})
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "rm <row>",
		Short: "Remove a row (the last one is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseIndex("row", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
				return s.RemoveRow(ctx, row)
			})
		},
	})
	return cmd
}
