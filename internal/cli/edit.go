package cli

import (
	"context"

	"github.com/spf13/cobra"

	"tracker-cli/internal/session"
	"tracker-cli/internal/view"
)

func newEditCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit headers, row names and the chart title",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "header <col> <text>",
		Short: "Set a column header",
		Args:  cobra.ExactArgs(2),
		RunE:  editFieldRunE(app, view.FieldHeader, "col"),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "name <row> <text>",
		Short: "Set a row (player) name",
		Args:  cobra.ExactArgs(2),
		RunE:  editFieldRunE(app, view.FieldRowName, "row"),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "title <text>",
		Short: "Set the chart title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
				return s.EditField(ctx, view.FieldRef{Kind: view.FieldTitle}, args[0])
			})
		},
	})
	return cmd
}

func editFieldRunE(app *App, kind view.FieldKind, indexName string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		idx, err := parseIndex(indexName, args[0])
		if err != nil {
			return writeErr(cmd, err)
		}
		ref := view.FieldRef{Kind: kind, Index: idx}
		return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
			return s.EditField(ctx, ref, args[1])
		})
	}
}
