package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tracker-cli/internal/model"
	"tracker-cli/internal/mutate"
	"tracker-cli/internal/session"
)

func newCellsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cells",
		Short: "Cell formatting and penalty cards",
	}
	cmd.AddCommand(newCellsFormatCmd(app))
	cmd.AddCommand(newCellsPenaltyCmd(app))
	return cmd
}

func actionNames() string {
	names := make([]string, 0, len(mutate.Actions()))
	for _, a := range mutate.Actions() {
		names = append(names, string(a))
	}
	return strings.Join(names, ", ")
}

func newCellsFormatCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "format <action> <row,col>...",
		Short: "Apply a mark or background to cells as one undoable step",
		Long:  "Apply a mark or background to the given cells (0-based row,col).\n\nActions: " + actionNames(),
		Example: strings.TrimSpace(`
  tracker cells format markTick 0,0 1,0
  tracker cells format bgDiagonalLines 2,1
`),
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := mutate.ParseAction(args[0]); err != nil {
				return writeErr(cmd, err)
			}
			refs := make([]model.CellRef, 0, len(args)-1)
			for _, a := range args[1:] {
				ref, err := model.ParseCellRef(a)
				if err != nil {
					return writeErr(cmd, err)
				}
				refs = append(refs, ref)
			}
			return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
				return s.FormatCells(ctx, args[0], refs)
			})
		},
	}
}

func newCellsPenaltyCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "penalty <row> <slot>",
		Short: "Advance a penalty card: empty, yellow, orange, red, empty",
		Long:  "Advance penalty card <slot> (0 or 1) of row <row> (0-based) one step.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			row, err := parseIndex("row", args[0])
			if err != nil {
				return writeErr(cmd, err)
			}
			slot, err := parseIndex("slot", args[1])
			if err != nil {
				return writeErr(cmd, err)
			}
			return runChange(cmd, app, func(ctx context.Context, s *session.Session) (bool, error) {
				return s.CyclePenalty(ctx, row, slot)
			})
		},
	}
}
