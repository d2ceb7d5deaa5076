package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tracker-cli/internal/session"
)

// runChange opens the workspace, applies one edit to the active chart and
// prints the resulting chart.
func runChange(cmd *cobra.Command, app *App, fn func(ctx context.Context, s *session.Session) (bool, error)) error {
	ws, err := openWorkspace(cmd, app, true)
	if err != nil {
		return writeErr(cmd, err)
	}
	changed, err := fn(cmd.Context(), ws.sess)
	if err != nil {
		return writeErr(cmd, err)
	}
	c, ok := ws.sess.Chart()
	if !ok {
		return writeErr(cmd, session.ErrNoActiveChart)
	}
	return writeOut(cmd, app, map[string]any{"data": changePayload(c, ws.sess.UndoLabel(), changed)})
}

func parseIndex(kind, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid %s index %q", kind, s)
	}
	return n, nil
}
