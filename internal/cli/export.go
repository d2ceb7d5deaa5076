package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"tracker-cli/internal/export"
)

func newExportCmd(app *App) *cobra.Command {
	var out string
	var formatName string
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the active chart (png|jpeg|txt) or copy it as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}

			var exp export.Exporter
			if toClipboard {
				exp = export.Clipboard{}
			} else {
				f, err := exporterFor(ws.cfg, formatName)
				if err != nil {
					return writeErr(cmd, err)
				}
				exp = f
			}

			path := strings.TrimSpace(out)
			if path == "" && !toClipboard {
				path = cwd()
			}
			written, err := ws.sess.ExportSnapshot(cmd.Context(), exp, path)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"id":   ws.sess.ActiveID(),
				"path": written,
			}})
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "Output file or directory (default: current directory)")
	cmd.Flags().StringVar(&formatName, "image-format", "", "Snapshot format: png|jpeg|txt (default: config exportFormat, then png)")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy the chart as text to the clipboard instead of writing a file")
	return cmd
}
