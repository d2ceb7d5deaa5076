package cli

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"tracker-cli/internal/publish"
	"tracker-cli/internal/session"
)

func newPublishCmd(app *App) *cobra.Command {
	var toDir string
	var html bool
	var render bool
	var shortcodes bool
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Export the active chart as Markdown (and HTML) artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := openWorkspace(cmd, app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			c, ok := ws.sess.Chart()
			if !ok {
				return writeErr(cmd, session.ErrNoActiveChart)
			}

			if dir := strings.TrimSpace(toDir); dir != "" {
				res, err := publish.WriteChart(c, dir, publish.WriteOptions{HTML: html, Overwrite: overwrite})
				if err != nil {
					return writeErr(cmd, err)
				}
				return writeOut(cmd, app, map[string]any{"data": res})
			}

			md := publish.RenderChartMarkdown(c, publish.RenderOptions{Shortcodes: shortcodes})
			if render {
				s, err := publish.RenderTerminal(md, 100, terminalStyle(cmd))
				if err != nil {
					return writeErr(cmd, err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), s)
				return err
			}

			data := map[string]any{"id": c.ID, "markdown": md}
			if html {
				page, err := publish.RenderChartHTML(c)
				if err != nil {
					return writeErr(cmd, err)
				}
				data["html"] = page
			}
			return writeOut(cmd, app, map[string]any{"data": data})
		},
	}

	cmd.Flags().StringVar(&toDir, "to", "", "Write <chart-id>.md (and .html) into this directory")
	cmd.Flags().BoolVar(&html, "html", false, "Also produce an HTML page")
	cmd.Flags().BoolVar(&render, "render", false, "Print the Markdown styled for the terminal")
	cmd.Flags().BoolVar(&shortcodes, "shortcodes", false, "Use :emoji: shortcodes instead of glyphs")
	cmd.Flags().BoolVar(&overwrite, "overwrite", true, "Overwrite existing files")
	return cmd
}

// terminalStyle picks a glamour style for the command's output stream.
func terminalStyle(cmd *cobra.Command) string {
	out := termenv.NewOutput(cmd.OutOrStdout())
	if out.Profile == termenv.Ascii {
		return "notty"
	}
	if out.HasDarkBackground() {
		return "dark"
	}
	return "light"
}
