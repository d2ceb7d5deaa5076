package tui

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

const envMarkdownStyle = "TRACKER_TUI_MD_STYLE"

type mdKey struct {
	style string
	width int
}

// Renderers are built with a fixed style: WithAutoStyle queries the terminal,
// which blocks inside the alt screen.
var mdCache = struct {
	sync.Mutex
	byKey map[mdKey]*glamour.TermRenderer
}{byKey: map[mdKey]*glamour.TermRenderer{}}

// renderMarkdown styles a docs topic for the help overlay. On any failure the
// raw markdown is shown instead.
func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	r, err := helpRenderer(mdKey{style: markdownStyle(), width: max(width, 10)})
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func helpRenderer(k mdKey) (*glamour.TermRenderer, error) {
	mdCache.Lock()
	defer mdCache.Unlock()
	if r, ok := mdCache.byKey[k]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(markdownStyleConfig(k.style)),
		glamour.WithWordWrap(k.width),
	)
	if err != nil {
		return nil, err
	}
	mdCache.byKey[k] = r
	return r, nil
}

// markdownStyle resolves light|dark|notty: the markdown env var, then the
// theme env var, then the detected terminal background.
func markdownStyle() string {
	if s, ok := styleFromEnv(envMarkdownStyle, "light", "dark", "notty"); ok {
		return s
	}
	if s, ok := styleFromEnv(envTheme, "light", "dark"); ok {
		return s
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func styleFromEnv(name string, allowed ...string) (string, bool) {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(name)))
	for _, a := range allowed {
		if v == a {
			return v, true
		}
	}
	return "", false
}

// markdownStyleConfig starts from glamour's standard styles and tints
// headings and tables with the grid palette.
func markdownStyleConfig(style string) ansi.StyleConfig {
	var cfg ansi.StyleConfig
	switch style {
	case "notty":
		return styles.NoTTYStyleConfig
	case "light":
		cfg = styles.LightStyleConfig
	default:
		cfg = styles.DarkStyleConfig
	}

	accent := paletteColor(colorAccent, style)
	for _, h := range []*ansi.StyleBlock{&cfg.H1, &cfg.H2, &cfg.H3} {
		h.Color = accent
		h.BackgroundColor = nil
	}
	cfg.Text.Color = paletteColor(colorSurfaceFg, style)
	cfg.Code.Color = paletteColor(colorSurfaceFg, style)
	cfg.Code.BackgroundColor = paletteColor(colorControlBg, style)
	sep := "│"
	if glyphs() == glyphSetASCII {
		sep = "|"
	}
	cfg.Table.ColumnSeparator = &sep
	return cfg
}

func paletteColor(c lipgloss.AdaptiveColor, style string) *string {
	v := c.Dark
	if style == "light" {
		v = c.Light
	}
	return &v
}
