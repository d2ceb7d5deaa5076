package publish

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	emoji "github.com/yuin/goldmark-emoji"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"tracker-cli/internal/model"
)

var markdownRenderer = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		emoji.Emoji,
	),
	goldmark.WithRendererOptions(
		// Raw HTML in chart names must stay escaped.
		gmhtml.WithHardWraps(),
	),
)

// RenderChartHTML converts the chart's markdown to a standalone HTML page.
func RenderChartHTML(c model.Chart) (string, error) {
	md := RenderChartMarkdown(c, RenderOptions{Shortcodes: true})
	var body bytes.Buffer
	if err := markdownRenderer.Convert([]byte(md), &body); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	title := strings.TrimSpace(c.Name)
	if title == "" {
		title = "Untitled Chart"
	}
	var out bytes.Buffer
	out.WriteString("<!doctype html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&out, "<title>%s</title>\n", html.EscapeString(title))
	out.WriteString("</head>\n<body>\n")
	out.Write(body.Bytes())
	out.WriteString("</body>\n</html>\n")
	return out.String(), nil
}
