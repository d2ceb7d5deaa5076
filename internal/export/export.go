package export

import (
	"bytes"
	"context"
	"fmt"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/atotto/clipboard"

	"tracker-cli/internal/model"
)

type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
	FormatText Format = "txt"
)

const jpegQuality = 95

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "txt", "text":
		return FormatText, nil
	default:
		return "", fmt.Errorf("invalid export format %q (expected png|jpeg|txt)", s)
	}
}

func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatText:
		return ".txt"
	default:
		return ".png"
	}
}

var reWhitespace = regexp.MustCompile(`\s+`)

// FileName builds "<name>_snapshot_<millis><ext>" with whitespace runs in the
// chart name replaced by underscores.
func FileName(chartName string, f Format, now time.Time) string {
	name := reWhitespace.ReplaceAllString(strings.TrimSpace(chartName), "_")
	if name == "" {
		name = "chart"
	}
	name = strings.ReplaceAll(name, string(filepath.Separator), "_")
	return fmt.Sprintf("%s_snapshot_%d%s", name, now.UnixMilli(), f.Ext())
}

// Exporter produces a snapshot of a chart. Implementations only read the
// chart; every failure is returned as an ExportError.
type Exporter interface {
	Export(ctx context.Context, c model.Chart, path string) (string, error)
}

// File writes snapshots to disk. An empty path or a directory path gets a
// generated FileName.
type File struct {
	Format Format
	Now    func() time.Time
}

func (f File) now() time.Time {
	if f.Now != nil {
		return f.Now()
	}
	return time.Now()
}

func (f File) Export(ctx context.Context, c model.Chart, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ExportError{Op: "export", Err: err}
	}
	format := f.Format
	if format == "" {
		format = FormatPNG
	}
	now := f.now()

	if path == "" {
		path = "."
	}
	if st, err := os.Stat(path); err == nil && st.IsDir() {
		path = filepath.Join(path, FileName(c.Name, format, now))
	}

	b, err := Encode(c, format, now)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", ExportError{Op: "write", Err: err}
	}
	return path, nil
}

// Encode renders the chart in the given format.
func Encode(c model.Chart, format Format, now time.Time) ([]byte, error) {
	if format == FormatText {
		return []byte(RenderText(c, now)), nil
	}
	img, err := RenderImage(c, now)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	switch format {
	case FormatJPEG:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: jpegQuality})
	case FormatPNG:
		err = png.Encode(&buf, img)
	default:
		return nil, ExportError{Op: "encode", Err: fmt.Errorf("unsupported format %q", format)}
	}
	if err != nil {
		return nil, ExportError{Op: "encode", Err: err}
	}
	return buf.Bytes(), nil
}

// Clipboard copies the text rendering to the system clipboard. The path is
// ignored and the returned location is "clipboard".
type Clipboard struct {
	Now func() time.Time
}

func (c Clipboard) Export(ctx context.Context, ch model.Chart, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", ExportError{Op: "export", Err: err}
	}
	if clipboard.Unsupported {
		return "", ExportError{Op: "clipboard", Err: fmt.Errorf("no clipboard utility available")}
	}
	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	if err := clipboard.WriteAll(RenderText(ch, now)); err != nil {
		return "", ExportError{Op: "clipboard", Err: err}
	}
	return "clipboard", nil
}
