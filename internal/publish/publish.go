package publish

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tracker-cli/internal/model"
)

type WriteOptions struct {
	HTML      bool
	Overwrite bool
}

type WriteResult struct {
	Written []string `json:"written"`
}

// WriteChart writes <toDir>/<chart id>.md, plus .html when requested.
func WriteChart(c model.Chart, toDir string, opt WriteOptions) (WriteResult, error) {
	toDir = strings.TrimSpace(toDir)
	if toDir == "" {
		return WriteResult{}, errors.New("missing --to")
	}
	if strings.TrimSpace(c.ID) == "" {
		return WriteResult{}, errors.New("missing chart id")
	}
	toDir = filepath.Clean(toDir)
	if err := os.MkdirAll(toDir, 0o755); err != nil {
		return WriteResult{}, err
	}

	var written []string
	mdPath := filepath.Join(toDir, c.ID+".md")
	if err := writeFile(mdPath, []byte(RenderChartMarkdown(c, RenderOptions{})), opt.Overwrite); err != nil {
		return WriteResult{}, err
	}
	written = append(written, mdPath)

	if opt.HTML {
		page, err := RenderChartHTML(c)
		if err != nil {
			return WriteResult{}, err
		}
		htmlPath := filepath.Join(toDir, c.ID+".html")
		if err := writeFile(htmlPath, []byte(page), opt.Overwrite); err != nil {
			return WriteResult{}, err
		}
		written = append(written, htmlPath)
	}
	return WriteResult{Written: written}, nil
}

// writeFile creates path, refusing to replace an existing file unless
// overwrite is set.
func writeFile(path string, b []byte, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("file exists (use --overwrite): %s", path)
	}
	if err != nil {
		return err
	}
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
