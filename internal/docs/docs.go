// Package docs embeds the help topics shown by `tracker docs` and the TUI
// help screen.
package docs

import (
	"bufio"
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed content/*.md
var contentFS embed.FS

// Topic describes one embedded page. Title is the page's first heading and
// Summary its first prose line.
type Topic struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Summary string `json:"summary,omitempty"`
}

// Topics lists every page, ordered by name.
func Topics() []Topic {
	files, _ := fs.Glob(contentFS, "content/*.md")
	out := make([]Topic, 0, len(files))
	for _, p := range files {
		name := strings.TrimSuffix(path.Base(p), ".md")
		b, err := contentFS.ReadFile(p)
		if err != nil || name == "" {
			continue
		}
		t := describe(string(b))
		t.Name = name
		if t.Title == "" {
			t.Title = name
		}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func describe(body string) Topic {
	var t Topic
	sc := bufio.NewScanner(strings.NewReader(body))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case strings.HasPrefix(line, "# ") && t.Title == "":
			t.Title = strings.TrimSpace(line[2:])
		case strings.HasPrefix(line, "#"), strings.HasPrefix(line, "|"):
			// Subsections and tables end the lead paragraph.
			if t.Title != "" {
				return t
			}
		default:
			t.Summary = line
			return t
		}
	}
	return t
}

// Get returns the raw Markdown of a topic. Names are case-insensitive.
func Get(topic string) (string, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" || strings.ContainsAny(topic, `/\.`) {
		return "", false
	}
	b, err := contentFS.ReadFile("content/" + topic + ".md")
	if err != nil {
		return "", false
	}
	return string(b), true
}
