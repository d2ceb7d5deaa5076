package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Texter is implemented by payloads with a human-readable form.
type Texter interface {
	Text() string
}

// Write writes output in the requested format.
//
// Supported formats:
// - json (default)
// - text
func Write(w io.Writer, v any, format string, pretty bool) error {
	switch format {
	case "", "json":
		return WriteJSON(w, v, pretty)
	case "text":
		return WriteText(w, v)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// WriteJSON writes strict JSON output for CLI commands.
func WriteJSON(w io.Writer, v any, pretty bool) error {
	var b []byte
	var err error
	if pretty {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(b))
	return err
}

// WriteText prints a Texter (or a {"data": Texter} envelope) as plain text.
// Anything else falls back to indented JSON.
func WriteText(w io.Writer, v any) error {
	if env, ok := v.(map[string]any); ok && len(env) == 1 {
		if d, ok := env["data"]; ok {
			v = d
		}
	}
	switch t := v.(type) {
	case Texter:
		_, err := io.WriteString(w, ensureNewline(t.Text()))
		return err
	case string:
		_, err := io.WriteString(w, ensureNewline(t))
		return err
	default:
		return WriteJSON(w, v, true)
	}
}

func ensureNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
