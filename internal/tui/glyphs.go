package tui

import (
	"os"
	"strings"
	"sync"

	"tracker-cli/internal/model"
)

// Some terminal fonts render emoji or box glyphs badly; the ASCII set keeps
// the grid aligned everywhere.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

const envGlyphs = "TRACKER_TUI_GLYPHS"

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

// applyGlyphPreference picks the glyph set from the environment, falling back
// to the configured value. Unknown values keep the current set.
func applyGlyphPreference(configured string) {
	v := strings.TrimSpace(os.Getenv(envGlyphs))
	if v == "" {
		v = configured
	}
	if gs, ok := parseGlyphSet(v); ok {
		setGlyphs(gs)
	}
}

func parseGlyphSet(v string) (glyphSet, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "unicode", "utf8":
		return glyphSetUnicode, true
	case "ascii":
		return glyphSetASCII, true
	}
	return glyphSetUnicode, false
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

var asciiMarks = map[model.Mark]string{
	model.MarkTick:     "v",
	model.MarkCross:    "x",
	model.MarkQuestion: "?",
}

func glyphMark(m model.Mark) string {
	if glyphs() == glyphSetASCII {
		return asciiMarks[m]
	}
	return m.Glyph()
}

// glyphMarkFromView maps a rendered mark glyph to the active glyph set.
func glyphMarkFromView(s string) string {
	m, _ := model.ParseMark(s)
	return glyphMark(m)
}

func glyphCard(p model.PenaltyState) string {
	if glyphs() == glyphSetASCII {
		if p == model.PenaltyEmpty {
			return "."
		}
		return strings.ToUpper(p.String()[:1])
	}
	if p == model.PenaltyEmpty {
		return "▯"
	}
	return "▮"
}

func glyphDiagonal() string {
	if glyphs() == glyphSetASCII {
		return "/"
	}
	return "╱"
}

func glyphVRule() string {
	if glyphs() == glyphSetASCII {
		return "|"
	}
	return "│"
}

func glyphHRule() string {
	if glyphs() == glyphSetASCII {
		return "-"
	}
	return "─"
}

func glyphEllipsis() string {
	if glyphs() == glyphSetASCII {
		return "~"
	}
	return "…"
}
