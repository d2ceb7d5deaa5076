package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"tracker-cli/internal/model"
)

// Theme/palette helpers.
//
// The grid must stay readable on light and dark terminals. Chrome uses
// lipgloss.AdaptiveColor; cell backgrounds use fixed colors with a contrasting
// foreground.

const (
	envTheme  = "TRACKER_TUI_THEME"
	envDarkBG = "TRACKER_TUI_DARKBG"
)

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted     = ac("240", "243")
	colorChromeFg  = ac("240", "245")
	colorSurfaceFg = ac("235", "252")
	colorControlBg = ac("252", "235")
	colorAccent    = ac("27", "62")
	colorAccentFg  = ac("255", "235")
	colorGrid      = ac("250", "240")

	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	colorModalSurfaceBg = ac("255", "235")
	colorModalHeaderBg  = ac("252", "237")

	colorStatusError = ac("160", "203")
)

// Cell backgrounds, matching the snapshot colors.
var backgroundColors = map[model.Background]lipgloss.Color{
	model.BackgroundLightGreen: lipgloss.Color("#90ee90"),
	model.BackgroundYellow:     lipgloss.Color("#ffeb3b"),
	model.BackgroundOrange:     lipgloss.Color("#ffa500"),
	model.BackgroundDarkRed:    lipgloss.Color("#8b0000"),
}

var penaltyColors = map[model.PenaltyState]lipgloss.Color{
	model.PenaltyYellow: lipgloss.Color("#ffd600"),
	model.PenaltyOrange: lipgloss.Color("#ff8c00"),
	model.PenaltyRed:    lipgloss.Color("#e53935"),
}

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleCellBackground(b model.Background) lipgloss.Style {
	st := lipgloss.NewStyle()
	c, ok := backgroundColors[b]
	if !ok {
		return st
	}
	fg := lipgloss.Color("#000000")
	if b == model.BackgroundDarkRed {
		fg = lipgloss.Color("#ffffff")
	}
	return st.Background(c).Foreground(fg)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the TUI.
// Only NO_COLOR is honored; CLICOLOR would disable colors the grid relies on.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()

	// Trust TERM/COLORTERM when they claim more than the detector reports.
	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	} else if strings.Contains(term, "256color") {
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}

	lipgloss.SetColorProfile(profile)
}

// applyThemePreference configures Lip Gloss's background detection.
//
// Priority:
// 1) TRACKER_TUI_THEME=light|dark|auto
// 2) TRACKER_TUI_DARKBG=true|false
// 3) COLORFGBG heuristic ("15;0" = fg;bg)
func applyThemePreference() {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(envTheme))) {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		return
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		return
	}

	if v := strings.TrimSpace(os.Getenv(envDarkBG)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			lipgloss.SetHasDarkBackground(b)
			return
		}
	}

	if dark, ok := darkFromColorFGBG(os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
	}
}

// darkFromColorFGBG reads the last segment of COLORFGBG as the background
// palette index. 0-6 are dark colors in the common xterm palette.
func darkFromColorFGBG(v string) (dark bool, ok bool) {
	v = strings.TrimSpace(v)
	if v == "" {
		return false, false
	}
	parts := strings.Split(v, ";")
	bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1]))
	if err != nil || bg < 0 {
		return false, false
	}
	return bg < 7, true
}
