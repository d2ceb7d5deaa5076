// Package mutate holds the pure chart transformations: cell formatting,
// penalty cycling, text edits and structural edits. Every function returns a
// new chart and leaves its input untouched; callers own history and
// persistence.
package mutate

import (
	"fmt"
	"strings"

	"tracker-cli/internal/model"
)

type Action string

const (
	MarkTick     Action = "markTick"
	MarkCross    Action = "markCross"
	MarkQuestion Action = "markQuestion"
	ClearMarks   Action = "clearMarks"

	BgLightGreen    Action = "bgLightGreen"
	BgYellow        Action = "bgYellow"
	BgOrange        Action = "bgOrange"
	BgDarkRed       Action = "bgDarkRed"
	BgDiagonalLines Action = "bgDiagonalLines"
	ClearBG         Action = "clearBG"
)

// Actions lists every action in display order.
func Actions() []Action {
	return []Action{
		MarkTick, MarkCross, MarkQuestion, ClearMarks,
		BgLightGreen, BgYellow, BgOrange, BgDarkRed, BgDiagonalLines, ClearBG,
	}
}

type cellEdit func(*model.Cell)

func setMark(m model.Mark) cellEdit {
	return func(c *model.Cell) { c.Mark = m }
}

// Backgrounds are mutually exclusive: assigning replaces any previous kind.
func setBackground(b model.Background) cellEdit {
	return func(c *model.Cell) { c.Background = b }
}

var actionEdits = map[Action]cellEdit{
	MarkTick:        setMark(model.MarkTick),
	MarkCross:       setMark(model.MarkCross),
	MarkQuestion:    setMark(model.MarkQuestion),
	ClearMarks:      setMark(model.MarkNone),
	BgLightGreen:    setBackground(model.BackgroundLightGreen),
	BgYellow:        setBackground(model.BackgroundYellow),
	BgOrange:        setBackground(model.BackgroundOrange),
	BgDarkRed:       setBackground(model.BackgroundDarkRed),
	BgDiagonalLines: setBackground(model.BackgroundDiagonal),
	ClearBG:         setBackground(model.BackgroundNone),
}

// ParseAction matches an action id case-insensitively.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	for a := range actionEdits {
		if strings.EqualFold(string(a), s) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAction, s)
}

// IsMark reports whether a belongs to the mark family.
func (a Action) IsMark() bool {
	switch a {
	case MarkTick, MarkCross, MarkQuestion, ClearMarks:
		return true
	}
	return false
}

// Apply runs action on every target cell as one batch. Targets that do not
// address a data cell are skipped.
func Apply(c model.Chart, action Action, targets []model.CellRef) (model.Chart, error) {
	edit, ok := actionEdits[action]
	if !ok {
		return c, fmt.Errorf("%w: %q", ErrUnknownAction, action)
	}
	out := c.Clone()
	for _, ref := range targets {
		if !out.Contains(ref) {
			continue
		}
		edit(&out.Rows[ref.Row].Data[ref.Col])
	}
	return out, nil
}
