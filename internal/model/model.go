package model

import (
	"fmt"
	"strconv"
	"strings"
)

// PenaltySlots is the fixed number of penalty card slots per row.
const PenaltySlots = 2

type PenaltyState int

const (
	PenaltyEmpty PenaltyState = iota
	PenaltyYellow
	PenaltyOrange
	PenaltyRed
)

var penaltyNames = [...]string{"empty", "yellow", "orange", "red"}

func (p PenaltyState) String() string {
	if p < 0 || int(p) >= len(penaltyNames) {
		return penaltyNames[0]
	}
	return penaltyNames[p]
}

// Next returns the following state in the cycle empty -> yellow -> orange -> red -> empty.
func (p PenaltyState) Next() PenaltyState {
	return PenaltyState((int(p) + 1) % len(penaltyNames))
}

func ParsePenaltyState(s string) (PenaltyState, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range penaltyNames {
		if s == name {
			return PenaltyState(i), true
		}
	}
	return PenaltyEmpty, false
}

type Mark int

const (
	MarkNone Mark = iota
	MarkTick
	MarkCross
	MarkQuestion
)

var markNames = [...]string{"", "tick", "cross", "question"}

// Glyphs as stored in the persisted layout and shown in the view.
var markGlyphs = [...]string{"", "✅", "❌", "❓"}

func (m Mark) String() string {
	if m < 0 || int(m) >= len(markNames) {
		return ""
	}
	return markNames[m]
}

func (m Mark) Glyph() string {
	if m < 0 || int(m) >= len(markGlyphs) {
		return ""
	}
	return markGlyphs[m]
}

// ParseMark accepts either a glyph or a mark name.
func ParseMark(s string) (Mark, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MarkNone, true
	}
	for i := 1; i < len(markGlyphs); i++ {
		if s == markGlyphs[i] || strings.EqualFold(s, markNames[i]) {
			return Mark(i), true
		}
	}
	return MarkNone, false
}

type Background int

const (
	BackgroundNone Background = iota
	BackgroundLightGreen
	BackgroundYellow
	BackgroundOrange
	BackgroundDarkRed
	BackgroundDiagonal
)

var backgroundNames = [...]string{"", "lightgreen", "yellow", "orange", "darkred", "diagonal"}

var backgroundClasses = [...]string{"", "bg-lightgreen", "bg-yellow", "bg-orange", "bg-darkred", "bg-diagonal-lines"}

func (b Background) String() string {
	if b < 0 || int(b) >= len(backgroundNames) {
		return ""
	}
	return backgroundNames[b]
}

// Class is the presentation class name; also the persisted bgClass value.
func (b Background) Class() string {
	if b < 0 || int(b) >= len(backgroundClasses) {
		return ""
	}
	return backgroundClasses[b]
}

// Backgrounds lists every non-empty background kind.
func Backgrounds() []Background {
	return []Background{BackgroundLightGreen, BackgroundYellow, BackgroundOrange, BackgroundDarkRed, BackgroundDiagonal}
}

// ParseBackground accepts a class name ("bg-orange") or a kind name ("orange").
func ParseBackground(s string) (Background, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return BackgroundNone, true
	}
	for i := 1; i < len(backgroundClasses); i++ {
		if s == backgroundClasses[i] || s == backgroundNames[i] {
			return Background(i), true
		}
	}
	return BackgroundNone, false
}

type Cell struct {
	Mark       Mark
	Background Background
}

func (c Cell) IsEmpty() bool {
	return c.Mark == MarkNone && c.Background == BackgroundNone
}

type Row struct {
	Name    string
	Penalty [PenaltySlots]PenaltyState
	Data    []Cell
}

type Chart struct {
	// ID is the store key; it is not part of the persisted value.
	ID      string
	Name    string
	Headers []string
	Rows    []Row
}

// CellRef addresses a data cell. Col indexes Headers; the name and penalty
// columns are not addressable.
type CellRef struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (r CellRef) String() string {
	return fmt.Sprintf("%d,%d", r.Row, r.Col)
}

// ParseCellRef parses "row,col".
func ParseCellRef(s string) (CellRef, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return CellRef{}, fmt.Errorf("invalid cell %q (want row,col)", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell row %q: %w", parts[0], err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return CellRef{}, fmt.Errorf("invalid cell col %q: %w", parts[1], err)
	}
	return CellRef{Row: row, Col: col}, nil
}

// Contains reports whether ref addresses an existing data cell.
func (c Chart) Contains(ref CellRef) bool {
	if ref.Row < 0 || ref.Row >= len(c.Rows) {
		return false
	}
	return ref.Col >= 0 && ref.Col < len(c.Rows[ref.Row].Data)
}

// Validate checks the row/header shape invariant.
func (c Chart) Validate() error {
	for i, r := range c.Rows {
		if len(r.Data) != len(c.Headers) {
			return fmt.Errorf("row %d has %d cells, want %d", i, len(r.Data), len(c.Headers))
		}
	}
	return nil
}

// Normalize pads or truncates every row to the header count. It reports
// whether anything changed.
func (c *Chart) Normalize() bool {
	changed := false
	n := len(c.Headers)
	for i := range c.Rows {
		r := &c.Rows[i]
		switch {
		case len(r.Data) < n:
			r.Data = append(r.Data, make([]Cell, n-len(r.Data))...)
			changed = true
		case len(r.Data) > n:
			r.Data = r.Data[:n]
			changed = true
		}
	}
	return changed
}

// Clone returns a deep copy sharing no slices with c.
func (c Chart) Clone() Chart {
	out := Chart{ID: c.ID, Name: c.Name}
	if c.Headers != nil {
		out.Headers = append([]string(nil), c.Headers...)
	}
	if c.Rows != nil {
		out.Rows = make([]Row, len(c.Rows))
		for i, r := range c.Rows {
			out.Rows[i] = Row{Name: r.Name, Penalty: r.Penalty}
			if r.Data != nil {
				out.Rows[i].Data = append([]Cell(nil), r.Data...)
			}
		}
	}
	return out
}

var (
	DefaultHeaders  = []string{"Column 1", "Column 2", "Column 3"}
	DefaultRowNames = []string{"Player 1", "Player 2", "Player 3"}
)

// NewDefaultChart builds the chart used for new charts: three generic columns
// and three players with empty penalties and cells.
func NewDefaultChart(id, name string) Chart {
	c := Chart{
		ID:      id,
		Name:    name,
		Headers: append([]string(nil), DefaultHeaders...),
		Rows:    make([]Row, 0, len(DefaultRowNames)),
	}
	for _, n := range DefaultRowNames {
		c.Rows = append(c.Rows, Row{Name: n, Data: make([]Cell, len(c.Headers))})
	}
	return c
}
