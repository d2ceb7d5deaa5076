package model

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestPenaltyState_NextCycles(t *testing.T) {
	t.Parallel()

	p := PenaltyEmpty
	if got := p.Next(); got != PenaltyYellow {
		t.Fatalf("expected yellow after one step; got %s", got)
	}
	for i := 0; i < 4; i++ {
		p = p.Next()
	}
	if p != PenaltyEmpty {
		t.Fatalf("expected empty after four steps; got %s", p)
	}
}

func TestParseMark_AcceptsGlyphsAndNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Mark
		ok   bool
	}{
		{in: "", want: MarkNone, ok: true},
		{in: "✅", want: MarkTick, ok: true},
		{in: "cross", want: MarkCross, ok: true},
		{in: "Question", want: MarkQuestion, ok: true},
		{in: "star", want: MarkNone, ok: false},
	}
	for _, tt := range tests {
		got, ok := ParseMark(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("ParseMark(%q) = (%v, %v); want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestChartJSON_MatchesPersistedLayout(t *testing.T) {
	t.Parallel()

	c := NewDefaultChart("chart-1-1", "Chart 1")
	c.Rows[0].Penalty[1] = PenaltyOrange
	c.Rows[0].Data[2] = Cell{Mark: MarkTick, Background: BackgroundDiagonal}

	b, err := json.Marshal(c)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`"name":"Chart 1"`,
		`"penalty":["empty","orange"]`,
		`{"mark":null,"bgClass":null}`,
		`{"mark":"✅","bgClass":"bg-diagonal-lines"}`,
	} {
		if !strings.Contains(s, want) {
			t.Fatalf("expected %s in %s", want, s)
		}
	}
	if strings.Contains(s, "chart-1-1") {
		t.Fatalf("id must not be part of the persisted value: %s", s)
	}

	got := Chart{ID: c.ID}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(c, got) {
		t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", c, got)
	}
}

func TestRowJSON_ToleratesMissingAndUnknownValues(t *testing.T) {
	t.Parallel()

	var r Row
	if err := json.Unmarshal([]byte(`{"name":"A","penalty":["red"],"data":[{"mark":"tick","bgClass":"bg-nope"}]}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Penalty != [PenaltySlots]PenaltyState{PenaltyRed, PenaltyEmpty} {
		t.Fatalf("unexpected penalty: %v", r.Penalty)
	}
	if len(r.Data) != 1 || r.Data[0].Mark != MarkTick || r.Data[0].Background != BackgroundNone {
		t.Fatalf("unexpected data: %#v", r.Data)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	t.Parallel()

	c := NewDefaultChart("chart-1-1", "Chart 1")
	cp := c.Clone()
	cp.Headers[0] = "changed"
	cp.Rows[1].Data[1].Mark = MarkCross
	cp.Rows[2].Penalty[0] = PenaltyRed

	if c.Headers[0] != "Column 1" || c.Rows[1].Data[1].Mark != MarkNone || c.Rows[2].Penalty[0] != PenaltyEmpty {
		t.Fatalf("clone aliases the original: %#v", c)
	}
}

func TestNormalize_RepairsRowWidths(t *testing.T) {
	t.Parallel()

	c := Chart{
		Headers: []string{"a", "b"},
		Rows: []Row{
			{Name: "short", Data: []Cell{{Mark: MarkTick}}},
			{Name: "long", Data: []Cell{{}, {}, {}}},
		},
	}
	if err := c.Validate(); err == nil {
		t.Fatalf("expected validate error before normalize")
	}
	if !c.Normalize() {
		t.Fatalf("expected normalize to report a change")
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate after normalize: %v", err)
	}
	if c.Rows[0].Data[0].Mark != MarkTick {
		t.Fatalf("normalize must keep existing cells")
	}
}

func TestParseCellRef(t *testing.T) {
	t.Parallel()

	got, err := ParseCellRef(" 2, 1 ")
	if err != nil {
		t.Fatalf("ParseCellRef: %v", err)
	}
	if got != (CellRef{Row: 2, Col: 1}) {
		t.Fatalf("unexpected ref: %v", got)
	}
	for _, in := range []string{"2", "1x,2", "1,2abc", "1x,2abc", ",", "a,b"} {
		if _, err := ParseCellRef(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
