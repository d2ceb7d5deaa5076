package view

import (
	"reflect"
	"testing"

	"tracker-cli/internal/model"
)

func sampleChart() model.Chart {
	c := model.NewDefaultChart("chart-9-9", "Finals")
	c.Rows[0].Penalty = [model.PenaltySlots]model.PenaltyState{model.PenaltyYellow, model.PenaltyRed}
	c.Rows[1].Penalty[1] = model.PenaltyOrange
	c.Rows[0].Data[0] = model.Cell{Mark: model.MarkTick, Background: model.BackgroundLightGreen}
	c.Rows[1].Data[2] = model.Cell{Background: model.BackgroundDiagonal}
	c.Rows[2].Data[1] = model.Cell{Mark: model.MarkQuestion}
	return c
}

func TestSerializeMaterialize_RoundTrip(t *testing.T) {
	t.Parallel()

	charts := []model.Chart{
		sampleChart(),
		model.NewDefaultChart("chart-1-1", "Chart 1"),
		{ID: "chart-2-2", Name: "empty", Headers: []string{}, Rows: []model.Row{}},
	}
	for _, c := range charts {
		got := Serialize(Materialize(c))
		if !reflect.DeepEqual(c, got) {
			t.Fatalf("roundtrip mismatch:\nwant: %#v\ngot:  %#v", c, got)
		}
	}
}

func TestSerialize_TrimsNames(t *testing.T) {
	t.Parallel()

	doc := Materialize(sampleChart())
	doc.Title = "  Finals  "
	doc.Headers[0] = " Column 1\n"
	doc.Rows[1].Name = "\tPlayer 2 "

	if got := Serialize(doc); !reflect.DeepEqual(got, sampleChart()) {
		t.Fatalf("expected whitespace to be trimmed; got %#v", got)
	}
}

func TestMaterialize_Classes(t *testing.T) {
	t.Parallel()

	doc := Materialize(sampleChart())
	cell := doc.Rows[0].Cells[0]
	if !cell.HasClass(ClassDataCell) || !cell.HasClass("bg-lightgreen") || cell.Mark != "✅" {
		t.Fatalf("unexpected cell view %#v", cell)
	}
	if got := doc.Rows[0].Penalty[1].Classes; !reflect.DeepEqual(got, []string{ClassCardSlot, "card-red"}) {
		t.Fatalf("unexpected slot classes %v", got)
	}
	if got := doc.Rows[2].Penalty[0].Classes; !reflect.DeepEqual(got, []string{ClassCardSlot}) {
		t.Fatalf("empty slot must carry no card class; got %v", got)
	}
}

func TestSerialize_IgnoresUnknownClasses(t *testing.T) {
	t.Parallel()

	doc := Materialize(sampleChart())
	doc.Rows[2].Cells[2].Classes = append(doc.Rows[2].Cells[2].Classes, ClassSelected, "bg-unknown")
	got := Serialize(doc)
	if got.Rows[2].Data[2] != (model.Cell{}) {
		t.Fatalf("expected no background; got %#v", got.Rows[2].Data[2])
	}
}

func TestReadField(t *testing.T) {
	t.Parallel()

	doc := Materialize(sampleChart())
	tests := []struct {
		ref  FieldRef
		want string
	}{
		{ref: FieldRef{Kind: FieldTitle}, want: "Finals"},
		{ref: FieldRef{Kind: FieldHeader, Index: 2}, want: "Column 3"},
		{ref: FieldRef{Kind: FieldRowName, Index: 1}, want: "Player 2"},
	}
	for _, tt := range tests {
		got, err := ReadField(doc, tt.ref)
		if err != nil || got != tt.want {
			t.Fatalf("ReadField(%s) = %q, %v; want %q", tt.ref, got, err, tt.want)
		}
	}
	if _, err := ReadField(doc, FieldRef{Kind: FieldHeader, Index: 3}); err == nil {
		t.Fatalf("expected error for missing header")
	}
}

func TestWithSelection_MarksCellsWithoutTouchingInput(t *testing.T) {
	t.Parallel()

	c := sampleChart()
	doc := Materialize(c)
	sel := WithSelection(doc, []model.CellRef{{Row: 0, Col: 0}, {Row: 5, Col: 0}})

	if !sel.Rows[0].Cells[0].HasClass(ClassSelected) {
		t.Fatalf("expected selected class on 0,0: %v", sel.Rows[0].Cells[0].Classes)
	}
	if doc.Rows[0].Cells[0].HasClass(ClassSelected) {
		t.Fatalf("input document must not be modified")
	}
	if got := sel.Rows[0].Cells[0].Background(); got != model.BackgroundLightGreen {
		t.Fatalf("unexpected background %s", got)
	}
	if got := sel.Rows[0].Penalty[1].State(); got != model.PenaltyRed {
		t.Fatalf("unexpected slot state %s", got)
	}
	if !reflect.DeepEqual(Serialize(sel), c) {
		t.Fatalf("selection must not leak into the chart")
	}
}
