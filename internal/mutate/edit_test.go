package mutate

import (
	"errors"
	"testing"

	"tracker-cli/internal/model"
)

func TestSetHeaderAndRowName_Trim(t *testing.T) {
	t.Parallel()

	c, err := SetHeader(testChart(), 2, "  Round 3 ")
	if err != nil {
		t.Fatalf("SetHeader: %v", err)
	}
	c, err = SetRowName(c, 0, "\tAlice\n")
	if err != nil {
		t.Fatalf("SetRowName: %v", err)
	}
	if c.Headers[2] != "Round 3" || c.Rows[0].Name != "Alice" {
		t.Fatalf("unexpected chart %#v", c)
	}
	if _, err := SetHeader(c, 3, "x"); err == nil {
		t.Fatalf("expected range error")
	}
}

func TestColumnEdits_KeepRowWidths(t *testing.T) {
	t.Parallel()

	c := AddColumn(testChart(), "Extra")
	if err := c.Validate(); err != nil {
		t.Fatalf("after AddColumn: %v", err)
	}
	if len(c.Headers) != 4 || c.Headers[3] != "Extra" {
		t.Fatalf("unexpected headers %v", c.Headers)
	}

	c.Rows[0].Data[2].Mark = model.MarkTick
	c.Rows[0].Data[3].Mark = model.MarkCross
	c, err := RemoveColumn(c, 2)
	if err != nil {
		t.Fatalf("RemoveColumn: %v", err)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("after RemoveColumn: %v", err)
	}
	if c.Rows[0].Data[2].Mark != model.MarkCross {
		t.Fatalf("expected later columns to shift left; got %#v", c.Rows[0].Data)
	}
}

func TestRemoveColumn_RefusesLastColumn(t *testing.T) {
	t.Parallel()

	c := model.Chart{Headers: []string{"only"}, Rows: []model.Row{{Data: []model.Cell{{}}}}}
	var re RangeError
	if _, err := RemoveColumn(c, 0); !errors.As(err, &re) {
		t.Fatalf("expected RangeError; got %v", err)
	}
}

func TestRowEdits(t *testing.T) {
	t.Parallel()

	c := AddRow(testChart(), " Player 4 ")
	if len(c.Rows) != 4 || c.Rows[3].Name != "Player 4" || len(c.Rows[3].Data) != 3 {
		t.Fatalf("unexpected new row %#v", c.Rows[3])
	}
	c, err := RemoveRow(c, 0)
	if err != nil {
		t.Fatalf("RemoveRow: %v", err)
	}
	if len(c.Rows) != 3 || c.Rows[0].Name != "Player 2" {
		t.Fatalf("unexpected rows after remove %#v", c.Rows)
	}
	one := model.Chart{Headers: []string{}, Rows: []model.Row{{Name: "x", Data: []model.Cell{}}}}
	if _, err := RemoveRow(one, 0); err == nil {
		t.Fatalf("expected refusal to remove the last row")
	}
}
