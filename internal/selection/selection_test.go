package selection

import (
	"reflect"
	"testing"

	"tracker-cli/internal/model"
)

var threeByThree = Bounds{Rows: 3, Cols: 3}

func ref(r, c int) model.CellRef { return model.CellRef{Row: r, Col: c} }

func TestTracker_SingleModeReplaces(t *testing.T) {
	t.Parallel()

	tr := New(Single)
	tr.Request(ref(0, 0), threeByThree)
	tr.Request(ref(1, 2), threeByThree)

	if got, want := tr.Cells(), []model.CellRef{ref(1, 2)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestTracker_MultiModeToggles(t *testing.T) {
	t.Parallel()

	tr := New(Multi)
	tr.Request(ref(0, 0), threeByThree)
	tr.Request(ref(2, 1), threeByThree)
	tr.Request(ref(0, 0), threeByThree)

	if got, want := tr.Cells(), []model.CellRef{ref(2, 1)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestTracker_RejectsNonDataCells(t *testing.T) {
	t.Parallel()

	tr := New(Multi)
	for _, r := range []model.CellRef{ref(-1, 0), ref(0, -1), ref(3, 0), ref(0, 3)} {
		if tr.Request(r, threeByThree) {
			t.Fatalf("expected %v to be rejected", r)
		}
	}
	if tr.Len() != 0 {
		t.Fatalf("expected empty selection; got %v", tr.Cells())
	}
}

func TestTracker_SelectColumn(t *testing.T) {
	t.Parallel()

	tr := New(Single)
	if tr.SelectColumn(threeByThree) {
		t.Fatalf("expected no-op on empty selection")
	}
	tr.Request(ref(2, 1), threeByThree)
	if !tr.SelectColumn(threeByThree) {
		t.Fatalf("expected SelectColumn to apply")
	}
	want := []model.CellRef{ref(0, 1), ref(1, 1), ref(2, 1)}
	if got := tr.Cells(); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestTracker_SelectColumnUsesFirstSelected(t *testing.T) {
	t.Parallel()

	tr := New(Multi)
	tr.Request(ref(1, 2), threeByThree)
	tr.Request(ref(0, 0), threeByThree)
	tr.SelectColumn(threeByThree)
	for _, c := range tr.Cells() {
		if c.Col != 2 {
			t.Fatalf("expected column 2 only; got %v", tr.Cells())
		}
	}
}

func TestTracker_SetModeClears(t *testing.T) {
	t.Parallel()

	tr := New(Multi)
	tr.Request(ref(0, 0), threeByThree)
	tr.Request(ref(1, 1), threeByThree)
	tr.SetMode(Single)
	if tr.Len() != 0 || tr.Mode() != Single {
		t.Fatalf("expected cleared single-mode selection; got %v (%s)", tr.Cells(), tr.Mode())
	}
}

func TestTracker_Prune(t *testing.T) {
	t.Parallel()

	tr := New(Multi)
	tr.Request(ref(0, 0), threeByThree)
	tr.Request(ref(2, 2), threeByThree)
	tr.Prune(Bounds{Rows: 2, Cols: 3})
	if got, want := tr.Cells(), []model.CellRef{ref(0, 0)}; !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	if m, err := ParseMode("MULTI"); err != nil || m != Multi {
		t.Fatalf("ParseMode(MULTI) = %v, %v", m, err)
	}
	if _, err := ParseMode("lasso"); err == nil {
		t.Fatalf("expected error")
	}
}
