package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/cube-blast/internal/games/blast/core"
)

func TestGridBoundsError(t *testing.T) {
	g := core.NewGridState(3, 2)

	tests := []struct {
		name string
		cell core.Cell
	}{
		{"negative x", core.C(-1, 0)},
		{"negative y", core.C(0, -1)},
		{"x past width", core.C(3, 0)},
		{"y past height", core.C(0, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := g.Get(tc.cell)
			var be *core.BoundsError
			if !errors.As(err, &be) {
				t.Fatalf("Get(%v) error = %v, want BoundsError", tc.cell, err)
			}
			if be.Cell != tc.cell || be.Width != 3 || be.Height != 2 {
				t.Errorf("unexpected BoundsError contents: %+v", be)
			}
			if err := g.Set(tc.cell, core.Block(core.ColorRed)); !errors.As(err, &be) {
				t.Errorf("Set(%v) error = %v, want BoundsError", tc.cell, err)
			}
			if err := g.Clear(tc.cell); !errors.As(err, &be) {
				t.Errorf("Clear(%v) error = %v, want BoundsError", tc.cell, err)
			}
		})
	}
}

func TestGridMustGetPanics(t *testing.T) {
	g := core.NewGridState(2, 2)
	defer func() {
		r := recover()
		if _, ok := r.(*core.BoundsError); !ok {
			t.Errorf("recover() = %v, want *BoundsError", r)
		}
	}()
	g.MustGet(core.C(5, 5))
}

func TestGridStartsEmptyAndTotal(t *testing.T) {
	g := core.NewGridState(4, 3)
	cells := g.AllCells()
	if len(cells) != 12 {
		t.Fatalf("AllCells() len = %d, want 12", len(cells))
	}
	for _, c := range cells {
		e, err := g.Get(c)
		if err != nil {
			t.Fatalf("Get(%v) failed: %v", c, err)
		}
		if !e.IsEmpty() {
			t.Errorf("cell %v = %v, want empty", c, e.Kind)
		}
	}
	if cells[0] != core.C(0, 0) || cells[4] != core.C(0, 1) {
		t.Errorf("AllCells() should be row-major from the bottom, got %v", cells[:5])
	}
}

func TestGridClearRecordsPending(t *testing.T) {
	g := uniformGrid(t, 3, 3, "r")
	if len(g.PendingEmpties()) != 0 {
		t.Fatal("fresh grid should have no pending empties")
	}

	g.Clear(core.C(2, 1))
	g.Clear(core.C(0, 2))
	g.Clear(core.C(0, 0))

	got := g.PendingEmpties()
	want := []core.Cell{core.C(0, 0), core.C(0, 2), core.C(2, 1)}
	if len(got) != len(want) {
		t.Fatalf("PendingEmpties() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PendingEmpties()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	g.Set(core.C(0, 0), core.Block(core.ColorBlue))
	if len(g.PendingEmpties()) != 2 {
		t.Errorf("refilling a cell should drop it from pending, got %v", g.PendingEmpties())
	}

	g.ResetPendingEmpties()
	if len(g.PendingEmpties()) != 0 {
		t.Error("ResetPendingEmpties() should empty the set")
	}
}

func TestGridOccupiedAndCensus(t *testing.T) {
	g := gridFromRows(t,
		"r  .  v",
		"bo s  bo",
	)

	occupied := g.AllOccupiedCells()
	if len(occupied) != 5 {
		t.Errorf("AllOccupiedCells() len = %d, want 5", len(occupied))
	}
	for _, c := range occupied {
		if g.At(c).IsEmpty() {
			t.Errorf("occupied cell %v is empty", c)
		}
	}

	census := g.ObstacleCensus()
	if census[core.ObstacleBox] != 2 || census[core.ObstacleStone] != 1 || census[core.ObstacleVase] != 1 {
		t.Errorf("ObstacleCensus() = %v", census)
	}
	if g.EmptyCount() != 1 {
		t.Errorf("EmptyCount() = %d, want 1", g.EmptyCount())
	}
}

func TestEntityCodes(t *testing.T) {
	tests := []struct {
		entity core.Entity
		code   string
		falls  bool
	}{
		{core.Empty(), "", false},
		{core.Block(core.ColorRed), "r", true},
		{core.Block(core.ColorYellow), "y", true},
		{core.NewObstacle(core.ObstacleBox), "bo", false},
		{core.NewObstacle(core.ObstacleStone), "s", false},
		{core.NewObstacle(core.ObstacleVase), "v", true},
		{core.NewRocket(core.Horizontal), "hro", true},
		{core.NewRocket(core.Vertical), "vro", true},
	}

	for _, tc := range tests {
		if got := tc.entity.Code(); got != tc.code {
			t.Errorf("Code() = %q, want %q", got, tc.code)
		}
		if got := tc.entity.CanFall(); got != tc.falls {
			t.Errorf("%q CanFall() = %v, want %v", tc.code, got, tc.falls)
		}
	}

	if h := core.NewObstacle(core.ObstacleVase).Health; h != 2 {
		t.Errorf("vase health = %d, want 2", h)
	}
}
