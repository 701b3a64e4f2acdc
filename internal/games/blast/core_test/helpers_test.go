package core_test

import (
	"strings"
	"testing"

	"github.com/vovakirdan/cube-blast/internal/games/blast/core"
)

// entityFor maps a board token to an entity. "." is empty.
func entityFor(t *testing.T, tok string) core.Entity {
	t.Helper()
	switch tok {
	case ".":
		return core.Empty()
	case "r":
		return core.Block(core.ColorRed)
	case "g":
		return core.Block(core.ColorGreen)
	case "b":
		return core.Block(core.ColorBlue)
	case "y":
		return core.Block(core.ColorYellow)
	case "bo":
		return core.NewObstacle(core.ObstacleBox)
	case "s":
		return core.NewObstacle(core.ObstacleStone)
	case "v":
		return core.NewObstacle(core.ObstacleVase)
	case "hro":
		return core.NewRocket(core.Horizontal)
	case "vro":
		return core.NewRocket(core.Vertical)
	}
	t.Fatalf("unknown token %q", tok)
	return core.Empty()
}

// gridFromRows builds a grid from whitespace-separated rows listed top row
// first, so the picture reads the way it is drawn.
func gridFromRows(t *testing.T, rows ...string) *core.GridState {
	t.Helper()
	h := len(rows)
	w := len(strings.Fields(rows[0]))
	g := core.NewGridState(w, h)
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) != w {
			t.Fatalf("row %d has %d cells, want %d", i, len(fields), w)
		}
		y := h - 1 - i
		for x, tok := range fields {
			g.MustSet(core.C(x, y), entityFor(t, tok))
		}
	}
	g.ResetPendingEmpties()
	return g
}

// uniformGrid fills a w by h grid with one token.
func uniformGrid(t *testing.T, w, h int, tok string) *core.GridState {
	t.Helper()
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.TrimSpace(strings.Repeat(tok+" ", w))
	}
	return gridFromRows(t, rows...)
}

func code(g *core.GridState, x, y int) string {
	return g.At(core.C(x, y)).Code()
}

func countRockets(g *core.GridState) int {
	n := 0
	for _, c := range g.AllOccupiedCells() {
		if g.At(c).IsRocket() {
			n++
		}
	}
	return n
}
