package core

import "sort"

// GridState is the authoritative board. Every cell in [0,W)x[0,H) maps to
// exactly one Entity; cells are stored row-major with row 0 first.
type GridState struct {
	w       int
	h       int
	cells   []Entity
	pending map[Cell]struct{}
}

// NewGridState creates a grid with every cell empty.
func NewGridState(w, h int) *GridState {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &GridState{
		w:       w,
		h:       h,
		cells:   make([]Entity, w*h),
		pending: make(map[Cell]struct{}),
	}
}

// Width returns the number of columns.
func (g *GridState) Width() int { return g.w }

// Height returns the number of rows.
func (g *GridState) Height() int { return g.h }

func (g *GridState) index(c Cell) int {
	return c.Y*g.w + c.X
}

// InBounds reports whether c addresses a cell of the grid.
func (g *GridState) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.w && c.Y >= 0 && c.Y < g.h
}

func (g *GridState) boundsErr(c Cell) error {
	return &BoundsError{Cell: c, Width: g.w, Height: g.h}
}

// Get returns the occupant of c.
func (g *GridState) Get(c Cell) (Entity, error) {
	if !g.InBounds(c) {
		return Entity{}, g.boundsErr(c)
	}
	return g.cells[g.index(c)], nil
}

// Set stores e at c. Storing a non-empty entity removes c from the
// pending-empties set.
func (g *GridState) Set(c Cell, e Entity) error {
	if !g.InBounds(c) {
		return g.boundsErr(c)
	}
	g.cells[g.index(c)] = e
	if e.IsEmpty() {
		g.pending[c] = struct{}{}
	} else {
		delete(g.pending, c)
	}
	return nil
}

// Clear empties c and records it as pending refill.
func (g *GridState) Clear(c Cell) error {
	return g.Set(c, Empty())
}

// MustGet is Get for callers that have already checked bounds.
// It panics with a *BoundsError otherwise.
func (g *GridState) MustGet(c Cell) Entity {
	e, err := g.Get(c)
	if err != nil {
		panic(err)
	}
	return e
}

// MustSet is Set for callers that have already checked bounds.
func (g *GridState) MustSet(c Cell, e Entity) {
	if err := g.Set(c, e); err != nil {
		panic(err)
	}
}

// At returns the occupant of c, or Empty for cells outside the grid.
func (g *GridState) At(c Cell) Entity {
	if !g.InBounds(c) {
		return Empty()
	}
	return g.cells[g.index(c)]
}

// AllCells returns every cell, row by row from the bottom.
func (g *GridState) AllCells() []Cell {
	cells := make([]Cell, 0, g.w*g.h)
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			cells = append(cells, C(x, y))
		}
	}
	return cells
}

// AllOccupiedCells returns every non-empty cell in AllCells order.
func (g *GridState) AllOccupiedCells() []Cell {
	cells := make([]Cell, 0, len(g.cells))
	for i, e := range g.cells {
		if !e.IsEmpty() {
			cells = append(cells, C(i%g.w, i/g.w))
		}
	}
	return cells
}

// PendingEmpties returns the cells cleared since the last reset, sorted
// column-then-row.
func (g *GridState) PendingEmpties() []Cell {
	cells := make([]Cell, 0, len(g.pending))
	for c := range g.pending {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].X != cells[j].X {
			return cells[i].X < cells[j].X
		}
		return cells[i].Y < cells[j].Y
	})
	return cells
}

// ResetPendingEmpties forgets the pending-empties set.
func (g *GridState) ResetPendingEmpties() {
	clear(g.pending)
}

// EmptyCount returns the number of empty cells.
func (g *GridState) EmptyCount() int {
	n := 0
	for _, e := range g.cells {
		if e.IsEmpty() {
			n++
		}
	}
	return n
}

// ObstacleCensus counts the obstacles of each kind on the board.
func (g *GridState) ObstacleCensus() map[ObstacleKind]int {
	counts := make(map[ObstacleKind]int)
	for _, e := range g.cells {
		if e.IsObstacle() {
			counts[e.Obstacle]++
		}
	}
	return counts
}

// Codes returns the type code of every cell in AllCells order.
func (g *GridState) Codes() []string {
	codes := make([]string, len(g.cells))
	for i, e := range g.cells {
		codes[i] = e.Code()
	}
	return codes
}
