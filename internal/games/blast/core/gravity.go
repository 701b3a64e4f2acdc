package core

import (
	"io"

	"github.com/charmbracelet/log"
)

// MaxGravityPasses bounds the passes made over a single column.
const MaxGravityPasses = 10

// Move records one entity dropping from one cell to another.
type Move struct {
	From   Cell
	To     Cell
	Entity Entity
}

// GravityResolver compacts columns after removals.
type GravityResolver struct {
	grid   *GridState
	logger *log.Logger
}

// NewGravityResolver creates a resolver over g. A nil logger discards output.
func NewGravityResolver(g *GridState, logger *log.Logger) *GravityResolver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &GravityResolver{grid: g, logger: logger}
}

// Resolve drops every fallable entity onto the nearest support below it.
// Columns are scanned bottom to top; each empty cell pulls the closest
// fallable entity above it, and the search stops at the first obstacle that
// cannot fall. A column is rescanned until a pass moves nothing or
// MaxGravityPasses is reached, in which case the grid is accepted as is and
// capped is true.
func (r *GravityResolver) Resolve() (moves []Move, capped bool) {
	for x := 0; x < r.grid.Width(); x++ {
		settled := false
		for pass := 0; pass < MaxGravityPasses; pass++ {
			colMoves := r.pass(x)
			moves = append(moves, colMoves...)
			if len(colMoves) == 0 {
				settled = true
				break
			}
		}
		if !settled {
			capped = true
			r.logger.Warn("gravity pass cap reached", "column", x, "passes", MaxGravityPasses)
		}
	}
	return moves, capped
}

// pass makes one bottom-to-top sweep of column x.
func (r *GravityResolver) pass(x int) []Move {
	var moves []Move
	h := r.grid.Height()
	for y := 0; y < h; y++ {
		dst := C(x, y)
		if !r.grid.At(dst).IsEmpty() {
			continue
		}
		for above := y + 1; above < h; above++ {
			src := C(x, above)
			e := r.grid.At(src)
			if e.IsEmpty() {
				continue
			}
			if !e.CanFall() {
				break
			}
			r.grid.MustSet(dst, e)
			r.grid.MustSet(src, Empty())
			moves = append(moves, Move{From: src, To: dst, Entity: e})
			break
		}
	}
	return moves
}

// Settled reports whether no fallable entity has a reachable empty cell
// below it.
func (r *GravityResolver) Settled() bool {
	for x := 0; x < r.grid.Width(); x++ {
		hole := false
		for y := 0; y < r.grid.Height(); y++ {
			e := r.grid.At(C(x, y))
			switch {
			case e.IsEmpty():
				hole = true
			case !e.CanFall():
				hole = false
			case hole:
				return false
			}
		}
	}
	return true
}
