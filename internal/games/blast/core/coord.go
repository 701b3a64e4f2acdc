// Package core holds the grid simulation for Cube Blast: board state, group
// detection, gravity, refill, rocket explosions, goals and the turn sequencer.
// It has no terminal or storage dependencies.
package core

import "fmt"

// Cell is a grid address. Row 0 is the bottom row and Y grows upward,
// so gravity pulls toward smaller Y.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by (dx, dy).
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the neighboring cell in direction d.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Neighbors returns the four orthogonal neighbors in Up, Right, Down, Left order.
// Some of them may be outside the grid.
func (c Cell) Neighbors() [4]Cell {
	return [4]Cell{c.Step(DirUp), c.Step(DirRight), c.Step(DirDown), c.Step(DirLeft)}
}

// Dir is one of the four axis directions.
type Dir int

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// Delta returns the unit offset for the direction.
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, 1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, -1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "?"
	}
}
