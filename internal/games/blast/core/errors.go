package core

import "fmt"

// BoundsError reports access to a cell outside the grid.
type BoundsError struct {
	Cell   Cell
	Width  int
	Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("core: cell %s outside %dx%d grid", e.Cell, e.Width, e.Height)
}
