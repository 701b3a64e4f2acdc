package core

import "math/rand"

// Refiller spawns random blocks into empty cells once gravity has settled.
type Refiller struct {
	grid *GridState
	rng  *rand.Rand
}

// NewRefiller creates a refiller drawing colors from rng.
func NewRefiller(g *GridState, rng *rand.Rand) *Refiller {
	return &Refiller{grid: g, rng: rng}
}

// Fill places a random block in every empty cell, column by column from the
// bottom, and returns the filled cells in that order.
func (f *Refiller) Fill() []Cell {
	var filled []Cell
	for x := 0; x < f.grid.Width(); x++ {
		for y := 0; y < f.grid.Height(); y++ {
			c := C(x, y)
			if !f.grid.At(c).IsEmpty() {
				continue
			}
			f.grid.MustSet(c, Block(RandomColor(f.rng)))
			filled = append(filled, c)
		}
	}
	f.grid.ResetPendingEmpties()
	return filled
}

// RandomColor picks a block color uniformly.
func RandomColor(rng *rand.Rand) Color {
	return Colors[rng.Intn(len(Colors))]
}

// RandomOrientation picks a rocket axis with equal odds.
func RandomOrientation(rng *rand.Rand) Orientation {
	if rng.Intn(2) == 0 {
		return Horizontal
	}
	return Vertical
}
