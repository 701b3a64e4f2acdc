package core

const (
	// MinGroupSize is the smallest clearable group.
	MinGroupSize = 2
	// RocketGroupSize is the smallest group that leaves a rocket behind.
	RocketGroupSize = 4
)

// Group is a set of same-colored, 4-connected cells.
type Group []Cell

// IsClearable reports whether the group is large enough to clear.
func IsClearable(gr Group) bool {
	return len(gr) >= MinGroupSize
}

// SpawnsRocket reports whether clearing the group leaves a rocket.
func SpawnsRocket(gr Group) bool {
	return len(gr) >= RocketGroupSize
}

// GroupFinder answers connectivity queries over a grid.
type GroupFinder struct {
	grid *GridState
}

// NewGroupFinder creates a finder over g.
func NewGroupFinder(g *GridState) *GroupFinder {
	return &GroupFinder{grid: g}
}

// FindGroup returns the maximal group containing origin, in breadth-first
// order starting at origin. The group is empty if origin is not a block.
func (f *GroupFinder) FindGroup(origin Cell) Group {
	start := f.grid.At(origin)
	if !start.IsBlock() {
		return nil
	}
	return f.flood(origin, start.Color, make(map[Cell]bool))
}

func (f *GroupFinder) flood(origin Cell, color Color, visited map[Cell]bool) Group {
	group := Group{origin}
	visited[origin] = true
	for i := 0; i < len(group); i++ {
		for _, n := range group[i].Neighbors() {
			if visited[n] {
				continue
			}
			e := f.grid.At(n)
			if !f.grid.InBounds(n) || !e.IsBlock() || e.Color != color {
				continue
			}
			visited[n] = true
			group = append(group, n)
		}
	}
	return group
}

// Groups partitions all blocks into maximal groups, visiting each cell once.
func (f *GroupFinder) Groups() []Group {
	visited := make(map[Cell]bool)
	var groups []Group
	for _, c := range f.grid.AllCells() {
		if visited[c] {
			continue
		}
		e := f.grid.At(c)
		if !e.IsBlock() {
			continue
		}
		groups = append(groups, f.flood(c, e.Color, visited))
	}
	return groups
}

// RocketEligibleCells returns the union of every group large enough to
// spawn a rocket. It only drives the hint overlay.
func (f *GroupFinder) RocketEligibleCells() map[Cell]bool {
	cells := make(map[Cell]bool)
	for _, gr := range f.Groups() {
		if !SpawnsRocket(gr) {
			continue
		}
		for _, c := range gr {
			cells[c] = true
		}
	}
	return cells
}

// HasAnyMove reports whether the board offers a clearable group or a rocket.
func (f *GroupFinder) HasAnyMove() bool {
	for _, c := range f.grid.AllOccupiedCells() {
		if f.grid.At(c).IsRocket() {
			return true
		}
	}
	for _, gr := range f.Groups() {
		if IsClearable(gr) {
			return true
		}
	}
	return false
}

// LargestGroup returns the biggest clearable group, preferring the lowest
// row-major origin on ties. It returns nil when no group is clearable.
func (f *GroupFinder) LargestGroup() Group {
	var best Group
	for _, gr := range f.Groups() {
		if IsClearable(gr) && len(gr) > len(best) {
			best = gr
		}
	}
	return best
}
