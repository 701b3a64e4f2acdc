package core

// DamageType is the source of a hit.
type DamageType uint8

const (
	// DamageAdjacent comes from a block group cleared next to an obstacle.
	DamageAdjacent DamageType = iota
	// DamageRocket comes from a rocket projectile or a combo area.
	DamageRocket
)

func (t DamageType) String() string {
	if t == DamageRocket {
		return "rocket"
	}
	return "adjacent"
}

// BlastID tags one block-group clear. Zero means no blast.
type BlastID uint64

// Damager applies hits to the board and reports destroyed obstacles to the
// goal tracker.
type Damager struct {
	grid  *GridState
	goals *GoalTracker
	blast BlastID
}

// NewDamager creates a damager. goals may be nil.
func NewDamager(g *GridState, goals *GoalTracker) *Damager {
	return &Damager{grid: g, goals: goals}
}

// NextBlast allocates a new blast id.
func (d *Damager) NextBlast() BlastID {
	d.blast++
	return d.blast
}

// ApplyDamage hits the occupant of c and reports whether it was removed.
//
// Blocks and rockets are removed by rocket damage and ignore adjacency.
// Obstacles lose one health point when their kind accepts the damage type;
// a vase ignores a second adjacency hit carrying a blast id it has already
// seen. Rocket damage passes blast 0.
func (d *Damager) ApplyDamage(c Cell, t DamageType, blast BlastID) bool {
	e, err := d.grid.Get(c)
	if err != nil || e.IsEmpty() {
		return false
	}

	switch e.Kind {
	case KindBlock, KindRocket:
		if t != DamageRocket {
			return false
		}
		d.grid.MustSet(c, Empty())
		return true
	case KindObstacle:
		if !e.Obstacle.Accepts(t) {
			return false
		}
		if t == DamageAdjacent && e.Obstacle == ObstacleVase {
			if blast != 0 && e.lastBlast == blast {
				return false
			}
			e.lastBlast = blast
		}
		e.Health--
		if e.Health > 0 {
			d.grid.MustSet(c, e)
			return false
		}
		d.grid.MustSet(c, Empty())
		if d.goals != nil {
			d.goals.OnObstacleDestroyed(e.Obstacle)
		}
		return true
	}
	return false
}

// NotifyBlast sends adjacency damage from a cleared group to every
// neighboring obstacle, once per (cleared cell, neighbor) pair. Vases
// deduplicate by blast id; boxes do not.
func (d *Damager) NotifyBlast(blast BlastID, cleared []Cell) {
	for _, c := range cleared {
		for _, n := range c.Neighbors() {
			if d.grid.At(n).IsObstacle() {
				d.ApplyDamage(n, DamageAdjacent, blast)
			}
		}
	}
}
