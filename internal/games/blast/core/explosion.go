package core

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Projectile is a travelling rocket half.
type Projectile struct {
	Pos Cell
	Dir Dir
}

// comboSlot is one of the eight cells around a combo center and the
// outward directions it fires in.
type comboSlot struct {
	dx, dy int
	dirs   []Dir
}

var comboSlots = []comboSlot{
	{-1, 1, []Dir{DirUp, DirLeft}},
	{1, 1, []Dir{DirUp, DirRight}},
	{1, -1, []Dir{DirDown, DirRight}},
	{-1, -1, []Dir{DirDown, DirLeft}},
	{0, 1, []Dir{DirUp}},
	{1, 0, []Dir{DirRight}},
	{0, -1, []Dir{DirDown}},
	{-1, 0, []Dir{DirLeft}},
}

// ExplosionEngine runs rocket activations. Projectiles advance one cell per
// Step; the engine is settled when none remain.
type ExplosionEngine struct {
	grid        *GridState
	damage      *Damager
	logger      *log.Logger
	projectiles []Projectile
	activated   map[Cell]bool
	combos      int
}

// NewExplosionEngine creates an engine. A nil logger discards output.
func NewExplosionEngine(g *GridState, d *Damager, logger *log.Logger) *ExplosionEngine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &ExplosionEngine{
		grid:      g,
		damage:    d,
		logger:    logger,
		activated: make(map[Cell]bool),
	}
}

// Begin starts a new player action: every cell may activate once again.
func (e *ExplosionEngine) Begin() {
	clear(e.activated)
	e.projectiles = nil
	e.combos = 0
}

// Activate fires the rocket at c. A rocket with at least one orthogonal
// rocket neighbor fires as a combo. Cells that already activated during the
// current action are ignored.
func (e *ExplosionEngine) Activate(c Cell) error {
	ent, err := e.grid.Get(c)
	if err != nil {
		return err
	}
	if e.activated[c] {
		return nil
	}
	if !ent.IsRocket() {
		return fmt.Errorf("core: no rocket at %s", c)
	}
	e.activated[c] = true
	e.grid.MustSet(c, Empty())

	var partners []Cell
	for _, n := range c.Neighbors() {
		if e.grid.At(n).IsRocket() && !e.activated[n] {
			partners = append(partners, n)
		}
	}

	if len(partners) == 0 {
		e.fireSingle(c, ent.Orientation)
		return nil
	}
	e.fireCombo(c, partners)
	return nil
}

func (e *ExplosionEngine) fireSingle(c Cell, o Orientation) {
	if o == Vertical {
		e.spawn(c, DirDown)
		e.spawn(c, DirUp)
	} else {
		e.spawn(c, DirLeft)
		e.spawn(c, DirRight)
	}
	e.logger.Debug("rocket fired", "cell", c, "orientation", o)
}

func (e *ExplosionEngine) fireCombo(center Cell, partners []Cell) {
	e.combos++
	for _, p := range partners {
		e.activated[p] = true
		e.grid.MustSet(p, Empty())
	}

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			c := center.Add(dx, dy)
			if e.grid.InBounds(c) {
				e.damage.ApplyDamage(c, DamageRocket, 0)
			}
		}
	}

	for _, slot := range comboSlots {
		start := center.Add(slot.dx, slot.dy)
		if !e.grid.InBounds(start) {
			continue
		}
		for _, d := range slot.dirs {
			e.spawn(start, d)
		}
	}
	e.logger.Debug("rocket combo", "center", center, "partners", len(partners))
}

func (e *ExplosionEngine) spawn(at Cell, d Dir) {
	e.projectiles = append(e.projectiles, Projectile{Pos: at, Dir: d})
}

// Step advances every live projectile by one cell. A projectile leaving the
// grid is finished. One entering a rocket removes and activates it, then
// stops. Otherwise the occupant takes rocket damage and travel continues.
// Projectiles spawned by chain activations start moving on the next Step.
func (e *ExplosionEngine) Step() {
	moving := e.projectiles
	e.projectiles = nil

	survivors := make([]Projectile, 0, len(moving))
	for _, p := range moving {
		next := p.Pos.Step(p.Dir)
		if !e.grid.InBounds(next) {
			continue
		}
		if e.grid.At(next).IsRocket() && !e.activated[next] {
			//nolint:errcheck // next is in bounds and holds a rocket
			e.Activate(next)
			continue
		}
		e.damage.ApplyDamage(next, DamageRocket, 0)
		p.Pos = next
		survivors = append(survivors, p)
	}

	e.projectiles = append(survivors, e.projectiles...)
}

// Pending returns the number of live projectiles.
func (e *ExplosionEngine) Pending() int {
	return len(e.projectiles)
}

// Settled reports whether no projectile is in flight.
func (e *ExplosionEngine) Settled() bool {
	return len(e.projectiles) == 0
}

// Projectiles returns a copy of the live projectiles.
func (e *ExplosionEngine) Projectiles() []Projectile {
	out := make([]Projectile, len(e.projectiles))
	copy(out, e.projectiles)
	return out
}

// Combos returns the number of combos fired since Begin.
func (e *ExplosionEngine) Combos() int {
	return e.combos
}
