package core

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
)

// State is the lifecycle of a level.
type State int

const (
	// StateIdle means no action is in flight.
	StateIdle State = iota
	// StateRunning means an admitted action is still cascading.
	StateRunning
	StateCompleted
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the level has ended.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateFailed
}

// ActionKind is the type of a player action.
type ActionKind int

const (
	ActionCubeSelection ActionKind = iota
	ActionRocketActivation
)

func (k ActionKind) String() string {
	if k == ActionRocketActivation {
		return "rocket"
	}
	return "cubes"
}

// Action is a queued player input.
type Action struct {
	Kind ActionKind
	Cell Cell
}

// Options configures a TurnSequencer.
type Options struct {
	Seed   int64
	Timing Timing
	Logger *log.Logger
	Sink   SignalSink
}

// TurnSequencer serializes player actions. One action cascades at a time;
// the next queued action is admitted only after the board has settled.
// The move budget is spent when an action is admitted, and win or loss is
// decided only once that action has settled.
type TurnSequencer struct {
	grid    *GridState
	finder  *GroupFinder
	gravity *GravityResolver
	refill  *Refiller
	damage  *Damager
	engine  *ExplosionEngine
	goals   *GoalTracker

	rng    *rand.Rand
	logger *log.Logger
	sink   SignalSink
	timing Timing

	state     State
	moves     int
	queue     []Action
	current   *cascade
	goalsDone bool
	tick      uint64
	admitted  int
}

// NewTurnSequencer wires the simulation around grid with a budget of moves.
// The grid is used in place.
func NewTurnSequencer(grid *GridState, moves int, opts Options) *TurnSequencer {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if moves < 0 {
		moves = 0
	}

	s := &TurnSequencer{
		grid:   grid,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		logger: logger,
		sink:   opts.Sink,
		timing: opts.Timing,
		moves:  moves,
	}
	s.finder = NewGroupFinder(grid)
	s.gravity = NewGravityResolver(grid, logger)
	s.refill = NewRefiller(grid, s.rng)
	s.goals = NewGoalTracker(s.emit)
	s.goals.OnComplete = func() { s.goalsDone = true }
	s.damage = NewDamager(grid, s.goals)
	s.engine = NewExplosionEngine(grid, s.damage, logger)

	s.goals.Initialize(grid)
	grid.ResetPendingEmpties()
	s.emit(MovesUpdated{Remaining: s.moves})
	s.emit(RocketHint{Cells: s.finder.RocketEligibleCells()})

	if s.moves == 0 {
		s.arbitrate()
	}
	return s
}

func (s *TurnSequencer) emit(sig Signal) {
	if s.sink != nil {
		s.sink(sig)
	}
}

// Submit queues an action. It returns false when the level has ended or
// the move budget is already spent.
func (s *TurnSequencer) Submit(a Action) bool {
	if s.state.Terminal() || s.moves == 0 {
		return false
	}
	s.queue = append(s.queue, a)
	return true
}

// SubmitCubeSelection queues a selection of the group at c.
func (s *TurnSequencer) SubmitCubeSelection(c Cell) bool {
	return s.Submit(Action{Kind: ActionCubeSelection, Cell: c})
}

// SubmitRocketActivation queues activation of the rocket at c.
func (s *TurnSequencer) SubmitRocketActivation(c Cell) bool {
	return s.Submit(Action{Kind: ActionRocketActivation, Cell: c})
}

// SubmitSelection queues the action matching the current occupant of c.
func (s *TurnSequencer) SubmitSelection(c Cell) bool {
	if s.grid.At(c).IsRocket() {
		return s.SubmitRocketActivation(c)
	}
	return s.SubmitCubeSelection(c)
}

// Tick advances the simulation by one step: it admits the next queued
// action when nothing is in flight, then polls the active cascade.
func (s *TurnSequencer) Tick() {
	s.tick++
	if s.state.Terminal() {
		return
	}
	if s.current == nil {
		s.admitNext()
		if s.current == nil {
			return
		}
	}
	s.current.Step()
	if s.current.Done() {
		s.current = nil
		s.settle()
	}
}

// admitNext starts the first queued action that changes the board.
// Selections that would do nothing are dropped without spending a move.
func (s *TurnSequencer) admitNext() {
	for len(s.queue) > 0 {
		if s.moves == 0 {
			s.queue = nil
			return
		}
		a := s.queue[0]
		s.queue = s.queue[1:]

		phase, ok := s.validate(a)
		if !ok {
			s.logger.Debug("selection ignored", "action", a.Kind, "cell", a.Cell)
			continue
		}

		s.moves--
		s.admitted++
		s.emit(MovesUpdated{Remaining: s.moves})
		s.state = StateRunning
		s.current = &cascade{s: s, phase: phase}
		s.apply(a)
		return
	}
}

func (s *TurnSequencer) validate(a Action) (Phase, bool) {
	e, err := s.grid.Get(a.Cell)
	if err != nil {
		return PhaseNone, false
	}
	switch a.Kind {
	case ActionCubeSelection:
		if !e.IsBlock() || !IsClearable(s.finder.FindGroup(a.Cell)) {
			return PhaseNone, false
		}
		return PhaseFall, true
	case ActionRocketActivation:
		if !e.IsRocket() {
			return PhaseNone, false
		}
		return PhaseExplode, true
	}
	return PhaseNone, false
}

func (s *TurnSequencer) apply(a Action) {
	s.engine.Begin()
	switch a.Kind {
	case ActionCubeSelection:
		s.clearGroup(a.Cell)
	case ActionRocketActivation:
		//nolint:errcheck // validated above
		s.engine.Activate(a.Cell)
		s.emit(GridChanged{Cleared: []Cell{a.Cell}})
	}
}

// clearGroup removes the group at origin, leaves a rocket at origin for
// large groups and sends adjacency damage to neighboring obstacles.
func (s *TurnSequencer) clearGroup(origin Cell) {
	group := s.finder.FindGroup(origin)
	blast := s.damage.NextBlast()
	for _, c := range group {
		s.grid.MustSet(c, Empty())
	}
	if SpawnsRocket(group) {
		o := RandomOrientation(s.rng)
		s.grid.MustSet(origin, NewRocket(o))
		s.logger.Debug("rocket spawned", "cell", origin, "orientation", o, "group", len(group))
	}
	s.damage.NotifyBlast(blast, group)
	s.emit(GridChanged{Cleared: clearedCells(group, origin)})
}

// clearedCells is the group without origin when origin now holds a rocket.
func clearedCells(group Group, origin Cell) []Cell {
	if !SpawnsRocket(group) {
		return group
	}
	out := make([]Cell, 0, len(group)-1)
	for _, c := range group {
		if c != origin {
			out = append(out, c)
		}
	}
	return out
}

func (s *TurnSequencer) settle() {
	s.logger.Debug("action settled", "combos", s.engine.Combos(), "moves_left", s.moves)
	s.emit(RocketHint{Cells: s.finder.RocketEligibleCells()})
	s.arbitrate()
}

// arbitrate ends the level when goals are done or the budget is spent.
// A final move that also clears the last goal completes the level.
func (s *TurnSequencer) arbitrate() {
	switch {
	case s.goalsDone:
		s.finish(StateCompleted)
	case s.moves == 0 && s.goals.AllGoalsCleared():
		s.finish(StateCompleted)
	case s.moves == 0:
		s.finish(StateFailed)
	default:
		s.state = StateIdle
	}
}

func (s *TurnSequencer) finish(st State) {
	s.state = st
	s.queue = nil
	if st == StateCompleted {
		s.logger.Info("level completed", "moves_left", s.moves, "actions", s.admitted)
		s.emit(LevelCompleted{MovesLeft: s.moves})
		return
	}
	s.logger.Info("level failed", "remaining", s.goals.Remaining(), "actions", s.admitted)
	s.emit(LevelFailed{Remaining: s.goals.Remaining()})
}

// RunUntilSettled ticks until nothing is queued or in flight, or the level
// ends, or maxTicks is reached. It returns the number of ticks taken.
func (s *TurnSequencer) RunUntilSettled(maxTicks int) int {
	n := 0
	for n < maxTicks && s.Busy() && !s.state.Terminal() {
		s.Tick()
		n++
	}
	return n
}

// Stuck reports whether the level is waiting for input that cannot come:
// moves remain but the board has neither a clearable group nor a rocket.
func (s *TurnSequencer) Stuck() bool {
	return s.state == StateIdle && !s.Busy() && s.moves > 0 && !s.finder.HasAnyMove()
}

// Busy reports whether an action is queued or cascading.
func (s *TurnSequencer) Busy() bool {
	return s.current != nil || len(s.queue) > 0
}

// State returns the lifecycle state.
func (s *TurnSequencer) State() State { return s.state }

// MovesLeft returns the remaining move budget.
func (s *TurnSequencer) MovesLeft() int { return s.moves }

// Admitted returns how many actions have been admitted.
func (s *TurnSequencer) Admitted() int { return s.admitted }

// QueueLen returns the number of queued actions.
func (s *TurnSequencer) QueueLen() int { return len(s.queue) }

// Ticks returns the number of Tick calls so far.
func (s *TurnSequencer) Ticks() uint64 { return s.tick }

// Grid returns the board.
func (s *TurnSequencer) Grid() *GridState { return s.grid }

// Goals returns the goal tracker.
func (s *TurnSequencer) Goals() *GoalTracker { return s.goals }

// Finder returns the group finder over the board.
func (s *TurnSequencer) Finder() *GroupFinder { return s.finder }

// Projectiles returns the projectiles in flight.
func (s *TurnSequencer) Projectiles() []Projectile { return s.engine.Projectiles() }

// Phase returns the stage of the cascade in flight, or PhaseNone.
func (s *TurnSequencer) Phase() Phase {
	if s.current == nil {
		return PhaseNone
	}
	return s.current.phase
}
