package core

// Task is cascading work polled once per tick until Done reports true.
type Task interface {
	Step()
	Done() bool
}

// Phase is the stage a cascade is in.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseExplode
	PhaseFall
	PhaseFill
	PhaseSettled
)

func (p Phase) String() string {
	switch p {
	case PhaseExplode:
		return "explode"
	case PhaseFall:
		return "fall"
	case PhaseFill:
		return "fill"
	case PhaseSettled:
		return "settled"
	default:
		return "none"
	}
}

// Timing sets how many ticks each cascade stage holds before the next one,
// letting a renderer show it. Zero values resolve a stage on the next tick.
type Timing struct {
	ProjectileStepTicks int
	FallTicks           int
	FillTicks           int
}

// cascade resolves one admitted action: projectiles until none remain, then
// gravity, then refill. Each Step does at most one unit of work.
type cascade struct {
	s     *TurnSequencer
	phase Phase
	hold  int
}

func (c *cascade) Done() bool {
	return c.phase == PhaseSettled && c.hold == 0
}

func (c *cascade) Step() {
	if c.hold > 0 {
		c.hold--
		return
	}

	s := c.s
	switch c.phase {
	case PhaseExplode:
		if s.engine.Settled() {
			c.phase = PhaseFall
			c.Step()
			return
		}
		s.engine.Step()
		s.emit(GridChanged{})
		c.hold = s.timing.ProjectileStepTicks
		if s.engine.Settled() {
			c.phase = PhaseFall
		}

	case PhaseFall:
		moves, capped := s.gravity.Resolve()
		if len(moves) > 0 {
			s.emit(GridChanged{})
		}
		s.emit(FallingComplete{Moves: moves, Capped: capped})
		c.phase = PhaseFill
		c.hold = s.timing.FallTicks

	case PhaseFill:
		filled := s.refill.Fill()
		if len(filled) > 0 {
			s.emit(GridChanged{})
		}
		s.emit(FillingComplete{Filled: filled})
		c.phase = PhaseSettled
		c.hold = s.timing.FillTicks
	}
}
