package core

// Signal is an outbound notification. Consumers must not block.
type Signal interface {
	signal()
}

// GridChanged is emitted after any mutation of the board during a cascade.
type GridChanged struct {
	Cleared []Cell
}

// FallingComplete is emitted once gravity has settled.
type FallingComplete struct {
	Moves  []Move
	Capped bool
}

// FillingComplete is emitted after the refill step.
type FillingComplete struct {
	Filled []Cell
}

// GoalCountsUpdated carries the remaining count per tracked obstacle kind.
type GoalCountsUpdated struct {
	Remaining map[ObstacleKind]int
}

// MovesUpdated carries the remaining move budget.
type MovesUpdated struct {
	Remaining int
}

// RocketHint lists the cells whose group would leave a rocket if cleared.
type RocketHint struct {
	Cells map[Cell]bool
}

// LevelCompleted is emitted once when every goal is cleared.
type LevelCompleted struct {
	MovesLeft int
}

// LevelFailed is emitted once when the budget runs out with goals remaining.
type LevelFailed struct {
	Remaining map[ObstacleKind]int
}

func (GridChanged) signal()       {}
func (FallingComplete) signal()   {}
func (FillingComplete) signal()   {}
func (GoalCountsUpdated) signal() {}
func (MovesUpdated) signal()      {}
func (RocketHint) signal()        {}
func (LevelCompleted) signal()    {}
func (LevelFailed) signal()       {}

// SignalSink receives signals synchronously on the simulation goroutine.
type SignalSink func(Signal)

// SignalBuffer collects signals for consumers that poll.
type SignalBuffer struct {
	signals []Signal
}

// Sink returns a SignalSink appending to the buffer.
func (b *SignalBuffer) Sink() SignalSink {
	return func(s Signal) {
		b.signals = append(b.signals, s)
	}
}

// Drain returns buffered signals and empties the buffer.
func (b *SignalBuffer) Drain() []Signal {
	out := b.signals
	b.signals = nil
	return out
}

// Len returns the number of buffered signals.
func (b *SignalBuffer) Len() int {
	return len(b.signals)
}
