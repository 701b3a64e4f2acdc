package core

import "maps"

// GoalTracker counts the obstacles left to destroy.
type GoalTracker struct {
	remaining map[ObstacleKind]int
	completed bool
	emit      SignalSink

	// OnComplete, when set, runs once as the last tracked goal reaches zero.
	OnComplete func()
}

// NewGoalTracker creates an empty tracker. emit may be nil.
func NewGoalTracker(emit SignalSink) *GoalTracker {
	if emit == nil {
		emit = func(Signal) {}
	}
	return &GoalTracker{remaining: make(map[ObstacleKind]int), emit: emit}
}

// Initialize takes the obstacle census of g. Only kinds present on the
// board are tracked.
func (t *GoalTracker) Initialize(g *GridState) {
	t.remaining = make(map[ObstacleKind]int)
	for kind, n := range g.ObstacleCensus() {
		if n > 0 {
			t.remaining[kind] = n
		}
	}
	t.completed = false
	t.emit(GoalCountsUpdated{Remaining: t.Remaining()})
}

// OnObstacleDestroyed decrements the goal for kind, never below zero.
func (t *GoalTracker) OnObstacleDestroyed(kind ObstacleKind) {
	n, ok := t.remaining[kind]
	if !ok || n == 0 {
		return
	}
	t.remaining[kind] = n - 1
	t.emit(GoalCountsUpdated{Remaining: t.Remaining()})

	if !t.completed && t.AllGoalsCleared() {
		t.completed = true
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// AllGoalsCleared reports whether every tracked kind is at zero. A level
// with no obstacles is trivially cleared.
func (t *GoalTracker) AllGoalsCleared() bool {
	for _, n := range t.remaining {
		if n > 0 {
			return false
		}
	}
	return true
}

// Completed reports whether the last goal was cleared by a decrement.
func (t *GoalTracker) Completed() bool {
	return t.completed
}

// HasGoals reports whether any obstacle kind is tracked.
func (t *GoalTracker) HasGoals() bool {
	return len(t.remaining) > 0
}

// Remaining returns a copy of the remaining counts.
func (t *GoalTracker) Remaining() map[ObstacleKind]int {
	return maps.Clone(t.remaining)
}
