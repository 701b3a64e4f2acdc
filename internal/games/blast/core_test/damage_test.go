package core_test

import (
	"testing"

	"github.com/vovakirdan/cube-blast/internal/games/blast/core"
)

func TestVaseAdjacencyOncePerBlast(t *testing.T) {
	g := gridFromRows(t, "r v r")
	goals := core.NewGoalTracker(nil)
	goals.Initialize(g)
	d := core.NewDamager(g, goals)
	vase := core.C(1, 0)

	blast := d.NextBlast()
	d.NotifyBlast(blast, []core.Cell{core.C(0, 0), core.C(2, 0)})
	if h := g.At(vase).Health; h != 1 {
		t.Fatalf("vase health after one blast touching it twice = %d, want 1", h)
	}

	if d.ApplyDamage(vase, core.DamageAdjacent, blast) {
		t.Error("repeat adjacency with the same blast id must be ignored")
	}
	if h := g.At(vase).Health; h != 1 {
		t.Errorf("vase health = %d, want 1", h)
	}

	if !d.ApplyDamage(vase, core.DamageAdjacent, d.NextBlast()) {
		t.Error("a new blast should destroy the weakened vase")
	}
	if !g.At(vase).IsEmpty() {
		t.Error("destroyed vase should leave an empty cell")
	}
	if goals.Remaining()[core.ObstacleVase] != 0 {
		t.Errorf("vase goal = %d, want 0", goals.Remaining()[core.ObstacleVase])
	}
}

func TestVaseRocketDamageIgnoresBlast(t *testing.T) {
	g := gridFromRows(t, "v")
	d := core.NewDamager(g, nil)
	c := core.C(0, 0)

	d.ApplyDamage(c, core.DamageRocket, 0)
	if h := g.At(c).Health; h != 1 {
		t.Fatalf("health after first rocket hit = %d, want 1", h)
	}
	if !d.ApplyDamage(c, core.DamageRocket, 0) {
		t.Error("second rocket hit should destroy the vase")
	}
}

func TestStoneIgnoresAdjacency(t *testing.T) {
	g := gridFromRows(t, "r s r")
	goals := core.NewGoalTracker(nil)
	goals.Initialize(g)
	d := core.NewDamager(g, goals)

	d.NotifyBlast(d.NextBlast(), []core.Cell{core.C(0, 0), core.C(2, 0)})
	if code(g, 1, 0) != "s" {
		t.Fatal("stone must ignore adjacency damage")
	}

	if !d.ApplyDamage(core.C(1, 0), core.DamageRocket, 0) {
		t.Error("rocket damage should destroy the stone")
	}
	if !goals.AllGoalsCleared() {
		t.Errorf("goals = %v, want all cleared", goals.Remaining())
	}
}

func TestBoxAdjacencyDecrementsGoalOnce(t *testing.T) {
	g := gridFromRows(t,
		". r .",
		"r bo r",
		"bo r .",
	)
	goals := core.NewGoalTracker(nil)
	goals.Initialize(g)
	d := core.NewDamager(g, goals)

	cleared := []core.Cell{core.C(0, 1), core.C(1, 2), core.C(2, 1), core.C(1, 0)}
	d.NotifyBlast(d.NextBlast(), cleared)

	if !g.At(core.C(1, 1)).IsEmpty() {
		t.Error("box surrounded by cleared cells should be destroyed")
	}
	if !g.At(core.C(0, 0)).IsEmpty() {
		t.Error("corner box touching two cleared cells should be destroyed")
	}
	if n := goals.Remaining()[core.ObstacleBox]; n != 0 {
		t.Errorf("box goal = %d, want 0", n)
	}
}

func TestRocketDamageRemovesBlocksAndRockets(t *testing.T) {
	g := gridFromRows(t, "r hro .")
	d := core.NewDamager(g, nil)

	if d.ApplyDamage(core.C(0, 0), core.DamageAdjacent, 1) {
		t.Error("adjacency damage must not remove blocks")
	}
	if !d.ApplyDamage(core.C(0, 0), core.DamageRocket, 0) {
		t.Error("rocket damage should remove a block")
	}
	if !d.ApplyDamage(core.C(1, 0), core.DamageRocket, 0) {
		t.Error("rocket damage should remove a rocket")
	}
	if d.ApplyDamage(core.C(2, 0), core.DamageRocket, 0) {
		t.Error("empty cell reports nothing removed")
	}
	if d.ApplyDamage(core.C(7, 7), core.DamageRocket, 0) {
		t.Error("out-of-bounds damage reports nothing removed")
	}
}
