package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/cube-blast/internal/core"
)

type stubGame struct {
	env        Env
	configured bool
	failWith   error
}

func (g *stubGame) ID() string                           { return "stub" }
func (g *stubGame) Title() string                        { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func (g *stubGame) Configure(env Env) error {
	g.env = env
	g.configured = true
	return g.failWith
}

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", "Stub", func() Game { return &stubGame{} })

	if !Exists("test-stub") {
		t.Fatal("registered game should exist")
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" && info.Title == "Stub" {
			found = true
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}

	g, err := CreateWith("test-stub", Env{Level: 3})
	if err != nil {
		t.Fatalf("CreateWith() failed: %v", err)
	}
	stub := g.(*stubGame)
	if !stub.configured || stub.env.Level != 3 {
		t.Errorf("game was not configured: %+v", stub)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", "Dup", func() Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", "Dup", func() Game { return &stubGame{} })
}

func TestCreateErrors(t *testing.T) {
	if _, err := Create("no-such-game"); err == nil {
		t.Error("unknown game should fail")
	}

	boom := errors.New("boom")
	Register("test-fail", "Fail", func() Game { return &stubGame{failWith: boom} })
	if _, err := CreateWith("test-fail", Env{}); !errors.Is(err, boom) {
		t.Errorf("CreateWith() error = %v, want wrapped boom", err)
	}
}
