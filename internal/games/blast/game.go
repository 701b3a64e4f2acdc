// Package blast provides the Cube Blast tile-matching game for the platform.
package blast

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cube-blast/internal/config"
	platformcore "github.com/vovakirdan/cube-blast/internal/core"
	"github.com/vovakirdan/cube-blast/internal/games/blast/core"
	"github.com/vovakirdan/cube-blast/internal/games/blast/levels"
	"github.com/vovakirdan/cube-blast/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "blast"

// flashTicks is how long cleared cells stay marked on screen.
const flashTicks = 4

// Game adapts the turn sequencer to the platform's tick loop.
type Game struct {
	logger   *log.Logger
	progress registry.Progress
	loader   *levels.Loader
	cfg      config.BlastConfig

	rng       *rand.Rand
	requested int // explicit level from Configure, 0 = stored progress
	target    int // number asked of loadLevel; differs from levelNum after a fallback
	levelNum  int
	lastLevel int // highest level number in the pack
	level     levels.Level
	seq       *core.TurnSequencer
	signals   core.SignalBuffer

	// Mirrors of the last signals, drawn by Render
	goals   map[core.ObstacleKind]int
	hint    map[core.Cell]bool
	flash   map[core.Cell]int
	outcome platformcore.Outcome
	wonAt   uint64

	cursor   core.Cell
	screenW  int
	screenH  int
	tickRate int
	tick     uint64
	paused   bool
	finished bool // progress is past the last level
	loadErr  error
	changed  bool
}

func init() {
	registry.Register(ID, "Cube Blast", func() registry.Game {
		return New()
	})
}

// New creates a game over the built-in level pack with default settings.
func New() *Game {
	return &Game{
		logger: log.New(io.Discard),
		loader: levels.Default(),
		cfg:    config.DefaultBlastConfig(),
	}
}

// Configure implements registry.Configurable.
func (g *Game) Configure(env registry.Env) error {
	if env.Logger != nil {
		g.logger = env.Logger
	}
	g.progress = env.Progress
	g.requested = env.Level
	g.cfg = env.Config
	g.cfg.Normalize()

	if env.LevelDir != "" {
		g.loader = levels.NewLoader(env.LevelDir)
	} else {
		g.loader = levels.Default()
	}
	g.loader.WithLogger(g.logger)

	n, err := g.loader.Count()
	if err != nil {
		return err
	}
	if n == 0 {
		return &levels.MissingLevelDataError{Number: 1}
	}
	return nil
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Cube Blast"
}

// Reset loads the requested or stored level.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = max(cfg.TickRate, 1)
	g.tick = 0
	g.paused = false

	n := g.requested
	if n <= 0 {
		n = g.storedLevel()
	}
	g.loadLevel(n)
}

func (g *Game) storedLevel() int {
	if g.progress == nil {
		return 1
	}
	n, err := g.progress.CurrentLevel()
	if err != nil {
		g.logger.Error("reading progress", "err", err)
		return 1
	}
	return n
}

// loadLevel builds level n and a fresh sequencer for it.
func (g *Game) loadLevel(n int) {
	g.seq = nil
	g.loadErr = nil
	g.finished = false
	g.outcome = platformcore.OutcomeNone
	g.goals = nil
	g.hint = nil
	g.flash = make(map[core.Cell]int)
	g.signals.Drain()
	g.changed = true

	last, err := g.loader.LastNumber()
	if err != nil {
		g.loadErr = err
		return
	}
	g.lastLevel = last
	g.target = n
	if n > last {
		g.levelNum = n
		g.finished = true
		return
	}

	lvl, err := g.loader.LoadLevel(n)
	if err != nil {
		g.loadErr = err
		return
	}
	grid, err := lvl.Build(g.rng, g.logger)
	if grid == nil {
		g.loadErr = err
		return
	}
	var bad *levels.InvalidTypeCodeError
	if err != nil && !errors.As(err, &bad) {
		g.loadErr = err
		return
	}

	g.level = lvl
	g.levelNum = lvl.Number
	g.cursor = core.C(lvl.Width/2, lvl.Height/2)
	g.seq = core.NewTurnSequencer(grid, lvl.Moves, core.Options{
		Seed: g.rng.Int63(),
		Timing: core.Timing{
			ProjectileStepTicks: g.cfg.Timing.TicksPerProjectileStep,
			FallTicks:           g.cfg.Timing.TicksPerFallPhase,
			FillTicks:           g.cfg.Timing.TicksPerFillPhase,
		},
		Logger: g.logger.With("level", lvl.Number),
		Sink:   g.signals.Sink(),
	})
	g.logger.Info("level loaded", "level", lvl.Number, "size", grid.Width(), "moves", lvl.Moves)
	g.drainSignals()
}

// Step advances the game by one tick.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.changed = false

	if in.Has(platformcore.ActionRestart) && !g.finished {
		g.loadLevel(g.target)
		return g.result()
	}
	if in.Has(platformcore.ActionNext) && g.outcome == platformcore.OutcomeWon {
		g.loadLevel(g.nextLevel())
		return g.result()
	}
	if in.Has(platformcore.ActionPause) && g.seq != nil && g.outcome == platformcore.OutcomeNone {
		g.paused = !g.paused
		g.changed = true
	}

	if g.seq == nil || g.paused {
		return g.result()
	}

	if g.outcome == platformcore.OutcomeNone {
		g.moveCursor(in)
		if in.Has(platformcore.ActionConfirm) && g.seq.QueueLen() < g.cfg.Gameplay.QueueLimit {
			g.seq.SubmitSelection(g.cursor)
		}
	}

	if g.seq.Busy() {
		g.changed = true
	}
	g.seq.Tick()
	g.drainSignals()
	g.ageFlash()

	if g.outcome == platformcore.OutcomeWon && g.cfg.Gameplay.AutoAdvance &&
		g.tick-g.wonAt >= uint64(2*g.tickRate) {
		g.loadLevel(g.nextLevel())
	}
	return g.result()
}

func (g *Game) result() platformcore.StepResult {
	return platformcore.StepResult{State: g.State(), Changed: g.changed}
}

func (g *Game) moveCursor(in platformcore.InputFrame) {
	c := g.cursor
	// Row 0 is drawn at the bottom, so up on screen is +y.
	if in.Has(platformcore.ActionUp) {
		c = c.Step(core.DirUp)
	}
	if in.Has(platformcore.ActionDown) {
		c = c.Step(core.DirDown)
	}
	if in.Has(platformcore.ActionLeft) {
		c = c.Step(core.DirLeft)
	}
	if in.Has(platformcore.ActionRight) {
		c = c.Step(core.DirRight)
	}
	grid := g.seq.Grid()
	c.X = platformcore.Clamp(c.X, 0, grid.Width()-1)
	c.Y = platformcore.Clamp(c.Y, 0, grid.Height()-1)
	if c != g.cursor {
		g.cursor = c
		g.changed = true
	}
}

// drainSignals folds sequencer notifications into render state.
func (g *Game) drainSignals() {
	for _, sig := range g.signals.Drain() {
		g.changed = true
		switch s := sig.(type) {
		case core.GridChanged:
			for _, c := range s.Cleared {
				g.flash[c] = flashTicks
			}
		case core.GoalCountsUpdated:
			g.goals = s.Remaining
		case core.RocketHint:
			g.hint = s.Cells
		case core.LevelCompleted:
			g.outcome = platformcore.OutcomeWon
			g.wonAt = g.tick
			g.advanceProgress()
		case core.LevelFailed:
			g.outcome = platformcore.OutcomeLost
		}
	}
}

// nextLevel returns the pack level after the one just played. Missing
// numbers are skipped.
func (g *Game) nextLevel() int {
	cur := max(g.levelNum, g.target)
	next, err := g.loader.NextNumber(cur)
	if err != nil {
		g.logger.Error("reading levels", "err", err)
		return cur + 1
	}
	return next
}

// advanceProgress stores the next level when the stored one was just
// beaten. A stored number missing from the pack loads level 1 instead, and
// beating that fallback still counts for the stored position.
func (g *Game) advanceProgress() {
	if g.progress == nil {
		return
	}
	stored, err := g.progress.CurrentLevel()
	if err != nil {
		g.logger.Error("reading progress", "err", err)
		return
	}
	if stored != g.levelNum && stored != g.target {
		return
	}
	next := g.nextLevel()
	if err := g.progress.SetCurrentLevel(next); err != nil {
		g.logger.Error("saving progress", "err", err)
		return
	}
	g.logger.Info("progress advanced", "level", next)
}

func (g *Game) ageFlash() {
	for c, n := range g.flash {
		if n <= 1 {
			delete(g.flash, c)
			continue
		}
		g.flash[c] = n - 1
	}
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	st := platformcore.GameState{
		Level:   g.levelNum,
		Outcome: g.outcome,
		Paused:  g.paused,
	}
	if g.seq != nil {
		st.MovesLeft = g.seq.MovesLeft()
	}
	return st
}

// Resize implements registry.Resizable.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.changed = true
}

// Sequencer exposes the running simulation, nil when no level is loaded.
func (g *Game) Sequencer() *core.TurnSequencer {
	return g.seq
}

// Cursor returns the selected cell.
func (g *Game) Cursor() core.Cell {
	return g.cursor
}

// Finished reports whether every level in the pack has been beaten.
func (g *Game) Finished() bool {
	return g.finished
}
