package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cube-blast/internal/config"
	"github.com/vovakirdan/cube-blast/internal/core"
	"github.com/vovakirdan/cube-blast/internal/platform/tui"
	"github.com/vovakirdan/cube-blast/internal/registry"
	"github.com/vovakirdan/cube-blast/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the current level",
	Long: `Start playing at the saved level, or at --level.

Controls:
  Arrows/WASD/HJKL  - Move the cursor
  Enter/Space       - Select the group or rocket under the cursor
  N                 - Next level (after a win)
  R                 - Restart the level
  P                 - Pause
  Esc/B             - Back
  Q/Ctrl+C          - Quit
  Ctrl+S            - Save a screenshot

Examples:
  blast play
  blast play --level 4
  blast play --levels ./my-levels --seed 7`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Level to play (0 = saved progress)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger(true)
	if err != nil {
		return err
	}
	defer cleanup()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	_, err = playLevel(logger, store, flagLevel, runtimeConfig(), loadConfig(logger))
	return err
}

// openStore opens the progress database. A failure is logged and the
// game runs without saving.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		logger.Warn("progress disabled", "err", err)
		return nil
	}
	return store
}

// runtimeConfig builds the platform settings from the terminal size and
// the global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
}

// playLevel runs one game session starting at level (0 = saved progress).
func playLevel(logger *log.Logger, store *storage.Store, level int, rt core.RuntimeConfig, cfg config.BlastConfig) (tui.RunResult, error) {
	env := registry.Env{
		Logger:   logger,
		LevelDir: flagLevelDir,
		Level:    level,
		Config:   cfg,
	}
	// a nil *Store must not become a non-nil interface
	if store != nil {
		env.Progress = store
	}

	game, err := newGame(env)
	if err != nil {
		return tui.RunResult{Config: rt}, fmt.Errorf("creating game: %w", err)
	}

	result, err := tui.Run(game, rt)
	if err != nil {
		return result, fmt.Errorf("running game: %w", err)
	}
	logger.Info("session ended", "level", result.State.Level, "outcome", result.State.Outcome, "moves_left", result.State.MovesLeft)
	return result, nil
}
