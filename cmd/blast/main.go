// blast is a terminal Cube Blast game: clear groups of colored cubes,
// fire rockets and break every obstacle before the moves run out.
//
// Usage:
//
//	blast play               - Play the stored (or given) level
//	blast menu               - Start menu with level picker
//	blast levels             - List the level pack
//	blast progress           - Show, set or reset saved progress
//	blast simulate           - Play a level headlessly and print the result
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set progress database path (default: ~/.blast/progress.db)
//	--levels <dir>      - Load levels from a directory instead of the built-in pack
//	--config <path>     - Use a custom blast.yaml
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cube-blast/internal/config"
	"github.com/vovakirdan/cube-blast/internal/games/blast"
	"github.com/vovakirdan/cube-blast/internal/games/blast/levels"
	"github.com/vovakirdan/cube-blast/internal/registry"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLevelDir string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blast",
	Short: "Cube Blast - a tile-matching puzzle in your terminal",
	Long: `Cube Blast is a turn-based tile-matching game. Pick a group of two or
more same-colored cubes to clear it; groups of four or more leave a rocket
behind. Break every box, stone and vase before the moves run out.

Available commands:
  play      - Play the current level directly
  menu      - Interactive menu with the level board
  levels    - List the level pack
  progress  - Show, set or reset saved progress
  simulate  - Play a level headlessly

Examples:
  blast menu
  blast play --level 3
  blast levels --levels ./my-levels
  blast simulate --level 2 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blast/progress.db", "Path to progress database")
	rootCmd.PersistentFlags().StringVar(&flagLevelDir, "levels", "", "Directory with level files (default: built-in pack)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom blast.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(simulateCmd)
}

// newLogger builds the command logger. Interactive commands own the
// terminal, so without --log-file their logs are discarded.
func newLogger(interactive bool) (*log.Logger, func(), error) {
	var (
		w       io.Writer = os.Stderr
		cleanup           = func() {}
	)
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		cleanup = func() { f.Close() }
	case interactive:
		w = io.Discard
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "blast",
	})
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(lvl)
	return logger, cleanup, nil
}

// seed returns the --seed value, or a time-based seed when it is zero.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// loadConfig reads blast.yaml through the usual search order.
func loadConfig(logger *log.Logger) config.BlastConfig {
	cfg, err := config.LoadBlast(flagConfig)
	if err != nil {
		logger.Warn("using default config", "err", err)
		return config.DefaultBlastConfig()
	}
	return cfg
}

// levelLoader returns the loader for --levels or the built-in pack.
func levelLoader(logger *log.Logger) *levels.Loader {
	if flagLevelDir != "" {
		return levels.NewLoader(flagLevelDir).WithLogger(logger)
	}
	return levels.Default().WithLogger(logger)
}

// newGame creates the blast game wired to env.
func newGame(env registry.Env) (registry.Game, error) {
	return registry.CreateWith(blast.ID, env)
}
