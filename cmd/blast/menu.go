package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cube-blast/internal/games/blast/levels"
	"github.com/vovakirdan/cube-blast/internal/platform/tui"
	"github.com/vovakirdan/cube-blast/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the game with the main menu",
	Long: `Start in interactive menu mode.

The main menu offers the saved level (or "Finished" once the whole pack
is cleared), the level board and a progress reset. After a level ends,
Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab/L        - Level board
  Q            - Quit

Examples:
  blast menu
  blast menu --fps 60
  blast menu --db ./progress.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger(true)
	if err != nil {
		return err
	}
	defer cleanup()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	loader := levelLoader(logger)
	cfg := loadConfig(logger)
	rt := runtimeConfig()

	// Menu loop
	for {
		pack, err := loader.LoadAll()
		if err != nil {
			return fmt.Errorf("loading levels: %w", err)
		}

		var progress tui.ProgressReader
		if store != nil {
			progress = store
		}

		menuResult, err := tui.RunMenu(progress, levels.LastNumber(pack), rt)
		if err != nil {
			return err
		}
		rt = menuResult.Config

		switch menuResult.Choice {
		case tui.ChoicePlay:
			result, err := playLevel(logger, store, 0, rt, cfg)
			if err != nil {
				return err
			}
			rt = result.Config
			if !result.Back {
				return nil
			}

		case tui.ChoiceLevels:
			current := storage.FirstLevel
			if store != nil {
				if n, err := store.CurrentLevel(); err == nil {
					current = n
				}
			}
			chosen, goBack, err := tui.RunLevelBoard(pack, current, rt.ScreenW, rt.ScreenH)
			if err != nil {
				return err
			}
			if chosen > 0 {
				result, err := playLevel(logger, store, chosen, rt, cfg)
				if err != nil {
					return err
				}
				rt = result.Config
				if !result.Back {
					return nil
				}
				continue
			}
			if !goBack {
				return nil
			}

		case tui.ChoiceReset:
			if store != nil {
				if err := store.ResetProgress(); err != nil {
					return err
				}
				logger.Info("progress reset")
			}

		default:
			return nil
		}
	}
}
