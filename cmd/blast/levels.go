package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cube-blast/internal/platform/tui"
	"github.com/vovakirdan/cube-blast/internal/storage"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level pack",
	Long:  `Shows every level with its size, move budget, goals and status.`,
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	logger, cleanup, err := newLogger(false)
	if err != nil {
		return err
	}
	defer cleanup()

	pack, err := levelLoader(logger).LoadAll()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}
	if len(pack) == 0 {
		fmt.Println("No levels found.")
		return nil
	}

	current := storage.FirstLevel
	if store, err := storage.Open(flagDBPath); err == nil {
		if n, err := store.CurrentLevel(); err == nil {
			current = n
		}
		store.Close()
	}

	fmt.Printf("  %-5s  %-7s  %-5s  %-22s  %s\n", "Level", "Size", "Moves", "Goals", "Status")
	fmt.Printf("  %-5s  %-7s  %-5s  %-22s  %s\n", "-----", "----", "-----", "-----", "------")
	for _, lvl := range pack {
		fmt.Printf("  %-5d  %-7s  %-5d  %-22s  %s\n",
			lvl.Number,
			fmt.Sprintf("%dx%d", lvl.Width, lvl.Height),
			lvl.Moves,
			tui.FormatGoals(lvl.Goals()),
			tui.LevelStatus(lvl.Number, current),
		)
	}

	fmt.Println()
	fmt.Println("Run 'blast play --level <n>' to play an unlocked level.")
	return nil
}
