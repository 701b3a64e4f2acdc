package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cube-blast/internal/storage"
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show saved progress",
	Long: `Shows the level you will play next.

Examples:
  blast progress
  blast progress set 5
  blast progress reset`,
	Args: cobra.NoArgs,
	RunE: runProgressShow,
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current level",
	Args:  cobra.NoArgs,
	RunE:  runProgressShow,
}

var progressSetCmd = &cobra.Command{
	Use:   "set <level>",
	Short: "Set the current level",
	Args:  cobra.ExactArgs(1),
	RunE:  runProgressSet,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over from level 1",
	Args:  cobra.NoArgs,
	RunE:  runProgressReset,
}

func init() {
	progressCmd.AddCommand(progressShowCmd)
	progressCmd.AddCommand(progressSetCmd)
	progressCmd.AddCommand(progressResetCmd)
}

func runProgressShow(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	logger, cleanup, err := newLogger(false)
	if err != nil {
		return err
	}
	defer cleanup()

	current, err := store.CurrentLevel()
	if err != nil {
		return err
	}
	last, err := levelLoader(logger).LastNumber()
	if err != nil {
		return fmt.Errorf("loading levels: %w", err)
	}

	done, err := store.AllLevelsCompleted(last)
	if err != nil {
		return err
	}
	if done {
		fmt.Printf("All levels finished (last is %d).\n", last)
		return nil
	}
	fmt.Printf("Current level: %d of %d\n", current, last)
	return nil
}

func runProgressSet(_ *cobra.Command, args []string) error {
	n, err := strconv.Atoi(args[0])
	if err != nil || n < storage.FirstLevel {
		return fmt.Errorf("invalid level %q", args[0])
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SetCurrentLevel(n); err != nil {
		return err
	}
	fmt.Printf("Current level set to %d.\n", n)
	return nil
}

func runProgressReset(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.ResetProgress(); err != nil {
		return err
	}
	fmt.Println("Progress reset to level 1.")
	return nil
}
