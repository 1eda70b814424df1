package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swiftbox/internal/games/t2048"
)

var replayCmd = &cobra.Command{
	Use:   "replay <move>...",
	Short: "Replay a seeded 2048 game without the TUI",
	Long: `Start a 2048 game from --seed, apply the given moves in order and print
the final board. Moves are up, down, left or right. The same seed and moves
always give the same board.

Examples:
  swiftbox replay --seed 42 up left left down
  swiftbox replay --seed 7 --difficulty hard right right up`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	dirs := make([]t2048.Direction, 0, len(args))
	for i, arg := range args {
		dir, err := t2048.ParseDirection(arg)
		if err != nil {
			return fmt.Errorf("move %d: %w", i+1, err)
		}
		dirs = append(dirs, dir)
	}

	tuning, err := loadTuning()
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	engine := t2048.NewSeeded(seed, t2048.WithFourProbability(tuning.Spawn.FourProbability))
	state := engine.Initialize()

	applied, changed := 0, 0
	for _, dir := range dirs {
		next, mv, err := engine.ApplyMoveDetailed(state, dir)
		if errors.Is(err, t2048.ErrGameOver) {
			break
		}
		if err != nil {
			return err
		}
		state = next
		applied++
		if mv.Changed {
			changed++
		}
	}
	logger.Debug("replayed moves", "seed", seed, "requested", len(dirs), "applied", applied, "changed", changed)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, state.Board)
	fmt.Fprintf(out, "seed %d  moves %d/%d (%d changed)  score %d  max tile %d\n",
		seed, applied, len(dirs), changed, state.Score, t2048.MaxTile(state.Board))
	if state.Terminal {
		fmt.Fprintln(out, "game over")
	}
	return nil
}
