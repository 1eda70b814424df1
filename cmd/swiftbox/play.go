package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swiftbox/internal/games/t2048"
	"github.com/vovakirdan/swiftbox/internal/platform/tui"
	"github.com/vovakirdan/swiftbox/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game (default 2048)",
	Long: `Start playing directly, without the menu.

Controls:
  Arrows/WASD  - Slide tiles
  P            - Pause
  N            - New game at any time
  R            - New game after game over
  Esc/Q        - Quit

Examples:
  swiftbox play
  swiftbox play --difficulty easy
  swiftbox play --seed 42
  swiftbox play --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := t2048.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'swiftbox list')", gameID)
	}

	env, err := newEnv()
	if err != nil {
		return err
	}
	if env.Store != nil {
		defer env.Store.Close()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	if err := tui.Run(game, env, runtimeConfig()); err != nil {
		return fmt.Errorf("running %s: %w", gameID, err)
	}
	return nil
}
