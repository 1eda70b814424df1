package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swiftbox/internal/games/t2048"
	"github.com/vovakirdan/swiftbox/internal/platform/tui"
	"github.com/vovakirdan/swiftbox/internal/registry"
	"github.com/vovakirdan/swiftbox/internal/storage"
)

var (
	flagScoresLimit       int
	flagScoresInteractive bool
	flagScoresClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores (default 2048)",
	Long: `Print the best finished games, or browse them with --interactive.

Examples:
  swiftbox scores
  swiftbox scores --limit 25
  swiftbox scores -i
  swiftbox scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", storage.DefaultLimit, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagScoresInteractive, "interactive", "i", false, "Open the scoreboard screen")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all stored scores for the game")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := t2048.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresInteractive {
		cfg := runtimeConfig()
		return tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
	}

	out := cmd.OutOrStdout()

	if flagScoresClear {
		n, err := store.ClearScores(gameID)
		if err != nil {
			return err
		}
		logger.Info("cleared scores", "game", gameID, "rows", n)
		fmt.Fprintf(out, "Removed %d scores for %s.\n", n, game.Title())
		return nil
	}

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", game.Title())
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintf(out, "\nPlay 'swiftbox play %s' to set the first high score!\n", gameID)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  Rank\tScore\tMax Tile\tDate")
	fmt.Fprintln(tw, "  ----\t-----\t--------\t----")
	for i, e := range scores {
		fmt.Fprintf(tw, "  %d\t%d\t%d\t%s\n", i+1, e.Score, e.MaxTile, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nGames: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	return nil
}
