// swiftbox is a terminal toolkit built around a 2048 game.
//
// Usage:
//
//	swiftbox play            - Play 2048
//	swiftbox menu            - Toolkit menu: 2048, daily quote, high scores
//	swiftbox scores [game]   - Show high scores
//	swiftbox quote           - Print the quote of the day
//	swiftbox list            - List available games
//	swiftbox config          - Print the default game configuration
//	swiftbox replay <move>.. - Replay a seeded game and print the board
//	swiftbox serve           - Serve the toolkit over SSH
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 30)
//	--seed <value>        - RNG seed for a reproducible first game
//	--db <path>           - Scores database (default: ~/.swiftbox/scores.db)
//	--config <path>       - 2048 tuning YAML
//	--difficulty <name>   - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swiftbox/internal/config"
	"github.com/vovakirdan/swiftbox/internal/core"
	"github.com/vovakirdan/swiftbox/internal/games/t2048"
	"github.com/vovakirdan/swiftbox/internal/platform/tui"
	"github.com/vovakirdan/swiftbox/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "swiftbox",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swiftbox",
	Short: "SwiftBox - 2048 and friends in your terminal",
	Long: `SwiftBox is a small terminal toolkit built around the 2048 sliding-tile
puzzle, with a quote of the day and a local high-score table.

Examples:
  swiftbox play
  swiftbox play --difficulty hard
  swiftbox menu
  swiftbox scores
  swiftbox serve --ssh :2222`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed for the first game (0 = time based)")
	pf.StringVar(&flagDBPath, "db", "~/.swiftbox/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a 2048 config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd, playCmd, menuCmd, scoresCmd, quoteCmd, configCmd, replayCmd, serveCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger.SetLevel(level)
	log.SetDefault(logger)
	return nil
}

// loadTuning resolves the 2048 config file and applies --difficulty.
func loadTuning() (config.T2048Config, error) {
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return config.T2048Config{}, err
	}

	cfg, source, err := config.LoadT2048(flagConfig)
	if err != nil {
		return config.T2048Config{}, err
	}
	config.ApplyT2048Preset(&cfg, preset)

	logger.Debug("loaded 2048 config",
		"source", string(source),
		"difficulty", string(preset),
		"four_probability", cfg.Spawn.FourProbability,
	)
	return cfg, nil
}

// openStore opens the scores database. Failure is logged and play continues
// without score keeping.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// newEnv loads tuning, publishes it to the 2048 package and opens the store.
// The caller closes env.Store when it is not nil.
func newEnv() (tui.Env, error) {
	tuning, err := loadTuning()
	if err != nil {
		return tui.Env{}, err
	}
	t2048.SetTuning(tuning)

	return tui.Env{
		Store:  openStore(),
		Logger: logger,
		Tuning: tuning,
	}, nil
}

// runtimeConfig sizes the screen from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
