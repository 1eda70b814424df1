package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swiftbox/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Open the toolkit menu",
	Long: `Start the interactive toolkit menu: play 2048, read the quote of the day
or browse high scores. Finished games return to the menu.

Controls:
  Up/Down/j/k  - Navigate
  Enter/Space  - Select
  Tab          - High scores
  Esc/B        - Back
  Q            - Quit`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	env, err := newEnv()
	if err != nil {
		return err
	}
	if env.Store != nil {
		defer env.Store.Close()
	}

	return tui.RunSession(env, runtimeConfig())
}
