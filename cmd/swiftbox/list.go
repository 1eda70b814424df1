package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swiftbox/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available games",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle")
	fmt.Fprintln(tw, "  --\t-----")
	for _, g := range games {
		fmt.Fprintf(tw, "  %s\t%s\n", g.ID, g.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'swiftbox play <id>' to play a game.")
	return nil
}
