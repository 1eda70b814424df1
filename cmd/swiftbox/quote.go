package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swiftbox/internal/platform/tui"
	"github.com/vovakirdan/swiftbox/internal/quote"
)

var (
	flagQuoteRandom bool
	flagQuoteDate   string
	flagQuotePlain  bool
)

var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Print the quote of the day",
	Long: `Print today's quote. Everyone gets the same quote on the same day.

Examples:
  swiftbox quote
  swiftbox quote --random
  swiftbox quote --date 2026-01-01
  swiftbox quote --plain`,
	Args: cobra.NoArgs,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().BoolVarP(&flagQuoteRandom, "random", "r", false, "Pick a random quote instead")
	quoteCmd.Flags().StringVar(&flagQuoteDate, "date", "", "Show the quote for a day (YYYY-MM-DD)")
	quoteCmd.Flags().BoolVar(&flagQuotePlain, "plain", false, "Print a single line without the card")
}

func runQuote(cmd *cobra.Command, _ []string) error {
	title := "Quote of the Day"
	var q quote.Quote

	switch {
	case flagQuoteRandom:
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		q = quote.Random(rand.New(rand.NewSource(seed)))
		title = "Random Quote"
	case flagQuoteDate != "":
		day, err := time.ParseInLocation(time.DateOnly, flagQuoteDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		q = quote.ForDate(day)
		title = "Quote for " + quote.DateKey(day)
	default:
		q = quote.Today()
	}

	out := cmd.OutOrStdout()
	if flagQuotePlain {
		fmt.Fprintln(out, q)
		return nil
	}

	width := 0
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}
	fmt.Fprintln(out, tui.RenderQuoteCard(title, q, width))
	return nil
}
