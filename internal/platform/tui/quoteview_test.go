package tui

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/swiftbox/internal/quote"
)

func TestQuoteModel(t *testing.T) {
	day := time.Date(2026, 10, 17, 8, 0, 0, 0, time.UTC)

	m := NewQuoteModel(rand.New(rand.NewSource(1)), 80, 24)
	m.now = func() time.Time { return day }
	m.showToday()

	if m.Current() != quote.ForDate(day) {
		t.Fatalf("Current() = %v, want today's quote", m.Current())
	}

	next, _ := m.Update(runeKey('r'))
	m = next.(QuoteModel)
	if m.daily {
		t.Error("refresh should switch to a random quote")
	}
	if !strings.Contains(m.View(), "Random Quote") {
		t.Error("view title should change after refresh")
	}

	next, _ = m.Update(runeKey('t'))
	m = next.(QuoteModel)
	if !m.daily || m.Current() != quote.ForDate(day) {
		t.Error("t should return to today's quote")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(QuoteModel).WantsBack() {
		t.Error("esc should leave the quote screen")
	}
}

func TestRenderQuoteCard(t *testing.T) {
	q := quote.Quote{Text: "Short and sweet.", Author: "Someone"}
	card := RenderQuoteCard("Quote of the Day", q, 40)

	for _, want := range []string{"Quote of the Day", "Short and sweet.", "- Someone"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}
	for _, line := range strings.Split(card, "\n") {
		if w := len([]rune(stripANSI(line))); w > 40 {
			t.Errorf("card line is %d cells wide, want <= 40: %q", w, line)
		}
	}
}

// stripANSI drops CSI escape sequences.
func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEsc = false
		case !inEsc:
			b.WriteRune(r)
		}
	}
	return b.String()
}
