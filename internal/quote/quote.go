// Package quote picks the quote of the day from a fixed collection.
package quote

import (
	"fmt"
	"math/rand"
	"time"
)

// Quote is a single attributed quotation.
type Quote struct {
	Text   string
	Author string
}

// String formats the quote on one line.
func (q Quote) String() string {
	return fmt.Sprintf("%q - %s", q.Text, q.Author)
}

var quotes = []Quote{
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Innovation distinguishes between a leader and a follower.", "Steve Jobs"},
	{"Life is what happens to you while you're busy making other plans.", "John Lennon"},
	{"The future belongs to those who believe in the beauty of their dreams.", "Eleanor Roosevelt"},
	{"It is during our darkest moments that we must focus to see the light.", "Aristotle"},
	{"Success is not final, failure is not fatal: it is the courage to continue that counts.", "Winston Churchill"},
	{"The only impossible journey is the one you never begin.", "Tony Robbins"},
	{"In the middle of difficulty lies opportunity.", "Albert Einstein"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"The only person you are destined to become is the person you decide to be.", "Ralph Waldo Emerson"},
}

// dateKeyLayout renders a day as e.g. "Sat Oct 17 2026".
const dateKeyLayout = "Mon Jan 02 2006"

// All returns a copy of the collection.
func All() []Quote {
	return append([]Quote(nil), quotes...)
}

// DateKey returns the string the daily index is derived from.
// The calendar day is taken in t's own location.
func DateKey(t time.Time) string {
	return t.Format(dateKeyLayout)
}

// Index returns the collection index for the day containing t: the sum of the
// bytes of DateKey(t) modulo the collection size.
func Index(t time.Time) int {
	sum := 0
	for _, b := range []byte(DateKey(t)) {
		sum += int(b)
	}
	return sum % len(quotes)
}

// ForDate returns the quote for the day containing t.
func ForDate(t time.Time) Quote {
	return quotes[Index(t)]
}

// Today returns the quote for the current local day.
func Today() Quote {
	return ForDate(time.Now())
}

// Random returns a uniformly chosen quote.
func Random(rng *rand.Rand) Quote {
	return quotes[rng.Intn(len(quotes))]
}
