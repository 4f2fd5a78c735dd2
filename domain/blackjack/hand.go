package blackjack

import "strings"

// HandKind classifies a hand for display and payout commentary.
type HandKind string

const (
	Natural HandKind = "natural" // exactly two cards scoring 21
	Hard    HandKind = "hard"    // no aces in the hand
	Soft    HandKind = "soft"    // an ace present and the hand not busted
	Plain   HandKind = "plain"
)

// Hand is the ordered sequence of cards held by one party during a round.
// Order only matters for display; scoring is over the card multiset.
type Hand struct {
	Cards   []Card
	Doubled bool
}

// Add appends a dealt card to the hand.
func (h *Hand) Add(c Card) {
	h.Cards = append(h.Cards, c)
}

// Score returns the hand value with aces adjusted: every ace counts 11
// until the total exceeds 21, then aces are re-valued at 1 one by one.
// The result is the highest total ≤ 21 reachable this way, or the minimal
// total if even all-aces-low busts. An empty hand scores 0.
func (h Hand) Score() int {
	score := 0
	aces := 0
	for _, c := range h.Cards {
		score += c.Value()
		if c.Rank() == Ace {
			aces++
		}
	}
	for score > 21 && aces > 0 {
		score -= 10
		aces--
	}
	return score
}

// Kind classifies the hand. Priority order: natural, then hard (no aces),
// then soft (ace present, not busted), otherwise plain. An empty hand is hard.
func (h Hand) Kind() HandKind {
	score := h.Score()
	if len(h.Cards) == 2 && score == 21 {
		return Natural
	}
	aces := 0
	for _, c := range h.Cards {
		if c.Rank() == Ace {
			aces++
		}
	}
	if aces == 0 {
		return Hard
	}
	if score <= 21 {
		return Soft
	}
	return Plain
}

// Busted reports whether the hand value exceeds 21.
func (h Hand) Busted() bool {
	return h.Score() > 21
}

// String returns the cards joined for display, e.g. "A♠  10♥".
func (h Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, "  ")
}
