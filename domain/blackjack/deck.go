package blackjack

import (
	"math/rand"
)

// Deck is an ordered pile of cards treated as a stack: draws pop the last
// card. A card lives in exactly one place at a time, either in the deck or
// in the hand it was dealt to.
type Deck struct {
	cards []Card
}

// NewDeck returns a full 52-card deck in uniformly random order.
func NewDeck() *Deck {
	d := &Deck{}
	d.rebuild()
	return d
}

// Draw removes and returns the top card. If the deck is empty it is first
// rebuilt as a fresh shuffled 52-card deck and the second return value is
// true, so callers can surface the reshuffle to the players.
func (d *Deck) Draw() (Card, bool) {
	reshuffled := false
	if len(d.cards) == 0 {
		d.rebuild()
		reshuffled = true
	}
	c := d.cards[len(d.cards)-1]
	d.cards = d.cards[:len(d.cards)-1]
	return c, reshuffled
}

// Remaining returns the number of cards left in the deck.
func (d *Deck) Remaining() int {
	return len(d.cards)
}

func (d *Deck) rebuild() {
	cards := make([]Card, 0, 52)
	for suit := uint8(Club); suit <= Spade; suit++ {
		for rank := uint8(Ace); rank <= King; rank++ {
			c, err := NewCard(suit, rank)
			if err != nil {
				panic(err)
			}
			cards = append(cards, c)
		}
	}
	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	d.cards = cards
}
