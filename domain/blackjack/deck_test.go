package blackjack

import "testing"

func TestNewDeck_FiftyTwoUniqueCards(t *testing.T) {
	d := NewDeck()

	if got := d.Remaining(); got != 52 {
		t.Fatalf("expected 52 cards, got %d", got)
	}
	seen := map[Card]bool{}
	for d.Remaining() > 0 {
		c, reshuffled := d.Draw()
		if reshuffled {
			t.Fatal("unexpected reshuffle while the deck still had cards")
		}
		if seen[c] {
			t.Fatalf("card %v drawn twice from one deck", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected 52 distinct cards, got %d", len(seen))
	}
}

func TestDraw_PopsTheLastCard(t *testing.T) {
	top := mustCard(t, Heart, Ace)
	d := &Deck{cards: []Card{mustCard(t, Spade, 2), top}}

	c, reshuffled := d.Draw()
	if reshuffled {
		t.Fatal("unexpected reshuffle")
	}
	if c != top {
		t.Fatalf("expected the last card %v, got %v", top, c)
	}
	if got := d.Remaining(); got != 1 {
		t.Fatalf("expected 1 remaining, got %d", got)
	}
}

func TestDraw_EmptyDeckReshufflesFirst(t *testing.T) {
	d := &Deck{}

	_, reshuffled := d.Draw()
	if !reshuffled {
		t.Fatal("expected the empty deck to report a reshuffle")
	}
	if got := d.Remaining(); got != 51 {
		t.Fatalf("expected 51 cards after the post-reshuffle draw, got %d", got)
	}
}

func TestDraw_ReshuffleYieldsFullFreshDeck(t *testing.T) {
	d := &Deck{}

	seen := map[Card]bool{}
	c, _ := d.Draw()
	seen[c] = true
	for d.Remaining() > 0 {
		c, _ := d.Draw()
		if seen[c] {
			t.Fatalf("card %v appeared twice in one deck generation", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Fatalf("expected the rebuilt deck to hold 52 distinct cards, got %d", len(seen))
	}
}
