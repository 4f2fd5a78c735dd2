package blackjack

import "testing"

func mustCard(t *testing.T, suit, rank uint8) Card {
	t.Helper()
	c, err := NewCard(suit, rank)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestScore_TenAndAceIsNatural(t *testing.T) {
	h := Hand{Cards: []Card{mustCard(t, Heart, 10), mustCard(t, Spade, Ace)}}

	if got := h.Score(); got != 21 {
		t.Fatalf("expected score 21, got %d", got)
	}
	if got := h.Kind(); got != Natural {
		t.Fatalf("expected natural, got %s", got)
	}
}

func TestScore_NoAcesBusts(t *testing.T) {
	h := Hand{Cards: []Card{mustCard(t, Heart, 10), mustCard(t, Diamond, 6), mustCard(t, Club, 9)}}

	if got := h.Score(); got != 25 {
		t.Fatalf("expected score 25, got %d", got)
	}
	if !h.Busted() {
		t.Fatal("expected hand to be busted")
	}
}

func TestScore_TwoAcesReduceToTwentyOne(t *testing.T) {
	h := Hand{Cards: []Card{mustCard(t, Heart, Ace), mustCard(t, Diamond, Ace), mustCard(t, Club, 9)}}

	if got := h.Score(); got != 21 {
		t.Fatalf("expected score 21, got %d", got)
	}
	if got := h.Kind(); got != Soft {
		t.Fatalf("expected soft, got %s", got)
	}
}

func TestScore_AllAcesLowWhenForced(t *testing.T) {
	// A A A K Q: 11+1+1+10+10 would be 33, the minimal total is 1+1+1+10+10.
	h := Hand{Cards: []Card{
		mustCard(t, Heart, Ace), mustCard(t, Diamond, Ace), mustCard(t, Club, Ace),
		mustCard(t, Spade, King), mustCard(t, Heart, Queen),
	}}

	if got := h.Score(); got != 23 {
		t.Fatalf("expected score 23, got %d", got)
	}
	if got := h.Kind(); got != Plain {
		t.Fatalf("expected plain, got %s", got)
	}
}

func TestScore_EmptyHandIsHardZero(t *testing.T) {
	h := Hand{}

	if got := h.Score(); got != 0 {
		t.Fatalf("expected score 0, got %d", got)
	}
	if got := h.Kind(); got != Hard {
		t.Fatalf("expected hard, got %s", got)
	}
}

func TestKind_TwoCardTwentyOneBeatsSoft(t *testing.T) {
	// A+10 is soft by the ace rule but must classify natural first.
	h := Hand{Cards: []Card{mustCard(t, Spade, Ace), mustCard(t, Heart, King)}}

	if got := h.Kind(); got != Natural {
		t.Fatalf("expected natural, got %s", got)
	}
}

func TestKind_NoAcesIsHard(t *testing.T) {
	h := Hand{Cards: []Card{mustCard(t, Heart, 10), mustCard(t, Diamond, 7)}}

	if got := h.Kind(); got != Hard {
		t.Fatalf("expected hard, got %s", got)
	}
}

func TestScore_FaceCardsCountTen(t *testing.T) {
	h := Hand{Cards: []Card{mustCard(t, Heart, Jack), mustCard(t, Diamond, Queen), mustCard(t, Club, King)}}

	if got := h.Score(); got != 30 {
		t.Fatalf("expected score 30, got %d", got)
	}
}
