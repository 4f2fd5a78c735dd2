package blackjack

import "testing"

func TestThresholdPolicy_HitsBelowSeventeen(t *testing.T) {
	p := ThresholdPolicy{Threshold: 17}
	v := TurnView{Hand: Hand{Cards: []Card{mustCard(t, Heart, 10), mustCard(t, Spade, 6)}}}

	if got := p.Decide(v); got != ActionHit {
		t.Fatalf("expected hit on 16, got %s", got)
	}
}

func TestThresholdPolicy_StandsAtSeventeen(t *testing.T) {
	p := ThresholdPolicy{Threshold: 17}
	v := TurnView{Hand: Hand{Cards: []Card{mustCard(t, Heart, 10), mustCard(t, Spade, 7)}}}

	if got := p.Decide(v); got != ActionStand {
		t.Fatalf("expected stand on 17, got %s", got)
	}
}

func TestThresholdPolicy_SoftHandsUseAdjustedScore(t *testing.T) {
	p := ThresholdPolicy{Threshold: 17}
	// A+7 is soft 18: stand.
	v := TurnView{Hand: Hand{Cards: []Card{mustCard(t, Heart, Ace), mustCard(t, Spade, 7)}}}

	if got := p.Decide(v); got != ActionStand {
		t.Fatalf("expected stand on soft 18, got %s", got)
	}
}
