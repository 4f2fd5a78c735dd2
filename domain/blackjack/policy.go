package blackjack

// Action is a player's choice during the action loop.
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionDouble Action = "double"
)

// TurnView is the state a policy is allowed to see when deciding: its own
// hand, the dealer's face-up card, and the money on the line.
type TurnView struct {
	Name      string
	Hand      Hand
	DealerUp  Card
	Balance   int
	Bet       int
	CanDouble bool
}

// Policy decides the next action for a seat. The table validates every
// returned action, so a policy may return an illegal one and simply be
// asked again.
type Policy interface {
	Decide(v TurnView) Action
}

// ThresholdPolicy hits while the hand scores below Threshold and stands
// otherwise. It never doubles. With Threshold 17 it is both the fixed house
// rule for the dealer and the AI seat policy.
type ThresholdPolicy struct {
	Threshold int
}

func (p ThresholdPolicy) Decide(v TurnView) Action {
	if v.Hand.Score() < p.Threshold {
		return ActionHit
	}
	return ActionStand
}

// aiPolicy is the fixed, non-configurable policy for AI seats.
var aiPolicy = ThresholdPolicy{Threshold: 17}

// aiBetCap is the most an AI seat will wager in one round; it bets
// min(aiBetCap, balance).
const aiBetCap = 100
