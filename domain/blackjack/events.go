package blackjack

// DealerSeat is the seat label used in events for cards dealt to the dealer.
const DealerSeat = "Dealer"

// Outcome is a seat's result once the round is resolved.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomePush Outcome = "push"
	OutcomeBust Outcome = "bust"
)

// Result is the resolution of one seat for one round. Payout is what was
// returned to the balance: 0 on a loss or bust, the bet on a push, twice
// the bet on a win.
type Result struct {
	Player      string
	Outcome     Outcome
	Bet         int
	Payout      int
	PlayerScore int
	DealerScore int
}

// NetWin is the amount the leaderboard accumulates for this result: the bet
// on a win, zero otherwise.
func (r Result) NetWin() int {
	if r.Outcome == OutcomeWin {
		return r.Bet
	}
	return 0
}

// Observer receives table state transitions so a presentation layer can
// render the round as it unfolds. The table calls exactly one of
// PlayerBusted or TurnEnded per seat per round.
type Observer interface {
	// CardDealt fires for every card leaving the deck. hidden marks the
	// dealer's hole card.
	CardDealt(seat string, card Card, hidden bool)
	// DeckReshuffled fires when an empty deck was rebuilt to satisfy a
	// draw; remaining is the deck size after that draw.
	DeckReshuffled(remaining int)
	PlayerBusted(name string, score int)
	TurnEnded(name string, hand Hand)
	RoundResolved(dealer Hand, results []Result)
}

type nopObserver struct{}

func (nopObserver) CardDealt(string, Card, bool) {}
func (nopObserver) DeckReshuffled(int)           {}
func (nopObserver) PlayerBusted(string, int)     {}
func (nopObserver) TurnEnded(string, Hand)       {}
func (nopObserver) RoundResolved(Hand, []Result) {}
