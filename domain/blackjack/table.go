package blackjack

import (
	"fmt"
	"log/slog"
)

// Prompter supplies the two inputs the engine cannot produce itself: a bet
// amount and an action for a human seat. Returned values are raw; the table
// validates them and asks again until they are legal.
type Prompter interface {
	Bet(name string, balance int) int
	Action(v TurnView) Action
}

// Table runs one hand of blackjack at a time for every seated player against
// the dealer. It owns the deck and the dealer's hand; player balances are
// mutated in place and reconciled to the registry by the session layer.
type Table struct {
	Deck    *Deck
	Dealer  Hand
	Players []*Player

	// Observer, when set, receives every state transition. Pace, when set,
	// is called before each AI or dealer action; it carries no semantics.
	Observer Observer
	Pace     func()

	prompter Prompter
	log      *slog.Logger
}

// NewTable seats players at a fresh table sharing the given deck. The deck
// outlives rounds, so cards keep running out mid-round and triggering
// visible reshuffles.
func NewTable(deck *Deck, players []*Player, prompter Prompter, log *slog.Logger) *Table {
	if log == nil {
		log = slog.Default()
	}
	return &Table{
		Deck:     deck,
		Players:  players,
		prompter: prompter,
		log:      log,
	}
}

// PlayRound runs one complete round: deal, every player's turn in seating
// order, the dealer's turn if anyone is still standing, and resolution.
// It returns the per-seat results in seating order.
func (t *Table) PlayRound() ([]Result, error) {
	if len(t.Players) == 0 {
		return nil, fmt.Errorf("no seated players")
	}

	t.deal()
	for _, p := range t.Players {
		t.playTurn(p)
	}
	if t.anyStanding() {
		t.dealerTurn()
	}
	return t.resolve(), nil
}

// deal discards last round's hands and gives every player and the dealer two
// cards: one full pass across the table per card, players in seating order
// first, dealer last. The dealer's second card stays face down.
func (t *Table) deal() {
	t.Dealer = Hand{}
	for _, p := range t.Players {
		p.Hand = Hand{}
	}
	for pass := 0; pass < 2; pass++ {
		for _, p := range t.Players {
			t.dealTo(&p.Hand, p.Name, false)
		}
		t.dealTo(&t.Dealer, DealerSeat, pass == 1)
	}
}

func (t *Table) dealTo(h *Hand, seat string, hidden bool) {
	c, reshuffled := t.Deck.Draw()
	if reshuffled {
		t.log.Info("deck exhausted, reshuffling", "remaining", t.Deck.Remaining())
		t.observer().DeckReshuffled(t.Deck.Remaining())
	}
	h.Add(c)
	t.observer().CardDealt(seat, c, hidden)
}

// playTurn solicits the player's wager if absent, then runs the action loop
// until stand, bust, or a double-down. Invalid inputs are rejected and the
// loop re-presented; nothing a player does can abort the round for the rest
// of the table.
func (t *Table) playTurn(p *Player) {
	t.placeWager(p)

	for {
		// Nothing improves a 21; the turn ends without soliciting an action.
		if p.Hand.Score() == 21 {
			t.observer().TurnEnded(p.Name, p.Hand)
			return
		}

		v := TurnView{
			Name:      p.Name,
			Hand:      p.Hand,
			DealerUp:  t.Dealer.Cards[0],
			Balance:   p.Balance,
			Bet:       p.Wager.Amount,
			CanDouble: t.canDouble(p),
		}

		var act Action
		if p.IsAI {
			t.pace()
			act = aiPolicy.Decide(v)
		} else {
			act = t.prompter.Action(v)
		}

		switch act {
		case ActionHit:
			t.dealTo(&p.Hand, p.Name, false)
			if p.Hand.Busted() {
				t.observer().PlayerBusted(p.Name, p.Hand.Score())
				return
			}
		case ActionStand:
			t.observer().TurnEnded(p.Name, p.Hand)
			return
		case ActionDouble:
			if !t.canDouble(p) {
				t.log.Warn("double-down rejected", "player", p.Name, "balance", p.Balance, "bet", p.Wager.Amount)
				continue
			}
			p.Balance -= p.Wager.Amount
			p.Wager.Amount *= 2
			p.Hand.Doubled = true
			t.dealTo(&p.Hand, p.Name, false)
			if p.Hand.Busted() {
				t.observer().PlayerBusted(p.Name, p.Hand.Score())
			} else {
				t.observer().TurnEnded(p.Name, p.Hand)
			}
			return
		default:
			t.log.Warn("unknown action, asking again", "player", p.Name, "action", string(act))
		}
	}
}

// placeWager takes the bet for the round. AI seats bet min(100, balance);
// humans are prompted until 0 < bet ≤ balance holds. The amount is deducted
// from the balance immediately and held in the wager.
func (t *Table) placeWager(p *Player) {
	if p.Wager != nil {
		return
	}
	var amount int
	if p.IsAI {
		amount = min(aiBetCap, p.Balance)
	} else {
		for {
			amount = t.prompter.Bet(p.Name, p.Balance)
			if amount > 0 && amount <= p.Balance {
				break
			}
			t.log.Warn("illegal bet, asking again", "player", p.Name, "bet", amount, "balance", p.Balance)
		}
	}
	p.Balance -= amount
	p.Wager = &Wager{Amount: amount}
}

// canDouble reports whether doubling down is legal for the seat right now:
// human seat, not yet doubled, and enough balance left for a second bet of
// the same size.
func (t *Table) canDouble(p *Player) bool {
	return !p.IsAI && !p.Hand.Doubled && p.Balance >= p.Wager.Amount
}

func (t *Table) anyStanding() bool {
	for _, p := range t.Players {
		if !p.Hand.Busted() {
			return true
		}
	}
	return false
}

// dealerTurn plays the dealer's fixed policy: hit while the score is below
// 17, then stand.
func (t *Table) dealerTurn() {
	for t.Dealer.Score() < 17 {
		t.pace()
		t.dealTo(&t.Dealer, DealerSeat, false)
	}
}

// resolve settles every seat independently against the dealer and clears the
// wagers. Payouts: win pays twice the bet back, push refunds the bet, loss
// and bust pay nothing (the bet was already deducted).
func (t *Table) resolve() []Result {
	dealerScore := t.Dealer.Score()
	results := make([]Result, 0, len(t.Players))
	for _, p := range t.Players {
		r := Result{
			Player:      p.Name,
			Bet:         p.Wager.Amount,
			PlayerScore: p.Hand.Score(),
			DealerScore: dealerScore,
		}
		switch {
		case p.Hand.Busted():
			r.Outcome = OutcomeBust
		case dealerScore > 21 || r.PlayerScore > dealerScore:
			r.Outcome = OutcomeWin
			r.Payout = 2 * r.Bet
		case r.PlayerScore < dealerScore:
			r.Outcome = OutcomeLoss
		default:
			r.Outcome = OutcomePush
			r.Payout = r.Bet
		}
		p.Balance += r.Payout
		p.Wager = nil
		results = append(results, r)
	}
	t.observer().RoundResolved(t.Dealer, results)
	return results
}

func (t *Table) observer() Observer {
	if t.Observer != nil {
		return t.Observer
	}
	return nopObserver{}
}

func (t *Table) pace() {
	if t.Pace != nil {
		t.Pace()
	}
}
