package blackjack

// Wager is the money a player has committed to the current round. It exists
// only while a round is active; a nil wager means no bet has been placed.
type Wager struct {
	Amount int
}

// Player is one seat at the table. Balance is the persistent bankroll;
// Hand and Wager are round-scoped and reset at round boundaries.
type Player struct {
	Name    string
	Balance int
	IsAI    bool
	Hand    Hand
	Wager   *Wager
}

// Broke reports whether the player can no longer play and must leave the
// session.
func (p *Player) Broke() bool {
	return p.Balance <= 0
}
