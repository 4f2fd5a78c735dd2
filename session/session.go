// Package session ties the round engine to the persistent stores: it seats
// players out of the registry, runs rounds, reports wins to the leaderboard,
// and flushes balances back at every round boundary.
package session

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/N1troZeuZ/BJProgram/domain/blackjack"
	"github.com/N1troZeuZ/BJProgram/store"
)

// Bot seat count limits for AddBots.
const (
	MinBots = 1
	MaxBots = 5
)

// Session is one sitting at the casino: a deck that lives across rounds, the
// seated players, and the stores everything reconciles against. All stores
// are passed in at construction; the session never reaches for globals.
type Session struct {
	registry *store.Registry
	board    *store.Leaderboard
	active   *store.ActiveSeat

	starting int
	deck     *blackjack.Deck
	players  []*blackjack.Player
	log      *slog.Logger
}

func New(registry *store.Registry, board *store.Leaderboard, active *store.ActiveSeat, startingBalance int, log *slog.Logger) *Session {
	if log == nil {
		log = slog.Default()
	}
	return &Session{
		registry: registry,
		board:    board,
		active:   active,
		starting: startingBalance,
		deck:     blackjack.NewDeck(),
		log:      log,
	}
}

// Players returns the seats in seating order (human first, then bots).
func (s *Session) Players() []*blackjack.Player {
	return s.players
}

// Human returns the seated human player, or nil when no human is seated.
func (s *Session) Human() *blackjack.Player {
	for _, p := range s.players {
		if !p.IsAI {
			return p
		}
	}
	return nil
}

// Roster returns the full persistent registry, seated or not.
func (s *Session) Roster() map[string]store.PlayerRecord {
	return s.registry.Load()
}

// Create registers a new player with the starting balance and seats them as
// the active human. Fails if the name is empty or already registered.
func (s *Session) Create(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("player name must not be empty")
	}
	records := s.registry.Load()
	if _, ok := records[name]; ok {
		return fmt.Errorf("player %q already exists", name)
	}
	records[name] = store.PlayerRecord{Balance: s.starting}
	if err := s.registry.Save(records); err != nil {
		return err
	}
	return s.Select(name)
}

// Select seats the named player as the active human, loading their persisted
// balance, and persists the active-seat pointer. A player with no chips left
// cannot be seated: they could never place a legal bet.
func (s *Session) Select(name string) error {
	records := s.registry.Load()
	rec, ok := records[name]
	if !ok {
		return fmt.Errorf("no player named %q", name)
	}
	if rec.Balance <= 0 {
		return fmt.Errorf("%q has no chips left", name)
	}
	s.unseatHuman()
	seat := &blackjack.Player{Name: name, Balance: rec.Balance}
	s.players = append([]*blackjack.Player{seat}, s.players...)
	return s.active.Save(name)
}

// Delete removes the named player from the persistent registry, unseats them
// if seated, and clears the active-seat pointer if it named them.
func (s *Session) Delete(name string) error {
	records := s.registry.Load()
	if _, ok := records[name]; !ok {
		return fmt.Errorf("no player named %q", name)
	}
	delete(records, name)
	if err := s.registry.Save(records); err != nil {
		return err
	}
	for i, p := range s.players {
		if !p.IsAI && p.Name == name {
			s.players = append(s.players[:i], s.players[i+1:]...)
			break
		}
	}
	if s.active.Load() == name {
		return s.active.Clear()
	}
	return nil
}

// AddBots seats count freshly named AI players, each with the starting
// balance. Bots are session-scoped: they are never written to the registry.
func (s *Session) AddBots(count int) error {
	if count < MinBots || count > MaxBots {
		return fmt.Errorf("bot count must be between %d and %d", MinBots, MaxBots)
	}
	for i := 0; i < count; i++ {
		name := "Bot-" + uuid.NewString()[:8]
		s.players = append(s.players, &blackjack.Player{
			Name:    name,
			Balance: s.starting,
			IsAI:    true,
		})
	}
	return nil
}

// RestoreActive re-seats the player named by the persisted active-seat
// pointer, if any. Returns the seated name, or "" when there was none or
// seating failed.
func (s *Session) RestoreActive() string {
	name := s.active.Load()
	if name == "" {
		return ""
	}
	if err := s.Select(name); err != nil {
		s.log.Warn("could not restore active player", "player", name, "error", err)
		return ""
	}
	return name
}

// PlayRound runs one full round at a table sharing the session deck, then
// settles the books: wins go to the leaderboard, balances are merged back
// into the registry, and broke seats leave the table.
func (s *Session) PlayRound(prompter blackjack.Prompter, observer blackjack.Observer, pace func()) ([]blackjack.Result, error) {
	table := blackjack.NewTable(s.deck, s.players, prompter, s.log)
	table.Observer = observer
	table.Pace = pace

	results, err := table.PlayRound()
	if err != nil {
		return nil, err
	}

	for _, r := range results {
		if net := r.NetWin(); net > 0 {
			s.board.RecordWin(r.Player, net)
		}
	}
	if err := s.board.Save(); err != nil {
		s.log.Warn("leaderboard save failed", "error", err)
	}
	s.reconcile()
	s.prune()
	return results, nil
}

// Leaderboard returns the ranked cross-session standings.
func (s *Session) Leaderboard() []store.Entry {
	return s.board.Ranked()
}

// reconcile merges the seated human balances into the full registry document
// and rewrites it. Read-merge-write, because the registry can hold players
// who are not at this table.
func (s *Session) reconcile() {
	records := s.registry.Load()
	for _, p := range s.players {
		if !p.IsAI {
			records[p.Name] = store.PlayerRecord{Balance: p.Balance}
		}
	}
	if err := s.registry.Save(records); err != nil {
		s.log.Warn("registry save failed", "error", err)
	}
}

// prune removes seats whose balance dropped to zero or below.
func (s *Session) prune() {
	var kept []*blackjack.Player
	for _, p := range s.players {
		if p.Broke() {
			s.log.Info("player is out of chips and leaves the table", "player", p.Name)
			continue
		}
		kept = append(kept, p)
	}
	s.players = kept
}

func (s *Session) unseatHuman() {
	for i, p := range s.players {
		if !p.IsAI {
			s.players = append(s.players[:i], s.players[i+1:]...)
			return
		}
	}
}
