package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
)

// Entry is one leaderboard row: a player and their cumulative net winnings
// across every round they ever won.
type Entry struct {
	Name string
	Won  int
}

// Leaderboard is the persistent mapping from player name to cumulative net
// winnings. Amounts only ever accumulate; they are independent of balances
// and of who is seated. Ranking ties break by the order players first made
// the board, so the document is written and re-read in that order.
type Leaderboard struct {
	path   string
	log    *slog.Logger
	names  []string
	totals map[string]int
}

// NewLeaderboard loads the leaderboard document at path. A missing document
// is an empty board; a corrupt one is logged, treated as empty, and replaced
// on the next save.
func NewLeaderboard(path string, log *slog.Logger) *Leaderboard {
	if log == nil {
		log = slog.Default()
	}
	l := &Leaderboard{path: path, log: log, totals: map[string]int{}}
	if err := l.load(); err != nil {
		l.log.Warn("leaderboard unreadable, starting empty", "path", path, "error", err)
		l.names = nil
		l.totals = map[string]int{}
	}
	return l
}

// RecordWin adds net to the player's cumulative winnings, creating the entry
// at zero first if absent.
func (l *Leaderboard) RecordWin(name string, net int) {
	if _, ok := l.totals[name]; !ok {
		l.names = append(l.names, name)
		l.totals[name] = 0
	}
	l.totals[name] += net
}

// Ranked returns the board ordered by winnings descending, ties in
// first-recorded order.
func (l *Leaderboard) Ranked() []Entry {
	entries := make([]Entry, 0, len(l.names))
	for _, name := range l.names {
		entries = append(entries, Entry{Name: name, Won: l.totals[name]})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Won > entries[j].Won
	})
	return entries
}

// Save rewrites the leaderboard document, keys in first-recorded order.
func (l *Leaderboard) Save() error {
	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, name := range l.names {
		key, err := json.Marshal(name)
		if err != nil {
			return fmt.Errorf("encode leaderboard key: %w", err)
		}
		fmt.Fprintf(&buf, "  %s: %d", key, l.totals[name])
		if i < len(l.names)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString("}\n")
	return writeRaw(l.path, buf.Bytes())
}

// load parses the document with a token decoder instead of a map so the
// original key order survives the round trip.
func (l *Leaderboard) load() error {
	data, err := os.ReadFile(l.path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != json.Delim('{') {
		return fmt.Errorf("leaderboard document is not an object")
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("leaderboard key is not a string")
		}
		var won int
		if err := dec.Decode(&won); err != nil {
			return err
		}
		l.names = append(l.names, name)
		l.totals[name] = won
	}
	return nil
}
