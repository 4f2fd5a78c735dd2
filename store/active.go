package store

import "log/slog"

type activeDocument struct {
	CurrentPlayer *string `json:"current_player"`
}

// ActiveSeat persists which human player name is the current seat. It is
// independent of the registry and may be empty (no active player).
type ActiveSeat struct {
	path string
	log  *slog.Logger
}

func NewActiveSeat(path string, log *slog.Logger) *ActiveSeat {
	if log == nil {
		log = slog.Default()
	}
	return &ActiveSeat{path: path, log: log}
}

// Load returns the persisted player name, or "" when no seat is active or
// the document is missing or corrupt.
func (a *ActiveSeat) Load() string {
	var doc activeDocument
	if _, err := readDocument(a.path, &doc); err != nil {
		a.log.Warn("active seat pointer unreadable, clearing", "path", a.path, "error", err)
		return ""
	}
	if doc.CurrentPlayer == nil {
		return ""
	}
	return *doc.CurrentPlayer
}

// Save persists name as the active seat.
func (a *ActiveSeat) Save(name string) error {
	return writeDocument(a.path, activeDocument{CurrentPlayer: &name})
}

// Clear persists the no-active-seat state.
func (a *ActiveSeat) Clear() error {
	return writeDocument(a.path, activeDocument{})
}
