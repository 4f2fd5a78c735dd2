package store

import "log/slog"

// PlayerRecord is one entry of the registry document.
type PlayerRecord struct {
	Balance int `json:"balance"`
}

// Registry is the persistent mapping from player name to balance. It may
// contain players who are not seated in the current session, so balance
// updates go through a read-merge-write of the full document.
type Registry struct {
	path string
	log  *slog.Logger
}

func NewRegistry(path string, log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{path: path, log: log}
}

// Load returns the full registry. A missing document is an empty registry;
// a corrupt one is logged, treated as empty, and replaced on the next save.
func (r *Registry) Load() map[string]PlayerRecord {
	records := map[string]PlayerRecord{}
	if _, err := readDocument(r.path, &records); err != nil {
		r.log.Warn("player registry unreadable, starting empty", "path", r.path, "error", err)
		return map[string]PlayerRecord{}
	}
	return records
}

// Save rewrites the whole registry document.
func (r *Registry) Save(records map[string]PlayerRecord) error {
	return writeDocument(r.path, records)
}
