// Package store holds the three persisted documents the game keeps between
// runs: the player registry, the leaderboard, and the active-seat pointer.
// Each store is an explicit value constructed with a file path and a logger
// and passed to whoever needs it; there are no package-level singletons.
//
// Writes replace the whole document atomically (write to a temp file, then
// rename). A missing or unparseable document is never fatal: it reads as
// empty and is overwritten by the next save.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// writeDocument marshals v and atomically replaces the file at path with it.
func writeDocument(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	return writeRaw(path, data)
}

func writeRaw(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(tmp), err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}
	return nil
}

// readDocument reads the file at path into v. It reports found=false when
// the file does not exist and an error only when the content is unreadable
// or unparseable; callers downgrade that to a warning plus a default value.
func readDocument(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return true, nil
}
