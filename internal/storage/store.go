// Package storage implements the whole-file JSON persistence shared by the
// three EA servers. Every store is a small document (or set of documents)
// that is loaded in full, mutated in memory, and written back in full.
//
// Reads are repairing: a missing, unreadable, or corrupt file yields the
// caller's zero value instead of an error, so a damaged document degrades
// to "no data" rather than blocking the tool. Writes go through a temp
// file and rename so a crash mid-write never leaves a truncated document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
)

// TimeLayout is the timestamp format persisted in every document. It is
// fixed-width UTC so that comparing timestamps as strings is equivalent to
// comparing them chronologically.
const TimeLayout = "2006-01-02T15:04:05Z"

// Timestamp formats t as a persisted timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// EnsureDir resolves a service storage directory, creating it if absent.
// When override is empty the directory defaults to <home>/<defaultName>.
func EnsureDir(defaultName, override string) (string, error) {
	dir := override
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: resolve home dir: %w", err)
		}
		dir = filepath.Join(home, defaultName)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create %s: %w", dir, err)
	}
	return dir, nil
}

// Load reads the JSON document at path into v. It reports whether the
// document was actually loaded; on a missing file it returns false
// silently, and on a read or decode failure it returns false after
// logging, leaving v untouched. Callers keep their zero value either way.
func Load(path string, v any, log *zap.Logger) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && log != nil {
			log.Warn("unreadable document, treating as empty",
				zap.String("path", path), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		if log != nil {
			log.Warn("corrupt document, treating as empty",
				zap.String("path", path), zap.Error(err))
		}
		return false
	}
	return true
}

// Save writes v as indented JSON to path. The document is written to a
// sibling temp file first and renamed into place.
func Save(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encode %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("storage: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("storage: rename %s: %w", path, err)
	}
	return nil
}
