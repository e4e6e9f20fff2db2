package journal

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"ea-mcp-go/internal/storage"
)

// DefaultDirName is the journal storage directory under the user's home.
const DefaultDirName = ".ea-journal"

// Store persists journal entries as one JSON array file per UTC day.
type Store struct {
	dir string
	now func() time.Time
	log *zap.Logger
}

// NewStore opens (creating if needed) the journal storage directory.
// An empty dir selects the default under the user's home directory.
func NewStore(dir string, log *zap.Logger) (*Store, error) {
	resolved, err := storage.EnsureDir(DefaultDirName, dir)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{dir: resolved, now: time.Now, log: log}, nil
}

// Dir returns the storage directory path.
func (s *Store) Dir() string { return s.dir }

// Now returns the current UTC time.
func (s *Store) Now() time.Time { return s.now().UTC() }

func (s *Store) dayPath(day time.Time) string {
	return filepath.Join(s.dir, day.UTC().Format("2006-01-02")+".json")
}

// LoadDay returns the entries for a calendar day. A missing, unreadable,
// or corrupt day file yields an empty list; a damaged single day must not
// break aggregate views.
func (s *Store) LoadDay(day time.Time) []Entry {
	var entries []Entry
	storage.Load(s.dayPath(day), &entries, s.log)
	return entries
}

// SaveDay overwrites a calendar day's file with entries.
func (s *Store) SaveDay(day time.Time, entries []Entry) error {
	return storage.Save(s.dayPath(day), entries)
}

// DayCount returns how many daily files exist in storage.
func (s *Store) DayCount() int {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return 0
	}
	return len(matches)
}
