package memory

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"ea-mcp-go/internal/storage"
)

const (
	// DefaultDirName is the per-user storage directory under $HOME.
	DefaultDirName = ".ea-memory"

	storeFile = "memories.json"
)

// Store persists memories in a single JSON document.
type Store struct {
	dir string
	now func() time.Time
	log *zap.Logger
}

// NewStore opens (creating if needed) the storage directory. dir overrides
// the default location when non-empty.
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

// Dir returns the resolved storage directory.
func (s *Store) Dir() string { return s.dir }

// Now returns the current time in UTC.
func (s *Store) Now() time.Time { return s.now().UTC() }

func (s *Store) path() string {
	return filepath.Join(s.dir, storeFile)
}

// load reads the memory document, treating missing or corrupt files as an
// empty store so a bad file never takes the server down.
func (s *Store) load() document {
	var doc document
	storage.Load(s.path(), &doc, s.log)
	if doc.NextID < 1 {
		doc.NextID = 1
	}
	return doc
}

func (s *Store) save(doc document) error {
	return storage.Save(s.path(), doc)
}
