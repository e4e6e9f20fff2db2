package prompts

import (
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"ea-mcp-go/internal/storage"
)

const (
	// DefaultDirName is the per-user storage directory under $HOME.
	DefaultDirName = ".ea-prompts"

	storeFile = "custom_prompts.json"
)

// Store persists custom prompt templates. Built-ins never touch disk.
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

// loadCustom reads the custom templates, treating missing or corrupt files
// as an empty library.
func (s *Store) loadCustom() map[string]Template {
	custom := map[string]Template{}
	if !storage.Load(s.path(), &custom, s.log) {
		return map[string]Template{}
	}
	return custom
}

func (s *Store) saveCustom(custom map[string]Template) error {
	return storage.Save(s.path(), custom)
}

// Lookup resolves a prompt by name, custom templates shadowing built-ins.
func (s *Store) Lookup(name string) (Template, bool) {
	if t, ok := s.loadCustom()[name]; ok {
		return t, true
	}
	t, ok := builtins[name]
	return t, ok
}
