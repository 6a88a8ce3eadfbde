package signature

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"regexp"
	"sync"
	"sync/atomic"

	"github.com/coldscan/coldscan/internal/types"
)

// PatternsKey is the reserved top-level key in the signature document
// that holds named regex rules instead of a digest entry.
const PatternsKey = "_patterns"

// Database is an immutable snapshot of the signature store: exact
// SHA-256 signatures plus compiled pattern rules. A reload replaces the
// whole snapshot; readers never see a partially-built one.
type Database struct {
	Hashes   map[string]types.Metadata
	Patterns map[string]*regexp.Regexp
}

// Lookup returns the metadata for a hex digest, or false when unknown.
// The reserved patterns key is never a digest.
func (db *Database) Lookup(sha string) (types.Metadata, bool) {
	meta, ok := db.Hashes[sha]
	return meta, ok
}

// Load reads the signature document at path. The document maps hex
// SHA-256 digests to free-form metadata, plus the reserved "_patterns"
// key mapping rule names to regex sources compiled case-insensitively.
// A missing, unreadable or malformed file yields an empty database so
// the scanner can always run with zero signatures; pattern rules that
// fail to compile are dropped without aborting the load.
func Load(path string) *Database {
	db := &Database{
		Hashes:   map[string]types.Metadata{},
		Patterns: map[string]*regexp.Regexp{},
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return db
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(b, &doc); err != nil {
		return db
	}
	for key, raw := range doc {
		if key == PatternsKey {
			var rules map[string]string
			if err := json.Unmarshal(raw, &rules); err != nil {
				continue
			}
			for name, src := range rules {
				re, err := regexp.Compile("(?i)" + src)
				if err != nil {
					continue
				}
				db.Patterns[name] = re
			}
			continue
		}
		var meta types.Metadata
		if err := json.Unmarshal(raw, &meta); err != nil {
			continue
		}
		db.Hashes[key] = meta
	}
	return db
}

// Store owns the persisted signature file and the active in-memory
// snapshot. Reads are lock-free; mutations serialize on mu and install
// a fresh snapshot atomically, so concurrent scans observe either the
// fully-old or the fully-new database.
type Store struct {
	path string
	mu   sync.Mutex
	db   atomic.Pointer[Database]
}

// NewStore loads the document at path and returns a store bound to it.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.db.Store(Load(path))
	return s
}

// Path returns the configured signature file location.
func (s *Store) Path() string { return s.path }

// DB returns the active snapshot.
func (s *Store) DB() *Database { return s.db.Load() }

// Lookup consults the active snapshot.
func (s *Store) Lookup(sha string) (types.Metadata, bool) {
	return s.db.Load().Lookup(sha)
}

// Reload re-reads the configured file and swaps in the new snapshot.
func (s *Store) Reload() *Database {
	db := Load(s.path)
	s.db.Store(db)
	return db
}

// Add merges one digest entry into the persisted document, rewrites the
// whole file (the "_patterns" key lives in the same document and is
// carried across untouched), and reloads. It reports false on any I/O
// or serialization failure; the active snapshot is left unchanged in
// that case.
func (s *Store) Add(sha string, meta types.Metadata) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := map[string]json.RawMessage{}
	b, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if json.Unmarshal(b, &doc) != nil {
			return false
		}
	case errors.Is(err, fs.ErrNotExist):
		// first signature: start from an empty document
	default:
		return false
	}

	raw, err := json.Marshal(meta)
	if err != nil {
		return false
	}
	doc[sha] = raw

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return false
	}
	if err := os.WriteFile(s.path, out, 0o644); err != nil {
		return false
	}
	s.db.Store(Load(s.path))
	return true
}
