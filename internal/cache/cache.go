// Package cache persists per-file scan results so unchanged files can be
// replayed instead of re-inspected. Replay is keyed on the file's SHA-256
// and stamped with a fingerprint of the signature database, so a
// signature update invalidates every cached verdict.
package cache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/coldscan/coldscan/internal/types"
)

// Entry pairs a content digest with the full result computed for it.
type Entry struct {
	SHA256 string           `json:"sha256"`
	Result types.ScanResult `json:"result"`
}

// DB is the on-disk replay cache, keyed by scanned path.
type DB struct {
	SigFingerprint string           `json:"sig_fingerprint"`
	Entries        map[string]Entry `json:"entries"`
}

func defaultPath(root string) string {
	return filepath.Join(root, ".coldscancache.json")
}

// Load reads the cache for root. A missing or corrupt cache comes back
// empty; scanning never depends on it.
func Load(root string) (DB, error) {
	var db DB
	b, err := os.ReadFile(defaultPath(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(b, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

// Save writes the cache for root.
func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(defaultPath(root), b, 0o644)
}

// Fingerprint hashes the raw signature file bytes. A changed, added or
// removed file yields a different stamp so stale verdicts are never
// replayed against a newer database.
func Fingerprint(sigPath string) string {
	b, err := os.ReadFile(sigPath)
	if err != nil {
		return "0000000000000000"
	}
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const hex = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = hex[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}
