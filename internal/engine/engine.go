// Package engine orchestrates scans: it enumerates candidate files,
// computes identity hashes, consults the signature store, runs the
// static inspector and classifier, and collects per-file results.
package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"time"

	"github.com/coldscan/coldscan/internal/cache"
	"github.com/coldscan/coldscan/internal/classify"
	"github.com/coldscan/coldscan/internal/inspect"
	"github.com/coldscan/coldscan/internal/signature"
	"github.com/coldscan/coldscan/internal/types"
)

// Config controls scanning scope and behavior.
type Config struct {
	Root         string
	IncludeGlobs string
	ExcludeGlobs string
	NoCache      bool
	Progress     func()
}

// Result carries the collected scan results plus basic statistics.
// Results are in enumeration order, one per candidate file.
type Result struct {
	Results      []types.ScanResult
	FilesScanned int
	CacheHits    int
	Duration     time.Duration
}

// hashChunkSize only affects streaming granularity, never the digest.
const hashChunkSize = 64 * 1024

// HashFile computes the hex SHA-256 of the file content by streaming
// fixed-size chunks; the file is never loaded whole into memory.
func HashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	buf := make([]byte, hashChunkSize)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// ScanOne scans a single file against the active signature database.
// Failures are recorded in the result's Error field; ScanOne never
// returns an error and never panics on unreadable input.
func ScanOne(path string, store *signature.Store) types.ScanResult {
	res, _ := scanWithCache(path, store, nil)
	return res
}

// ScanSingleFile scans one path outside of a folder walk. A catastrophic
// failure (e.g. unreadable file) yields a result with only the path and
// the error.
func ScanSingleFile(path string, store *signature.Store) types.ScanResult {
	return ScanOne(path, store)
}

// scanWithCache hashes the file first, then either replays a cached
// result for the same content digest or runs the full inspection pass.
func scanWithCache(path string, store *signature.Store, entries map[string]cache.Entry) (types.ScanResult, bool) {
	res := types.ScanResult{Path: path}
	sha, err := HashFile(path)
	if err != nil {
		res.Error = err.Error()
		return res, false
	}
	res.SHA256 = sha

	if e, ok := entries[path]; ok && e.SHA256 == sha {
		replay := e.Result
		replay.Path = path
		return replay, true
	}

	db := store.DB()
	if meta, ok := db.Lookup(sha); ok {
		res.SignatureMatch = meta
	}
	res.Static = inspect.Inspect(path, db.Patterns)
	res.Severity = classify.Classify(res.SignatureMatch, res.Static)
	return res, false
}

// ScanFolder scans every candidate under cfg.Root in enumeration order.
// Individual file errors never abort the run; cancelling ctx stops the
// walk between files and the partial result list remains valid.
func ScanFolder(ctx context.Context, cfg Config, store *signature.Store) (Result, error) {
	out := Result{Results: []types.ScanResult{}}
	started := time.Now()

	fp := cache.Fingerprint(store.Path())
	db := cache.DB{Entries: map[string]cache.Entry{}}
	if !cfg.NoCache {
		if loaded, err := cache.Load(cfg.Root); err == nil && loaded.SigFingerprint == fp {
			db = loaded
		}
	}
	updated := map[string]cache.Entry{}

	err := Enumerate(ctx, cfg, func(p string) {
		res, hit := scanWithCache(p, store, db.Entries)
		out.Results = append(out.Results, res)
		out.FilesScanned++
		if hit {
			out.CacheHits++
		}
		if res.SHA256 != "" {
			updated[p] = cache.Entry{SHA256: res.SHA256, Result: res}
		}
		if cfg.Progress != nil {
			cfg.Progress()
		}
	})
	if err != nil {
		return out, err
	}

	out.Duration = time.Since(started)
	if !cfg.NoCache && len(updated) > 0 {
		for k, v := range updated {
			db.Entries[k] = v
		}
		db.SigFingerprint = fp
		_ = cache.Save(cfg.Root, db)
	}
	return out, nil
}
