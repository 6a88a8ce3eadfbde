package core

import (
	"context"
	"encoding/json"

	"github.com/coldscan/coldscan/internal/engine"
	"github.com/coldscan/coldscan/internal/signature"
	"github.com/coldscan/coldscan/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type (
	Config     = engine.Config
	ScanResult = types.ScanResult
	Severity   = types.Severity
	Metadata   = types.Metadata
)

// Engine binds a signature store to scan configuration and exposes the
// serialized reports and the mutation primitives external layers call.
type Engine struct {
	store *signature.Store
	cfg   Config
}

// New loads (or starts empty, if absent) the signature store at sigPath.
func New(sigPath string, cfg Config) *Engine {
	return &Engine{store: signature.NewStore(sigPath), cfg: cfg}
}

// ScanFolderReport scans root and returns the ordered result sequence as
// a JSON document.
func (e *Engine) ScanFolderReport(ctx context.Context, root string) ([]byte, error) {
	cfg := e.cfg
	cfg.Root = root
	res, err := engine.ScanFolder(ctx, cfg, e.store)
	if err != nil {
		return nil, err
	}
	return json.Marshal(res.Results)
}

// ScanSingleFileReport scans one file and returns a one-element JSON
// sequence, keeping the shape uniform with folder reports. A
// catastrophic failure is folded into the single result's error field.
func (e *Engine) ScanSingleFileReport(path string) ([]byte, error) {
	res := engine.ScanSingleFile(path, e.store)
	return json.Marshal([]types.ScanResult{res})
}

// AddSignature merges one digest entry into the persisted store and
// reloads. External updaters call this after obtaining new data by
// whatever means; the engine itself never fetches anything.
func (e *Engine) AddSignature(sha string, meta Metadata) bool {
	return e.store.Add(sha, meta)
}

// ReloadSignatures re-reads the persisted store and atomically swaps the
// active database.
func (e *Engine) ReloadSignatures() {
	e.store.Reload()
}

// Store exposes the underlying signature store for CLI layers that need
// direct lookups.
func (e *Engine) Store() *signature.Store { return e.store }
