package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/coldscan/coldscan/internal/signature"
	"github.com/coldscan/coldscan/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, data, 0o644))
	return p
}

func emptyStore(t *testing.T) *signature.Store {
	t.Helper()
	return signature.NewStore(filepath.Join(t.TempDir(), "signatures.json"))
}

func TestHashFileStreamsDeterministically(t *testing.T) {
	dir := t.TempDir()
	content := []byte("identical content at two paths")
	p1 := write(t, dir, "one.bin", content)
	p2 := write(t, dir, "two.bin", content)

	h1, err := HashFile(p1)
	require.NoError(t, err)
	h2, err := HashFile(p2)
	require.NoError(t, err)

	sum := sha256.Sum256(content)
	assert.Equal(t, hex.EncodeToString(sum[:]), h1)
	assert.Equal(t, h1, h2)
}

func TestScanOneSignatureMatchDominates(t *testing.T) {
	dir := t.TempDir()
	// content carries a suspicious substring, but the signature wins
	p := write(t, dir, "evil.bin", []byte("connect http://c2.example"))
	sha, err := HashFile(p)
	require.NoError(t, err)

	sigPath := filepath.Join(dir, "signatures.json")
	doc := map[string]any{sha: map[string]any{"severity": "high", "name": "EvilSample"}}
	b, _ := json.Marshal(doc)
	require.NoError(t, os.WriteFile(sigPath, b, 0o644))

	res := ScanOne(p, signature.NewStore(sigPath))
	require.NotNil(t, res.SignatureMatch)
	assert.Equal(t, "EvilSample", res.SignatureMatch["name"])
	assert.Equal(t, types.SevHigh, res.Severity)
	assert.Contains(t, res.Static.SuspiciousStrings, "http://")
}

func TestScanOneUnreadableFile(t *testing.T) {
	res := ScanOne(filepath.Join(t.TempDir(), "missing.bin"), emptyStore(t))
	assert.NotEmpty(t, res.Error)
	assert.Empty(t, res.SHA256)
	assert.Nil(t, res.Static)
	assert.Empty(t, res.Severity)
}

func TestScanFolderCollectsEveryCandidate(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "clean.bin", []byte("nothing of note"))
	write(t, dir, "sus.bin", []byte("beacon to http://c2.example"))
	write(t, dir, "readme.md", []byte("not a candidate"))

	res, err := ScanFolder(context.Background(), Config{Root: dir, NoCache: true}, emptyStore(t))
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Equal(t, 2, res.FilesScanned)

	byPath := map[string]types.ScanResult{}
	for _, r := range res.Results {
		byPath[filepath.Base(r.Path)] = r
	}
	assert.Equal(t, types.SevClean, byPath["clean.bin"].Severity)
	assert.Equal(t, types.SevMed, byPath["sus.bin"].Severity)
}

func TestScanFolderContinuesPastErrors(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "ok.bin", []byte("fine"))
	// a dangling symlink enumerates but cannot be hashed
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), filepath.Join(dir, "broken.bin")))

	res, err := ScanFolder(context.Background(), Config{Root: dir, NoCache: true}, emptyStore(t))
	require.NoError(t, err)
	require.Len(t, res.Results, 2)

	errored := 0
	for _, r := range res.Results {
		if r.Error != "" {
			errored++
			assert.Empty(t, r.Severity)
		}
	}
	assert.Equal(t, 1, errored)
}

func TestScanFolderCacheReplayAndInvalidation(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.bin", []byte("beacon to http://c2.example"))
	sigPath := filepath.Join(dir, "signatures.json")
	store := signature.NewStore(sigPath)
	cfg := Config{Root: dir}

	first, err := ScanFolder(context.Background(), cfg, store)
	require.NoError(t, err)
	assert.Equal(t, 0, first.CacheHits)

	second, err := ScanFolder(context.Background(), cfg, store)
	require.NoError(t, err)
	assert.Equal(t, 1, second.CacheHits)
	assert.Equal(t, first.Results, second.Results)

	// a signature update must invalidate every cached verdict
	sha, err := HashFile(filepath.Join(dir, "a.bin"))
	require.NoError(t, err)
	require.True(t, store.Add(sha, types.Metadata{"severity": "high", "name": "EvilSample"}))

	third, err := ScanFolder(context.Background(), cfg, store)
	require.NoError(t, err)
	assert.Equal(t, 0, third.CacheHits)
	require.Len(t, third.Results, 1)
	assert.Equal(t, types.SevHigh, third.Results[0].Severity)
}

func TestScanFolderCancelledContextKeepsPartialResults(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "a.bin", []byte("x"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := ScanFolder(ctx, Config{Root: dir, NoCache: true}, emptyStore(t))
	require.NoError(t, err)
	assert.Empty(t, res.Results)
}
