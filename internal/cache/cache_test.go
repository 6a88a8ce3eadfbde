package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coldscan/coldscan/internal/types"
)

func TestLoadSaveRoundtrip(t *testing.T) {
	dir := t.TempDir()
	db, _ := Load(dir)
	if db.Entries == nil {
		t.Fatalf("expected entries map initialized")
	}
	db.SigFingerprint = "cafe"
	db.Entries["a.bin"] = Entry{
		SHA256: "deadbeef",
		Result: types.ScanResult{Path: "a.bin", SHA256: "deadbeef", Severity: types.SevClean},
	}
	if err := Save(dir, db); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, ".coldscancache.json")); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	db2, err := Load(dir)
	if err != nil {
		t.Fatalf("load after save: %v", err)
	}
	if db2.SigFingerprint != "cafe" {
		t.Fatalf("unexpected fingerprint %q", db2.SigFingerprint)
	}
	got := db2.Entries["a.bin"]
	if got.SHA256 != "deadbeef" || got.Result.Severity != types.SevClean {
		t.Fatalf("unexpected entry: %+v", got)
	}
}

func TestLoadCorruptCacheIsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".coldscancache.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	db, _ := Load(dir)
	if len(db.Entries) != 0 {
		t.Fatalf("expected empty cache, got %d entries", len(db.Entries))
	}
}

func TestFingerprintTracksSignatureFile(t *testing.T) {
	dir := t.TempDir()
	sig := filepath.Join(dir, "signatures.json")

	missing := Fingerprint(sig)
	if missing != "0000000000000000" {
		t.Fatalf("unexpected fingerprint for missing file: %q", missing)
	}

	if err := os.WriteFile(sig, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}
	first := Fingerprint(sig)
	if first == missing || len(first) != 16 {
		t.Fatalf("unexpected fingerprint %q", first)
	}

	if err := os.WriteFile(sig, []byte(`{"a":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if second := Fingerprint(sig); second == first {
		t.Fatalf("fingerprint did not change with content")
	}
}
