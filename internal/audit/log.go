// Package audit keeps an append-only JSONL trail of scans and
// quarantine actions.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/coldscan/coldscan/internal/types"
)

// Record kinds.
const (
	KindScan       = "scan"
	KindQuarantine = "quarantine"
)

// Record is one audit log line. Scan records carry counts; quarantine
// records carry the source and destination paths.
type Record struct {
	Timestamp      time.Time      `json:"timestamp"`
	Kind           string         `json:"kind"`
	ScanID         string         `json:"scan_id,omitempty"`
	Root           string         `json:"root,omitempty"`
	FilesScanned   int            `json:"files_scanned,omitempty"`
	SeverityCounts map[string]int `json:"severity_counts,omitempty"`
	Duration       string         `json:"duration,omitempty"`
	Source         string         `json:"src,omitempty"`
	Dest           string         `json:"dst,omitempty"`
}

// Log appends records to a JSONL file.
type Log struct {
	logPath string
}

// NewLog stores the audit trail as coldscan_audit.jsonl under dir.
func NewLog(dir string) *Log {
	return &Log{logPath: filepath.Join(dir, "coldscan_audit.jsonl")}
}

// Path returns the audit file location.
func (l *Log) Path() string { return l.logPath }

// Append writes one record. The file is owner-only since records carry
// file paths and verdict metadata.
func (l *Log) Append(rec Record) error {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}
	if rec.Kind == KindScan && rec.ScanID == "" {
		rec.ScanID = fmt.Sprintf("scan_%d", time.Now().Unix())
	}
	f, err := os.OpenFile(l.logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(rec); err != nil {
		return fmt.Errorf("failed to write audit record: %w", err)
	}
	return nil
}

// LoadHistory returns all records, newest first. Undecodable lines are
// skipped.
func (l *Log) LoadHistory() ([]Record, error) {
	f, err := os.Open(l.logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open audit log: %w", err)
	}
	defer f.Close()

	var records []Record
	dec := json.NewDecoder(f)
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			continue
		}
		records = append(records, rec)
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// ScanRecord summarizes one finished folder scan for the audit trail.
func ScanRecord(root string, results []types.ScanResult, duration time.Duration) Record {
	counts := make(map[string]int)
	for _, r := range results {
		if r.Severity != "" {
			counts[string(r.Severity)]++
		}
	}
	return Record{
		Timestamp:      time.Now().UTC(),
		Kind:           KindScan,
		Root:           root,
		FilesScanned:   len(results),
		SeverityCounts: counts,
		Duration:       duration.String(),
	}
}
