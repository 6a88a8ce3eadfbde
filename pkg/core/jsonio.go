package core

import (
	"encoding/json"
	"io"
)

// MarshalResults pretty-prints a result sequence as JSON for humans or
// pipelines.
func MarshalResults(w io.Writer, results []ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// UnmarshalResults decodes a result sequence, useful for report
// ingestion on the consumer side.
func UnmarshalResults(r io.Reader) ([]ScanResult, error) {
	var rs []ScanResult
	if err := json.NewDecoder(r).Decode(&rs); err != nil {
		return nil, err
	}
	return rs, nil
}
