// Package report renders collected scan results for humans (table) and
// pipelines (JSON).
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/coldscan/coldscan/internal/types"
	"github.com/olekukonko/tablewriter"
)

// PrintOptions controls table rendering.
type PrintOptions struct {
	NoColor      bool
	Duration     time.Duration
	FilesScanned int
	CacheHits    int
}

// PrintJSON emits the result sequence as indented JSON.
func PrintJSON(w io.Writer, results []types.ScanResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// PrintTable renders one row per scanned file in enumeration order.
// Clean rows stay in the table so a report covers every file scanned.
func PrintTable(w io.Writer, results []types.ScanResult, opts PrintOptions) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No files scanned")
		return
	}

	table := tablewriter.NewTable(w)
	table.Header("SEVERITY", "PATH", "SHA256", "FINDINGS")
	for _, r := range results {
		sev := string(r.Severity)
		if r.Error != "" && sev == "" {
			sev = "error"
		}
		if !opts.NoColor {
			sev = colorSeverity(r)
		}
		_ = table.Append(sev, r.Path, shortDigest(r.SHA256), summarize(r))
	}
	_ = table.Render()

	clean, med, high, failed := 0, 0, 0, 0
	for _, r := range results {
		switch {
		case r.Error != "" && r.Severity == "":
			failed++
		case r.Severity == types.SevHigh:
			high++
		case r.Severity == types.SevMed:
			med++
		default:
			clean++
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Files: %d (high: %d, medium: %d, clean: %d, errors: %d)\n",
		len(results), high, med, clean, failed)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Scan duration: %.2fs\n", opts.Duration.Seconds())
	}
	if opts.CacheHits > 0 {
		fmt.Fprintf(w, "Cache hits: %d\n", opts.CacheHits)
	}
}

func shortDigest(sha string) string {
	if sha == "" {
		return "-"
	}
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}

// summarize compresses a result's findings into one cell.
func summarize(r types.ScanResult) string {
	if r.Error != "" {
		return "error: " + r.Error
	}
	if len(r.SignatureMatch) > 0 {
		if name, ok := r.SignatureMatch["name"].(string); ok && name != "" {
			return "signature: " + name
		}
		return "signature match"
	}
	if r.Static == nil {
		return "-"
	}
	if n := len(r.Static.MatchedPatterns); n > 0 {
		return fmt.Sprintf("%d pattern(s), %d string(s)", n, len(r.Static.SuspiciousStrings))
	}
	if n := len(r.Static.SuspiciousStrings); n > 0 {
		return fmt.Sprintf("%d suspicious string(s)", n)
	}
	return "-"
}

func colorSeverity(r types.ScanResult) string {
	switch {
	case r.Error != "" && r.Severity == "":
		return "\x1b[35merror\x1b[0m" // magenta
	case r.Severity == types.SevHigh:
		return "\x1b[31mhigh\x1b[0m" // red
	case r.Severity == types.SevMed:
		return "\x1b[33mmedium\x1b[0m" // yellow
	case r.Severity == types.SevClean:
		return "\x1b[32mclean\x1b[0m" // green
	default:
		return string(r.Severity)
	}
}
