package types

// Severity is the overall verdict for a scanned file. The classifier
// only emits the three constants below, but signature metadata may carry
// arbitrary severity strings and those pass through unmodified.
type Severity string

const (
	SevClean Severity = "clean"
	SevMed   Severity = "medium"
	SevHigh  Severity = "high"
)

// Metadata is the free-form record stored under a digest in the
// signature database. It commonly carries a "severity" field.
type Metadata = map[string]any

// StaticFindings collects the heuristic hits from one file's content.
// Both lists are deduplicated and keep first-hit order across all
// entries of a multi-entry archive.
type StaticFindings struct {
	Size              int64    `json:"size"`
	SuspiciousStrings []string `json:"suspicious_strings"`
	MatchedPatterns   []string `json:"matched_patterns"`
	Error             string   `json:"error,omitempty"`
}

// NewStaticFindings returns findings with empty (non-nil) hit lists so
// they marshal as [] rather than null.
func NewStaticFindings() *StaticFindings {
	return &StaticFindings{
		SuspiciousStrings: []string{},
		MatchedPatterns:   []string{},
	}
}

// AddString records a vocabulary hit at most once.
func (f *StaticFindings) AddString(s string) {
	for _, have := range f.SuspiciousStrings {
		if have == s {
			return
		}
	}
	f.SuspiciousStrings = append(f.SuspiciousStrings, s)
}

// AddPattern records a pattern-rule hit at most once.
func (f *StaticFindings) AddPattern(name string) {
	for _, have := range f.MatchedPatterns {
		if have == name {
			return
		}
	}
	f.MatchedPatterns = append(f.MatchedPatterns, name)
}

// ScanResult is the per-file outcome of a scan. It is immutable once
// built; a folder scan collects results in enumeration order.
type ScanResult struct {
	Path           string          `json:"path"`
	SHA256         string          `json:"sha256,omitempty"`
	SignatureMatch Metadata        `json:"signature_match"`
	Static         *StaticFindings `json:"static"`
	Severity       Severity        `json:"severity,omitempty"`
	Error          string          `json:"error,omitempty"`
}
