// Package classify turns a signature-match result and static findings
// into a single severity verdict.
package classify

import "github.com/coldscan/coldscan/internal/types"

// Classify applies the fixed verdict policy: an exact signature hit
// always outranks heuristic pattern hits, which outrank plain substring
// hits. A signature record without a severity field defaults to high.
func Classify(match types.Metadata, findings *types.StaticFindings) types.Severity {
	if len(match) > 0 {
		if sev, ok := match["severity"].(string); ok && sev != "" {
			return types.Severity(sev)
		}
		return types.SevHigh
	}
	if findings != nil && len(findings.MatchedPatterns) > 0 {
		return types.SevHigh
	}
	if findings != nil && len(findings.SuspiciousStrings) > 0 {
		return types.SevMed
	}
	return types.SevClean
}
