// Package core provides a small, stable facade over Coldscan's internal
// engine for UI shells, background schedulers and signature updaters.
// It deliberately re-exports a narrow API surface so embedders can
// depend on a stable import path without touching internal packages.
//
// Example:
//
//	eng := core.New("signatures.json", core.Config{})
//	report, err := eng.ScanFolderReport(context.Background(), "/data/incoming")
//	if err != nil { /* handle */ }
//	os.Stdout.Write(report)
package core
