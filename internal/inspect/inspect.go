package inspect

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/coldscan/coldscan/internal/types"
)

// SuspiciousSubstrings is the fixed heuristic vocabulary, checked
// literally against already-lowercased text. Kept verbatim from the
// shipped rule list for compatibility; the mixed-case entry cannot match
// lowercased text and must not be "fixed" silently.
var SuspiciousSubstrings = []string{
	"su", "superuser", "/proc/", "Runtime.getRuntime", "dexclassloader",
	"socket", "exec(", "eval(", "https://", "http://", "adb", "install", "dex",
}

// maxRawBytes caps how much of a non-archive file is inspected, bounding
// memory and latency on large binaries.
const maxRawBytes = 200_000

// textEntryExts are the archive entry extensions treated as text.
var textEntryExts = map[string]bool{
	".xml":        true,
	".txt":        true,
	".properties": true,
	".json":       true,
	".manifest":   true,
	".smali":      true,
	".dex":        true,
	".js":         true,
}

// entrySource yields the text-bearing entries of one scannable file. A
// raw file is a single pseudo-entry capped at maxRawBytes; a
// zip-compatible container (APK/JAR/DOCX/XLSX/ZIP) yields one entry per
// textual member. Entry-level failures are swallowed and the entry
// skipped.
type entrySource interface {
	entries(emit func(name string, data []byte))
}

type rawSource struct{ path string }

func (r rawSource) entries(emit func(string, []byte)) {
	f, err := os.Open(r.path)
	if err != nil {
		return
	}
	defer f.Close()
	buf := make([]byte, maxRawBytes)
	n, _ := io.ReadFull(f, buf)
	if n == 0 {
		return
	}
	emit(filepath.Base(r.path), buf[:n])
}

type zipSource struct{ rc *zip.ReadCloser }

func (z zipSource) entries(emit func(string, []byte)) {
	for _, f := range z.rc.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if !textEntryExts[strings.ToLower(filepath.Ext(f.Name))] {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			continue
		}
		b, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			continue
		}
		emit(f.Name, b)
	}
}

// openSource probes path as a zip container; anything that does not open
// as one is inspected as a raw file.
func openSource(path string) (entrySource, func()) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return rawSource{path: path}, func() {}
	}
	return zipSource{rc: zr}, func() { _ = zr.Close() }
}

// Inspect extracts scannable text from path and evaluates it against the
// suspicious-substring vocabulary and the supplied pattern rules. Hits
// accumulate (deduplicated) across all entries of a multi-entry archive.
// A stat failure sets Error and returns the findings as-is; failures on
// individual entries leave no trace.
func Inspect(path string, patterns map[string]*regexp.Regexp) *types.StaticFindings {
	out := types.NewStaticFindings()

	info, err := os.Stat(path)
	if err != nil {
		out.Error = err.Error()
		return out
	}
	out.Size = info.Size()

	names := make([]string, 0, len(patterns))
	for name := range patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	src, done := openSource(path)
	defer done()
	src.entries(func(_ string, data []byte) {
		matchText(lowerLossy(data), names, patterns, out)
	})
	return out
}

// lowerLossy decodes bytes as UTF-8 best-effort (invalid sequences
// replaced, never fatal) and lowercases the result.
func lowerLossy(b []byte) string {
	return strings.ToLower(string(bytes.ToValidUTF8(b, []byte("�"))))
}

// matchText runs one matching pass over an already-lowercased blob.
func matchText(text string, names []string, patterns map[string]*regexp.Regexp, out *types.StaticFindings) {
	for _, s := range SuspiciousSubstrings {
		if strings.Contains(text, s) {
			out.AddString(s)
		}
	}
	for _, name := range names {
		if patterns[name].MatchString(text) {
			out.AddPattern(name)
		}
	}
}
