package engine

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
)

// targetExts is the fixed extension set eligible for a folder scan.
var targetExts = map[string]bool{
	".apk":  true,
	".doc":  true,
	".docx": true,
	".zip":  true,
	".jar":  true,
	".rar":  true,
	".xls":  true,
	".xlsx": true,
	".pdf":  true,
	".exe":  true,
	".bin":  true,
}

// Enumerate walks cfg.Root and invokes handle for each candidate file in
// directory-walk order. Only regular entries whose lowercased extension
// is in the fixed target set are yielded, never directories. Walk errors
// on individual entries are skipped; cancelling ctx stops the walk.
func Enumerate(ctx context.Context, cfg Config, handle func(path string)) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if ctx != nil && ctx.Err() != nil {
			return fs.SkipAll
		}
		if d.IsDir() {
			return nil
		}
		if !targetExts[strings.ToLower(filepath.Ext(p))] {
			return nil
		}
		rel, relErr := filepath.Rel(cfg.Root, p)
		if relErr != nil {
			rel = p
		}
		if !allowedByGlobs(rel, cfg) {
			return nil
		}
		handle(p)
		return nil
	})
}

// allowedByGlobs returns true if the given path passes the include and
// exclude glob configuration. Include globs, when set, act as a positive
// filter; exclude globs are subtracted last. Matching uses forward-slash
// semantics.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}
