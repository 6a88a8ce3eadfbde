package coldscan

import (
	"os"
	"path/filepath"

	"github.com/coldscan/coldscan/internal/config"
	"golang.org/x/term"
)

// defaultSignatures is used when neither flag nor config names a store.
const defaultSignatures = "signatures.json"

// pick* resolve precedence: CLI flag > local config > global config.

func pickString(cli string, local, global *string) string {
	if cli != "" {
		return cli
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return ""
}

func pickBool(cli bool, local, global *bool) bool {
	if cli {
		return true
	}
	if local != nil {
		return *local
	}
	if global != nil {
		return *global
	}
	return false
}

// loadConfigs returns the local (scan-root) and global file configs;
// a missing file simply yields the zero config.
func loadConfigs(root string) (local, global config.FileConfig) {
	if c, err := config.LoadLocal(root); err == nil {
		local = c
	}
	if c, err := config.LoadGlobal(); err == nil {
		global = c
	}
	return local, global
}

func resolveSignatures(local, global config.FileConfig) string {
	if p := pickString(flagSignatures, local.Signatures, global.Signatures); p != "" {
		return p
	}
	return defaultSignatures
}

// useColor disables colors when asked to or when stdout is not a tty.
func useColor(noColor bool) bool {
	if noColor {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// appDir is where the audit trail and default quarantine live.
func appDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	dir := filepath.Join(home, ".coldscan")
	_ = os.MkdirAll(dir, 0o700)
	return dir
}
