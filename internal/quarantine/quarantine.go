// Package quarantine relocates reviewed files out of harm's way. It is a
// thin collaborator: the scan core itself never moves or deletes files.
package quarantine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/coldscan/coldscan/internal/audit"
)

// Move relocates path into dir under a timestamped name and appends a
// quarantine record to log (when non-nil). It returns the destination.
func Move(path, dir string, log *audit.Log) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create quarantine dir: %w", err)
	}
	stamp := time.Now().UTC().Format("20060102150405")
	dest := filepath.Join(dir, stamp+"_"+filepath.Base(path))
	if err := moveFile(path, dest); err != nil {
		return "", fmt.Errorf("quarantine %s: %w", path, err)
	}
	if log != nil {
		_ = log.Append(audit.Record{
			Kind:   audit.KindQuarantine,
			Source: path,
			Dest:   dest,
		})
	}
	return dest, nil
}

// moveFile renames, falling back to copy-and-remove across filesystems.
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
