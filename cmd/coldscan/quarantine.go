package coldscan

import (
	"fmt"
	"path/filepath"

	"github.com/coldscan/coldscan/internal/audit"
	"github.com/coldscan/coldscan/internal/quarantine"
	"github.com/spf13/cobra"
)

var flagQuarantineDir string

func init() {
	cmd := &cobra.Command{
		Use:   "quarantine <file>",
		Short: "Move a reviewed file into the quarantine folder",
		Args:  cobra.ExactArgs(1),
		RunE:  runQuarantine,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVar(&flagQuarantineDir, "dir", "", "quarantine folder (default ~/.coldscan/quarantine)")
}

func runQuarantine(cmd *cobra.Command, args []string) error {
	lcfg, gcfg := loadConfigs(".")
	dir := pickString(flagQuarantineDir, lcfg.QuarantineDir, gcfg.QuarantineDir)
	if dir == "" {
		dir = filepath.Join(appDir(), "quarantine")
	}

	dest, err := quarantine.Move(args[0], dir, audit.NewLog(appDir()))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "quarantined: %s\n", dest)
	return nil
}
