package coldscan

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON       bool
	flagNoColor    bool
	flagNoCache    bool
	flagSignatures string

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Coldscan CLI.
var rootCmd = &cobra.Command{
	Use:           "coldscan",
	Short:         "Scan files against a local signature database",
	Long:          "Coldscan classifies files as clean or suspicious using local SHA-256 signatures and static archive heuristics. No network lookups, ever.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Coldscan CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoCache, "no-cache", false, "disable the scan result cache")
	rootCmd.PersistentFlags().StringVar(&flagSignatures, "signatures", "", "path to the signature database (default signatures.json)")
}
