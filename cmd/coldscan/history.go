package coldscan

import (
	"fmt"

	"github.com/coldscan/coldscan/internal/audit"
	"github.com/spf13/cobra"
)

var flagHistoryN int

func init() {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scans and quarantine actions from the audit log",
		RunE:  runHistory,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().IntVarP(&flagHistoryN, "limit", "n", 10, "number of records to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	records, err := audit.NewLog(appDir()).LoadHistory()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), "no audit history yet")
		return nil
	}
	for i, rec := range records {
		if flagHistoryN > 0 && i >= flagHistoryN {
			break
		}
		ts := rec.Timestamp.Format("2006-01-02 15:04:05")
		switch rec.Kind {
		case audit.KindQuarantine:
			fmt.Fprintf(cmd.OutOrStdout(), "%s  quarantine  %s -> %s\n", ts, rec.Source, rec.Dest)
		default:
			fmt.Fprintf(cmd.OutOrStdout(), "%s  scan  %s  files=%d  %v  (%s)\n",
				ts, rec.Root, rec.FilesScanned, rec.SeverityCounts, rec.Duration)
		}
	}
	return nil
}
