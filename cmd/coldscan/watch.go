package coldscan

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/coldscan/coldscan/internal/service"
	"github.com/coldscan/coldscan/pkg/core"
	"github.com/spf13/cobra"
)

var (
	flagWatchPath     string
	flagWatchInterval time.Duration
)

func init() {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Scan a folder on a fixed interval and emit JSON reports",
		RunE:  runWatch,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagWatchPath, "path", "p", ".", "folder to scan")
	cmd.Flags().DurationVar(&flagWatchInterval, "interval", time.Hour, "time between scans (e.g. 30m)")
}

func runWatch(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagWatchPath)
	lcfg, gcfg := loadConfigs(abs)

	interval := flagWatchInterval
	if !cmd.Flags().Changed("interval") {
		if s := pickString("", lcfg.Interval, gcfg.Interval); s != "" {
			if d, err := time.ParseDuration(s); err == nil {
				interval = d
			}
		}
	}

	eng := core.New(resolveSignatures(lcfg, gcfg), core.Config{
		IncludeGlobs: pickString("", lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString("", lcfg.Exclude, gcfg.Exclude),
		NoCache:      pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s every %s\n", abs, interval)
	service.Periodic{
		Interval: interval,
		Scan:     func(c context.Context) ([]byte, error) { return eng.ScanFolderReport(c, abs) },
		Sink: func(report []byte) {
			os.Stdout.Write(report)
			fmt.Fprintln(os.Stdout)
		},
	}.Run(ctx)
	return nil
}
