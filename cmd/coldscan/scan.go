package coldscan

import (
	"context"
	"path/filepath"

	"github.com/coldscan/coldscan/internal/audit"
	"github.com/coldscan/coldscan/internal/engine"
	"github.com/coldscan/coldscan/internal/report"
	"github.com/coldscan/coldscan/internal/signature"
	"github.com/coldscan/coldscan/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagPath    string
	flagFile    string
	flagInclude string
	flagExclude string
)

func init() {
	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan a folder (or one file) for known and suspicious content",
		RunE:  runScan,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagPath, "path", "p", ".", "folder to scan")
	cmd.Flags().StringVarP(&flagFile, "file", "f", "", "scan a single file instead of a folder")
	cmd.Flags().StringVar(&flagInclude, "include", "", "comma-separated include globs")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "comma-separated exclude globs")
}

func runScan(cmd *cobra.Command, _ []string) error {
	abs, _ := filepath.Abs(flagPath)
	lcfg, gcfg := loadConfigs(abs)
	store := signature.NewStore(resolveSignatures(lcfg, gcfg))

	if flagFile != "" {
		res := engine.ScanSingleFile(flagFile, store)
		return renderResults(cmd, []types.ScanResult{res}, report.PrintOptions{
			NoColor: !useColor(pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)),
		})
	}

	cfg := engine.Config{
		Root:         abs,
		IncludeGlobs: pickString(flagInclude, lcfg.Include, gcfg.Include),
		ExcludeGlobs: pickString(flagExclude, lcfg.Exclude, gcfg.Exclude),
		NoCache:      pickBool(flagNoCache, lcfg.NoCache, gcfg.NoCache),
	}
	res, err := engine.ScanFolder(context.Background(), cfg, store)
	if err != nil {
		return err
	}

	log := audit.NewLog(appDir())
	_ = log.Append(audit.ScanRecord(abs, res.Results, res.Duration))

	return renderResults(cmd, res.Results, report.PrintOptions{
		NoColor:      !useColor(pickBool(flagNoColor, lcfg.NoColor, gcfg.NoColor)),
		Duration:     res.Duration,
		FilesScanned: res.FilesScanned,
		CacheHits:    res.CacheHits,
	})
}

func renderResults(cmd *cobra.Command, results []types.ScanResult, opts report.PrintOptions) error {
	if flagJSON {
		return report.PrintJSON(cmd.OutOrStdout(), results)
	}
	report.PrintTable(cmd.OutOrStdout(), results, opts)
	return nil
}
