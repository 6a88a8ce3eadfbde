package coldscan

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coldscan/coldscan/internal/signature"
	"github.com/coldscan/coldscan/internal/types"
	"github.com/spf13/cobra"
)

var (
	flagSigSeverity string
	flagSigName     string
)

func init() {
	sigs := &cobra.Command{
		Use:   "sigs",
		Short: "Manage the local signature database",
	}
	rootCmd.AddCommand(sigs)

	add := &cobra.Command{
		Use:   "add <sha256>",
		Short: "Add or overwrite one signature and persist the store",
		Args:  cobra.ExactArgs(1),
		RunE:  runSigsAdd,
	}
	add.Flags().StringVar(&flagSigSeverity, "severity", "high", "severity recorded in the signature metadata")
	add.Flags().StringVar(&flagSigName, "name", "", "human-readable sample name")
	sigs.AddCommand(add)

	sigs.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known signatures and pattern rules",
		RunE:  runSigsList,
	})
}

func runSigsAdd(cmd *cobra.Command, args []string) error {
	sha := strings.ToLower(strings.TrimSpace(args[0]))
	if sha == "" {
		return fmt.Errorf("empty digest")
	}
	lcfg, gcfg := loadConfigs(".")
	store := signature.NewStore(resolveSignatures(lcfg, gcfg))

	meta := types.Metadata{"severity": flagSigSeverity}
	if flagSigName != "" {
		meta["name"] = flagSigName
	}
	if !store.Add(sha, meta) {
		return fmt.Errorf("could not persist signature to %s", store.Path())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", sha, flagSigSeverity)
	return nil
}

func runSigsList(cmd *cobra.Command, _ []string) error {
	lcfg, gcfg := loadConfigs(".")
	store := signature.NewStore(resolveSignatures(lcfg, gcfg))
	db := store.DB()

	digests := make([]string, 0, len(db.Hashes))
	for d := range db.Hashes {
		digests = append(digests, d)
	}
	sort.Strings(digests)
	for _, d := range digests {
		sev, _ := db.Hashes[d]["severity"].(string)
		name, _ := db.Hashes[d]["name"].(string)
		fmt.Fprintf(cmd.OutOrStdout(), "%s  severity=%s  name=%s\n", d, sev, name)
	}

	rules := make([]string, 0, len(db.Patterns))
	for name := range db.Patterns {
		rules = append(rules, name)
	}
	sort.Strings(rules)
	for _, name := range rules {
		fmt.Fprintf(cmd.OutOrStdout(), "pattern  %s\n", name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d signature(s), %d pattern rule(s)\n", len(digests), len(rules))
	return nil
}
