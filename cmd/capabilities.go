package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/probelab/lawspace/internal/capability"
	"github.com/probelab/lawspace/internal/log"
)

var capabilitiesRequires []string

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities <type>",
	Short: "Show the derived capability set for a type",
	Long: `Load capability manifests and print the derived capability set for a
type: declared operations minus the universally ignored ones, plus the
assumed baseline. With --requires, also report whether the type passes
a subset check.

Examples:
  lawspace capabilities Chain
  lawspace capabilities Chain --requires map,filter`,
	Args: cobra.ExactArgs(1),
	RunE: runCapabilities,
}

func init() {
	capabilitiesCmd.Flags().StringSliceVar(&capabilitiesRequires, "requires", nil,
		"comma-separated capability names to check against the type")
	rootCmd.AddCommand(capabilitiesCmd)
}

func runCapabilities(cmd *cobra.Command, args []string) error {
	typeName := args[0]

	manifest, err := loadAllManifests()
	if err != nil {
		return err
	}

	svc := capability.NewService(manifest.Introspector(), flagReg)
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	checker := svc.Checker(cmd.Context(), typeName, ttl)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(typeName))
	for _, name := range checker.Names() {
		fmt.Fprintf(out, "  %s\n", valueStyle.Render(name))
	}

	if len(capabilitiesRequires) > 0 {
		if checker.Passes(capabilitiesRequires...) {
			fmt.Fprintf(out, "%s %s\n",
				labelStyle.Render("requires"),
				okStyle.Render("satisfied: "+strings.Join(capabilitiesRequires, ", ")))
		} else {
			fmt.Fprintf(out, "%s %s\n",
				labelStyle.Render("requires"),
				errorStyle.Render("missing: "+strings.Join(missingNames(checker, capabilitiesRequires), ", ")))
			return fmt.Errorf("type %s does not satisfy required capabilities", typeName)
		}
	}
	return nil
}

// loadAllManifests merges manifests from every configured directory.
func loadAllManifests() (*capability.Manifest, error) {
	merged := map[string][]string{}
	for _, dir := range cfg.ManifestDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			log.Warn(log.CatManifest, "manifest directory missing", "dir", dir)
			continue
		}
		m, err := capability.LoadManifests(os.DirFS(dir), ".")
		if err != nil {
			return nil, fmt.Errorf("loading manifests from %s: %w", dir, err)
		}
		for _, typeName := range m.Types() {
			ops, _ := m.Operations(typeName)
			merged[typeName] = append(merged[typeName], ops...)
		}
	}
	return capability.NewManifest(merged), nil
}

func missingNames(c capability.Checker, required []string) []string {
	var missing []string
	for _, name := range required {
		if !c.Has(name) {
			missing = append(missing, name)
		}
	}
	return missing
}
