package cmd

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/probelab/lawspace/internal/lawtext"
	"github.com/probelab/lawspace/internal/log"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Inspect and validate capability manifests",
}

var manifestValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate manifests and the law texts that reference them",
	Long: `Parse every capability manifest, scan every law description for
backtick-delimited operation references, and report all formatting
errors and references to operations no manifest declares.

Examples:
  lawspace manifest validate`,
	RunE: runManifestValidate,
}

func init() {
	manifestCmd.AddCommand(manifestValidateCmd)
	rootCmd.AddCommand(manifestCmd)
}

func runManifestValidate(cmd *cobra.Command, args []string) error {
	return validateAll(cmd.OutOrStdout())
}

// validateAll loads every manifest, scans every law description, and prints
// the batch-collected findings. Shared by `manifest validate` and the
// reload loop in `watch`.
func validateAll(out io.Writer) error {
	manifest, err := loadAllManifests()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n",
		labelStyle.Render("manifests"),
		okStyle.Render(fmt.Sprintf("%d types declared", len(manifest.Types()))))

	texts, sources, err := readLawTexts()
	if err != nil {
		return err
	}

	refs, errs := lawtext.ScanAll(texts)
	for _, ferr := range errs {
		fmt.Fprintf(out, "%s %s\n", errorStyle.Render("error"), ferr.Error())
	}

	declared := make(map[string]bool)
	for _, typeName := range manifest.Types() {
		ops, _ := manifest.Operations(typeName)
		for _, op := range ops {
			declared[op] = true
		}
	}

	var unknown []string
	for _, name := range lawtext.Names(refs) {
		if !declared[name] {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		fmt.Fprintf(out, "%s %s\n",
			labelStyle.Render("unknown refs"),
			errorStyle.Render(strings.Join(unknown, ", ")))
	}

	fmt.Fprintf(out, "%s %s\n",
		labelStyle.Render("laws"),
		valueStyle.Render(fmt.Sprintf("%d files, %d references", len(sources), len(refs))))

	if len(errs) > 0 {
		return fmt.Errorf("%d law formatting error(s)", len(errs))
	}
	fmt.Fprintln(out, okStyle.Render("ok"))
	return nil
}

// readLawTexts collects the contents of every file under the configured law
// directories. Returns the texts and their source paths in matching order.
func readLawTexts() ([]string, []string, error) {
	var texts, sources []string
	for _, dir := range cfg.LawDirs {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			log.Warn(log.CatLawText, "law directory missing", "dir", dir)
			continue
		}
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			content, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("reading law file %s: %w", path, err)
			}
			texts = append(texts, string(content))
			sources = append(sources, path)
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}
	return texts, sources, nil
}
