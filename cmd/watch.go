package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/probelab/lawspace/internal/flags"
	"github.com/probelab/lawspace/internal/log"
	"github.com/probelab/lawspace/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Reload capability manifests when they change on disk",
	Long: `Watch the configured manifest directories and rerun validation
whenever a manifest file changes. Without the manifest-watch feature
flag this degrades to a single validation pass.

Examples:
  lawspace watch`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	// Flag off: degrade to a single validation pass instead of watching.
	if !flagReg.Enabled(flags.FlagManifestWatch) {
		fmt.Fprintln(out, labelStyle.Render(
			fmt.Sprintf("%s disabled, validating once", flags.FlagManifestWatch)))
		return validateAll(out)
	}

	manifest, err := loadAllManifests()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s %s\n",
		labelStyle.Render("loaded"),
		valueStyle.Render(fmt.Sprintf("%d types", len(manifest.Types()))))

	wcfg := watcher.DefaultConfig(cfg.ManifestDirs...)
	if cfg.Watch.DebounceMS > 0 {
		wcfg.DebounceDur = time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
	}

	w, err := watcher.New(wcfg)
	if err != nil {
		return fmt.Errorf("creating manifest watcher: %w", err)
	}
	changes, err := w.Start()
	if err != nil {
		return fmt.Errorf("starting manifest watcher: %w", err)
	}
	defer func() { _ = w.Stop() }()

	fmt.Fprintln(out, headerStyle.Render("watching for manifest changes (ctrl+c to stop)"))

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-changes:
			// Rerun the full validation pass; failures are reported but
			// never stop the watch loop.
			if err := validateAll(out); err != nil {
				log.ErrorErr(log.CatWatch, "revalidation failed", err)
				fmt.Fprintf(out, "%s %v\n", errorStyle.Render("revalidation failed:"), err)
				continue
			}
			log.Info(log.CatWatch, "manifests revalidated")
		case <-sigs:
			fmt.Fprintln(out, labelStyle.Render("stopping"))
			return nil
		case <-cmd.Context().Done():
			return nil
		}
	}
}
