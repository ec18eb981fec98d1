package cmd

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/probelab/lawspace/internal/config"
	"github.com/probelab/lawspace/internal/flags"
	"github.com/probelab/lawspace/internal/log"
	"github.com/probelab/lawspace/internal/tags"
)

var (
	version  = "dev"
	cfgFile  string
	debug    bool
	cfg      config.Config
	flagReg  *flags.Registry
	cleanups []func()
)

var rootCmd = &cobra.Command{
	Use:   "lawspace",
	Short: "Explore operation variant spaces and their capabilities",
	Long: `lawspace enumerates every combination of registered operation variants,
checks type capabilities against manifests, and validates law descriptions.`,
	Version:           version,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		for _, fn := range cleanups {
			fn()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/lawspace/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging to .lawspace/debug.log")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("manifest_dirs", defaults.ManifestDirs)
	viper.SetDefault("law_dirs", defaults.LawDirs)
	viper.SetDefault("enumeration.sample_size", defaults.Enumeration.SampleSize)
	viper.SetDefault("enumeration.seed", defaults.Enumeration.Seed)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl_minutes", defaults.Cache.TTLMinutes)
	viper.SetDefault("watch.debounce_ms", defaults.Watch.DebounceMS)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .lawspace/config.yaml (current directory)
		// 2. ~/.config/lawspace/config.yaml (user config)
		if _, err := os.Stat(".lawspace/config.yaml"); err == nil {
			viper.SetConfigFile(".lawspace/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "lawspace"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create default at .lawspace/config.yaml
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			defaultPath := ".lawspace/config.yaml"
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// setup wires logging, the tag disable list, and feature flags before any
// subcommand runs.
func setup(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if debug || os.Getenv("LAWSPACE_DEBUG") != "" {
		closeLog, err := log.Init(".lawspace/debug.log")
		if err != nil {
			return fmt.Errorf("initializing debug log: %w", err)
		}
		cleanups = append(cleanups, closeLog)
		log.SetEnabled(true)
	}

	disabled := make([]tags.Tag, 0, len(cfg.DisabledTags))
	for _, t := range cfg.DisabledTags {
		disabled = append(disabled, tags.Tag(t))
	}
	tags.SetDisabled(disabled)

	flagReg = buildFlagRegistry(cfg)
	log.Info(log.CatConfig, "configuration loaded",
		"manifest_dirs", len(cfg.ManifestDirs),
		"disabled_tags", len(cfg.DisabledTags))
	return nil
}

// buildFlagRegistry seeds the capability-cache flag from cache.enabled so
// the config knob governs memoization. An explicit flags entry wins.
func buildFlagRegistry(c config.Config) *flags.Registry {
	m := make(map[string]bool, len(c.Flags)+1)
	maps.Copy(m, c.Flags)
	if _, ok := m[flags.FlagCapabilityCache]; !ok {
		m[flags.FlagCapabilityCache] = c.Cache.Enabled
	}
	return flags.New(m)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string displayed by --version.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
