// Package config provides configuration types and defaults for lawspace.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/probelab/lawspace/internal/log"
)

// EnumerationConfig holds settings for walking the combination space.
type EnumerationConfig struct {
	// SampleSize limits how many index vectors `enumerate --sample` draws.
	// 0 means exhaustive enumeration.
	SampleSize int `mapstructure:"sample_size"`

	// Seed makes sampled enumeration reproducible. 0 derives a seed from time.
	Seed int64 `mapstructure:"seed"`
}

// CacheConfig holds capability-checker memoization settings.
type CacheConfig struct {
	// Enabled seeds the capability-cache feature flag; an explicit flags
	// entry overrides it.
	Enabled    bool `mapstructure:"enabled"`
	TTLMinutes int  `mapstructure:"ttl_minutes"`
}

// WatchConfig holds manifest watching settings.
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms"`
}

// Config holds all configuration options for lawspace.
type Config struct {
	// ManifestDirs are directories scanned for capability manifests (*.yaml).
	ManifestDirs []string `mapstructure:"manifest_dirs"`

	// DisabledTags are tags globally switched off: they never block
	// compatibility regardless of being required or excluded by a law.
	DisabledTags []string `mapstructure:"disabled_tags"`

	// LawDirs are directories scanned for law description files.
	LawDirs []string `mapstructure:"law_dirs"`

	Enumeration EnumerationConfig `mapstructure:"enumeration"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Watch       WatchConfig       `mapstructure:"watch"`

	// Flags holds feature flags (see internal/flags).
	Flags map[string]bool `mapstructure:"flags"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ManifestDirs: []string{"manifests"},
		LawDirs:      []string{"laws"},
		Enumeration: EnumerationConfig{
			SampleSize: 0, // exhaustive
			Seed:       0,
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 10,
		},
		Watch: WatchConfig{
			DebounceMS: 500,
		},
	}
}

// ValidateEnumeration checks enumeration settings for obvious mistakes.
func ValidateEnumeration(e EnumerationConfig) error {
	if e.SampleSize < 0 {
		return fmt.Errorf("enumeration.sample_size must be >= 0, got %d", e.SampleSize)
	}
	return nil
}

// ValidateCache checks cache settings.
func ValidateCache(c CacheConfig) error {
	if c.TTLMinutes < 0 {
		return fmt.Errorf("cache.ttl_minutes must be >= 0, got %d", c.TTLMinutes)
	}
	return nil
}

// Validate checks the whole config and returns the first problem found.
func (c Config) Validate() error {
	if err := ValidateEnumeration(c.Enumeration); err != nil {
		return err
	}
	if err := ValidateCache(c.Cache); err != nil {
		return err
	}
	if c.Watch.DebounceMS < 0 {
		return fmt.Errorf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Lawspace Configuration

# Directories scanned for capability manifests
manifest_dirs:
  - manifests

# Directories scanned for law description files
law_dirs:
  - laws

# Tags globally switched off. Disabled tags never block compatibility,
# whether a law requires or excludes them.
# disabled_tags:
#   - slow
#   - unordered

enumeration:
  sample_size: 0   # 0 = exhaustive; N > 0 samples N index vectors
  seed: 0          # 0 derives a seed from time; fix for reproducible samples

cache:
  enabled: true    # Memoize capability checkers per target type
  ttl_minutes: 10

watch:
  debounce_ms: 500 # Quiet period before manifest reload

# Feature flags. capability-cache follows cache.enabled unless set here.
# flags:
#   capability-cache: true
#   manifest-watch: true
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
