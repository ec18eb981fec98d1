package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/probelab/lawspace/internal/capability"
	"github.com/probelab/lawspace/internal/config"
	"github.com/probelab/lawspace/internal/flags"
)

// ============================================================================
// Space Command Tests
// ============================================================================

func TestSpaceCommand_PrintsSizesAndTotal(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	err := runSpace(cmd, nil)
	require.NoError(t, err)

	require.Contains(t, buf.String(), "Variant space")
	require.Contains(t, buf.String(), "72", "demo space should expose 72 combinations")
}

// ============================================================================
// Manifest Loading Tests
// ============================================================================

func TestLoadAllManifests_MergesDirectories(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	writeFile(t, filepath.Join(dirA, "chain.yaml"), `capabilities:
  - type: Chain
    operations: [map, filter]
`)
	writeFile(t, filepath.Join(dirB, "stack.yaml"), `capabilities:
  - type: Stack
    operations: [push, pop]
`)

	withConfig(t, config.Config{ManifestDirs: []string{dirA, dirB}})

	manifest, err := loadAllManifests()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{"Chain", "Stack"}, manifest.Types())
}

func TestLoadAllManifests_SkipsMissingDirectories(t *testing.T) {
	withConfig(t, config.Config{ManifestDirs: []string{"/nonexistent/manifests"}})

	manifest, err := loadAllManifests()
	require.NoError(t, err)
	require.Empty(t, manifest.Types())
}

func TestLoadAllManifests_PropagatesParseErrors(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "broken.yaml"), "capabilities: [not closed")

	withConfig(t, config.Config{ManifestDirs: []string{dir}})

	_, err := loadAllManifests()
	require.Error(t, err)
	require.Contains(t, err.Error(), dir)
}

// ============================================================================
// Law Text Collection Tests
// ============================================================================

func TestReadLawTexts_CollectsAllFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "append.md"), "appending uses `map` twice")
	writeFile(t, filepath.Join(dir, "fold.md"), "`fold` distributes over `map`")

	withConfig(t, config.Config{LawDirs: []string{dir}})

	texts, sources, err := readLawTexts()
	require.NoError(t, err)
	require.Len(t, texts, 2)
	require.Len(t, sources, 2)
}

func TestReadLawTexts_SkipsMissingDirectories(t *testing.T) {
	withConfig(t, config.Config{LawDirs: []string{"/nonexistent/laws"}})

	texts, sources, err := readLawTexts()
	require.NoError(t, err)
	require.Empty(t, texts)
	require.Empty(t, sources)
}

// ============================================================================
// Feature Flag Wiring Tests
// ============================================================================

func TestBuildFlagRegistry_CacheConfigSeedsCapabilityCache(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Config
		wantEnabled bool
	}{
		{
			name:        "cache enabled seeds flag",
			cfg:         config.Config{Cache: config.CacheConfig{Enabled: true}},
			wantEnabled: true,
		},
		{
			name:        "cache disabled seeds flag off",
			cfg:         config.Config{Cache: config.CacheConfig{Enabled: false}},
			wantEnabled: false,
		},
		{
			name: "explicit flag wins over cache config",
			cfg: config.Config{
				Cache: config.CacheConfig{Enabled: true},
				Flags: map[string]bool{flags.FlagCapabilityCache: false},
			},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := buildFlagRegistry(tt.cfg)
			require.Equal(t, tt.wantEnabled, reg.Enabled(flags.FlagCapabilityCache))
		})
	}
}

// cache.enabled must actually toggle checker memoization end to end.
func TestCacheConfig_TogglesMemoization(t *testing.T) {
	countingIntrospector := func(calls *int) capability.Introspector {
		return func(typeName string) ([]string, bool) {
			*calls++
			return []string{"map"}, true
		}
	}

	t.Run("enabled memoizes", func(t *testing.T) {
		calls := 0
		reg := buildFlagRegistry(config.Config{Cache: config.CacheConfig{Enabled: true}})
		svc := capability.NewService(countingIntrospector(&calls), reg)

		svc.Checker(context.Background(), "Chain", time.Minute)
		svc.Checker(context.Background(), "Chain", time.Minute)
		require.Equal(t, 1, calls, "second query should hit the cache")
	})

	t.Run("disabled re-derives", func(t *testing.T) {
		calls := 0
		reg := buildFlagRegistry(config.Config{Cache: config.CacheConfig{Enabled: false}})
		svc := capability.NewService(countingIntrospector(&calls), reg)

		svc.Checker(context.Background(), "Chain", time.Minute)
		svc.Checker(context.Background(), "Chain", time.Minute)
		require.Equal(t, 2, calls, "every query should re-derive")
	})
}

// ============================================================================
// Watch Fallback Tests
// ============================================================================

func TestWatchCommand_FlagDisabledValidatesOnce(t *testing.T) {
	laws := t.TempDir()
	writeFile(t, filepath.Join(laws, "compose.md"), "`map` preserves order")

	withConfig(t, config.Config{LawDirs: []string{laws}})
	withFlags(t, nil)

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	require.NoError(t, runWatch(cmd, nil))
	require.Contains(t, buf.String(), "validating once")
	require.Contains(t, buf.String(), "1 files, 1 references")
}

// ============================================================================
// Enumerate Sample Resolution Tests
// ============================================================================

func TestResolveSampleSize_ExplicitFlagWins(t *testing.T) {
	require.Equal(t, 0, resolveSampleSize(true, 0, 5), "explicit --sample 0 forces exhaustive")
	require.Equal(t, 3, resolveSampleSize(true, 3, 5))
	require.Equal(t, 5, resolveSampleSize(false, 0, 5), "unset flag falls back to config")
	require.Equal(t, 0, resolveSampleSize(false, 0, 0))
}

func TestEnumerate_ExplicitZeroSampleForcesExhaustive(t *testing.T) {
	withConfig(t, config.Config{Enumeration: config.EnumerationConfig{SampleSize: 3}})

	require.NoError(t, enumerateCmd.Flags().Set("sample", "0"))
	t.Cleanup(func() {
		enumerateCmd.Flags().Lookup("sample").Changed = false
		enumerateSample = 0
	})

	var buf bytes.Buffer
	enumerateCmd.SetOut(&buf)
	t.Cleanup(func() { enumerateCmd.SetOut(nil) })

	require.NoError(t, runEnumerate(enumerateCmd, nil))
	require.Contains(t, buf.String(), "visited")
	require.Contains(t, buf.String(), "72 of 72")
}

// ============================================================================
// Validation Pass Tests
// ============================================================================

func TestValidateAll_CleanLawsPass(t *testing.T) {
	manifests := t.TempDir()
	laws := t.TempDir()
	writeFile(t, filepath.Join(manifests, "core.yaml"), `capabilities:
  - type: Chain
    operations: [map, filter]
`)
	writeFile(t, filepath.Join(laws, "compose.md"), "`map` after `filter` preserves order")

	withConfig(t, config.Config{ManifestDirs: []string{manifests}, LawDirs: []string{laws}})

	var buf bytes.Buffer
	require.NoError(t, validateAll(&buf))
	require.Contains(t, buf.String(), "ok")
	require.Contains(t, buf.String(), "2 references")
}

func TestValidateAll_ReportsAllFormatErrors(t *testing.T) {
	laws := t.TempDir()
	writeFile(t, filepath.Join(laws, "bad.md"), "`` and `broken")

	withConfig(t, config.Config{LawDirs: []string{laws}})

	var buf bytes.Buffer
	err := validateAll(&buf)
	require.Error(t, err)
	require.Contains(t, err.Error(), "2 law formatting error(s)")
}

// ============================================================================
// Capability Helper Tests
// ============================================================================

func TestMissingNames_ReportsOnlyAbsent(t *testing.T) {
	manifest := capability.NewManifest(map[string][]string{
		"Chain": {"map", "filter"},
	})
	checker := capability.From("Chain", manifest.Introspector())

	missing := missingNames(checker, []string{"map", "fold", "traverse"})
	require.Equal(t, []string{"fold", "traverse"}, missing)
}

// ============================================================================
// Helpers
// ============================================================================

// withFlags swaps the package-level flag registry for the duration of a test.
func withFlags(t *testing.T, m map[string]bool) {
	t.Helper()
	prev := flagReg
	flagReg = flags.New(m)
	t.Cleanup(func() { flagReg = prev })
}

// withConfig swaps the package-level config for the duration of a test.
func withConfig(t *testing.T, c config.Config) {
	t.Helper()
	prev := cfg
	cfg = c
	t.Cleanup(func() { cfg = prev })
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
