package testutil

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/probelab/lawspace/internal/variant"
)

// WithMinimalOperations registers one variant per role, the smallest space
// Lookup can serve (a single combination).
func (b *SpaceBuilder) WithMinimalOperations() *SpaceBuilder {
	return b.
		WithEndo("identity", func(n int) int { return n }).
		WithHetero("decimal", strconv.Itoa).
		WithBinary("sum", func(x, y int) int { return x + y }, variant.WithIdentity(0)).
		WithPredicate("even", func(n int) bool { return n%2 == 0 }).
		WithPartial("never", func(n int) (string, bool) { return "", false })
}

// WithIdentityFreeBinary registers a binary op that declares no identity
// element, for exercising the missing-identity contract violation.
func (b *SpaceBuilder) WithIdentityFreeBinary() *SpaceBuilder {
	return b.WithBinary("max", func(x, y int) int {
		if x > y {
			return x
		}
		return y
	})
}

// WriteManifest writes a capability manifest YAML into dir and returns its
// path. The file lands in a fresh temp dir when dir is empty.
func WriteManifest(t *testing.T, dir, name, content string) string {
	t.Helper()

	if dir == "" {
		dir = t.TempDir()
	}
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ChainManifestYAML is a ready-made manifest declaring a Chain type with
// the classic transform surface.
const ChainManifestYAML = `capabilities:
  - type: Chain
    operations: [map, filter, fold, toString]
  - type: Stack
    operations: [push, pop]
`
