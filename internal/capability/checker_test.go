package capability

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// === Helper Functions ===

func chainIntrospector(t *testing.T) Introspector {
	t.Helper()

	return NewManifest(map[string][]string{
		"Chain":  {"map", "filter", "fold", "toString", "equals"},
		"Stack":  {"push", "pop", "hashCode"},
		"Sparse": {},
	}).Introspector()
}

// === Unit Tests: From ===

func TestFrom_DerivationDropsIgnoredAddsAssumed(t *testing.T) {
	c := From("Chain", chainIntrospector(t))

	// introspected - ignore set + assume set
	require.Equal(t, []string{"filter", "fold", "iterate", "map", "size"}, c.Names())
	require.False(t, c.Has("toString"), "universally-inherited names are never capabilities")
	require.False(t, c.Has("equals"))
	require.True(t, c.Has("size"), "shared-contract names are always assumed")
}

func TestFrom_UnknownTypeGetsAssumedContractOnly(t *testing.T) {
	c := From("Nonexistent", chainIntrospector(t))

	require.Equal(t, []string{"iterate", "size"}, c.Names())
}

func TestFrom_EmptyDeclarationGetsAssumedContractOnly(t *testing.T) {
	c := From("Sparse", chainIntrospector(t))

	require.Equal(t, []string{"iterate", "size"}, c.Names())
}

// === Unit Tests: Passes ===

func TestChecker_Passes(t *testing.T) {
	c := From("Chain", chainIntrospector(t))

	tests := []struct {
		name     string
		required []string
		want     bool
	}{
		{"both present", []string{"map", "filter"}, true},
		{"one missing", []string{"map", "reverse"}, false},
		{"all missing", []string{"reverse", "sort"}, false},
		{"assumed name counts", []string{"map", "size"}, true},
		{"ignored name never passes", []string{"toString"}, false},
		{"empty requirement passes", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, c.Passes(tt.required...))
		})
	}
}

func TestChecker_PassesChecker(t *testing.T) {
	intro := chainIntrospector(t)
	chain := From("Chain", intro)
	sparse := From("Sparse", intro)

	require.True(t, chain.PassesChecker(sparse), "chain covers the shared contract")
	require.False(t, sparse.PassesChecker(chain), "sparse lacks map/filter/fold")
	require.True(t, chain.PassesChecker(chain))
}

// === Unit Tests: Union ===

func TestChecker_Union_CombinesNameSets(t *testing.T) {
	intro := chainIntrospector(t)
	chain := From("Chain", intro)
	stack := From("Stack", intro)

	combined := chain.Union(stack)

	require.Equal(t, "Chain+Stack", combined.TypeName())
	require.True(t, combined.Passes("map", "push", "pop", "size"))
	require.False(t, combined.Passes("reverse"))
}

func TestChecker_Union_SameTypeKeepsName(t *testing.T) {
	intro := chainIntrospector(t)
	a := From("Chain", intro)
	b := From("Chain", intro)

	require.Equal(t, "Chain", a.Union(b).TypeName())
}

func TestChecker_Union_BuildsCompositeRequirement(t *testing.T) {
	intro := chainIntrospector(t)
	composite := From("Chain", intro).Union(From("Stack", intro))

	// A target passing the composite passes each part.
	require.True(t, composite.PassesChecker(From("Chain", intro)))
	require.True(t, composite.PassesChecker(From("Stack", intro)))
}
