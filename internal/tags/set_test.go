package tags

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// === Unit Tests: New ===

func TestNew_CombinesExpressions(t *testing.T) {
	sel := Selector(func(info EvalInfo) (Skip, bool) {
		return Skip{Reason: "always"}, true
	})

	s := New(Tag("associative"), Not("slow"), sel)

	require.Equal(t, []Tag{"associative"}, s.Required())
	require.Equal(t, []Tag{"slow"}, s.Excluded())
	require.Equal(t, 1, s.Selectors())
}

func TestNew_EmptyIsCompatibleWithAnything(t *testing.T) {
	s := New()

	require.True(t, s.Compatible(nil))
	require.True(t, s.Compatible([]Tag{"anything", "at", "all"}))

	_, skipped := s.Validate(EvalInfo{})
	require.False(t, skipped)
}

// === Unit Tests: Require / Exclude ===

func TestSet_RequireThenExclude_LeavesExcluded(t *testing.T) {
	s := New().Require("ordered").Exclude("ordered")

	require.Empty(t, s.Required())
	require.Equal(t, []Tag{"ordered"}, s.Excluded())
}

func TestSet_ExcludeThenRequire_LeavesRequired(t *testing.T) {
	s := New().Exclude("ordered").Require("ordered")

	require.Equal(t, []Tag{"ordered"}, s.Required())
	require.Empty(t, s.Excluded())
}

func TestSet_RequireIsIdempotent(t *testing.T) {
	s := New().Require("ordered").Require("ordered").Require("ordered")

	require.Equal(t, []Tag{"ordered"}, s.Required())
}

func TestSet_ExcludeIsIdempotent(t *testing.T) {
	s := New().Exclude("slow").Exclude("slow")

	require.Equal(t, []Tag{"slow"}, s.Excluded())
}

func TestSet_RequiredAndExcludedStayDisjoint(t *testing.T) {
	s := New()
	for i := 0; i < 5; i++ {
		s = s.Require("t").Exclude("t").Require("t")
	}

	require.Equal(t, []Tag{"t"}, s.Required())
	require.Empty(t, s.Excluded())
}

func TestSet_MutatorsReturnDerivedValues(t *testing.T) {
	base := New(Tag("a"))
	derived := base.Exclude("b")

	require.Empty(t, base.Excluded(), "base must be unchanged")
	require.Equal(t, []Tag{"b"}, derived.Excluded())
	require.Equal(t, []Tag{"a"}, derived.Required())
}

// === Unit Tests: Effect ===

func TestSet_Effect(t *testing.T) {
	s := New(Tag("req"), Not("exc")).WithDisabled("req", "off")

	require.Equal(t, StateDisabled, s.Effect("req"), "disabled wins over required")
	require.Equal(t, StateExcluded, s.Effect("exc"))
	require.Equal(t, StateDisabled, s.Effect("off"))
	require.Equal(t, StateNone, s.Effect("neither"))
}

// === Unit Tests: Compatible ===

// Full table over {required, excluded, neither} × {present, absent} ×
// {enabled, disabled} for a single tag.
func TestSet_Compatible_Table(t *testing.T) {
	const tag = Tag("t")

	tests := []struct {
		state    State // how the set refers to the tag
		present  bool
		disabled bool
		want     bool
	}{
		{StateRequired, true, false, true},
		{StateRequired, false, false, false},
		{StateRequired, true, true, true},
		{StateRequired, false, true, true}, // disabled required tag never blocks
		{StateExcluded, true, false, false},
		{StateExcluded, false, false, true},
		{StateExcluded, true, true, true}, // disabled excluded tag never blocks
		{StateExcluded, false, true, true},
		{StateNone, true, false, true},
		{StateNone, false, false, true},
		{StateNone, true, true, true},
		{StateNone, false, true, true},
	}

	for _, tt := range tests {
		name := fmt.Sprintf("%s/present=%v/disabled=%v", tt.state, tt.present, tt.disabled)
		t.Run(name, func(t *testing.T) {
			s := New()
			switch tt.state {
			case StateRequired:
				s = s.Require(tag)
			case StateExcluded:
				s = s.Exclude(tag)
			}
			if tt.disabled {
				s = s.WithDisabled(tag)
			} else {
				s = s.WithDisabled() // empty override, ignore global state
			}

			var present []Tag
			if tt.present {
				present = []Tag{tag}
			}

			require.Equal(t, tt.want, s.Compatible(present))
		})
	}
}

func TestSet_Compatible_MixedTags(t *testing.T) {
	s := New(Tag("associative"), Tag("identity"), Not("slow")).WithDisabled()

	require.True(t, s.Compatible([]Tag{"associative", "identity"}))
	require.False(t, s.Compatible([]Tag{"associative"}), "missing required tag")
	require.False(t, s.Compatible([]Tag{"associative", "identity", "slow"}), "excluded tag present")
}

// === Unit Tests: Validate ===

func TestSet_Validate_NoSelectors(t *testing.T) {
	_, skipped := New(Tag("a")).Validate(EvalInfo{})
	require.False(t, skipped)
}

func TestSet_Validate_FirstSkipWins(t *testing.T) {
	calls := []string{}
	s := New().
		WithSelector(func(info EvalInfo) (Skip, bool) {
			calls = append(calls, "first")
			return Skip{Reason: "first reason"}, true
		}).
		WithSelector(func(info EvalInfo) (Skip, bool) {
			calls = append(calls, "second")
			return Skip{Reason: "second reason"}, true
		})

	skip, skipped := s.Validate(EvalInfo{})

	require.True(t, skipped)
	require.Equal(t, "first reason", skip.Reason)
	require.Equal(t, []string{"first"}, calls, "later selectors must not run after a skip")
}

func TestSet_Validate_SecondSelectorSkips(t *testing.T) {
	s := New().
		WithSelector(func(info EvalInfo) (Skip, bool) {
			return Skip{}, false
		}).
		WithSelector(func(info EvalInfo) (Skip, bool) {
			if !info.HasIdentity {
				return Skip{Reason: "binary op declares no identity element"}, true
			}
			return Skip{}, false
		})

	skip, skipped := s.Validate(EvalInfo{HasIdentity: false})
	require.True(t, skipped)
	require.Equal(t, "binary op declares no identity element", skip.Reason)

	_, skipped = s.Validate(EvalInfo{HasIdentity: true})
	require.False(t, skipped)
}

func TestSet_Validate_SelectorsSeeRuntimeInfo(t *testing.T) {
	var seen EvalInfo
	s := New().WithSelector(func(info EvalInfo) (Skip, bool) {
		seen = info
		return Skip{}, false
	})

	info := EvalInfo{
		BundleKey:   "increment/decimal/sum/even/digitWord",
		HasIdentity: true,
		Associative: true,
		Params:      map[string]any{"n": 41},
	}
	_, _ = s.Validate(info)

	require.Equal(t, info.BundleKey, seen.BundleKey)
	require.True(t, seen.Associative)
	require.Equal(t, 41, seen.Params["n"])
}

// === Unit Tests: global disabled registry ===

func TestDisabled_GlobalRegistry(t *testing.T) {
	SetDisabled([]Tag{"flaky"})
	t.Cleanup(func() { SetDisabled(nil) })

	require.True(t, Disabled("flaky"))
	require.False(t, Disabled("ordered"))

	// A set without an override consults the global registry.
	s := New().Require("flaky")
	require.True(t, s.Compatible(nil), "globally disabled required tag must not block")
	require.Equal(t, StateDisabled, s.Effect("flaky"))
}
