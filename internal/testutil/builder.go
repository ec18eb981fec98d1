// Package testutil provides builders and presets shared by package tests.
package testutil

import (
	"testing"

	"github.com/probelab/lawspace/internal/variant"
)

// SpaceBuilder accumulates variant registrations for a test space.
type SpaceBuilder struct {
	t     *testing.T
	space *variant.Space[int, string]
}

// NewSpaceBuilder creates a builder for an int/string test space.
func NewSpaceBuilder(t *testing.T) *SpaceBuilder {
	t.Helper()
	return &SpaceBuilder{t: t, space: variant.NewSpace[int, string]()}
}

// WithEndo registers an endo-transform.
func (b *SpaceBuilder) WithEndo(name string, fn func(int) int) *SpaceBuilder {
	b.space.Endos().Register(variant.NewFunc(name, fn))
	return b
}

// WithHetero registers a hetero-transform.
func (b *SpaceBuilder) WithHetero(name string, fn func(int) string) *SpaceBuilder {
	b.space.Heteros().Register(variant.NewFunc(name, fn))
	return b
}

// WithBinary registers a binary op.
func (b *SpaceBuilder) WithBinary(name string, fn func(int, int) int, opts ...variant.BinaryOption[int]) *SpaceBuilder {
	b.space.Binaries().Register(variant.NewBinary(name, fn, opts...))
	return b
}

// WithPredicate registers a predicate.
func (b *SpaceBuilder) WithPredicate(name string, fn func(int) bool) *SpaceBuilder {
	b.space.Predicates().Register(variant.NewFunc(name, fn))
	return b
}

// WithPartial registers a partial transform.
func (b *SpaceBuilder) WithPartial(name string, fn func(int) (string, bool)) *SpaceBuilder {
	b.space.Partials().Register(variant.NewPartial(name, fn))
	return b
}

// Build returns the constructed space.
func (b *SpaceBuilder) Build() *variant.Space[int, string] {
	b.t.Helper()
	return b.space
}
