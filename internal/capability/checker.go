// Package capability decides whether a candidate target type exposes the
// operation surface a law requires, before that law is generated for it.
package capability

import (
	"slices"
	"strings"

	"github.com/probelab/lawspace/internal/log"
)

// Introspector lists a target type's public operation names. The actual
// mechanism is supplied by the host environment - in this repository it is
// backed by static capability manifests (see Manifest.Introspector).
type Introspector func(typeName string) ([]string, bool)

// ignoreSet holds universally-inherited operation names that are never
// meaningful capabilities.
var ignoreSet = map[string]bool{
	"toString": true,
	"equals":   true,
	"hashCode": true,
}

// assumeSet holds operations every target is presumed to expose through the
// shared container contract, even when a manifest does not list them.
var assumeSet = []string{
	"size",
	"iterate",
}

// Checker answers subset queries against a target type's derived
// supported-operation-name set. It is an immutable value, computed once per
// type as introspected names minus the ignore set plus the assume set.
// Queries never fail: a missing capability is communicated as false.
type Checker struct {
	typeName string
	names    map[string]bool
}

// From derives the checker for a target type. An unknown type yields only
// the assumed names, so laws requiring anything else are refused for it.
func From(typeName string, intro Introspector) Checker {
	names := make(map[string]bool)

	introspected, ok := intro(typeName)
	if !ok {
		log.Warn(log.CatCaps, "Type not introspectable, assuming shared contract only", "type", typeName)
	}
	for _, name := range introspected {
		if ignoreSet[name] {
			continue
		}
		names[name] = true
	}
	for _, name := range assumeSet {
		names[name] = true
	}

	log.Debug(log.CatCaps, "Derived capability set", "type", typeName, "count", len(names))
	return Checker{typeName: typeName, names: names}
}

// TypeName returns the target type this checker was derived for.
func (c Checker) TypeName() string {
	return c.typeName
}

// Names returns the derived operation names, sorted for determinism.
func (c Checker) Names() []string {
	out := make([]string, 0, len(c.names))
	for name := range c.names {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// Has reports whether a single operation name is supported.
func (c Checker) Has(name string) bool {
	return c.names[name]
}

// Passes reports whether every required operation name is supported.
func (c Checker) Passes(required ...string) bool {
	for _, name := range required {
		if !c.names[name] {
			return false
		}
	}
	return true
}

// PassesChecker reports whether every name the other checker derived is
// supported by this one.
func (c Checker) PassesChecker(other Checker) bool {
	return c.Passes(other.Names()...)
}

// Union combines two checkers' name sets, used to build composite
// requirements from multiple law groups.
func (c Checker) Union(other Checker) Checker {
	names := make(map[string]bool, len(c.names)+len(other.names))
	for name := range c.names {
		names[name] = true
	}
	for name := range other.names {
		names[name] = true
	}

	typeName := c.typeName
	if other.typeName != "" && other.typeName != c.typeName {
		if typeName == "" {
			typeName = other.typeName
		} else {
			typeName = strings.Join([]string{c.typeName, other.typeName}, "+")
		}
	}
	return Checker{typeName: typeName, names: names}
}
