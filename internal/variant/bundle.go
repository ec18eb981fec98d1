package variant

import "fmt"

// Bundle is one concrete selection across the five roles, with per-role
// usage instrumentation. A law suite obtains a fresh bundle per evaluation
// via Space.Lookup, evaluates the law against the accessors, then inspects
// the usage flags to assert the law exercised what it claimed.
//
// Bundles are single-owner values: they carry mutable flag state and must
// not be shared across concurrent evaluations.
type Bundle[A, B any] struct {
	endo      Func[A, A]
	hetero    Func[A, B]
	binary    Binary[A]
	predicate Func[A, bool]
	partial   Partial[A, B]

	used [NumRoles]bool
}

// Endo returns the endo-transform and marks it used.
func (b *Bundle[A, B]) Endo() Func[A, A] {
	b.used[RoleEndo] = true
	return b.endo
}

// Hetero returns the hetero-transform and marks it used.
func (b *Bundle[A, B]) Hetero() Func[A, B] {
	b.used[RoleHetero] = true
	return b.hetero
}

// Binary returns the binary op and marks it used.
func (b *Bundle[A, B]) Binary() Binary[A] {
	b.used[RoleBinary] = true
	return b.binary
}

// Predicate returns the predicate and marks it used.
func (b *Bundle[A, B]) Predicate() Func[A, bool] {
	b.used[RolePredicate] = true
	return b.predicate
}

// Partial returns the partial transform and marks it used.
func (b *Bundle[A, B]) Partial() Partial[A, B] {
	b.used[RolePartial] = true
	return b.partial
}

// Identity returns the binary op's declared identity element.
//
// It marks the partial-transform flag slot rather than a dedicated one.
// The shared slot is deliberate - downstream coverage assertions depend on
// exactly this coupling, so it must not gain its own flag.
//
// Calling Identity on a selection whose binary op declares no identity is a
// contract violation with no recovery path: filter such configurations out
// upstream (tags.Set selectors) instead of recovering here.
func (b *Bundle[A, B]) Identity() A {
	b.used[RolePartial] = true
	id, ok := b.binary.Identity()
	if !ok {
		panic(fmt.Sprintf("variant: binary op %q declares no identity element", b.binary.Name()))
	}
	return id
}

// Used reports whether the given role's accessor has been called.
func (b *Bundle[A, B]) Used(role Role) bool {
	if role < 0 || role >= NumRoles {
		return false
	}
	return b.used[role]
}

// Touched reports whether any accessor has been called - the whole-bundle
// "was anything from this configuration actually exercised" check.
func (b *Bundle[A, B]) Touched() bool {
	for _, u := range b.used {
		if u {
			return true
		}
	}
	return false
}

// Reset clears all usage flags so the bundle can be reused for a retried
// evaluation without reconstructing the variant selection.
func (b *Bundle[A, B]) Reset() {
	b.used = [NumRoles]bool{}
}

// Key identifies a bundle by the names of its five selected variants.
// It is comparable and usable as a map key; usage flags never contribute,
// so two bundles describing the same configuration are interchangeable for
// deduplication regardless of usage history.
type Key struct {
	Endo      string
	Hetero    string
	Binary    string
	Predicate string
	Partial   string
}

// String formats the key for logs and CLI output.
func (k Key) String() string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", k.Endo, k.Hetero, k.Binary, k.Predicate, k.Partial)
}

// Key returns the bundle's selected-variant identity.
func (b *Bundle[A, B]) Key() Key {
	return Key{
		Endo:      b.endo.Name(),
		Hetero:    b.hetero.Name(),
		Binary:    b.binary.Name(),
		Predicate: b.predicate.Name(),
		Partial:   b.partial.Name(),
	}
}

// Equal reports whether two bundles select the same five variants.
// Usage flags are ignored.
func (b *Bundle[A, B]) Equal(other *Bundle[A, B]) bool {
	if other == nil {
		return false
	}
	return b.Key() == other.Key()
}
