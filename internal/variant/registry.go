package variant

import "fmt"

// Registry is an ordered, append-only collection of interchangeable variants
// for a single operation role. It is populated exactly once during static
// setup and never mutated afterwards, which makes it safe for unrestricted
// concurrent reads.
//
// Duplicate names are permitted by construction: no uniqueness is enforced
// at this layer, so registering the same name twice yields two distinct
// entries that only their behavior can tell apart.
type Registry[V any] struct {
	items []V
}

// NewRegistry creates an empty registry.
func NewRegistry[V any]() *Registry[V] {
	return &Registry[V]{}
}

// Register appends a variant and returns it, so call sites can keep a
// reference to the registered value.
func (r *Registry[V]) Register(item V) V {
	r.items = append(r.items, item)
	return item
}

// At returns the ith variant. Indices are produced internally from known
// bounds, never from untrusted input, so an out-of-range index is a
// programming error and panics.
func (r *Registry[V]) At(i int) V {
	if i < 0 || i >= len(r.items) {
		panic(fmt.Sprintf("variant: registry index %d out of range [0,%d)", i, len(r.items)))
	}
	return r.items[i]
}

// Len returns the number of registered variants.
func (r *Registry[V]) Len() int {
	return len(r.items)
}
