// Package variant models named operation variants, the registries that hold
// them, and the combination space a law suite enumerates over.
package variant

// Named carries the identity of an operation variant.
// Identity is the name alone: two variants with identical behavior but
// different names are distinct, and reusing a name is an intentional claim
// of identity. The capture site is debugging metadata and never takes part
// in equality.
type Named struct {
	name string
	site string
}

// NewNamed creates identity metadata for a variant.
func NewNamed(name string) Named {
	return Named{name: name}
}

// Name returns the variant's unique name.
func (n Named) Name() string {
	return n.name
}

// Site returns the optional capture site (e.g. "intspace.go:42").
func (n Named) Site() string {
	return n.site
}

// WithSite returns a copy carrying the capture site for debugging.
func (n Named) WithSite(site string) Named {
	n.site = site
	return n
}

// Func is a named unary operation from A to B.
// The endomorphic form is Func[A, A]; predicates are Func[A, bool].
type Func[A, B any] struct {
	Named
	fn func(A) B
}

// NewFunc creates a named unary operation.
func NewFunc[A, B any](name string, fn func(A) B) Func[A, B] {
	return Func[A, B]{Named: NewNamed(name), fn: fn}
}

// Apply invokes the operation.
func (f Func[A, B]) Apply(a A) B {
	return f.fn(a)
}

// Binary is a named operation combining two values of the same type.
// The identity element and the associativity/commutativity hints are
// declarative: the engine never verifies them. Callers decide which laws
// apply based on them, typically through tag filtering.
type Binary[A any] struct {
	Named
	fn          func(A, A) A
	identity    *A
	associative bool
	commutative bool
}

// BinaryOption configures optional Binary metadata.
type BinaryOption[A any] func(*Binary[A])

// WithIdentity declares the operation's identity element.
func WithIdentity[A any](id A) BinaryOption[A] {
	return func(b *Binary[A]) {
		b.identity = &id
	}
}

// MarkAssociative declares the operation associative. Unverified.
func MarkAssociative[A any]() BinaryOption[A] {
	return func(b *Binary[A]) {
		b.associative = true
	}
}

// MarkCommutative declares the operation commutative. Unverified.
func MarkCommutative[A any]() BinaryOption[A] {
	return func(b *Binary[A]) {
		b.commutative = true
	}
}

// NewBinary creates a named binary operation.
func NewBinary[A any](name string, fn func(A, A) A, opts ...BinaryOption[A]) Binary[A] {
	b := Binary[A]{Named: NewNamed(name), fn: fn}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Apply invokes the operation.
func (b Binary[A]) Apply(x, y A) A {
	return b.fn(x, y)
}

// Identity returns the declared identity element, if any.
func (b Binary[A]) Identity() (A, bool) {
	if b.identity == nil {
		var zero A
		return zero, false
	}
	return *b.identity, true
}

// HasIdentity reports whether an identity element was declared.
func (b Binary[A]) HasIdentity() bool {
	return b.identity != nil
}

// Associative reports the declared (unverified) associativity hint.
func (b Binary[A]) Associative() bool {
	return b.associative
}

// Commutative reports the declared (unverified) commutativity hint.
func (b Binary[A]) Commutative() bool {
	return b.commutative
}

// Partial is a named partial mapping from A to B, defined only on part of
// its domain. Apply reports whether the input was inside the domain.
type Partial[A, B any] struct {
	Named
	fn func(A) (B, bool)
}

// NewPartial creates a named partial operation.
func NewPartial[A, B any](name string, fn func(A) (B, bool)) Partial[A, B] {
	return Partial[A, B]{Named: NewNamed(name), fn: fn}
}

// Apply invokes the operation. ok is false when a is outside the domain.
func (p Partial[A, B]) Apply(a A) (B, bool) {
	return p.fn(a)
}
