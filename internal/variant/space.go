package variant

// NumRoles is the number of operation roles a bundle selects across.
const NumRoles = 5

// Role identifies one of the five operation roles in a bundle.
type Role int

const (
	RoleEndo Role = iota
	RoleHetero
	RoleBinary
	RolePredicate
	RolePartial
)

// String returns a human-readable representation of the Role.
func (r Role) String() string {
	switch r {
	case RoleEndo:
		return "endo"
	case RoleHetero:
		return "hetero"
	case RoleBinary:
		return "binary"
	case RolePredicate:
		return "predicate"
	case RolePartial:
		return "partial"
	default:
		return "unknown"
	}
}

// Space composes five registries, one per role, into a single enumerable
// combination space. A is the element type laws quantify over; B is the
// target type of the heterogeneous transforms.
//
// Registries are registered into before first use and read-only afterwards.
type Space[A, B any] struct {
	endos      *Registry[Func[A, A]]
	heteros    *Registry[Func[A, B]]
	binaries   *Registry[Binary[A]]
	predicates *Registry[Func[A, bool]]
	partials   *Registry[Partial[A, B]]
}

// NewSpace creates a space with five empty registries.
func NewSpace[A, B any]() *Space[A, B] {
	return &Space[A, B]{
		endos:      NewRegistry[Func[A, A]](),
		heteros:    NewRegistry[Func[A, B]](),
		binaries:   NewRegistry[Binary[A]](),
		predicates: NewRegistry[Func[A, bool]](),
		partials:   NewRegistry[Partial[A, B]](),
	}
}

// Endos returns the endo-transform registry.
func (s *Space[A, B]) Endos() *Registry[Func[A, A]] {
	return s.endos
}

// Heteros returns the hetero-transform registry.
func (s *Space[A, B]) Heteros() *Registry[Func[A, B]] {
	return s.heteros
}

// Binaries returns the binary-op registry.
func (s *Space[A, B]) Binaries() *Registry[Binary[A]] {
	return s.binaries
}

// Predicates returns the predicate registry.
func (s *Space[A, B]) Predicates() *Registry[Func[A, bool]] {
	return s.predicates
}

// Partials returns the partial-transform registry.
func (s *Space[A, B]) Partials() *Registry[Partial[A, B]] {
	return s.partials
}

// Sizes returns the five registry counts, in role order.
func (s *Space[A, B]) Sizes() [NumRoles]int {
	return [NumRoles]int{
		s.endos.Len(),
		s.heteros.Len(),
		s.binaries.Len(),
		s.predicates.Len(),
		s.partials.Len(),
	}
}

// Combinations returns the total size of the enumerable space: the product
// of the five registry counts.
func (s *Space[A, B]) Combinations() int {
	total := 1
	for _, n := range s.Sizes() {
		total *= n
	}
	return total
}

// Lookup validates every index against its registry's bound and, when all
// are in range, constructs a fresh Bundle selecting exactly those variants.
// Any out-of-range component yields (nil, false); callers must branch on
// presence before use.
func (s *Space[A, B]) Lookup(indices [NumRoles]int) (*Bundle[A, B], bool) {
	sizes := s.Sizes()
	for role, i := range indices {
		if i < 0 || i >= sizes[role] {
			return nil, false
		}
	}
	return &Bundle[A, B]{
		endo:      s.endos.At(indices[RoleEndo]),
		hetero:    s.heteros.At(indices[RoleHetero]),
		binary:    s.binaries.At(indices[RoleBinary]),
		predicate: s.predicates.At(indices[RolePredicate]),
		partial:   s.partials.At(indices[RolePartial]),
	}, true
}

// Walk visits every index vector of the cross product exactly once, in
// lexicographic order, with a fresh bundle per vector. Returning false from
// visit stops the walk early.
func (s *Space[A, B]) Walk(visit func(indices [NumRoles]int, b *Bundle[A, B]) bool) {
	sizes := s.Sizes()
	for _, n := range sizes {
		if n == 0 {
			return // empty registry, empty product
		}
	}

	var indices [NumRoles]int
	for {
		b, ok := s.Lookup(indices)
		if !ok {
			// Unreachable: indices stay inside sizes by construction.
			return
		}
		if !visit(indices, b) {
			return
		}

		// Advance like an odometer, last role fastest.
		role := NumRoles - 1
		for role >= 0 {
			indices[role]++
			if indices[role] < sizes[role] {
				break
			}
			indices[role] = 0
			role--
		}
		if role < 0 {
			return
		}
	}
}
