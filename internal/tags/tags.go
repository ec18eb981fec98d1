// Package tags implements the two-phase filtering algebra that gates which
// generated configurations apply: a structural compatibility check that runs
// before any concrete test data exists, and ordered dynamic selectors that
// run against concrete per-test parameters.
package tags

// Tag is an atomic label gating whether a configuration or law applies.
type Tag string

// State is the explicit tri-state effect a tag has for a given set:
// required, excluded, or globally disabled. Disabled wins - a disabled tag
// never blocks compatibility regardless of being required or excluded.
type State int

const (
	StateNone State = iota
	StateRequired
	StateExcluded
	StateDisabled
)

// String returns a human-readable representation of the State.
func (s State) String() string {
	switch s {
	case StateNone:
		return "none"
	case StateRequired:
		return "required"
	case StateExcluded:
		return "excluded"
	case StateDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// EvalInfo describes one concrete instantiated test case. Selectors inspect
// it for facts unavailable at Compatible-time, e.g. whether the chosen
// binary op happened to declare an identity element.
type EvalInfo struct {
	BundleKey   string // selected-variant identity of the evaluated bundle
	HasIdentity bool   // chosen binary op declares an identity element
	Associative bool   // declared associativity hint
	Commutative bool   // declared commutativity hint

	// Params carries generated per-test values for selectors that need
	// the concrete data itself.
	Params map[string]any
}

// Skip is a dynamic-selector outcome carrying the reason a test case was
// skipped.
type Skip struct {
	Reason string
}

// Selector is a dynamic predicate over one concrete test case. It returns
// (Skip, true) to skip with a reason, or (Skip{}, false) to let the case
// run.
type Selector func(info EvalInfo) (Skip, bool)

// Expr is one element of a tag expression sequence: a bare Tag (required),
// Not(tag) (excluded), or a raw Selector (dynamic predicate).
type Expr interface {
	apply(s *Set)
}

func (t Tag) apply(s *Set) {
	s.states[t] = StateRequired
}

func (sel Selector) apply(s *Set) {
	s.selectors = append(s.selectors, sel)
}

type notExpr struct {
	tag Tag
}

func (n notExpr) apply(s *Set) {
	s.states[n.tag] = StateExcluded
}

// Not marks a tag as excluded in a New expression sequence.
func Not(t Tag) Expr {
	return notExpr{tag: t}
}
