package tags

import (
	"maps"
	"slices"
)

// Set is an immutable tag-filter value: disjoint required and excluded tag
// sets plus an ordered list of dynamic selectors. Mutators return derived
// copies, so Set values are freely shareable across goroutines.
type Set struct {
	states    map[Tag]State // StateRequired or StateExcluded entries only
	selectors []Selector
	disabled  map[Tag]bool // nil = consult the process-wide disabled registry
}

// New combines a sequence of tag expressions into one Set. Each expression
// is a bare required Tag, a Not(tag) exclusion, or a Selector.
func New(exprs ...Expr) Set {
	s := Set{states: make(map[Tag]State)}
	for _, e := range exprs {
		e.apply(&s)
	}
	return s
}

func (s Set) clone() Set {
	return Set{
		states:    maps.Clone(s.states),
		selectors: slices.Clone(s.selectors),
		disabled:  s.disabled,
	}
}

// Require returns a copy with the tag required. Any exclusion of the same
// tag is dropped: Require and Exclude are the only two mutators, which is
// what keeps the required and excluded sets disjoint. Idempotent.
func (s Set) Require(t Tag) Set {
	out := s.clone()
	if out.states == nil {
		out.states = make(map[Tag]State)
	}
	out.states[t] = StateRequired
	return out
}

// Exclude returns a copy with the tag excluded, dropping any requirement of
// the same tag. Idempotent.
func (s Set) Exclude(t Tag) Set {
	out := s.clone()
	if out.states == nil {
		out.states = make(map[Tag]State)
	}
	out.states[t] = StateExcluded
	return out
}

// WithSelector returns a copy with the dynamic selector appended. Selector
// order is registration order and Validate honors it.
func (s Set) WithSelector(sel Selector) Set {
	out := s.clone()
	out.selectors = append(out.selectors, sel)
	return out
}

// WithDisabled returns a copy whose disabled set is exactly the given tags,
// overriding the process-wide registry. Intended for tests.
func (s Set) WithDisabled(disabled ...Tag) Set {
	out := s.clone()
	out.disabled = make(map[Tag]bool, len(disabled))
	for _, t := range disabled {
		out.disabled[t] = true
	}
	return out
}

func (s Set) isDisabled(t Tag) bool {
	if s.disabled != nil {
		return s.disabled[t]
	}
	return Disabled(t)
}

// Effect returns the tag's tri-state effect for this set. Disabled wins
// over required and excluded.
func (s Set) Effect(t Tag) State {
	if s.isDisabled(t) {
		return StateDisabled
	}
	return s.states[t]
}

// Required returns the required tags, sorted for determinism.
func (s Set) Required() []Tag {
	return s.tagsIn(StateRequired)
}

// Excluded returns the excluded tags, sorted for determinism.
func (s Set) Excluded() []Tag {
	return s.tagsIn(StateExcluded)
}

func (s Set) tagsIn(state State) []Tag {
	var out []Tag
	for t, st := range s.states {
		if st == state {
			out = append(out, t)
		}
	}
	slices.Sort(out)
	return out
}

// Selectors returns how many dynamic selectors the set carries.
func (s Set) Selectors() int {
	return len(s.selectors)
}

// Compatible is the structural, data-independent check: true iff every
// required tag that is not disabled is present, and no excluded tag that is
// not disabled is present. It runs before any concrete test data exists and
// prunes the generation space cheaply.
func (s Set) Compatible(present []Tag) bool {
	presentSet := make(map[Tag]bool, len(present))
	for _, t := range present {
		presentSet[t] = true
	}

	for t, state := range s.states {
		if s.isDisabled(t) {
			continue
		}
		switch state {
		case StateRequired:
			if !presentSet[t] {
				return false
			}
		case StateExcluded:
			if presentSet[t] {
				return false
			}
		}
	}
	return true
}

// Validate runs the selectors in registration order against one concrete
// test case and returns the first skip encountered. Later selectors are not
// evaluated once a skip is found.
func (s Set) Validate(info EvalInfo) (Skip, bool) {
	for _, sel := range s.selectors {
		if skip, ok := sel(info); ok {
			return skip, true
		}
	}
	return Skip{}, false
}
