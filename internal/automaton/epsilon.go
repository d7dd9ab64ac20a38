package automaton

import (
	"container/list"
	"slices"
)

// Set is a set of states.
type Set map[State]struct{}

func NewSet(states ...State) Set {
	s := make(Set, len(states))
	for _, st := range states {
		s[st] = struct{}{}
	}
	return s
}

func (s Set) Has(st State) bool {
	_, ok := s[st]
	return ok
}

func (s Set) Add(st State) { s[st] = struct{}{} }

// Sorted returns the members in ascending order.
func (s Set) Sorted() []State {
	out := make([]State, 0, len(s))
	for st := range s {
		out = append(out, st)
	}
	slices.Sort(out)
	return out
}

// FromOn returns the states reached from any state in from by a single
// transition on sym. No epsilon moves are followed unless sym is Epsilon.
func (a *Automaton) FromOn(from Set, sym Symbol) Set {
	res := make(Set)
	for _, t := range a.delta {
		if t.On == sym && from.Has(t.From) {
			res[t.To] = struct{}{}
		}
	}
	return res
}

// EpsilonClosure returns the states reachable from the given states through
// epsilon moves alone. Every state belongs to its own closure.
func (a *Automaton) EpsilonClosure(states ...State) Set {
	return a.closure(NewSet(states...))
}

func (a *Automaton) closure(set Set) Set {
	stack := list.New()
	for s := range set {
		stack.PushBack(s)
	}
	for stack.Len() > 0 {
		s := stack.Remove(stack.Back()).(State)
		for _, t := range a.delta {
			if t.From != s || !t.On.epsilon {
				continue
			}
			if !set.Has(t.To) {
				set.Add(t.To)
				stack.PushBack(t.To)
			}
		}
	}
	return set
}

// EpsilonClosureOn allows epsilon moves before and after consuming sym.
func (a *Automaton) EpsilonClosureOn(from Set, sym Symbol) Set {
	before := a.closure(from.Clone())
	return a.closure(a.FromOn(before, sym))
}

func (s Set) Clone() Set {
	out := make(Set, len(s))
	for st := range s {
		out[st] = struct{}{}
	}
	return out
}

// RemoveEpsilons rewrites the automaton in place into an equivalent one with
// no epsilon transitions. Every state gets a direct transition for each
// state in its symbol closure, states whose epsilon closure holds a final
// state become final, and the epsilon moves are then dropped.
func (a *Automaton) RemoveEpsilons() {
	states := a.labels()
	symbols := a.Symbols()

	for _, s := range states {
		for _, sym := range symbols {
			if sym.epsilon {
				continue
			}
			current := a.FromOn(NewSet(s), sym)
			for _, to := range a.EpsilonClosureOn(NewSet(s), sym).Sorted() {
				if !current.Has(to) {
					a.Add(s, sym, to)
				}
			}
		}
	}

	for _, s := range states {
		if a.IsFinal(s) {
			continue
		}
		for c := range a.EpsilonClosure(s) {
			if a.IsFinal(c) {
				a.AddFinal(s)
				break
			}
		}
	}

	kept := a.delta[:0]
	for _, t := range a.delta {
		if !t.On.epsilon {
			kept = append(kept, t)
		}
	}
	a.delta = kept
}
