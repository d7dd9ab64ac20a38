// Package automaton stores nondeterministic finite automata as ordered
// transition triples and implements the Thompson-style algebra used to build
// them from patterns.
package automaton

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoStart      = errors.New("automaton has no start state")
	ErrNoFinal      = errors.New("automaton has no final states")
	ErrEmptyLiteral = errors.New("literal has no symbols")
)

// State is an opaque state label. Freshly generated states are numbered
// from 1 upwards.
type State int

// Symbol is either a pattern rune or the epsilon marker. The marker lives
// outside the rune space, so no input can ever collide with it.
type Symbol struct {
	r       rune
	epsilon bool
}

// Epsilon labels transitions that consume no input.
var Epsilon = Symbol{epsilon: true}

// Rune wraps a pattern symbol.
func Rune(r rune) Symbol { return Symbol{r: r} }

func (s Symbol) IsEpsilon() bool { return s.epsilon }

// Rune returns the wrapped symbol; it is meaningless for Epsilon.
func (s Symbol) Rune() rune { return s.r }

func (s Symbol) String() string {
	if s.epsilon {
		return "ε"
	}
	return string(s.r)
}

// Transition is one (from, symbol, to) triple.
type Transition struct {
	From State
	On   Symbol
	To   State
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%s-> %d", t.From, t.On, t.To)
}

// Automaton is the state/transition graph of a pattern. The zero value is an
// empty automaton without a start state.
type Automaton struct {
	delta    []Transition
	start    State
	hasStart bool
	final    map[State]struct{}
}

// New returns an empty automaton.
func New() *Automaton {
	return &Automaton{final: make(map[State]struct{})}
}

// Add appends a transition.
func (a *Automaton) Add(from State, on Symbol, to State) {
	a.delta = append(a.delta, Transition{From: from, On: on, To: to})
}

func (a *Automaton) SetStart(s State) {
	a.start = s
	a.hasStart = true
}

// Start returns the start state and whether one has been set.
func (a *Automaton) Start() (State, bool) { return a.start, a.hasStart }

func (a *Automaton) AddFinal(s State) {
	if a.final == nil {
		a.final = make(map[State]struct{})
	}
	a.final[s] = struct{}{}
}

func (a *Automaton) IsFinal(s State) bool {
	_, ok := a.final[s]
	return ok
}

// Finals returns the accepting states in ascending order.
func (a *Automaton) Finals() []State {
	out := make([]State, 0, len(a.final))
	for s := range a.final {
		out = append(out, s)
	}
	slices.Sort(out)
	return out
}

// Transitions returns a copy of the transition list in insertion order.
func (a *Automaton) Transitions() []Transition {
	return slices.Clone(a.delta)
}

// States returns every state that appears in a transition, in order of
// first appearance.
func (a *Automaton) States() []State {
	seen := make(map[State]struct{})
	var out []State
	for _, t := range a.delta {
		for _, s := range [2]State{t.From, t.To} {
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}

// Symbols returns every symbol used by a transition, epsilon included, in
// order of first appearance.
func (a *Automaton) Symbols() []Symbol {
	seen := make(map[Symbol]struct{})
	var out []Symbol
	for _, t := range a.delta {
		if _, ok := seen[t.On]; !ok {
			seen[t.On] = struct{}{}
			out = append(out, t.On)
		}
	}
	return out
}

// labels is States plus the start and final states, which an automaton
// without transitions still owns.
func (a *Automaton) labels() []State {
	out := a.States()
	seen := make(map[State]struct{}, len(out))
	for _, s := range out {
		seen[s] = struct{}{}
	}
	extra := a.Finals()
	if a.hasStart {
		extra = append([]State{a.start}, extra...)
	}
	for _, s := range extra {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			out = append(out, s)
		}
	}
	return out
}

// NextState returns one more than the largest label in use (1 for an empty
// automaton). It is computed on every call, so two calls without an
// intervening Add return the same value.
func (a *Automaton) NextState() State {
	var top State
	for _, s := range a.labels() {
		if s > top {
			top = s
		}
	}
	return top + 1
}

// HasEpsilons reports whether any transition is an epsilon move.
func (a *Automaton) HasEpsilons() bool {
	for _, t := range a.delta {
		if t.On.epsilon {
			return true
		}
	}
	return false
}

// From derives an automaton holding only the transitions leaving s.
func (a *Automaton) From(s State) *Automaton {
	out := New()
	for _, t := range a.delta {
		if t.From == s {
			out.delta = append(out.delta, t)
		}
	}
	return out
}

// To derives an automaton holding only the transitions entering s.
func (a *Automaton) To(s State) *Automaton {
	out := New()
	for _, t := range a.delta {
		if t.To == s {
			out.delta = append(out.delta, t)
		}
	}
	return out
}

// Clone returns a deep copy.
func (a *Automaton) Clone() *Automaton {
	out := New()
	out.delta = slices.Clone(a.delta)
	out.start, out.hasStart = a.start, a.hasStart
	for s := range a.final {
		out.final[s] = struct{}{}
	}
	return out
}

func (a *Automaton) validate() error {
	if !a.hasStart {
		return ErrNoStart
	}
	if len(a.final) == 0 {
		return ErrNoFinal
	}
	return nil
}

func (a *Automaton) String() string {
	return fmt.Sprintf("automaton{start=%d finals=%v transitions=%d}", a.start, a.Finals(), len(a.delta))
}
