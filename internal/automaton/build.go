package automaton

import "fmt"

// FromLiteral builds a linear chain with one transition per rune of text.
func FromLiteral(text string) (*Automaton, error) {
	if text == "" {
		return nil, ErrEmptyLiteral
	}
	a := New()
	state := State(1)
	a.SetStart(state)
	for _, r := range text {
		a.Add(state, Rune(r), state+1)
		state++
	}
	a.AddFinal(state)
	return a, nil
}

// Empty returns the automaton accepting only the empty string: its start
// state is also its only final state and it has no transitions.
func Empty() *Automaton {
	a := New()
	a.SetStart(1)
	a.AddFinal(1)
	return a
}

func checkOperands(a, b *Automaton) error {
	if err := a.validate(); err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	if err := b.validate(); err != nil {
		return fmt.Errorf("second operand: %w", err)
	}
	return nil
}

// graft copies b's transitions into dst, renaming every state of b to a fresh
// label except b's start state, which becomes anchor. It returns the renaming.
func graft(dst, b *Automaton, anchor State) map[State]State {
	next := dst.NextState()
	remap := make(map[State]State)
	for _, s := range b.labels() {
		if s == b.start {
			remap[s] = anchor
			continue
		}
		remap[s] = next
		next++
	}
	for _, t := range b.delta {
		dst.Add(remap[t.From], t.On, remap[t.To])
	}
	return remap
}

// Union accepts L(a) ∪ L(b). Both operands share a's start state; this is
// sound because no construction in this package creates edges into a start
// state.
func Union(a, b *Automaton) (*Automaton, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	remap := graft(out, b, a.start)
	for _, f := range b.Finals() {
		out.AddFinal(remap[f])
	}
	return out, nil
}

// Concat accepts L(a)·L(b). b's start state is glued onto a's single final
// state, or onto a new state reached by epsilon from each of a's final
// states when there are several.
func Concat(a, b *Automaton) (*Automaton, error) {
	if err := checkOperands(a, b); err != nil {
		return nil, err
	}
	out := a.Clone()
	out.final = make(map[State]struct{})

	finals := a.Finals()
	merge := finals[0]
	if len(finals) > 1 {
		merge = a.NextState()
		for _, f := range finals {
			out.Add(f, Epsilon, merge)
		}
	}

	remap := graft(out, b, merge)
	for _, f := range b.Finals() {
		out.AddFinal(remap[f])
	}
	return out, nil
}

// Star accepts the Kleene closure of L(a).
func Star(a *Automaton) (*Automaton, error) {
	if err := a.validate(); err != nil {
		return nil, err
	}
	out := a.Clone()
	start := out.NextState()
	final := start + 1
	finals := a.Finals()

	out.Add(start, Epsilon, a.start)
	for _, f := range finals {
		out.Add(f, Epsilon, final)
	}
	out.Add(start, Epsilon, final)
	for _, f := range finals {
		out.Add(f, Epsilon, a.start)
	}

	out.SetStart(start)
	out.final = map[State]struct{}{final: {}}
	return out, nil
}
