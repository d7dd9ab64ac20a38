// Package compiler turns syntax trees into automata by structural recursion
// over the tree, folding sub-automata together with the automaton algebra.
package compiler

import (
	"errors"
	"fmt"

	"myregex/internal/automaton"
	"myregex/internal/syntax"
)

var ErrUnknownNode = errors.New("unrecognized node structure")

// Compile builds the automaton for n. The result still contains epsilon
// transitions.
func Compile(n syntax.Node) (*automaton.Automaton, error) {
	switch n := n.(type) {
	case syntax.Literal:
		return automaton.FromLiteral(n.Text)
	case syntax.Concat:
		return fold(n.Children, automaton.Concat)
	case syntax.Union:
		return fold(n.Children, automaton.Union)
	case syntax.Star:
		inner, err := Compile(n.Child)
		if err != nil {
			return nil, err
		}
		return automaton.Star(inner)
	case syntax.Empty:
		return automaton.Empty(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnknownNode, n)
	}
}

// fold combines the children left to right: op(op(c0, c1), c2)...
func fold(children []syntax.Node, op func(a, b *automaton.Automaton) (*automaton.Automaton, error)) (*automaton.Automaton, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: no children", ErrUnknownNode)
	}
	res, err := Compile(children[0])
	if err != nil {
		return nil, err
	}
	for _, c := range children[1:] {
		next, err := Compile(c)
		if err != nil {
			return nil, err
		}
		if res, err = op(res, next); err != nil {
			return nil, err
		}
	}
	return res, nil
}
