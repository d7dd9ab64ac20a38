// Package regexlib compiles patterns made of literals, grouping, alternation
// and the postfix star into an epsilon-free automaton and decides whether
// strings belong to the pattern's language.
//
// Matching simulates the nondeterministic automaton one input rune at a time
// while carrying the set of live states, so a match costs O(n·|Q|) for an
// input of n runes and never backtracks.
//
// Note that a star applies to the whole run of literal runes before it:
// "foo*" matches "", "foo", "foofoo", ... and not "fooo".
package regexlib

import (
	"io"
	"log/slog"

	"myregex/internal/automaton"
	"myregex/internal/compiler"
	"myregex/internal/mvtable"
	"myregex/internal/syntax"
)

// Regex is a compiled pattern. It is immutable once built and safe for
// concurrent use.
type Regex struct {
	pattern string
	tree    syntax.Node
	fsm     *automaton.Automaton
	start   automaton.State
	// state × rune → states, built once from fsm
	index *mvtable.Table[automaton.State, rune, automaton.State]
}

type options struct {
	mode   syntax.Mode
	logger *slog.Logger
}

type Option func(*options)

// WithStrictSyntax makes unbalanced parentheses a compile error instead of
// silently closing or ending the enclosing group.
func WithStrictSyntax() Option {
	return func(o *options) { o.mode = syntax.Strict }
}

// WithLogger sets the logger that receives compile statistics at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// Compile parses pattern, builds its automaton and removes epsilon moves.
func Compile(pattern string, opts ...Option) (*Regex, error) {
	o := options{mode: syntax.Lenient, logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	tree, err := syntax.ParseMode(pattern, o.mode)
	if err != nil {
		return nil, err
	}
	fsm, err := compiler.Compile(tree)
	if err != nil {
		return nil, err
	}
	raw := len(fsm.Transitions())
	fsm.RemoveEpsilons()

	start, _ := fsm.Start()
	index := mvtable.New[automaton.State, rune, automaton.State]()
	for _, t := range fsm.Transitions() {
		index.Add(t.From, t.On.Rune(), t.To)
	}

	o.logger.Debug("pattern compiled",
		slog.String("pattern", pattern),
		slog.Int("states", len(fsm.States())),
		slog.Int("thompson_transitions", raw),
		slog.Int("transitions", len(fsm.Transitions())),
		slog.Int("finals", len(fsm.Finals())),
	)

	return &Regex{
		pattern: pattern,
		tree:    tree,
		fsm:     fsm,
		start:   start,
		index:   index,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(pattern string, opts ...Option) *Regex {
	r, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// MatchString reports whether the whole of input is in the pattern's
// language.
func (r *Regex) MatchString(input string) bool {
	current := automaton.NewSet(r.start)
	next := make(automaton.Set)
	for _, ch := range input {
		for s := range current {
			r.index.Each(s, ch, next.Add)
		}
		// no live states left, the rest of the input cannot help
		if len(next) == 0 {
			return false
		}
		current, next = next, current
		clear(next)
	}
	for s := range current {
		if r.fsm.IsFinal(s) {
			return true
		}
	}
	return false
}

// String returns the source pattern.
func (r *Regex) String() string { return r.pattern }

// Tree returns the parsed syntax tree.
func (r *Regex) Tree() syntax.Node { return r.tree }

// Automaton returns a copy of the epsilon-free automaton.
func (r *Regex) Automaton() *automaton.Automaton { return r.fsm.Clone() }

// NumStates counts the states of the epsilon-free automaton, the start state
// included.
func (r *Regex) NumStates() int {
	n := len(r.fsm.States())
	if !automaton.NewSet(r.fsm.States()...).Has(r.start) {
		n++
	}
	return n
}

// WriteDOT renders the epsilon-free automaton in Graphviz format.
func (r *Regex) WriteDOT(w io.Writer) error { return r.fsm.WriteDOT(w) }

// Thompson compiles pattern without removing epsilon moves, for inspection.
func Thompson(pattern string, opts ...Option) (*automaton.Automaton, error) {
	o := options{mode: syntax.Lenient}
	for _, opt := range opts {
		opt(&o)
	}
	tree, err := syntax.ParseMode(pattern, o.mode)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(tree)
}
