package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myregex/internal/automaton"
	"myregex/internal/syntax"
)

func lits(texts ...string) []syntax.Node {
	out := make([]syntax.Node, len(texts))
	for i, s := range texts {
		out[i] = syntax.Literal{Text: s}
	}
	return out
}

func chain(text string, first automaton.State) []automaton.Transition {
	var out []automaton.Transition
	s := first
	for _, r := range text {
		out = append(out, automaton.Transition{From: s, On: automaton.Rune(r), To: s + 1})
		s++
	}
	return out
}

func TestCompileLiteral(t *testing.T) {
	a, err := Compile(syntax.Literal{Text: "foo"})
	require.NoError(t, err)
	assert.Equal(t, chain("foo", 1), a.Transitions())
	assert.Equal(t, []automaton.State{4}, a.Finals())
}

func TestCompileConcat(t *testing.T) {
	a, err := Compile(syntax.Concat{Children: lits("foo", "bar", "baz")})
	require.NoError(t, err)

	start, _ := a.Start()
	assert.Equal(t, automaton.State(1), start)
	assert.Equal(t, chain("foobarbaz", 1), a.Transitions())
	assert.Equal(t, []automaton.State{10}, a.Finals())
}

func TestCompileUnion(t *testing.T) {
	a, err := Compile(syntax.Union{Children: lits("foo", "bar", "baz")})
	require.NoError(t, err)

	want := chain("foo", 1)
	want = append(want, automaton.Transition{From: 1, On: automaton.Rune('b'), To: 5})
	want = append(want, chain("ar", 5)...)
	want = append(want, automaton.Transition{From: 1, On: automaton.Rune('b'), To: 8})
	want = append(want, chain("az", 8)...)

	assert.Equal(t, want, a.Transitions())
	assert.Equal(t, []automaton.State{4, 7, 10}, a.Finals())
}

func TestCompileStar(t *testing.T) {
	x, err := automaton.FromLiteral("x")
	require.NoError(t, err)
	want, err := automaton.Star(x)
	require.NoError(t, err)

	got, err := Compile(syntax.Star{Child: syntax.Literal{Text: "x"}})
	require.NoError(t, err)
	assert.Equal(t, want.Transitions(), got.Transitions())
	assert.Equal(t, want.Finals(), got.Finals())
}

func TestCompileEmpty(t *testing.T) {
	a, err := Compile(syntax.Empty{})
	require.NoError(t, err)
	start, ok := a.Start()
	require.True(t, ok)
	assert.True(t, a.IsFinal(start))
	assert.Empty(t, a.Transitions())
}

type bogus struct{ syntax.Empty }

func TestCompileUnknownNode(t *testing.T) {
	_, err := Compile(bogus{})
	assert.ErrorIs(t, err, ErrUnknownNode)
	assert.ErrorContains(t, err, "compiler.bogus")

	_, err = Compile(nil)
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = Compile(syntax.Concat{})
	assert.ErrorIs(t, err, ErrUnknownNode)

	_, err = Compile(syntax.Union{Children: []syntax.Node{syntax.Literal{Text: "a"}, bogus{}}})
	assert.ErrorIs(t, err, ErrUnknownNode)
}

func TestCompileEmptyLiteral(t *testing.T) {
	_, err := Compile(syntax.Literal{})
	assert.ErrorIs(t, err, automaton.ErrEmptyLiteral)
}

func TestCompileIsDeterministic(t *testing.T) {
	tree, err := syntax.Parse("a(b|cd)*e|f")
	require.NoError(t, err)
	first, err := Compile(tree)
	require.NoError(t, err)
	second, err := Compile(tree)
	require.NoError(t, err)
	assert.Equal(t, first.Transitions(), second.Transitions())
	assert.Equal(t, first.Finals(), second.Finals())
}
