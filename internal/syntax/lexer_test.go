package syntax

import (
	"testing"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	toks, err := tokenize("ab(c|dé)*x")
	require.NoError(t, err)

	type tok struct {
		typ    lexer.TokenType
		value  string
		offset int
	}
	var got []tok
	for _, tk := range toks {
		got = append(got, tok{tk.Type, tk.Value, tk.Pos.Offset})
	}
	assert.Equal(t, []tok{
		{tRun, "ab", 0},
		{tOpen, "(", 2},
		{tRun, "c", 3},
		{tPipe, "|", 4},
		{tRun, "dé", 5},
		{tClose, ")", 8},
		{tStar, "*", 9},
		{tRun, "x", 10},
		{lexer.EOF, "", 11},
	}, got)
}

func TestTokenizeEmpty(t *testing.T) {
	toks, err := tokenize("")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.True(t, toks[0].EOF())
}
