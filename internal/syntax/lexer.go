package syntax

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Every rune is covered by exactly one rule, so lexing cannot fail. Runs of
// ordinary runes come out as a single Run token, which is what makes a
// postfix star apply to the whole preceding run.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Open", Pattern: `\(`},
	{Name: "Close", Pattern: `\)`},
	{Name: "Pipe", Pattern: `\|`},
	{Name: "Star", Pattern: `\*`},
	{Name: "Run", Pattern: `[^()|*]+`},
})

var (
	tOpen  = patternLexer.Symbols()["Open"]
	tClose = patternLexer.Symbols()["Close"]
	tPipe  = patternLexer.Symbols()["Pipe"]
	tStar  = patternLexer.Symbols()["Star"]
	tRun   = patternLexer.Symbols()["Run"]
)

// tokenize splits a pattern into tokens, ending with an EOF token.
func tokenize(text string) ([]lexer.Token, error) {
	lex, err := patternLexer.LexString("", text)
	if err != nil {
		return nil, err
	}
	return lexer.ConsumeAll(lex)
}
