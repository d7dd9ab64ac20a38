// Package syntax parses patterns built from literal runs, grouping,
// alternation and the postfix star into a syntax tree.
//
// Grammar, lowest precedence first:
//
//	pattern := union
//	union   := concat ('|' concat)*
//	concat  := term*
//	term    := atom '*'?
//	atom    := symbol-run | '(' pattern ')'
package syntax

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"
)

var ErrUnbalanced = errors.New("unbalanced parenthesis")

// SyntaxError is returned in strict mode only.
type SyntaxError struct {
	Offset int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// Mode selects how unbalanced parentheses are treated.
type Mode int

const (
	// Lenient lets a stray ')' end the enclosing group (at top level it
	// ends the pattern and the rest is ignored) and closes groups left open
	// at the end of input. Nothing is reported.
	Lenient Mode = iota
	// Strict reports both cases as ErrUnbalanced.
	Strict
)

type parser struct {
	toks []lexer.Token
	pos  int
	mode Mode
}

// Parse parses text in Lenient mode. It accepts every input; the error is
// only non-nil if tokenizing fails, which the lexer rules rule out.
func Parse(text string) (Node, error) {
	return ParseMode(text, Lenient)
}

func ParseMode(text string, mode Mode) (Node, error) {
	toks, err := tokenize(text)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks, mode: mode}
	return p.parseUnion(0)
}

func (p *parser) next() lexer.Token {
	tok := p.toks[p.pos]
	if !tok.EOF() {
		p.pos++
	}
	return tok
}

// parseUnion consumes tokens up to the end of the current scope: EOF, or the
// ')' closing a group when depth > 0.
func (p *parser) parseUnion(depth int) (Node, error) {
	var alts, seq []Node
	for {
		tok := p.next()
		switch {
		case tok.EOF():
			if depth > 0 && p.mode == Strict {
				return nil, &SyntaxError{Offset: tok.Pos.Offset, Err: fmt.Errorf("%w: missing )", ErrUnbalanced)}
			}
			return alternation(append(alts, sequence(seq))), nil
		case tok.Type == tClose:
			if depth == 0 && p.mode == Strict {
				return nil, &SyntaxError{Offset: tok.Pos.Offset, Err: fmt.Errorf("%w: unexpected )", ErrUnbalanced)}
			}
			return alternation(append(alts, sequence(seq))), nil
		case tok.Type == tOpen:
			inner, err := p.parseUnion(depth + 1)
			if err != nil {
				return nil, err
			}
			seq = append(seq, inner)
		case tok.Type == tPipe:
			alts = append(alts, sequence(seq))
			seq = nil
		case tok.Type == tStar:
			// a star with no operand contributes nothing
			if n := len(seq); n > 0 {
				seq[n-1] = star(seq[n-1])
			}
		case tok.Type == tRun:
			seq = append(seq, Literal{Text: tok.Value})
		}
	}
}

func star(n Node) Node {
	if _, ok := n.(Empty); ok {
		return n
	}
	return Star{Child: n}
}

// sequence drops empty operands and unwraps single children.
func sequence(nodes []Node) Node {
	var kept []Node
	for _, n := range nodes {
		if _, ok := n.(Empty); !ok {
			kept = append(kept, n)
		}
	}
	switch len(kept) {
	case 0:
		return Empty{}
	case 1:
		return kept[0]
	}
	return Concat{Children: kept}
}

func alternation(alts []Node) Node {
	if len(alts) == 1 {
		return alts[0]
	}
	return Union{Children: alts}
}
