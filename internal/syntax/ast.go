package syntax

import (
	"strconv"
	"strings"
)

// Node is one of Literal, Concat, Union, Star or Empty.
type Node interface {
	node()
	String() string
}

// Literal matches Text verbatim, one transition per rune.
type Literal struct{ Text string }

// Concat matches its children in order.
type Concat struct{ Children []Node }

// Union matches any one of its children.
type Union struct{ Children []Node }

// Star matches zero or more repetitions of Child.
type Star struct{ Child Node }

// Empty matches only the empty string. It stands for the empty pattern, an
// empty group and empty alternatives.
type Empty struct{}

func (Literal) node() {}
func (Concat) node()  {}
func (Union) node()   {}
func (Star) node()    {}
func (Empty) node()   {}

// String renders the tree as an S-expression, e.g.
// (concat "foo" (union "bar" "baz") "wakka").
func (n Literal) String() string { return strconv.Quote(n.Text) }
func (n Concat) String() string  { return list("concat", n.Children) }
func (n Union) String() string   { return list("union", n.Children) }
func (n Star) String() string    { return "(star " + n.Child.String() + ")" }
func (Empty) String() string     { return "(empty)" }

func list(op string, children []Node) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(op)
	for _, c := range children {
		b.WriteString(" ")
		b.WriteString(c.String())
	}
	b.WriteString(")")
	return b.String()
}
