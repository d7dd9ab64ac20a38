package automaton

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteDOT prints a Graphviz rendering of the automaton to w.
func (a *Automaton) WriteDOT(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	for _, s := range a.labels() {
		shape := "circle"
		if a.IsFinal(s) {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", s, shape)
	}
	for _, t := range a.delta {
		fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", t.From, t.To, strconv.Quote(t.On.String()))
	}
	if a.hasStart {
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", a.start)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
