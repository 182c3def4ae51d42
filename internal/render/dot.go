package render

import (
	"fmt"
	"io"
	"sort"

	"github.com/pthm/relnorm/schema"
)

// WriteDOT writes the dependency graph in Graphviz DOT format.
// Every attribute becomes a node and every determinant-to-dependent
// attribute pair becomes a directed edge. Output is deterministic:
// nodes and edges are emitted in sorted order with duplicates removed.
func WriteDOT(w io.Writer, attrs schema.AttrSet, fds []schema.FD) error {
	nodes := attrs.Clone()
	edges := map[string]struct{}{}
	for _, fd := range fds {
		for _, from := range fd.Determinant.Sorted() {
			nodes.Add(from)
			for _, to := range fd.Dependent.Sorted() {
				nodes.Add(to)
				edges[fmt.Sprintf("  %q -> %q;", from, to)] = struct{}{}
			}
		}
	}

	if _, err := fmt.Fprintln(w, "digraph dependencies {"); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(w, "  rankdir=LR;")
	_, _ = fmt.Fprintln(w, "  node [shape=ellipse];")

	for _, n := range nodes.Sorted() {
		_, _ = fmt.Fprintf(w, "  %q;\n", n)
	}

	lines := make([]string, 0, len(edges))
	for e := range edges {
		lines = append(lines, e)
	}
	sort.Strings(lines)
	for _, line := range lines {
		_, _ = fmt.Fprintln(w, line)
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
