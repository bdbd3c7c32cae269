// Package graphviz's emit.go implements spec.md [MODULE] Graph Emitter:
// rendering an automaton into a Graph (one node per state, an invisible
// "reset" node whose edge marks the initial state, one coalesced edge per
// (source, sink) pair) and then that Graph into DOT text.
//
// Grounded on original_source/src/dfa.c's toDot_dfa (node/edge
// construction) and src/dot.c's toStream_dot (its node-then-edge write
// order).
package graphviz

import (
	"fmt"
	"strings"

	"github.com/dekarrin/compiledfa/internal/automaton"
	"github.com/dekarrin/compiledfa/internal/diag"
)

// FromAutomaton builds the Graph model for dfa: one circular node per
// state (accept states get a double perimeter), an invisible point-shaped
// "reset" node with an edge into the initial state, and one coalesced
// edge per (source, sink) pair whose label is the comma-joined list of
// symbols, in alphabet order, that share that pair.
func FromAutomaton(dfa *automaton.Automaton) *Graph {
	g := New(dfa.Name)

	for _, s := range dfa.States() {
		diag.Report("inserting node: %s", s.Name)
		n := g.AddNode()
		n.Name = s.Name
		if s.Accept {
			n.Peripheries = 2
		}
	}

	diag.Report("marking the initial state")
	reset := g.AddNode()
	reset.Name = "reset"
	reset.Style = "invis"
	reset.Shape = "point"
	g.AddEdge(reset.ID, dfa.Initial())

	diag.Report("inserting transitions")
	for _, s := range dfa.States() {
		for _, sym := range dfa.Alphabet {
			target, ok := dfa.Next(s.ID, sym)
			if !ok {
				continue
			}
			if e := g.FindEdge(s.ID, target); e != nil {
				e.Label += "," + string(sym)
			} else {
				g.AddEdge(s.ID, target).Label = string(sym)
			}
		}
	}

	return g
}

// Render writes g as a DOT document: every node, then every edge —
// matching original_source's toStream_dot write order for the flat
// (non-clustered) case.
func Render(g *Graph) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "digraph %s {\n", g.Name)

	for _, n := range g.Nodes {
		writeNode(&sb, n, "\t")
	}

	for _, n := range g.Nodes {
		for _, e := range n.Edges() {
			fmt.Fprintf(&sb, "\t%s -> %s [label=\"%s\"];\n", n.Name, g.Nodes[e.Target].Name, toLabel(e.Label))
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}

func writeNode(sb *strings.Builder, n *Node, indent string) {
	fmt.Fprintf(sb, "%s%s [label=\"%s\"", indent, n.Name, toLabel(n.Label))
	if n.Shape != "" {
		fmt.Fprintf(sb, ", shape=%s", n.Shape)
	}
	if n.Style != "" {
		fmt.Fprintf(sb, ", style=%s", n.Style)
	}
	if n.Peripheries > 1 {
		fmt.Fprintf(sb, ", peripheries=%d", n.Peripheries)
	}
	sb.WriteString("];\n")
}
