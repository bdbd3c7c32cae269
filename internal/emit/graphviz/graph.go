// Package graphviz provides the intermediate graph model the graph
// emitter renders into, grounded on original_source/src/dot.c's Graph,
// Node, and Edge types.
package graphviz

import "fmt"

// Node is one declared vertex.
type Node struct {
	ID          int
	Name        string
	Label       string
	Shape       string
	Style       string
	Peripheries int
	edges       []*Edge
}

// Edges returns every edge whose source is this node.
func (n *Node) Edges() []*Edge {
	return n.edges
}

// Edge is a declared arc from one node to another, with a single
// (possibly comma-joined) label — coalescing multiple symbols between the
// same pair of nodes onto one Edge is the graph emitter's job, not this
// model's.
type Edge struct {
	Target int
	Label  string
}

// Graph is the full DOT document model: a name and a flat node list.
type Graph struct {
	Name  string
	Nodes []*Node
}

// New creates an empty graph with the given name.
func New(name string) *Graph {
	return &Graph{Name: name}
}

// AddNode appends a new node with id-derived defaults (circle shape,
// empty label, default style, single perimeter), matching
// original_source's insertNode_dot defaults.
func (g *Graph) AddNode() *Node {
	n := &Node{
		ID:          len(g.Nodes),
		Name:        fmt.Sprintf("n%d", len(g.Nodes)),
		Shape:       "circle",
		Peripheries: 1,
	}
	g.Nodes = append(g.Nodes, n)
	return n
}

// AddEdge appends a new edge from source to target and returns it.
func (g *Graph) AddEdge(source, target int) *Edge {
	e := &Edge{Target: target}
	g.Nodes[source].edges = append(g.Nodes[source].edges, e)
	return e
}

// FindEdge returns the existing edge from source to target, if one has
// already been inserted, by linear scan of the source node's edges — the
// same coalescing lookup as original_source's getEdge_dot.
func (g *Graph) FindEdge(source, target int) *Edge {
	for _, e := range g.Nodes[source].edges {
		if e.Target == target {
			return e
		}
	}
	return nil
}
