package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownNode is returned by [Graph.AddEdge] when either endpoint is
	// not a node of the graph.
	ErrUnknownNode = errors.New("unknown node index")

	// ErrNonFinitePosition is returned by [Graph.Validate] when a node holds
	// a NaN or infinite coordinate.
	ErrNonFinitePosition = errors.New("non-finite position")
)

// NodeIndex is the stable handle of a node within one graph.
type NodeIndex int

// EdgeIndex is the stable handle of an edge within one graph.
type EdgeIndex int

// Node is a vertex with an external identity and a display label.
type Node struct {
	ID    string   // Externally supplied identifier
	Label string   // Display label (defaults to ID)
	Pos   Position // Current world position
}

// Edge is a directed connection between two nodes of the same graph.
type Edge struct {
	Source NodeIndex
	Target NodeIndex
	ID     string // Optional identity; empty when the source format has none
}

// IsSelfLoop reports whether the edge starts and ends at the same node.
func (e Edge) IsSelfLoop() bool { return e.Source == e.Target }

// Graph is a directed multigraph with index-addressed nodes and edges.
//
// The zero value is an empty graph ready to use.
type Graph struct {
	nodes []Node
	edges []Edge
	ids   map[string]NodeIndex
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{ids: make(map[string]NodeIndex)}
}

// AddNode appends a node and returns its index. An empty label defaults to
// id. If id was already registered, the id now resolves to the new node;
// the earlier node and its edges are kept.
func (g *Graph) AddNode(id, label string) NodeIndex {
	if label == "" {
		label = id
	}
	idx := NodeIndex(len(g.nodes))
	g.nodes = append(g.nodes, Node{ID: id, Label: label})
	if g.ids == nil {
		g.ids = make(map[string]NodeIndex)
	}
	g.ids[id] = idx
	return idx
}

// AddEdge appends a directed edge from src to dst. Both must be indices
// previously returned by AddNode on this graph.
func (g *Graph) AddEdge(src, dst NodeIndex, id string) (EdgeIndex, error) {
	if !g.has(src) {
		return -1, fmt.Errorf("source %d: %w", src, ErrUnknownNode)
	}
	if !g.has(dst) {
		return -1, fmt.Errorf("target %d: %w", dst, ErrUnknownNode)
	}
	g.edges = append(g.edges, Edge{Source: src, Target: dst, ID: id})
	return EdgeIndex(len(g.edges) - 1), nil
}

// Lookup returns the index registered for id.
func (g *Graph) Lookup(id string) (NodeIndex, bool) {
	idx, ok := g.ids[id]
	return idx, ok
}

// Node returns a pointer to the node at i, or nil if i is out of range.
// The pointer stays valid until the next AddNode.
func (g *Graph) Node(i NodeIndex) *Node {
	if !g.has(i) {
		return nil
	}
	return &g.nodes[i]
}

// Nodes returns the nodes in index order. The slice is shared with the
// graph and must not be appended to.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns the edges in index order. The slice is shared with the
// graph and must not be appended to.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Position returns the position of node i.
func (g *Graph) Position(i NodeIndex) Position { return g.nodes[i].Pos }

// SetPosition moves node i to p.
func (g *Graph) SetPosition(i NodeIndex, p Position) { g.nodes[i].Pos = p }

// Positions returns a copy of all node positions in index order.
func (g *Graph) Positions() []Position {
	out := make([]Position, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].Pos
	}
	return out
}

// Validate checks the structural invariants: every edge endpoint refers to
// a node of this graph and every position is finite.
func (g *Graph) Validate() error {
	for i, e := range g.edges {
		if !g.has(e.Source) || !g.has(e.Target) {
			return fmt.Errorf("edge %d (%d->%d): %w", i, e.Source, e.Target, ErrUnknownNode)
		}
	}
	for i, n := range g.nodes {
		if !n.Pos.IsFinite() {
			return fmt.Errorf("node %q at index %d: %w", n.ID, i, ErrNonFinitePosition)
		}
	}
	return nil
}

func (g *Graph) has(i NodeIndex) bool {
	return i >= 0 && int(i) < len(g.nodes)
}
