package graph

import (
	"encoding/json"
	"fmt"
	"io"
)

// =============================================================================
// Layout - Renderer Handoff Format
// =============================================================================

// Layout is the serialization format handed to external renderers.
//
// It carries the final world positions together with the fitted view
// transform, so a renderer maps a node to the screen with
// screen = world*Zoom + Pan.
type Layout struct {
	Width       float64      `json:"width"`
	Height      float64      `json:"height"`
	Zoom        float64      `json:"zoom"`
	Pan         Position     `json:"pan"`
	Initialized bool         `json:"initialized"`
	Nodes       []LayoutNode `json:"nodes"`
	Edges       []LayoutEdge `json:"edges"`
	ID          string       `json:"id,omitempty"` // Optional identity of this layout run
}

// LayoutNode is a positioned node.
type LayoutNode struct {
	ID    string  `json:"id"`
	Label string  `json:"label,omitempty"` // Omitted when equal to ID
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// LayoutEdge is a directed edge. Source and Target index into
// [Layout.Nodes]; From and To repeat the node ids for readers, but ids
// need not be unique.
type LayoutEdge struct {
	Source int    `json:"source"`
	Target int    `json:"target"`
	From   string `json:"from"`
	To     string `json:"to"`
	ID     string `json:"id,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n LayoutNode) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// ExportLayout builds the handoff format for g with the given view.
// Nodes and edges keep index order.
func ExportLayout(g *Graph, width, height, zoom float64, pan Position) Layout {
	out := Layout{
		Width:  width,
		Height: height,
		Zoom:   zoom,
		Pan:    pan,
		Nodes:  make([]LayoutNode, len(g.nodes)),
		Edges:  make([]LayoutEdge, len(g.edges)),
	}
	for i, n := range g.nodes {
		ln := LayoutNode{ID: n.ID, X: n.Pos.X, Y: n.Pos.Y}
		if n.Label != n.ID {
			ln.Label = n.Label
		}
		out.Nodes[i] = ln
	}
	for i, e := range g.edges {
		out.Edges[i] = LayoutEdge{
			Source: int(e.Source),
			Target: int(e.Target),
			From:   g.nodes[e.Source].ID,
			To:     g.nodes[e.Target].ID,
			ID:     e.ID,
		}
	}
	return out
}

// WriteLayout writes l as indented JSON.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(l)
}

// UnmarshalLayout deserializes JSON bytes to a Layout. Edges whose
// indices fall outside the node list are rejected with [ErrUnknownNode].
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	n := len(l.Nodes)
	for i, e := range l.Edges {
		if e.Source < 0 || e.Source >= n || e.Target < 0 || e.Target >= n {
			return Layout{}, fmt.Errorf("edge %d (%d->%d): %w", i, e.Source, e.Target, ErrUnknownNode)
		}
	}
	return l, nil
}
