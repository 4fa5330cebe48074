package graphml

import (
	"encoding/xml"

	"github.com/matzehuels/forcegraph/pkg/graph"
)

// state is the parser position within the document. Exactly one of the
// concrete types below is current; transitions happen only in
// parser.start, parser.end and parser.text.
type state interface{ isState() }

// outside: not within a graph element. Everything is ignored.
type outside struct{}

// inGraph: within a graph element, no node pending.
type inGraph struct{}

// inNode: a non-empty node element is open. Its id was read on entry;
// hasID is false for node elements without an id, which are tracked only
// so their end tag is matched and then discarded.
type inNode struct {
	id       string
	hasID    bool
	label    string
	hasLabel bool
	nested   int // node elements opened inside this one
}

// expectingLabel: a data key="label" element is open inside a pending node
// and no text has been captured for it yet.
type expectingLabel struct {
	node inNode
}

func (outside) isState()        {}
func (inGraph) isState()        {}
func (inNode) isState()         {}
func (expectingLabel) isState() {}

type parser struct {
	g     *graph.Graph
	state state
	stats Stats

	// nested counts graph elements opened inside the current graph scope,
	// so that only the outermost end tag leaves it.
	nested int
}

func newParser() *parser {
	return &parser{g: graph.New(), state: outside{}}
}

func (p *parser) inScope() bool {
	_, out := p.state.(outside)
	return !out
}

func (p *parser) start(e xml.StartElement) {
	switch e.Name.Local {
	case elemGraph:
		if p.inScope() {
			p.nested++
			return
		}
		p.state = inGraph{}

	case elemNode:
		switch s := p.state.(type) {
		case inGraph:
			id, ok := attr(e, attrID)
			p.state = inNode{id: id, hasID: ok}
		case inNode:
			// Nested node elements are ignored.
			s.nested++
			p.state = s
		}

	case elemData:
		// Only the first label of a node is captured.
		n, ok := p.state.(inNode)
		if !ok || !n.hasID || n.hasLabel || n.nested > 0 {
			return
		}
		if key, _ := attr(e, attrKey); key == labelKey {
			p.state = expectingLabel{node: n}
		}

	case elemEdge:
		if p.inScope() {
			p.edge(e)
		}
	}
}

func (p *parser) end(e xml.EndElement) {
	switch e.Name.Local {
	case elemGraph:
		if !p.inScope() {
			return
		}
		if p.nested > 0 {
			p.nested--
			return
		}
		p.state = outside{}

	case elemNode:
		n, ok := p.state.(inNode)
		if !ok {
			return
		}
		if n.nested > 0 {
			n.nested--
			p.state = n
			return
		}
		p.finishNode(n)
		p.state = inGraph{}

	case elemData:
		// A label element closed without text: the label stays unset.
		if s, ok := p.state.(expectingLabel); ok {
			p.state = s.node
		}
	}
}

func (p *parser) text(b xml.CharData) {
	s, ok := p.state.(expectingLabel)
	if !ok {
		return
	}
	text, ok := trimText(b)
	if !ok {
		return
	}
	n := s.node
	n.label, n.hasLabel = text, true
	p.state = n
}

// finishNode registers a pending node. Self-closing node elements arrive
// as a start immediately followed by an end, so both forms finish here.
func (p *parser) finishNode(n inNode) {
	if !n.hasID {
		p.stats.SkippedNodes++
		return
	}
	label := n.id
	if n.hasLabel {
		label = n.label
	}
	p.g.AddNode(n.id, label)
	p.stats.Nodes++
}

// edge registers an edge if both endpoints resolve to nodes declared so far.
func (p *parser) edge(e xml.StartElement) {
	src, okSrc := attr(e, attrSource)
	dst, okDst := attr(e, attrTarget)
	if !okSrc || !okDst {
		p.stats.DroppedEdges++
		return
	}
	from, okFrom := p.g.Lookup(src)
	to, okTo := p.g.Lookup(dst)
	if !okFrom || !okTo {
		p.stats.DroppedEdges++
		return
	}
	// Lookup only returns indices of this graph, so AddEdge cannot fail.
	_, _ = p.g.AddEdge(from, to, "")
	p.stats.Edges++
}
