package graphml

import (
	"encoding/xml"
	"io"
	"os"
	"strings"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graph"
)

// Element and attribute names of the dialect.
const (
	elemGraph = "graph"
	elemNode  = "node"
	elemEdge  = "edge"
	elemData  = "data"

	attrID     = "id"
	attrKey    = "key"
	attrSource = "source"
	attrTarget = "target"

	labelKey = "label"
)

// Stats summarizes what a parse kept and what it dropped.
type Stats struct {
	Nodes        int // Registered nodes
	Edges        int // Registered edges
	DroppedEdges int // Edges missing an endpoint attribute or referencing an undeclared id
	SkippedNodes int // Node elements without an id attribute
}

// Parse reads a graph from r. See the package documentation for the
// accepted dialect.
func Parse(r io.Reader) (*graph.Graph, error) {
	g, _, err := ParseWithStats(r)
	return g, err
}

// ParseFile opens path and parses it with [Parse].
func ParseFile(path string) (*graph.Graph, error) {
	g, _, err := ParseFileWithStats(path)
	return g, err
}

// ParseFileWithStats opens path and parses it with [ParseWithStats].
func ParseFileWithStats(path string) (*graph.Graph, Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Stats{}, apperr.Wrap(apperr.ErrCodeIO, err, "open %s", path)
	}
	defer f.Close()
	return ParseWithStats(f)
}

// ParseWithStats is [Parse] that also reports parse statistics.
// On error the graph is nil and the stats are zero.
func ParseWithStats(r io.Reader) (*graph.Graph, Stats, error) {
	src := &readTracker{r: r}
	dec := xml.NewDecoder(src)
	p := newParser()

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			if src.err != nil {
				return nil, Stats{}, apperr.Wrap(apperr.ErrCodeIO, src.err, "read input")
			}
			return nil, Stats{}, apperr.Wrap(apperr.ErrCodeMalformedInput, err, "parse markup")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			p.start(t)
		case xml.EndElement:
			p.end(t)
		case xml.CharData:
			p.text(t)
		}
	}

	return p.g, p.stats, nil
}

// readTracker remembers the first non-EOF error of the underlying reader,
// so decoder failures caused by I/O can be told apart from bad markup.
type readTracker struct {
	r   io.Reader
	err error
}

func (t *readTracker) Read(p []byte) (int, error) {
	n, err := t.r.Read(p)
	if err != nil && err != io.EOF && t.err == nil {
		t.err = err
	}
	return n, err
}

// attr returns the value of the attribute with the given local name.
func attr(e xml.StartElement, name string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// trimText normalizes a text event the way labels are captured: surrounding
// whitespace is removed and blank text does not count as an event.
func trimText(b []byte) (string, bool) {
	s := strings.TrimSpace(string(b))
	return s, s != ""
}
