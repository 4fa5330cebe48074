package cli

import (
	"testing"
	"time"

	"github.com/matzehuels/forcegraph/pkg/graphml"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

func TestStatsLine(t *testing.T) {
	s := viewer.Stats{
		Parse:      graphml.Stats{Nodes: 3, Edges: 2, DroppedEdges: 1},
		ParseTime:  1234 * time.Microsecond,
		LayoutTime: 56 * time.Millisecond,
	}
	want := "3 nodes · 2 edges · parse 1ms · layout 56ms"
	if got := statsLine(s); got != want {
		t.Errorf("statsLine() = %q, want %q", got, want)
	}
}
