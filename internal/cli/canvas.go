package cli

import (
	"math"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

// Terminal cells are about twice as tall as wide. The canvas works in
// screen units of one column horizontally and half a row vertically.
const cellAspect = 2.0

const (
	runeNode = '●'
	runeEdge = '·'
)

type cellKind uint8

const (
	cellEmpty cellKind = iota
	cellEdge
	cellNode
	cellLabel
)

var (
	styleCanvasEdge  = lipgloss.NewStyle().Foreground(colorDim)
	styleCanvasNode  = lipgloss.NewStyle().Foreground(colorCyan).Bold(true)
	styleCanvasLabel = lipgloss.NewStyle().Foreground(colorWhite)
)

// canvas is a character grid the graph is drawn onto.
type canvas struct {
	cols, rows int
	runes      [][]rune
	kinds      [][]cellKind
}

func newCanvas(cols, rows int) *canvas {
	c := &canvas{cols: max(cols, 0), rows: max(rows, 0)}
	c.runes = make([][]rune, c.rows)
	c.kinds = make([][]cellKind, c.rows)
	for r := range c.rows {
		c.runes[r] = []rune(strings.Repeat(" ", c.cols))
		c.kinds[r] = make([]cellKind, c.cols)
	}
	return c
}

// cell maps a screen position to a grid cell.
func (c *canvas) cell(p graph.Position) (col, row int) {
	return int(math.Round(p.X)), int(math.Round(p.Y / cellAspect))
}

func (c *canvas) set(col, row int, r rune, k cellKind) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return
	}
	if c.kinds[row][col] > k {
		return
	}
	c.runes[row][col] = r
	c.kinds[row][col] = k
}

// line draws a straight segment with Bresenham's algorithm.
func (c *canvas) line(c0, r0, c1, r1 int) {
	dc, dr := abs(c1-c0), -abs(r1-r0)
	sc, sr := sign(c1-c0), sign(r1-r0)
	err := dc + dr
	// Segments far off screen are clipped by set; bound the walk anyway.
	for steps := 0; steps <= dc-dr; steps++ {
		c.set(c0, r0, runeEdge, cellEdge)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dr {
			err += dr
			c0 += sc
		}
		if e2 <= dc {
			err += dc
			r0 += sr
		}
	}
}

// text writes s on one row. Control runes such as newlines become spaces.
func (c *canvas) text(col, row int, s string) {
	for _, r := range s {
		if unicode.IsControl(r) {
			r = ' '
		}
		c.set(col, row, r, cellLabel)
		col++
	}
}

// draw renders the graph of s with its current zoom and pan.
func (c *canvas) draw(s *viewer.State, labels bool) {
	t := s.Transform()
	nodes := s.Graph.Nodes()

	cells := make([][2]int, len(nodes))
	for i, n := range nodes {
		col, row := c.cell(t.ToScreen(n.Pos))
		cells[i] = [2]int{col, row}
	}

	for _, e := range s.Graph.Edges() {
		if e.IsSelfLoop() {
			continue
		}
		a, b := cells[e.Source], cells[e.Target]
		if offscreen(a, b, c.cols, c.rows) {
			continue
		}
		c.line(a[0], a[1], b[0], b[1])
	}
	for i, n := range nodes {
		col, row := cells[i][0], cells[i][1]
		c.set(col, row, runeNode, cellNode)
		if labels {
			c.text(col+2, row, n.Label)
		}
	}
}

// offscreen reports whether the segment a-b lies entirely on one side of
// the grid, or is too long to walk.
func offscreen(a, b [2]int, cols, rows int) bool {
	const maxWalk = 1 << 16
	if abs(a[0]-b[0]) > maxWalk || abs(a[1]-b[1]) > maxWalk {
		return true
	}
	return (a[0] < 0 && b[0] < 0) || (a[0] >= cols && b[0] >= cols) ||
		(a[1] < 0 && b[1] < 0) || (a[1] >= rows && b[1] >= rows)
}

// String returns the grid with styling applied per run of equal cells.
func (c *canvas) String() string {
	var b strings.Builder
	for r := range c.rows {
		if r > 0 {
			b.WriteByte('\n')
		}
		start := 0
		for col := 1; col <= c.cols; col++ {
			if col < c.cols && c.kinds[r][col] == c.kinds[r][start] {
				continue
			}
			b.WriteString(styleCell(c.kinds[r][start]).Render(string(c.runes[r][start:col])))
			start = col
		}
	}
	return b.String()
}

// plain returns the grid without styling.
func (c *canvas) plain() string {
	lines := make([]string, c.rows)
	for r := range c.rows {
		lines[r] = string(c.runes[r])
	}
	return strings.Join(lines, "\n")
}

func styleCell(k cellKind) lipgloss.Style {
	switch k {
	case cellEdge:
		return styleCanvasEdge
	case cellNode:
		return styleCanvasNode
	case cellLabel:
		return styleCanvasLabel
	}
	return lipgloss.NewStyle()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
