package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	apperr "github.com/matzehuels/forcegraph/pkg/errors"
	"github.com/matzehuels/forcegraph/pkg/graph"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

// maxTableRows bounds the node table printed by layout --table.
const maxTableRows = 50

// layoutCommand creates the layout command, which writes the computed
// positions and view transform as JSON.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		lf        layoutFlags
		output    string
		showTable bool
	)

	cmd := &cobra.Command{
		Use:   "layout [file.graphml]",
		Short: "Compute node positions for a graph",
		Long: `Compute node positions for a graph.

The layout command parses a GraphML file, runs the force-directed layout and
writes the result as JSON: every node with its world position, every edge,
and the zoom and pan that fit the graph into the target area. Use "-o -" to
write to stdout. The output can be rendered with 'render'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, _, err := lf.options(cmd)
			if err != nil {
				return err
			}
			return c.runLayout(cmd.Context(), cmd.OutOrStdout(), args[0], opts, output, showTable)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&showTable, "table", false, "print node positions as a table")

	return cmd
}

func (c *CLI) runLayout(ctx context.Context, stdout io.Writer, input string, opts viewer.Options, output string, showTable bool) error {
	st, err := viewer.Load(ctx, input, opts)
	if err != nil {
		return err
	}
	l := st.Layout()

	if output == "-" {
		return graph.WriteLayout(l, stdout)
	}
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}
	if err := writeLayoutFile(l, output); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(output)
	printStats(st.Stats)
	printKeyValue("zoom", fmt.Sprintf("%.4f", st.Zoom))
	printKeyValue("pan", fmt.Sprintf("(%.1f, %.1f)", st.Pan.X, st.Pan.Y))
	if showTable {
		fmt.Println(nodeTable(l, maxTableRows))
	}
	printNewline()
	printNextStep("Render", appName+" render "+output)
	return nil
}

func writeLayoutFile(l graph.Layout, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return apperr.Wrap(apperr.ErrCodeIO, err, "create %s", path)
	}
	if err := graph.WriteLayout(l, f); err != nil {
		f.Close()
		return apperr.Wrap(apperr.ErrCodeIO, err, "write %s", path)
	}
	if err := f.Close(); err != nil {
		return apperr.Wrap(apperr.ErrCodeIO, err, "close %s", path)
	}
	return nil
}

// nodeTable renders up to limit nodes with world and screen coordinates.
func nodeTable(l graph.Layout, limit int) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	rows := make([][]string, 0, min(len(l.Nodes), limit))
	for i, n := range l.Nodes {
		if i == limit {
			break
		}
		screen := graph.Position{X: n.X, Y: n.Y}.Scale(l.Zoom).Add(l.Pan)
		rows = append(rows, []string{
			n.ID,
			n.DisplayLabel(),
			fmt.Sprintf("%.1f", n.X),
			fmt.Sprintf("%.1f", n.Y),
			fmt.Sprintf("%.0f", screen.X),
			fmt.Sprintf("%.0f", screen.Y),
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Label", "X", "Y", "Screen X", "Screen Y").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col >= 2 {
				return lipgloss.NewStyle().Foreground(colorCyan)
			}
			return lipgloss.NewStyle()
		})

	out := t.Render()
	if len(l.Nodes) > limit {
		out += "\n" + StyleDim.Render(fmt.Sprintf("  … %d more nodes", len(l.Nodes)-limit))
	}
	return out
}
