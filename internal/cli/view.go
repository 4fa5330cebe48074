package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcegraph/pkg/viewer"
)

// viewCommand creates the view command, the interactive terminal viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var lf layoutFlags

	cmd := &cobra.Command{
		Use:   "view [file.graphml]",
		Short: "Show a graph in the terminal",
		Long: `Show a graph in the terminal.

The graph is parsed, laid out and fitted to the terminal. Use the arrow keys
(or h/j/k/l) to pan, + and - to zoom, 0 to re-centre, t to toggle labels and
q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runView(cmd, args[0], &lf)
		},
	}
	lf.register(cmd)
	return cmd
}

func (c *CLI) runView(cmd *cobra.Command, input string, lf *layoutFlags) error {
	opts, _, err := lf.options(cmd)
	if err != nil {
		return err
	}
	return viewer.Run(cmd.Context(), input, opts, c.display(c))
}
