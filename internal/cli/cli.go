// Package cli implements the forcegraph command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcegraph/pkg/buildinfo"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

// appName is the application name used for display and completions.
const appName = "forcegraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// display builds the interactive display for view. Tests replace it.
	display func(*CLI) viewer.Display
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:  newLogger(w, level),
		display: newTerminalDisplay,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Given a file and no subcommand, the root command runs view.
func (c *CLI) RootCommand() *cobra.Command {
	var lf layoutFlags

	root := &cobra.Command{
		Use:   appName + " [file.graphml]",
		Short: "Forcegraph lays out and displays GraphML graphs",
		Long: `Forcegraph reads a graph from a GraphML file, arranges it with a
force-directed layout and shows it in the terminal, as an image, or over HTTP.`,
		Version:      buildinfo.Resolved(),
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return c.runView(cmd, args[0], &lf)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	lf.register(root)

	root.AddCommand(c.viewCommand())
	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}
