package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/forcegraph/pkg/buildinfo"
	"github.com/matzehuels/forcegraph/pkg/server"
	"github.com/matzehuels/forcegraph/pkg/viewer"
)

// serveCommand creates the serve command, the HTTP display.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		lf       layoutFlags
		addr     string
		detailed bool
	)

	cmd := &cobra.Command{
		Use:   "serve [file.graphml]",
		Short: "Serve a laid-out graph over HTTP",
		Long: `Serve a laid-out graph over HTTP.

Routes:
  /healthz      liveness and graph summary
  /api/layout   positions, edges and view transform as JSON
  /graph.svg    the rendered graph

The server runs until interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, cfg, err := lf.options(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Server.Addr = addr
			}
			d := &server.Display{
				Addr: cfg.Server.Addr,
				Options: server.Options{
					Logger:   opts.Logger,
					Version:  buildinfo.Resolved(),
					Detailed: detailed,
				},
				Ready: func(bound string) {
					printSuccess("Serving graph")
					printKeyValue("url", StyleLink.Render("http://"+bound+"/graph.svg"))
				},
			}
			return viewer.Run(cmd.Context(), args[0], opts, d)
		},
	}

	lf.register(cmd)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "show world coordinates in node labels")

	return cmd
}
