package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/whiteboard/internal/server"
)

// serveCommand runs the board API server.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the board API",
		Long: `Serve the board API over HTTP.

Requests must carry "Authorization: Bearer <token>" when server.token or
$WHITEBOARD_TOKEN is set. The server stops gracefully on interrupt.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if c.serverURL != "" {
				printWarning(cmd.ErrOrStderr(), "--server is ignored by serve")
				c.serverURL = ""
			}
			if addr == "" {
				addr = c.Config.Server.Addr
			}

			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()
			ch, keys := c.openCache(ctx)
			defer ch.Close()

			icons := c.newIcons(ch, keys)
			srv := server.New(st,
				server.WithAuthenticator(server.TokenAuth{Token: c.Config.Server.Token}),
				server.WithLogger(c.Logger),
				server.WithIcons(icons),
				server.WithExporter(c.newExporter(ch, keys, icons)))
			return srv.ListenAndServe(ctx, addr, c.Config.Server.ReadTimeout.Duration)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default server.addr)")
	return cmd
}
