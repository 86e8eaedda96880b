package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/whiteboard/pkg/client"
	"github.com/matzehuels/whiteboard/pkg/session"
)

// loginCommand saves a token for a remote server.
func (c *CLI) loginCommand() *cobra.Command {
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "login <server>",
		Short: "Save a token for a whiteboard server",
		Long: `Verify a token against a whiteboard server and save it.

Later commands run with --server <server> use the saved token unless
--token is given. Sessions are stored in ~/.config/whiteboard/sessions/`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			server := session.NormalizeServer(args[0])

			vctx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			spin := newSpinnerWithContext(vctx, cmd.ErrOrStderr(), "Verifying token...")
			spin.Start()
			remote := client.New(server, c.token)
			defer remote.Close()
			if _, err := remote.List(vctx); err != nil {
				spin.StopWithError("Token rejected")
				return fmt.Errorf("verify %s: %w", server, err)
			}
			spin.Stop()

			st, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			sess := session.New(server, c.token, ttl)
			if err := st.Set(ctx, sess); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Logged in to %s", server)
			printKeyValue(out, "Expires", sess.ExpiresAt.Format("Jan 2, 2006"))
			return nil
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", session.DefaultTTL, "how long the login lasts")
	return cmd
}

// logoutCommand removes a saved token.
func (c *CLI) logoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout <server>",
		Short: "Remove the saved token for a server",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			if err := st.Delete(cmd.Context(), session.IDFor(args[0])); err != nil {
				return fmt.Errorf("delete session: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Logged out of %s", session.NormalizeServer(args[0]))
			return nil
		},
	}
}

// sessionsCommand lists saved logins.
func (c *CLI) sessionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sessions",
		Short: "List saved server logins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := session.NewFileStore("")
			if err != nil {
				return err
			}
			if err := st.Cleanup(ctx); err != nil {
				c.Logger.Debug("session cleanup failed", "err", err)
			}
			list, err := st.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(list) == 0 {
				printInfo(out, "Not logged in to any server")
				return nil
			}
			rows := make([][]string, 0, len(list))
			for _, s := range list {
				rows = append(rows, []string{s.Server, s.CreatedAt.Format("Jan 2, 2006"), s.ExpiresAt.Format("Jan 2, 2006")})
			}
			fmt.Fprintln(out, plainTable([]string{"Server", "Logged in", "Expires"}, rows, nil))
			return nil
		},
	}
}

// sessionToken returns the saved token for server, or "".
func (c *CLI) sessionToken(ctx context.Context, server string) string {
	st, err := session.NewFileStore("")
	if err != nil {
		c.Logger.Debug("session store unavailable", "err", err)
		return ""
	}
	sess, err := st.Get(ctx, session.IDFor(server))
	if err != nil || sess == nil {
		return ""
	}
	c.Logger.Debug("using saved session", "server", sess.Server)
	return sess.Token
}
