package cli

import (
	"encoding/json"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/whiteboard/pkg/board"
	"github.com/matzehuels/whiteboard/pkg/geom"
	"github.com/matzehuels/whiteboard/pkg/store"
)

// boardsCommand creates the board management command.
func (c *CLI) boardsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "boards",
		Aliases: []string{"board"},
		Short:   "Manage stored boards",
	}

	cmd.AddCommand(c.boardsListCommand())
	cmd.AddCommand(c.boardsCreateCommand())
	cmd.AddCommand(c.boardsRenameCommand())
	cmd.AddCommand(c.boardsDeleteCommand())
	cmd.AddCommand(c.boardsShowCommand())
	cmd.AddCommand(c.boardsPickCommand())

	return cmd
}

func (c *CLI) boardsListCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List boards, most recently updated first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			metas, err := st.List(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(map[string][]store.Meta{"boards": metas})
			}
			if len(metas) == 0 {
				printInfo(out, "No boards")
				return nil
			}
			fmt.Fprintln(out, boardsTable(metas, time.Now()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	return cmd
}

func (c *CLI) boardsCreateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create [name]",
		Short: "Create an empty board",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			var name string
			if len(args) == 1 {
				name = args[0]
			}
			rec, err := st.Create(ctx, name)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Created %s", rec.Name)
			printDetail(out, "ID: %s", rec.ID)
			return nil
		},
	}
}

func (c *CLI) boardsRenameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <name>",
		Short: "Rename a board",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			meta, err := st.Rename(ctx, args[0], args[1])
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Renamed %s to %s", meta.ID, meta.Name)
			return nil
		},
	}
}

func (c *CLI) boardsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>...",
		Aliases: []string{"rm"},
		Short:   "Delete boards",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			out := cmd.OutOrStdout()
			for _, id := range args {
				if err := st.Delete(ctx, id); err != nil {
					return err
				}
				printSuccess(out, "Deleted %s", id)
			}
			return nil
		},
	}
}

func (c *CLI) boardsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show board details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			ob, err := c.loadFromStore(ctx, boardRef{ref: args[0]}, st)
			if err != nil {
				return err
			}
			rec := ob.meta

			out := cmd.OutOrStdout()
			v := ob.ctrl.Viewport().Get()
			printKeyValue(out, "Name", rec.Name)
			printKeyValue(out, "ID", rec.ID)
			printKeyValue(out, "Created", rec.CreatedAt.Format(time.RFC3339))
			printKeyValue(out, "Updated", rec.UpdatedAt.Format(time.RFC3339))
			printKeyValue(out, "Viewport", fmt.Sprintf("offset (%g, %g) zoom %g", v.OffsetX, v.OffsetY, v.Zoom))
			if r, ok := boardBounds(ob.ctrl.Board()); ok {
				printKeyValue(out, "Bounds", fmt.Sprintf("%gx%g at (%g, %g)", r.Width, r.Height, r.X, r.Y))
			}
			printBoardStats(out, ob.ctrl.Board().Len(), len(ob.ctrl.SelectedIDs()))
			return nil
		},
	}
}

func (c *CLI) boardsPickCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a board interactively and print its id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			metas, err := st.List(ctx)
			if err != nil {
				return err
			}
			if len(metas) == 0 {
				printInfo(cmd.ErrOrStderr(), "No boards")
				return nil
			}

			p := tea.NewProgram(NewBoardListModel(metas), tea.WithContext(ctx), tea.WithOutput(cmd.ErrOrStderr()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(BoardListModel); ok && m.Selected != nil {
				fmt.Fprintln(cmd.OutOrStdout(), m.Selected.ID)
			}
			return nil
		},
	}
}

func boardBounds(b *board.Board) (geom.Rect, bool) {
	rects := make([]geom.Rect, 0, b.Len())
	for _, e := range b.Elements() {
		rects = append(rects, e.Common().Bounds())
	}
	return geom.Union(rects)
}
