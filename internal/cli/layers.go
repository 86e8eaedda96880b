package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// layersCommand prints the layer panel and reorders elements.
func (c *CLI) layersCommand() *cobra.Command {
	var forward, backward, front, back string

	cmd := &cobra.Command{
		Use:   "layers <board>",
		Short: "List a board's layers front to back, or reorder one",
		Long: `List a board's layers front to back.

With one of --forward, --backward, --front or --back the named element is
moved and the board is saved.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ob, err := c.openBoard(ctx, parseBoardRef(args[0]))
			if err != nil {
				return err
			}
			defer ob.close()

			moves := []struct {
				id   string
				move func(string) bool
			}{
				{forward, ob.ctrl.MoveLayerForward},
				{backward, ob.ctrl.MoveLayerBackward},
				{front, ob.ctrl.BringLayerToFront},
				{back, ob.ctrl.SendLayerToBack},
			}
			moved := false
			for _, m := range moves {
				if m.id == "" {
					continue
				}
				if _, ok := ob.ctrl.Board().Get(m.id); !ok {
					return fmt.Errorf("element %s: not on board", m.id)
				}
				moved = m.move(m.id) || moved
			}
			if moved {
				if err := ob.save(ctx); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			items := ob.ctrl.LayerItems()
			if len(items) == 0 {
				printInfo(out, "Board is empty")
				return nil
			}
			fmt.Fprintln(out, layersTable(items))
			if moved {
				printSuccess(out, "Saved %s", ob.ref)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&forward, "forward", "", "move element one step toward the front")
	cmd.Flags().StringVar(&backward, "backward", "", "move element one step toward the back")
	cmd.Flags().StringVar(&front, "front", "", "bring element to the front")
	cmd.Flags().StringVar(&back, "back", "", "send element to the back")
	cmd.MarkFlagsMutuallyExclusive("forward", "backward", "front", "back")

	return cmd
}

