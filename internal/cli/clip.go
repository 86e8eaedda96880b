package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/geom"
)

// clipKind tags clipboard text written by the clip command.
const clipKind = "whiteboard/elements"

type clipPayload struct {
	Kind     string         `json:"kind"`
	Elements []element.JSON `json:"elements"`
}

// System clipboard access, replaced in tests.
var (
	clipboardWrite = clipboard.WriteAll
	clipboardRead  = clipboard.ReadAll
)

// clipCommand copies elements between boards through the system clipboard.
func (c *CLI) clipCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clip",
		Short: "Copy and paste elements through the system clipboard",
	}
	cmd.AddCommand(c.clipCopyCommand())
	cmd.AddCommand(c.clipPasteCommand())
	return cmd
}

func (c *CLI) clipCopyCommand() *cobra.Command {
	var ids []string
	cmd := &cobra.Command{
		Use:   "copy <board>",
		Short: "Copy the selected elements, or the elements given by --id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ob, err := c.openBoard(cmd.Context(), parseBoardRef(args[0]))
			if err != nil {
				return err
			}
			defer ob.close()

			if len(ids) > 0 {
				ob.ctrl.SetSelection(ids...)
			}
			snapshots := ob.ctrl.CopySelection()
			if len(snapshots) == 0 {
				printWarning(cmd.OutOrStdout(), "Nothing selected")
				return nil
			}
			data, err := json.Marshal(clipPayload{Kind: clipKind, Elements: snapshots})
			if err != nil {
				return err
			}
			if err := clipboardWrite(string(data)); err != nil {
				return fmt.Errorf("write clipboard: %w", err)
			}
			printSuccess(cmd.OutOrStdout(), "Copied %d elements", len(snapshots))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&ids, "id", nil, "element ids to copy (default: the saved selection)")
	return cmd
}

func (c *CLI) clipPasteCommand() *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "paste <board>",
		Short: "Paste copied elements and save the board",
		Long: `Paste copied elements and save the board.

The group's top-left corner lands on --at, given in world coordinates.
Without --at it lands at the center of the saved viewport.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := clipboardRead()
			if err != nil {
				return fmt.Errorf("read clipboard: %w", err)
			}
			var payload clipPayload
			if err := json.Unmarshal([]byte(text), &payload); err != nil || payload.Kind != clipKind {
				return fmt.Errorf("clipboard does not hold whiteboard elements")
			}

			ctx := cmd.Context()
			ob, err := c.openBoard(ctx, parseBoardRef(args[0]))
			if err != nil {
				return err
			}
			defer ob.close()

			cursor := ob.ctrl.ToWorld(geom.Point{X: ViewWidth / 2, Y: ViewHeight / 2})
			if at != "" {
				if cursor, err = parsePoint(at); err != nil {
					return err
				}
			}
			pasted := ob.ctrl.PasteAt(payload.Elements, cursor)
			if err := ob.save(ctx); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Pasted %d elements into %s", len(pasted), ob.ref)
			for _, id := range pasted {
				printDetail(out, "%s", id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "paste position as x,y")
	return cmd
}

// ViewWidth and ViewHeight are the screen size assumed when a command
// needs the visible area of a saved viewport.
const (
	ViewWidth  = 1280
	ViewHeight = 800
)

func parsePoint(s string) (geom.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return geom.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	x, errX := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	y, errY := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if errX != nil || errY != nil {
		return geom.Point{}, fmt.Errorf("invalid point %q: want x,y", s)
	}
	return geom.Point{X: x, Y: y}, nil
}
