package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/icon"
	"github.com/matzehuels/whiteboard/pkg/render"
)

// iconsCommand lists and rasterizes catalog icons.
func (c *CLI) iconsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List and rasterize catalog icons",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List catalog icons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := icon.Items()
			rows := make([][]string, 0, len(items))
			for _, it := range items {
				rows = append(rows, []string{it.ID, it.Label})
			}
			fmt.Fprintln(cmd.OutOrStdout(), plainTable([]string{"ID", "Label"}, rows, nil))
			return nil
		},
	})
	cmd.AddCommand(c.iconsPNGCommand())
	return cmd
}

func (c *CLI) iconsPNGCommand() *cobra.Command {
	var color, output string
	cmd := &cobra.Command{
		Use:   "png <id>",
		Short: "Rasterize an icon to PNG",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			var ids []string
			for _, it := range icon.Items() {
				ids = append(ids, it.ID)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ch, keys := c.openCache(ctx)
			defer ch.Close()

			uri, err := c.newIcons(ch, keys).ResolveIcon(ctx, args[0], color)
			if err != nil {
				return err
			}
			_, data, err := render.DecodeDataURL(uri)
			if err != nil {
				return err
			}
			if output == "" {
				output = args[0] + ".png"
			}
			out := cmd.OutOrStdout()
			if err := writeOutput(out, output, data); err != nil {
				return err
			}
			if output != "-" {
				printFile(out, output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&color, "color", "c", element.DefaultIconColor, "icon color")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default <id>.png)")
	return cmd
}
