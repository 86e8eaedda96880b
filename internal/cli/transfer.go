package cli

import (
	"bytes"
	"encoding/json"

	"github.com/spf13/cobra"

	pkgio "github.com/matzehuels/whiteboard/pkg/io"
	"github.com/matzehuels/whiteboard/pkg/store"
)

// importCommand stores a board file as a new board.
func (c *CLI) importCommand() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a board JSON file as a new stored board",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := pkgio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			if _, _, err := doc.Build(); err != nil {
				return err
			}
			payload, err := pkgio.Marshal(doc)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Create(ctx, name)
			if err != nil {
				return err
			}
			if _, err := st.Save(ctx, rec.ID, json.RawMessage(payload), nil); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printSuccess(out, "Imported %d elements into %s", len(doc.Elements), rec.Name)
			printDetail(out, "ID: %s", rec.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&name, "name", "n", "", "board name (default "+store.DefaultName+")")
	return cmd
}

// exportCommand writes a stored board's document.
func (c *CLI) exportCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a stored board as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			st, err := c.openStore(ctx)
			if err != nil {
				return err
			}
			defer st.Close()

			rec, err := st.Get(ctx, args[0])
			if err != nil {
				return err
			}
			doc, err := pkgio.Unmarshal(rec.Payload)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := pkgio.WriteJSON(doc, &buf); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := writeOutput(out, output, buf.Bytes()); err != nil {
				return err
			}
			if output != "" && output != "-" {
				printFile(out, output)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
