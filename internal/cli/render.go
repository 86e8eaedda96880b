package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/whiteboard/pkg/client"
	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/render/sink"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string   // output file (single format) or base path
	formats    []string // svg, png, pdf
	scale      float64
	padding    float64
	background string
}

// renderCommand renders a board file or stored board.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render <board>",
		Short: "Render a board to SVG, PNG or PDF",
		Long: `Render a board to SVG, PNG or PDF.

The board is a path to a board JSON file or the id of a stored board.
With --server, stored boards are rendered by the server.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			for _, f := range opts.formats {
				if err := errors.ValidateFormat(f, sink.Formats); err != nil {
					return err
				}
			}
			if cmd.Flags().Changed("scale") {
				c.Config.Render.Scale = opts.scale
			}
			if cmd.Flags().Changed("padding") {
				c.Config.Render.Padding = opts.padding
			}
			if cmd.Flags().Changed("background") {
				c.Config.Render.Background = opts.background
			}
			return c.runRender(cmd, parseBoardRef(args[0]), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf (comma-separated)")
	cmd.Flags().Float64Var(&opts.scale, "scale", 1, "pixels per world unit")
	cmd.Flags().Float64Var(&opts.padding, "padding", 40, "margin around the content in world units")
	cmd.Flags().StringVar(&opts.background, "background", "#ffffff", `background color, or "transparent"`)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, ref boardRef, opts *renderOpts) error {
	ctx := cmd.Context()
	prog := newProgress(loggerFromContext(ctx))

	var render func(format string) ([]byte, error)
	if c.serverURL != "" && !ref.file {
		remote := client.New(c.serverURL, c.token)
		defer remote.Close()
		render = func(format string) ([]byte, error) { return remote.Export(ctx, ref.ref, format) }
	} else {
		ob, err := c.openBoard(ctx, ref)
		if err != nil {
			return err
		}
		payload, err := ob.payload()
		ob.close()
		if err != nil {
			return err
		}

		ch, keys := c.openCache(ctx)
		defer ch.Close()
		exp := c.newExporter(ch, keys, c.newIcons(ch, keys))
		render = func(format string) ([]byte, error) {
			spin := newSpinnerWithContext(ctx, cmd.ErrOrStderr(), "Rendering "+format+"...")
			spin.Start()
			defer spin.Stop()
			data, _, err := exp.Export(ctx, payload, format)
			return data, err
		}
	}

	base := basePath(opts.output, ref)
	out := cmd.OutOrStdout()
	for _, format := range opts.formats {
		data, err := render(format)
		if err != nil {
			return err
		}
		path := opts.output
		if len(opts.formats) > 1 || path == "" {
			path = base + "." + format
		}
		if err := writeOutput(out, path, data); err != nil {
			return err
		}
		if path != "-" {
			printFile(out, path)
		}
	}
	prog.done(fmt.Sprintf("Rendered %s", ref))
	return nil
}

// basePath derives the output path without extension. Without -o it is
// the input file name or the board id.
func basePath(output string, ref boardRef) string {
	if output == "" {
		if ref.file {
			return strings.TrimSuffix(ref.ref, filepath.Ext(ref.ref))
		}
		return ref.ref
	}
	ext := filepath.Ext(output)
	for _, f := range sink.Formats {
		if ext == "."+f {
			return strings.TrimSuffix(output, ext)
		}
	}
	return output
}
