package sink

import (
	"context"
	"time"

	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/observability"
	"github.com/matzehuels/whiteboard/pkg/render"
)

// Output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatPDF = "pdf"
)

// Formats lists the supported output formats.
var Formats = []string{FormatSVG, FormatPNG, FormatPDF}

// Defaults.
const (
	DefaultPadding    = 40.0
	DefaultScale      = 1.0
	DefaultBackground = "#ffffff"
)

// Option configures a sink.
type Option func(*config)

type config struct {
	padding    float64
	scale      float64
	background string
}

// WithPadding sets the margin around the content in output units.
func WithPadding(p float64) Option { return func(c *config) { c.padding = max(0, p) } }

// WithScale sets output units per world unit.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithBackground sets the page color; "transparent" leaves it unpainted.
func WithBackground(color string) Option { return func(c *config) { c.background = color } }

func newConfig(opts []Option) config {
	c := config{padding: DefaultPadding, scale: DefaultScale, background: DefaultBackground}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) frame(s render.Scene) render.Frame {
	return render.NewFrame(s.Bounds, c.padding, c.scale)
}

// Render dispatches to the sink for format and returns the output with its
// content type.
func Render(ctx context.Context, format string, s render.Scene, opts ...Option) ([]byte, string, error) {
	if err := errors.ValidateFormat(format, Formats); err != nil {
		return nil, "", err
	}
	start := time.Now()
	data, contentType, err := dispatch(format, s, opts)
	observability.Render().OnRender(ctx, format, len(s.Primitives), time.Since(start), err)
	return data, contentType, err
}

// ContentType returns the MIME type of format.
func ContentType(format string) string {
	switch format {
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	default:
		return "image/svg+xml"
	}
}

func dispatch(format string, s render.Scene, opts []Option) ([]byte, string, error) {
	var data []byte
	var err error
	switch format {
	case FormatPNG:
		data, err = RenderPNG(s, opts...)
	case FormatPDF:
		data, err = RenderPDF(s, opts...)
	default:
		data = RenderSVG(s, opts...)
	}
	return data, ContentType(format), err
}
