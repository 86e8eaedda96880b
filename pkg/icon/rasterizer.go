package icon

import (
	"bytes"
	"context"

	"github.com/fogleman/gg"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/render"
)

// Defaults.
const (
	DefaultSize        = 128
	DefaultStrokeWidth = 2.0
)

// Rasterizer paints catalog icons to PNG.
type Rasterizer struct {
	size        int
	strokeWidth float64
}

// NewRasterizer returns a rasterizer producing size x size images. A
// non-positive size selects DefaultSize.
func NewRasterizer(size int) *Rasterizer {
	if size <= 0 {
		size = DefaultSize
	}
	return &Rasterizer{size: size, strokeWidth: DefaultStrokeWidth}
}

// Size returns the output side length in pixels.
func (r *Rasterizer) Size() int { return r.size }

// PNG renders icon id stroked in color on a transparent background.
// Unparsable colors fall back to the default icon color.
func (r *Rasterizer) PNG(id, color string) ([]byte, error) {
	draw, ok := catalog[id]
	if !ok {
		return nil, errors.New(errors.ErrCodeIconNotFound, "unknown icon %q", id)
	}
	c, ok := render.ParseColor(color)
	if !ok {
		c, _ = render.ParseColor(element.DefaultIconColor)
	}

	s := float64(r.size) / Grid
	dc := gg.NewContext(r.size, r.size)
	dc.Scale(s, s)
	dc.SetColor(c)
	dc.SetLineWidth(r.strokeWidth * s)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	draw(dc)
	dc.Stroke()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode icon %q", id)
	}
	return buf.Bytes(), nil
}

// ResolveIcon returns the icon as a PNG data URI.
func (r *Rasterizer) ResolveIcon(ctx context.Context, id, color string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := r.PNG(id, color)
	if err != nil {
		return "", err
	}
	return render.EncodeDataURL("image/png", data), nil
}
