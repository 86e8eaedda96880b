package export

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/whiteboard/pkg/cache"
	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/icon"
	pkgio "github.com/matzehuels/whiteboard/pkg/io"
	"github.com/matzehuels/whiteboard/pkg/render"
)

const payload = `{"elements":[
 {"id":"r","type":"rectangle","x":0,"y":0,"width":100,"height":60,"rotation":0,"isSelected":true},
 {"id":"i","type":"image","x":120,"y":0,"width":96,"height":96,"rotation":0,"iconId":"star","iconColor":"#dc2626"}
]}`

func TestExportSVG(t *testing.T) {
	e := New(DefaultSettings(), WithIconResolver(icon.NewRasterizer(32)))
	data, contentType, err := e.Export(context.Background(), []byte(payload), "svg")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if contentType != "image/svg+xml" {
		t.Errorf("contentType = %s", contentType)
	}
	svg := string(data)
	if !strings.Contains(svg, `href="data:image/png;base64,`) {
		t.Error("icon image was not hydrated")
	}
	if strings.Contains(svg, render.SelectionColor) {
		t.Error("export drew selection chrome")
	}
}

func TestExportWithoutResolverUsesPlaceholder(t *testing.T) {
	data, _, err := New(DefaultSettings()).Export(context.Background(), []byte(payload), "svg")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if strings.Contains(string(data), "<image") {
		t.Error("unhydrated icon rendered as an image")
	}
}

func TestExportCaches(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryCache()
	e := New(DefaultSettings(), WithCache(mem, nil))

	first, _, err := e.Export(ctx, []byte(payload), "png")
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	if mem.Len() != 1 {
		t.Fatalf("cache entries = %d, want 1", mem.Len())
	}
	second, contentType, _ := e.Export(ctx, []byte(payload), "png")
	if !bytes.Equal(first, second) || contentType != "image/png" {
		t.Error("cached export differs")
	}
	if _, _, err := e.Export(ctx, []byte(payload), "pdf"); err != nil {
		t.Fatal(err)
	}
	if mem.Len() != 2 {
		t.Errorf("cache entries = %d, want 2", mem.Len())
	}
}

func TestExportErrors(t *testing.T) {
	e := New(DefaultSettings())
	tests := []struct {
		name, payload, format string
		code                  errors.Code
	}{
		{"missing elements", `{}`, "svg", errors.ErrCodeInvalidDocument},
		{"unknown type", `{"elements":[{"id":"a","type":"blob"}]}`, "svg", errors.ErrCodeUnknownElementType},
		{"format", `{"elements":[]}`, "gif", errors.ErrCodeInvalidFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := e.Export(context.Background(), []byte(tt.payload), tt.format)
			if !errors.Is(err, tt.code) {
				t.Errorf("Export() error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestScene(t *testing.T) {
	doc, err := pkgio.Unmarshal([]byte(payload))
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(DefaultSettings(), WithIconResolver(icon.NewRasterizer(16))).Scene(context.Background(), doc)
	if err != nil {
		t.Fatalf("Scene() error = %v", err)
	}
	var images int
	for _, p := range s.Primitives {
		if p.Kind == render.KindImage && p.DataURL != "" {
			images++
		}
	}
	if images != 1 {
		t.Errorf("hydrated images = %d, want 1", images)
	}
}
