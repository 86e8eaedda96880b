package io

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/whiteboard/pkg/board"
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/geom"
	"github.com/matzehuels/whiteboard/pkg/viewport"
)

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"malformed", `{"elements":`, errors.ErrCodeInvalidDocument},
		{"missing elements", `{"viewport":{"zoom":1,"offsetX":0,"offsetY":0}}`, errors.ErrCodeInvalidDocument},
		{"elements not array", `{"elements":{"a":1}}`, errors.ErrCodeInvalidDocument},
		{"null elements", `{"elements":null}`, errors.ErrCodeInvalidDocument},
		{"unknown type", `{"elements":[{"type":"hexagon","id":"a","x":0,"y":0,"width":1,"height":1,"rotation":0}]}`, errors.ErrCodeUnknownElementType},
		{"missing id", `{"elements":[{"type":"rectangle","x":0,"y":0,"width":1,"height":1,"rotation":0}]}`, errors.ErrCodeInvalidDocument},
		{"empty id", `{"elements":[{"type":"ellipse","id":"","x":0,"y":0,"width":1,"height":1,"rotation":0}]}`, errors.ErrCodeInvalidDocument},
		{"duplicate id", `{"elements":[{"type":"rectangle","id":"a","x":0,"y":0,"width":1,"height":1,"rotation":0},{"type":"text","id":"a","x":5,"y":5,"width":1,"height":1,"rotation":0}]}`, errors.ErrCodeInvalidDocument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.input))
			if err == nil {
				t.Fatal("Unmarshal() error = nil, want error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("Unmarshal() code = %v, want %v", got, tt.code)
			}
		})
	}

	_, err := Unmarshal([]byte(`{}`))
	if got := errors.UserMessage(err); got != MissingElementsMessage {
		t.Errorf("UserMessage() = %q, want %q", got, MissingElementsMessage)
	}
}

func TestUnmarshalDefaults(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"elements":[]}`))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	elements, v, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if len(elements) != 0 || v != viewport.Default() {
		t.Errorf("Build() = %v, %+v, want empty board and default viewport", elements, v)
	}

	doc, _ = Unmarshal([]byte(`{"elements":[],"viewport":{"zoom":99,"offsetX":3,"offsetY":4}}`))
	if doc.Viewport == nil || doc.Viewport.Zoom != viewport.MaxZoom || doc.Viewport.OffsetX != 3 {
		t.Errorf("Viewport = %+v, want clamped zoom", doc.Viewport)
	}
}

func TestRoundTrip(t *testing.T) {
	b := board.New(
		element.NewRectangle("r", geom.Rect{X: 1, Y: 2, Width: 3, Height: 4}),
		element.NewSticky("s", geom.Rect{Width: 160, Height: 160}, "hi"),
		element.NewFreeDraw("f", geom.Rect{Width: 10, Height: 10}, nil),
	)
	v := viewport.Viewport{Zoom: 1.5, OffsetX: -10, OffsetY: 20}

	var buf bytes.Buffer
	if err := WriteJSON(Snapshot(b, v), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	first := buf.String()

	doc, err := ReadJSON(strings.NewReader(first))
	if err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	elements, gotV, err := doc.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if gotV != v {
		t.Errorf("viewport = %+v, want %+v", gotV, v)
	}

	buf.Reset()
	if err := WriteJSON(Snapshot(board.New(elements...), gotV), &buf); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if buf.String() != first {
		t.Errorf("second export differs:\n%s\nwant:\n%s", buf.String(), first)
	}
}

func TestExportImportFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	if err := ExportJSON(Empty(), path); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	doc, err := ImportJSON(path)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(doc.Elements) != 0 || doc.Elements == nil {
		t.Errorf("Elements = %v, want empty non-nil slice", doc.Elements)
	}

	if _, err := ImportJSON(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ImportJSON() of missing file error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestMarshalEmptyElements(t *testing.T) {
	data, err := Marshal(Document{})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if err := Validate(data); err != nil {
		t.Errorf("Validate(Marshal(Document{})) error = %v", err)
	}
}
