package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/whiteboard/pkg/board"
	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/viewport"
)

// Document is the persisted form of a board.
type Document struct {
	Elements []element.JSON     `json:"elements"`
	Viewport *viewport.Viewport `json:"viewport,omitempty"`
}

// Snapshot captures the elements of b and the viewport v.
func Snapshot(b *board.Board, v viewport.Viewport) Document {
	doc := Document{Elements: make([]element.JSON, 0, b.Len())}
	for _, e := range b.Elements() {
		doc.Elements = append(doc.Elements, e.ToJSON())
	}
	doc.Viewport = &v
	return doc
}

// Empty returns a document with no elements and the default viewport.
func Empty() Document {
	v := viewport.Default()
	return Document{Elements: []element.JSON{}, Viewport: &v}
}

// Marshal encodes doc as indented JSON.
func Marshal(doc Document) ([]byte, error) {
	if doc.Elements == nil {
		doc.Elements = []element.JSON{}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return data, nil
}

// WriteJSON encodes doc and writes it to w.
func WriteJSON(doc Document, w io.Writer) error {
	if doc.Elements == nil {
		doc.Elements = []element.JSON{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes doc to a file at path.
func ExportJSON(doc Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(doc, f)
}
