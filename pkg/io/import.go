package io

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/whiteboard/pkg/element"
	"github.com/matzehuels/whiteboard/pkg/errors"
	"github.com/matzehuels/whiteboard/pkg/viewport"
)

// MissingElementsMessage is reported for documents without an elements array.
const MissingElementsMessage = "Invalid board payload: elements array missing"

type rawDocument struct {
	Elements json.RawMessage    `json:"elements"`
	Viewport *viewport.Viewport `json:"viewport"`
}

// ReadJSON decodes a document from r and checks that every element can be
// built. It does not close r.
func ReadJSON(r io.Reader) (Document, error) {
	var raw rawDocument
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode board")
	}
	return fromRaw(raw)
}

// Unmarshal decodes a document from data.
func Unmarshal(data []byte) (Document, error) {
	return ReadJSON(bytes.NewReader(data))
}

// ImportJSON reads a document from the file at path.
func ImportJSON(path string) (Document, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Document{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "board file %s not found", path)
	}
	if err != nil {
		return Document{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// Validate reports whether data is an importable document.
func Validate(data []byte) error {
	_, err := Unmarshal(data)
	return err
}

func fromRaw(raw rawDocument) (Document, error) {
	trimmed := bytes.TrimSpace(raw.Elements)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return Document{}, errors.New(errors.ErrCodeInvalidDocument, MissingElementsMessage)
	}

	var doc Document
	if err := json.Unmarshal(trimmed, &doc.Elements); err != nil {
		return Document{}, errors.Wrap(errors.ErrCodeInvalidDocument, err, "decode elements")
	}
	if doc.Elements == nil {
		doc.Elements = []element.JSON{}
	}
	seen := make(map[string]bool, len(doc.Elements))
	for i, j := range doc.Elements {
		if !j.Type.Valid() {
			return Document{}, errors.New(errors.ErrCodeUnknownElementType, "element %d: unknown element type: %q", i, j.Type)
		}
		if j.ID == "" {
			return Document{}, errors.New(errors.ErrCodeInvalidDocument, "element %d: missing id", i)
		}
		if seen[j.ID] {
			return Document{}, errors.New(errors.ErrCodeInvalidDocument, "element %d: duplicate id %q", i, j.ID)
		}
		seen[j.ID] = true
	}
	if raw.Viewport != nil {
		v := raw.Viewport.Normalize()
		doc.Viewport = &v
	}
	return doc, nil
}

// Build constructs the elements and viewport of doc. A missing viewport
// yields the default one.
func (doc Document) Build() ([]element.Element, viewport.Viewport, error) {
	elements, err := element.FromJSONList(doc.Elements)
	if err != nil {
		return nil, viewport.Viewport{}, err
	}
	v := viewport.Default()
	if doc.Viewport != nil {
		v = doc.Viewport.Normalize()
	}
	return elements, v, nil
}
