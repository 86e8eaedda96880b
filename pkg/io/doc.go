// Package io reads and writes whiteboard documents.
//
// # JSON Format
//
// A board is persisted as one object with an elements array in z-order
// (first element painted first) and an optional viewport:
//
//	{
//	  "elements": [
//	    {"type": "rectangle", "id": "a", "x": 0, "y": 0, "width": 160,
//	     "height": 100, "rotation": 0, "fillColor": "#dbeafe"},
//	    {"type": "text", "id": "b", "x": 20, "y": 20, "width": 120,
//	     "height": 30, "rotation": 0, "text": "Hello"}
//	  ],
//	  "viewport": {"zoom": 1, "offsetX": 0, "offsetY": 0}
//	}
//
// Every element carries type, id, x, y, width, height and rotation. The
// remaining fields depend on the type; see [element.JSON]. Missing optional
// fields take the variant defaults on import.
//
// # Import
//
// [ReadJSON] decodes from any io.Reader, [ImportJSON] from a file and
// [Unmarshal] from bytes. A document without an elements array, or with an
// element of unknown type, is rejected as a whole: no partial board is
// returned. Errors carry [errors.ErrCodeInvalidDocument] or
// [errors.ErrCodeUnknownElementType].
//
// # Export
//
// [Snapshot] captures a board and viewport as a [Document]; [WriteJSON] and
// [ExportJSON] encode it with two-space indentation.
//
// [element.JSON]: github.com/matzehuels/whiteboard/pkg/element.JSON
// [errors.ErrCodeInvalidDocument]: github.com/matzehuels/whiteboard/pkg/errors.ErrCodeInvalidDocument
// [errors.ErrCodeUnknownElementType]: github.com/matzehuels/whiteboard/pkg/errors.ErrCodeUnknownElementType
package io
