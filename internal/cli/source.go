package cli

import (
	"context"
	"encoding/json"
	"os"
	"strings"

	"github.com/matzehuels/whiteboard/pkg/board"
	"github.com/matzehuels/whiteboard/pkg/controller"
	pkgio "github.com/matzehuels/whiteboard/pkg/io"
	"github.com/matzehuels/whiteboard/pkg/store"
)

// boardRef names a board either by store id or by a JSON file on disk.
// References ending in .json, or naming an existing file, are files.
type boardRef struct {
	ref  string
	file bool
}

func parseBoardRef(ref string) boardRef {
	if strings.HasSuffix(ref, ".json") {
		return boardRef{ref: ref, file: true}
	}
	if info, err := os.Stat(ref); err == nil && !info.IsDir() {
		return boardRef{ref: ref, file: true}
	}
	return boardRef{ref: ref}
}

func (r boardRef) String() string { return r.ref }

// openedBoard is a board loaded into a controller, plus where to write it
// back.
type openedBoard struct {
	ref  boardRef
	meta store.Meta
	ctrl *controller.Controller
	st   store.Store
}

// openBoard loads ref into a controller. Store references keep the store
// open until close.
func (c *CLI) openBoard(ctx context.Context, ref boardRef) (*openedBoard, error) {
	if ref.file {
		doc, err := pkgio.ImportJSON(ref.ref)
		if err != nil {
			return nil, err
		}
		return c.newOpenedBoard(ref, doc, nil)
	}

	st, err := c.openStore(ctx)
	if err != nil {
		return nil, err
	}
	ob, err := c.loadFromStore(ctx, ref, st)
	if err != nil {
		st.Close()
		return nil, err
	}
	return ob, nil
}

func (c *CLI) loadFromStore(ctx context.Context, ref boardRef, st store.Store) (*openedBoard, error) {
	rec, err := st.Get(ctx, ref.ref)
	if err != nil {
		return nil, err
	}
	doc, err := pkgio.Unmarshal(rec.Payload)
	if err != nil {
		return nil, err
	}
	ob, err := c.newOpenedBoard(ref, doc, st)
	if err != nil {
		return nil, err
	}
	ob.meta = rec.Meta
	return ob, nil
}

func (c *CLI) newOpenedBoard(ref boardRef, doc pkgio.Document, st store.Store) (*openedBoard, error) {
	elements, v, err := doc.Build()
	if err != nil {
		return nil, err
	}
	ctrl := controller.New(board.New(elements...), controller.WithViewport(v), controller.WithLogger(c.Logger))
	return &openedBoard{ref: ref, ctrl: ctrl, st: st}, nil
}

// document snapshots the current board state.
func (b *openedBoard) document() pkgio.Document {
	return pkgio.Snapshot(b.ctrl.Board(), b.ctrl.Viewport().Get())
}

// payload encodes the current board state.
func (b *openedBoard) payload() ([]byte, error) {
	return pkgio.Marshal(b.document())
}

// save writes the board back where it came from.
func (b *openedBoard) save(ctx context.Context) error {
	if b.ref.file {
		return pkgio.ExportJSON(b.document(), b.ref.ref)
	}
	data, err := b.payload()
	if err != nil {
		return err
	}
	_, err = b.st.Save(ctx, b.ref.ref, json.RawMessage(data), nil)
	return err
}

func (b *openedBoard) close() {
	if b.st != nil {
		b.st.Close()
	}
}
