package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	wberrors "github.com/matzehuels/whiteboard/pkg/errors"
)

// FileVersion is written into every board file.
const FileVersion = 1

type fileRecord struct {
	Version int `json:"version"`
	Record
}

type fileBackend struct {
	dir string
}

// NewFileStore stores each board as <dir>/<id>.json, creating dir if needed.
func NewFileStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create board dir: %w", err)
	}
	return newRecordStore("file", &fileBackend{dir: dir}), nil
}

func (f *fileBackend) path(id string) (string, error) {
	if err := wberrors.ValidateID(id); err != nil {
		return "", err
	}
	return filepath.Join(f.dir, id+".json"), nil
}

func (f *fileBackend) load(_ context.Context, id string) (Record, error) {
	path, err := f.path(id)
	if err != nil {
		return Record{}, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Record{}, NotFound(id)
	}
	if err != nil {
		return Record{}, err
	}
	return decodeFileRecord(data)
}

func decodeFileRecord(data []byte) (Record, error) {
	var fr fileRecord
	if err := json.Unmarshal(data, &fr); err != nil {
		return Record{}, fmt.Errorf("decode board file: %w", err)
	}
	if fr.ID == "" || !isArrayField(fr.Payload, "elements") {
		return Record{}, fmt.Errorf("invalid board file")
	}
	return fr.Record, nil
}

func isArrayField(obj json.RawMessage, field string) bool {
	var fields map[string]json.RawMessage
	if json.Unmarshal(obj, &fields) != nil {
		return false
	}
	v := bytes.TrimSpace(fields[field])
	return len(v) > 0 && v[0] == '['
}

func (f *fileBackend) put(_ context.Context, r Record) error {
	path, err := f.path(r.ID)
	if err != nil {
		return err
	}
	data, err := json.Marshal(fileRecord{Version: FileVersion, Record: r})
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (f *fileBackend) remove(_ context.Context, id string) error {
	path, err := f.path(id)
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NotFound(id)
	}
	return err
}

// list skips files that do not decode as board records.
func (f *fileBackend) list(context.Context) ([]Meta, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, err
	}
	metas := make([]Meta, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(f.dir, e.Name()))
		if err != nil {
			continue
		}
		r, err := decodeFileRecord(data)
		if err != nil {
			continue
		}
		metas = append(metas, r.Meta)
	}
	return metas, nil
}

func (f *fileBackend) close() error { return nil }
