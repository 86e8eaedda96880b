// Package store persists board documents.
//
// A board is stored as a [Record]: its metadata ([Meta]) plus the board
// document payload exactly as the client sent it. Payloads are validated
// with [pkgio.Validate] before they are written, so a stored board always
// imports.
//
// # Backends
//
//   - [NewFileStore]: one JSON file per board in a directory.
//   - [NewMemoryStore]: process-local, for tests and ephemeral servers.
//   - [NewRedisStore]: one string per board plus a sorted-set index.
//   - [NewMongoStore]: one document per board in the "boards" collection.
//
// All backends share the same record semantics: names are trimmed and
// capped at [MaxNameLength] runes (empty becomes [DefaultName]), new boards
// start with an empty document, and [Store.List] orders boards by most
// recent update first.
package store

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/matzehuels/whiteboard/pkg/errors"
	pkgio "github.com/matzehuels/whiteboard/pkg/io"
	"github.com/matzehuels/whiteboard/pkg/observability"
)

// Naming rules.
const (
	DefaultName   = "Untitled board"
	MaxNameLength = 80
)

// Meta describes a stored board.
type Meta struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Record is a stored board with its document.
type Record struct {
	Meta
	Payload json.RawMessage `json:"payload"`
}

// Store is the persistence contract shared by all backends.
type Store interface {
	Create(ctx context.Context, name string) (Record, error)
	Get(ctx context.Context, id string) (Record, error)
	List(ctx context.Context) ([]Meta, error)

	// Save replaces the document of an existing board. A nil name keeps
	// the current one.
	Save(ctx context.Context, id string, payload json.RawMessage, name *string) (Meta, error)
	Rename(ctx context.Context, id, name string) (Meta, error)
	Delete(ctx context.Context, id string) error
	Close() error
}

// SanitizeName trims name and caps its length.
func SanitizeName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		name = string([]rune(name)[:MaxNameLength])
	}
	return name
}

// DefaultPayload is the document of a new board.
func DefaultPayload() json.RawMessage {
	data, _ := json.Marshal(pkgio.Empty())
	return data
}

// NotFound returns the error reported for a missing board.
func NotFound(id string) error {
	return errors.New(errors.ErrCodeBoardNotFound, "board %s not found", id)
}

// IsNotFound reports whether err means the board does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, errors.ErrCodeBoardNotFound)
}

// backend is the storage primitive each implementation provides; the
// record semantics live in recordStore.
type backend interface {
	load(ctx context.Context, id string) (Record, error)
	put(ctx context.Context, r Record) error
	remove(ctx context.Context, id string) error
	list(ctx context.Context) ([]Meta, error)
	close() error
}

// recordStore implements Store on top of a backend. Read-modify-write
// sequences are serialized within the process.
type recordStore struct {
	mu    sync.Mutex
	kind  string
	b     backend
	now   func() time.Time
	newID func() string
}

func newRecordStore(kind string, b backend) *recordStore {
	return &recordStore{
		kind:  kind,
		b:     b,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *recordStore) Create(ctx context.Context, name string) (Record, error) {
	start := time.Now()
	ts := s.now()
	r := Record{
		Meta:    Meta{ID: s.newID(), Name: SanitizeName(name), CreatedAt: ts, UpdatedAt: ts},
		Payload: DefaultPayload(),
	}
	err := s.b.put(ctx, r)
	observability.Store().OnSave(ctx, s.kind, r.ID, len(r.Payload), time.Since(start), err)
	if err != nil {
		return Record{}, errors.Wrap(errors.ErrCodeStorage, err, "create board")
	}
	return r, nil
}

func (s *recordStore) Get(ctx context.Context, id string) (Record, error) {
	if err := errors.ValidateID(id); err != nil {
		return Record{}, err
	}
	start := time.Now()
	r, err := s.b.load(ctx, id)
	observability.Store().OnLoad(ctx, s.kind, id, time.Since(start), err)
	return r, s.wrap(err, "load board %s", id)
}

func (s *recordStore) List(ctx context.Context) ([]Meta, error) {
	metas, err := s.b.list(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeStorage, err, "list boards")
	}
	sortMetas(metas)
	return metas, nil
}

func (s *recordStore) Save(ctx context.Context, id string, payload json.RawMessage, name *string) (Meta, error) {
	if err := pkgio.Validate(payload); err != nil {
		return Meta{}, err
	}
	return s.update(ctx, id, func(r *Record) {
		r.Payload = append(json.RawMessage(nil), payload...)
		if name != nil {
			r.Name = SanitizeName(*name)
		}
	})
}

func (s *recordStore) Rename(ctx context.Context, id, name string) (Meta, error) {
	return s.update(ctx, id, func(r *Record) { r.Name = SanitizeName(name) })
}

func (s *recordStore) update(ctx context.Context, id string, fn func(*Record)) (Meta, error) {
	if err := errors.ValidateID(id); err != nil {
		return Meta{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	r, err := s.b.load(ctx, id)
	if err != nil {
		return Meta{}, s.wrap(err, "load board %s", id)
	}
	fn(&r)
	r.UpdatedAt = s.now()
	err = s.b.put(ctx, r)
	observability.Store().OnSave(ctx, s.kind, id, len(r.Payload), time.Since(start), err)
	if err != nil {
		return Meta{}, errors.Wrap(errors.ErrCodeStorage, err, "save board %s", id)
	}
	return r.Meta, nil
}

func (s *recordStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateID(id); err != nil {
		return err
	}
	err := s.b.remove(ctx, id)
	observability.Store().OnDelete(ctx, s.kind, id, err)
	return s.wrap(err, "delete board %s", id)
}

func (s *recordStore) Close() error { return s.b.close() }

// Backend names the storage kind ("file", "memory", "redis", "mongo").
func (s *recordStore) Backend() string { return s.kind }

// wrap passes not-found and invalid-id errors through and codes everything else as a
// storage failure.
func (s *recordStore) wrap(err error, format string, args ...any) error {
	if err == nil || IsNotFound(err) || errors.Is(err, errors.ErrCodeInvalidID) {
		return err
	}
	return errors.Wrap(errors.ErrCodeStorage, err, format, args...)
}

func sortMetas(metas []Meta) {
	sort.SliceStable(metas, func(i, j int) bool {
		return metas[i].UpdatedAt.After(metas[j].UpdatedAt)
	})
}
