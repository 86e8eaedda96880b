package store

import (
	"context"
	"encoding/json"
	"sync"
)

type memoryBackend struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore returns a store that keeps boards in memory.
func NewMemoryStore() Store {
	return newRecordStore("memory", &memoryBackend{records: make(map[string]Record)})
}

func (m *memoryBackend) load(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.records[id]
	if !ok {
		return Record{}, NotFound(id)
	}
	r.Payload = append(json.RawMessage(nil), r.Payload...)
	return r, nil
}

func (m *memoryBackend) put(_ context.Context, r Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.ID] = r
	return nil
}

func (m *memoryBackend) remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return NotFound(id)
	}
	delete(m.records, id)
	return nil
}

func (m *memoryBackend) list(context.Context) ([]Meta, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	metas := make([]Meta, 0, len(m.records))
	for _, r := range m.records {
		metas = append(metas, r.Meta)
	}
	return metas, nil
}

func (m *memoryBackend) close() error { return nil }
