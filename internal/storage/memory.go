package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryStore is the in-memory RecordStore used by tests. Records round-trip
// through JSON so tests exercise the same marshaling the durable backends do.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[Collection][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{collections: make(map[Collection][]byte)}
}

func (s *MemoryStore) Load(kind Collection, out any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resetSlice(out)

	data, ok := s.collections[kind]
	if !ok {
		return nil
	}
	return json.Unmarshal(data, out)
}

func (s *MemoryStore) Save(kind Collection, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[kind] = data
	return nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Conformance checks for all backends.
var (
	_ RecordStore = (*FileStore)(nil)
	_ RecordStore = (*GormStore)(nil)
	_ RecordStore = (*MemoryStore)(nil)
	_ Pinger      = (*FileStore)(nil)
	_ Pinger      = (*GormStore)(nil)
	_ Pinger      = (*MemoryStore)(nil)
)
