package repo

import (
	"context"
	"sync"
)

// MemoryStateStore keeps blobs in process memory. Nothing survives a restart;
// it backs STORAGE_DRIVER=memory and unit tests.
type MemoryStateStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStateStore returns an empty MemoryStateStore.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{blobs: make(map[string][]byte)}
}

// Load returns a copy of the blob stored under key.
func (s *MemoryStateStore) Load(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.blobs[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), b...), nil
}

// Save stores a copy of blob under key.
func (s *MemoryStateStore) Save(_ context.Context, key string, blob []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = append([]byte(nil), blob...)
	return nil
}
