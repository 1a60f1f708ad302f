// Package memory provides an in-process kv.Store. Values live only as long as
// the process, which makes it the backend for ephemeral boards and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/colonyops/taskboard/internal/core/kv"
)

// KVStore is a thread-safe in-memory kv.Store.
type KVStore struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ kv.Store = (*KVStore)(nil)

// NewKVStore creates an empty store.
func NewKVStore() *KVStore {
	return &KVStore{data: make(map[string]string)}
}

// NewKVStoreFrom creates a store pre-populated with items.
func NewKVStoreFrom(items map[string]string) *KVStore {
	s := NewKVStore()
	for k, v := range items {
		s.data[k] = v
	}
	return s
}

func (s *KVStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.data[key]
	if !ok {
		return "", fmt.Errorf("kv get %q: %w", key, kv.ErrNotFound)
	}
	return val, nil
}

func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Len returns the number of stored keys.
func (s *KVStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
