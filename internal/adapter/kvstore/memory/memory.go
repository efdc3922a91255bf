// Package memory provides an in-memory domain.KVStore used in tests and
// as a throwaway backend.
package memory

import (
	"context"
	"sync"

	"financehub/internal/domain"
)

// Store is a map-backed key-value store.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ domain.KVStore = (*Store)(nil)

// New creates an empty in-memory store.
func New() *Store {
	return &Store{values: make(map[string]string)}
}

// Get retrieves the value stored under key.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	return value, ok, nil
}

// Set fully overwrites the value stored under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// Seed pre-populates a key, bypassing the gateway. Test helper.
func (s *Store) Seed(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}
