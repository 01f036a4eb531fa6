package memo

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Cache is a time-boxed memo keyed by request parameters. Values are stored
// as JSON so the Redis and in-process backends behave identically.
type Cache interface {
	// Get unmarshals the cached value into dest and reports whether a
	// live (non-expired) entry existed.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	// Set stores value under key for ttl.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

type entry struct {
	data      []byte
	expiresAt time.Time
}

// Store is the in-process Cache backend.
type Store struct {
	entries map[string]entry
	mu      sync.RWMutex
	now     func() time.Time
}

// NewStore creates an in-process memo cache.
func NewStore() *Store {
	return &Store{entries: make(map[string]entry), now: time.Now}
}

func (s *Store) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if s.now().After(e.expiresAt) {
		s.mu.Lock()
		// Re-check under the write lock; another Set may have refreshed it.
		if cur, ok := s.entries[key]; ok && s.now().After(cur.expiresAt) {
			delete(s.entries, key)
		}
		s.mu.Unlock()
		return false, nil
	}
	if err := json.Unmarshal(e.data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.entries[key] = entry{data: data, expiresAt: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}
