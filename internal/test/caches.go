package test

import (
	"context"
	"sync"
)

// CacheStub is an in-memory cache recording its invalidations.
type CacheStub struct {
	mu      sync.Mutex
	Items   map[string][]byte
	Deleted []string
}

// NewCacheStub constructs the stub with an initialized map.
func NewCacheStub() *CacheStub {
	return &CacheStub{Items: make(map[string][]byte)}
}

// Get returns a stored payload.
func (s *CacheStub) Get(ctx context.Context, key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payload, ok := s.Items[key]
	return payload, ok
}

// Set stores a payload.
func (s *CacheStub) Set(ctx context.Context, key string, value []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Items == nil {
		s.Items = make(map[string][]byte)
	}
	s.Items[key] = value
}

// Delete drops a key and records the invalidation.
func (s *CacheStub) Delete(ctx context.Context, key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Items, key)
	s.Deleted = append(s.Deleted, key)
}
