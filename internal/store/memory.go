package store

import (
	"context"

	"github.com/patrickmn/go-cache"
)

// memoryStore keeps values in process memory. Used when no database is
// configured and in tests.
type memoryStore struct {
	c *cache.Cache
}

// NewMemoryStore creates an in-memory store. Values never expire on their
// own; freshness is the caller's concern.
func NewMemoryStore() Store {
	return &memoryStore{c: cache.New(cache.NoExpiration, 0)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, error) {
	v, found := s.c.Get(key)
	if !found {
		return "", ErrNotFound
	}
	return v.(string), nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.c.Set(key, value, cache.NoExpiration)
	return nil
}
