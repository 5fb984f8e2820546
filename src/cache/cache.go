package cache

import (
	"sync"

	"github.com/dgraph-io/ristretto"
)

// Cache fronts the dashboard read endpoints. Entries live until the next
// sync run rewrites the tables, at which point everything is dropped, so
// key tracking only needs to support clear-all.
type Cache struct {
	store *ristretto.Cache

	mu   sync.Mutex
	keys map[string]struct{}
}

func New() (*Cache, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	return &Cache{store: store, keys: make(map[string]struct{})}, nil
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	c.keys[key] = struct{}{}
	c.mu.Unlock()
	c.store.Set(key, value, 1)
}

// Clear drops every cached entry. Called after each sync run. A handler
// that read pre-sync data may Set its result after Clear has run; that one
// stale entry survives until the next Clear.
func (c *Cache) Clear() {
	c.mu.Lock()
	for key := range c.keys {
		c.store.Del(key)
	}
	c.keys = make(map[string]struct{})
	c.mu.Unlock()
}
