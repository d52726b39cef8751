// Package cache is the portal's in-memory request cache: reads are stored
// under a key derived from the resource name plus its query parameters, and
// writes invalidate every key of the mutated resource so dependent readers
// refetch. Nothing here is durable; the session slot in Redis is the only
// persisted client state.
package cache

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"campus_portal/internal/platform/logging"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const keySep = "|"

// Key builds a deterministic cache key from a resource name and its
// parameters. Identical parameter sets always serialize identically (params
// are sorted by name), and any changed page/filter value yields a distinct
// key. Names and values are escaped so a value carrying the separator cannot
// forge another parameter set's key.
func Key(resource string, params map[string]string) string {
	if len(params) == 0 {
		return resource
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(resource)
	for _, name := range names {
		b.WriteString(keySep)
		b.WriteString(url.QueryEscape(name))
		b.WriteString("=")
		b.WriteString(url.QueryEscape(params[name]))
	}
	return b.String()
}

type entry struct {
	value     interface{}
	expiresAt time.Time
}

type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group
}

func New(ttl time.Duration) *QueryCache {
	return &QueryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// GetOrFetch returns the cached value for key, or runs fetch and caches its
// result. Concurrent callers with the same key share a single in-flight fetch,
// so two views mounting the same query do not double-hit the campus API.
// Fetch failures are never cached.
func (c *QueryCache) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		// Another caller may have populated the key while we waited.
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	return v, err
}

func (c *QueryCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores server-confirmed data directly. Used for the write-through cases
// (login profile, user update) where the mutation response already carries the
// fresh record; everything else waits for a refetch.
func (c *QueryCache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

// Invalidate drops every entry whose key belongs to the given resource, both
// the bare key and any parameterized variants under it.
func (c *QueryCache) Invalidate(resource string) {
	prefix := resource + keySep
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if key == resource || strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// StartJanitor sweeps expired entries until ctx is cancelled.
func (c *QueryCache) StartJanitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			logging.L.Info("Cache janitor stopping...")
			return
		case <-ticker.C:
			removed := c.sweep()
			if removed > 0 {
				logging.L.Debug("Cache janitor swept entries", zap.Int("removed", removed))
			}
		}
	}
}

func (c *QueryCache) sweep() int {
	now := time.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	removed := 0
	for key, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// PageKey is a convenience for list queries: resource + page/limit + filters.
func PageKey(resource string, page, limit int, filters map[string]string) string {
	params := map[string]string{
		"page":  fmt.Sprintf("%d", page),
		"limit": fmt.Sprintf("%d", limit),
	}
	for name, value := range filters {
		if value != "" {
			params[name] = value
		}
	}
	return Key(resource, params)
}
