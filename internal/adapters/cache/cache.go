// Package cache implements the bounded rewrite cache. Entries are keyed by
// canonical request path and carry a digest of the raw body they were
// computed from: path-keyed invalidation from watcher events is exact, and a
// body that changed without a watcher event misses on the digest check
// instead of serving a stale rewrite.
package cache

import (
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.trai.ch/serv/internal/core/ports"
)

var _ ports.RewriteCache = (*RewriteCache)(nil)

type entry struct {
	digest    uint64
	rewritten []byte
}

// RewriteCache is a bounded LRU cache of rewritten response bodies.
type RewriteCache struct {
	entries *lru.Cache[string, entry]
}

// New creates a RewriteCache holding at most capacity entries.
func New(capacity int) (*RewriteCache, error) {
	entries, err := lru.New[string, entry](capacity)
	if err != nil {
		return nil, err
	}
	return &RewriteCache{entries: entries}, nil
}

// Get returns the rewritten body cached for the request path, provided the
// entry was computed from an identical raw body.
func (c *RewriteCache) Get(path string, raw []byte) ([]byte, bool) {
	e, ok := c.entries.Get(path)
	if !ok || e.digest != xxhash.Sum64(raw) {
		return nil, false
	}
	return e.rewritten, true
}

// Put stores the rewritten body for the request path.
func (c *RewriteCache) Put(path string, raw, rewritten []byte) {
	c.entries.Add(path, entry{digest: xxhash.Sum64(raw), rewritten: rewritten})
}

// Invalidate drops the entry for the request path.
func (c *RewriteCache) Invalidate(path string) {
	c.entries.Remove(path)
}
