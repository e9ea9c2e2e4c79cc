package cache_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/serv/internal/adapters/cache"
)

func TestRewriteCache_RoundTrip(t *testing.T) {
	c, err := cache.New(8)
	require.NoError(t, err)

	raw := []byte("import x from 'lib'")
	rewritten := []byte("import x from '/@modules/lib'")
	c.Put("/app.js", raw, rewritten)

	got, ok := c.Get("/app.js", raw)
	assert.True(t, ok)
	assert.Equal(t, rewritten, got)
}

func TestRewriteCache_MissOnUnknownPath(t *testing.T) {
	c, err := cache.New(8)
	require.NoError(t, err)

	_, ok := c.Get("/missing.js", []byte("anything"))
	assert.False(t, ok)
}

func TestRewriteCache_MissOnChangedBody(t *testing.T) {
	c, err := cache.New(8)
	require.NoError(t, err)

	c.Put("/app.js", []byte("old body"), []byte("old rewrite"))

	_, ok := c.Get("/app.js", []byte("new body"))
	assert.False(t, ok)
}

func TestRewriteCache_Invalidate(t *testing.T) {
	c, err := cache.New(8)
	require.NoError(t, err)

	raw := []byte("body")
	c.Put("/app.js", raw, []byte("rewrite"))
	c.Invalidate("/app.js")

	_, ok := c.Get("/app.js", raw)
	assert.False(t, ok)
}

func TestRewriteCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c, err := cache.New(2)
	require.NoError(t, err)

	raw := []byte("body")
	c.Put("/a.js", raw, []byte("a"))
	c.Put("/b.js", raw, []byte("b"))

	// Touch /a.js so /b.js becomes the eviction candidate.
	_, ok := c.Get("/a.js", raw)
	require.True(t, ok)

	c.Put("/c.js", raw, []byte("c"))

	_, ok = c.Get("/b.js", raw)
	assert.False(t, ok)
	_, ok = c.Get("/a.js", raw)
	assert.True(t, ok)
}

func TestRewriteCache_BoundedSize(t *testing.T) {
	const capacity = 4
	c, err := cache.New(capacity)
	require.NoError(t, err)

	raw := []byte("body")
	for i := 0; i < capacity*3; i++ {
		c.Put(fmt.Sprintf("/mod%d.js", i), raw, []byte("r"))
	}

	hits := 0
	for i := 0; i < capacity*3; i++ {
		if _, ok := c.Get(fmt.Sprintf("/mod%d.js", i), raw); ok {
			hits++
		}
	}
	assert.Equal(t, capacity, hits)
}
