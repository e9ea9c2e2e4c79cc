package hmr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/serv/internal/adapters/hmr"
)

func TestRegistry_SelfAccepting(t *testing.T) {
	r := hmr.NewRegistry()
	r.Register("/comp.js", nil)

	b, ok := r.Boundary("/comp.js")
	require.True(t, ok)
	assert.True(t, b.SelfAccepting)
	assert.Empty(t, b.Deps)
}

func TestRegistry_AcceptedDeps(t *testing.T) {
	r := hmr.NewRegistry()
	r.Register("/parent.js", []string{"/a.js", "/b.js"})

	b, ok := r.Boundary("/parent.js")
	require.True(t, ok)
	assert.False(t, b.SelfAccepting)
	assert.True(t, r.Accepts("/parent.js", "/a.js"))
	assert.True(t, r.Accepts("/parent.js", "/b.js"))
	assert.False(t, r.Accepts("/parent.js", "/c.js"))
}

func TestRegistry_ReRegisterReplaces(t *testing.T) {
	r := hmr.NewRegistry()
	r.Register("/comp.js", []string{"/old.js"})
	r.Register("/comp.js", []string{"/new.js"})

	assert.False(t, r.Accepts("/comp.js", "/old.js"))
	assert.True(t, r.Accepts("/comp.js", "/new.js"))
}

func TestRegistry_UnknownModule(t *testing.T) {
	r := hmr.NewRegistry()

	_, ok := r.Boundary("/missing.js")
	assert.False(t, ok)
	assert.False(t, r.Accepts("/missing.js", "/dep.js"))
}
