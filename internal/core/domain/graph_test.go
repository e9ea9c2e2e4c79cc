package domain_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.trai.ch/serv/internal/core/domain"
)

func set(members ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(members))
	for _, m := range members {
		out[m] = struct{}{}
	}
	return out
}

func TestModuleGraph_SetImportees(t *testing.T) {
	g := domain.NewModuleGraph()

	g.SetImportees("/app.js", set("/a.js", "/b.js"))

	assert.Equal(t, set("/a.js", "/b.js"), g.Importees("/app.js"))
	assert.Equal(t, set("/app.js"), g.Importers("/a.js"))
	assert.Equal(t, set("/app.js"), g.Importers("/b.js"))
}

func TestModuleGraph_SharedImportee(t *testing.T) {
	g := domain.NewModuleGraph()

	g.SetImportees("/app.js", set("/shared.js"))
	g.SetImportees("/other.js", set("/shared.js"))

	assert.Equal(t, set("/app.js", "/other.js"), g.Importers("/shared.js"))
}

func TestModuleGraph_SetImporteesPrunesStaleEdges(t *testing.T) {
	g := domain.NewModuleGraph()

	g.SetImportees("/app.js", set("/old.js", "/kept.js"))
	g.SetImportees("/app.js", set("/kept.js", "/new.js"))

	assert.Empty(t, g.Importers("/old.js"))
	assert.Equal(t, set("/app.js"), g.Importers("/kept.js"))
	assert.Equal(t, set("/app.js"), g.Importers("/new.js"))
	assert.Equal(t, set("/kept.js", "/new.js"), g.Importees("/app.js"))
}

func TestModuleGraph_ConcurrentAccess(t *testing.T) {
	g := domain.NewModuleGraph()

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			importer := fmt.Sprintf("/mod%d.js", i)
			for range 50 {
				g.SetImportees(importer, set("/shared.js"))
				g.Importers("/shared.js")
				g.SetImportees(importer, set("/other.js"))
				g.Importees(importer)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, g.Importers("/shared.js"))
	for i := range 8 {
		assert.Equal(t, set("/other.js"), g.Importees(fmt.Sprintf("/mod%d.js", i)))
	}
	assert.Len(t, g.Importers("/other.js"), 8)
}

func TestModuleGraph_RemoveImporter(t *testing.T) {
	g := domain.NewModuleGraph()

	g.SetImportees("/app.js", set("/old.js", "/kept.js"))
	g.RemoveImporter("/old.js", "/app.js")
	g.SetImportees("/app.js", set("/kept.js"))

	assert.Empty(t, g.Importers("/old.js"))
	assert.Equal(t, set("/app.js"), g.Importers("/kept.js"))
	assert.Equal(t, set("/kept.js"), g.Importees("/app.js"))
}

func TestModuleGraph_UnknownModule(t *testing.T) {
	g := domain.NewModuleGraph()

	assert.Empty(t, g.Importees("/missing.js"))
	assert.Empty(t, g.Importers("/missing.js"))
}

func TestModuleGraph_ReturnedSetsAreCopies(t *testing.T) {
	g := domain.NewModuleGraph()
	g.SetImportees("/app.js", set("/a.js"))

	got := g.Importees("/app.js")
	got["/injected.js"] = struct{}{}

	assert.Equal(t, set("/a.js"), g.Importees("/app.js"))
}
