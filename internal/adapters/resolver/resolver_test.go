package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/serv/internal/adapters/resolver"
	"go.trai.ch/serv/internal/core/domain"
)

func newResolver(t *testing.T, root string) *resolver.Resolver {
	t.Helper()
	return resolver.New(&domain.Config{Root: root})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestRequestForPackage(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "node_modules", "lib", "package.json"), `{"main":"index.js"}`)
	writeFile(t, filepath.Join(root, "node_modules", "lib", "index.js"), "export {}")
	writeFile(t, filepath.Join(root, "node_modules", "deep", "package.json"), `{"module":"esm/index.js"}`)
	writeFile(t, filepath.Join(root, "node_modules", "deep", "esm", "index.js"), "export {}")
	writeFile(t, filepath.Join(root, "node_modules", "broken", "package.json"), `{"main":"gone.js"}`)
	writeFile(t, filepath.Join(root, "web_modules", "flat.js"), "export default 1")

	r := newResolver(t, root)

	t.Run("package directory resolves to its entry path", func(t *testing.T) {
		request, ok := r.RequestForPackage("lib")
		assert.True(t, ok)
		assert.Equal(t, "/@modules/lib/index.js", request)
	})

	t.Run("nested entry keeps its directory", func(t *testing.T) {
		request, ok := r.RequestForPackage("deep")
		assert.True(t, ok)
		assert.Equal(t, "/@modules/deep/esm/index.js", request)
	})

	t.Run("missing entry file is unresolvable", func(t *testing.T) {
		_, ok := r.RequestForPackage("broken")
		assert.False(t, ok)
	})

	t.Run("flat file module", func(t *testing.T) {
		request, ok := r.RequestForPackage("flat")
		assert.True(t, ok)
		assert.Equal(t, "/@modules/flat", request)
	})

	t.Run("reload client id", func(t *testing.T) {
		request, ok := r.RequestForPackage(domain.ClientPackageID)
		assert.True(t, ok)
		assert.Equal(t, domain.ClientPublicPath, request)
	})

	t.Run("unknown package", func(t *testing.T) {
		_, ok := r.RequestForPackage("ghost")
		assert.False(t, ok)
	})
}

func TestRequestForFile(t *testing.T) {
	root := t.TempDir()
	r := newResolver(t, root)

	t.Run("file under root", func(t *testing.T) {
		got := r.RequestForFile(filepath.Join(root, "src", "app.js"))
		assert.Equal(t, "/src/app.js", got)
	})

	t.Run("file outside root", func(t *testing.T) {
		got := r.RequestForFile("/elsewhere/app.js")
		assert.Equal(t, "/elsewhere/app.js", got)
	})
}

func TestFileForModule(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "web_modules", "flat.js"), "export default 1")
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "package.json"), `{"module":"esm/index.js"}`)
	writeFile(t, filepath.Join(root, "node_modules", "pkg", "esm", "index.js"), "export {}")
	writeFile(t, filepath.Join(root, "node_modules", "legacy", "package.json"), `{"main":"lib/main.js"}`)
	writeFile(t, filepath.Join(root, "node_modules", "legacy", "lib", "main.js"), "module.exports = {}")
	writeFile(t, filepath.Join(root, "node_modules", "bare", "package.json"), `{}`)
	writeFile(t, filepath.Join(root, "node_modules", "bare", "index.js"), "export {}")

	r := newResolver(t, root)

	tests := []struct {
		name string
		id   string
		want string
	}{
		{
			name: "flat file with extension inferred",
			id:   "flat",
			want: filepath.Join(root, "web_modules", "flat.js"),
		},
		{
			name: "module field preferred",
			id:   "pkg",
			want: filepath.Join(root, "node_modules", "pkg", "esm", "index.js"),
		},
		{
			name: "main field fallback",
			id:   "legacy",
			want: filepath.Join(root, "node_modules", "legacy", "lib", "main.js"),
		},
		{
			name: "index fallback",
			id:   "bare",
			want: filepath.Join(root, "node_modules", "bare", "index.js"),
		},
		{
			name: "path into package",
			id:   "pkg/esm/index.js",
			want: filepath.Join(root, "node_modules", "pkg", "esm", "index.js"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.FileForModule(tt.id)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("unknown id", func(t *testing.T) {
		_, ok := r.FileForModule("ghost")
		assert.False(t, ok)
	})
}
