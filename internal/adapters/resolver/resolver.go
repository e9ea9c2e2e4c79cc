// Package resolver implements specifier resolution against the project
// root: bare package ids map into the reserved module namespace backed by
// web_modules or node_modules, and absolute file paths map back to the
// request paths the server serves them under.
package resolver

import (
	"encoding/json"
	"os"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

var _ ports.Resolver = (*Resolver)(nil)

// moduleDirs are probed in order when resolving a bare package id.
var moduleDirs = []string{"web_modules", "node_modules"}

// Resolver resolves specifiers relative to the configured project root.
// The root is read per call so command-line overrides apply.
type Resolver struct {
	cfg *domain.Config
}

// New creates a Resolver for the given configuration.
func New(cfg *domain.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

func (r *Resolver) root() string {
	return r.cfg.Root
}

// RequestForPackage resolves a bare package id to a servable request path.
// The reload client id resolves to its reserved endpoint. A package
// directory resolves to its manifest entry's full path inside the module
// namespace, not the bare id: the browser resolves the package's own
// relative imports against the request URL, so only a path ending in the
// entry file keeps them inside the package directory. Flat single-file
// modules resolve to the bare id.
func (r *Resolver) RequestForPackage(id string) (string, bool) {
	if id == domain.ClientPackageID {
		return domain.ClientPublicPath, true
	}
	for _, dir := range moduleDirs {
		base := filepath.Join(r.root(), dir, filepath.FromSlash(id))
		if entry, ok := packageEntry(base); ok {
			return domain.ModulesPrefix + id + "/" + entry, true
		}
		if exists(base) || exists(base+domain.DefaultExtension) {
			return domain.ModulesPrefix + id, true
		}
	}
	return "", false
}

// RequestForFile converts an absolute file path under the root to its
// server-visible request path.
func (r *Resolver) RequestForFile(path string) string {
	rel, err := filepath.Rel(r.root(), path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(path)
	}
	return "/" + filepath.ToSlash(rel)
}

// FileForModule locates the file served for a module-namespace id: the
// package entry point when the id names a bare package, or the file itself
// when the id carries a path into the package.
func (r *Resolver) FileForModule(id string) (string, bool) {
	for _, dir := range moduleDirs {
		base := filepath.Join(r.root(), dir, filepath.FromSlash(id))
		if info, err := os.Stat(base); err == nil && !info.IsDir() {
			return base, true
		}
		if file := base + domain.DefaultExtension; exists(file) {
			return file, true
		}
		if entry, ok := packageEntry(base); ok {
			return filepath.Join(base, filepath.FromSlash(entry)), true
		}
	}
	return "", false
}

// packageEntry reads the package manifest and returns its module entry as a
// slash-separated path relative to the package directory.
func packageEntry(pkgDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(pkgDir, "package.json"))
	if err != nil {
		return "", false
	}
	var manifest struct {
		Module string `json:"module"`
		Main   string `json:"main"`
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return "", false
	}
	entry := manifest.Module
	if entry == "" {
		entry = manifest.Main
	}
	if entry == "" {
		entry = "index.js"
	}
	entry = path.Clean(filepath.ToSlash(entry))
	if exists(filepath.Join(pkgDir, filepath.FromSlash(entry))) {
		return entry, true
	}
	return "", false
}

func exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
