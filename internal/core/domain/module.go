// Package domain contains the core domain models for the module rewriting engine.
package domain

import (
	"path"
	"strings"
)

const (
	// ModulesPrefix is the reserved URL prefix under which bare package
	// imports are served. A bare specifier that cannot be resolved on disk
	// still rewrites to this namespace so the browser request reaches the
	// server instead of failing in the import map.
	ModulesPrefix = "/@modules/"

	// ClientPublicPath is the reserved request path of the hot-reload
	// runtime client. Modules importing it become HMR boundaries.
	ClientPublicPath = "/@hmr"

	// ClientPackageID is the bare specifier under which application code
	// imports the hot-reload runtime client.
	ClientPackageID = "serv/hmr"

	// DefaultExtension is appended to extensionless relative imports.
	// No further extension probing is performed.
	DefaultExtension = ".js"

	// TimestampParam is the cache-busting query parameter appended to
	// importee URLs during a hot-reload refresh.
	TimestampParam = "t"

	// StyleParam marks single-file-component style sub-requests, which are
	// never treated as script modules.
	StyleParam = "type=style"
)

// IsBareSpecifier reports whether spec names a package rather than a path.
func IsBareSpecifier(spec string) bool {
	return spec != "" && !strings.HasPrefix(spec, ".") && !strings.HasPrefix(spec, "/")
}

// IsStyleRequest reports whether the request path denotes a style-block
// sub-request of a single-file component.
func IsStyleRequest(request string) bool {
	_, query, ok := strings.Cut(request, "?")
	return ok && strings.Contains(query, StyleParam)
}

// EnsureExtension appends the default script extension to an extensionless
// path specifier. Query strings must be split off by the caller.
func EnsureExtension(spec string) string {
	if path.Ext(spec) == "" {
		return spec + DefaultExtension
	}
	return spec
}

// ResolveImportee computes the normalized importee path for graph
// bookkeeping: the rewritten specifier path resolved against the importer's
// directory, with any query string discarded.
func ResolveImportee(importer, rewritten string) string {
	importee, _, _ := strings.Cut(rewritten, "?")
	if strings.HasPrefix(importee, "/") {
		return path.Clean(importee)
	}
	importerPath, _, _ := strings.Cut(importer, "?")
	return path.Join(path.Dir(importerPath), importee)
}
