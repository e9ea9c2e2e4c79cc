package hmr

import (
	"strings"

	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
)

var _ ports.HMRTransformer = (*Transformer)(nil)

// acceptCall is the call site pattern the transformer patches. The reload
// client exports the `hot` handle, so accept registrations always go
// through it.
const acceptCall = "hot.accept("

// Transformer patches hot-reload accept call sites and records the
// resulting boundaries. It is invoked by the rewriter only for modules that
// statically import the reload client.
type Transformer struct {
	registry *Registry
}

// NewTransformer creates a Transformer recording boundaries into registry.
func NewTransformer(registry *Registry) *Transformer {
	return &Transformer{registry: registry}
}

// RewriteAccepts scans the source for accept call sites, rewrites their
// string-literal dependency arguments the same way static imports are
// rewritten, and registers the importer as an HMR boundary. Replacements are
// recorded into the shared edit list so the rewriter splices everything in
// one pass.
func (t *Transformer) RewriteAccepts(source, importer string, edits *domain.EditList) error {
	found := false
	var deps []string

	for i := 0; i+len(acceptCall) <= len(source); {
		idx := strings.Index(source[i:], acceptCall)
		if idx < 0 {
			break
		}
		pos := i + idx
		i = pos + len(acceptCall)
		if pos > 0 && (isIdentByte(source[pos-1]) || source[pos-1] == '.') {
			// Part of a longer identifier chain, not the client handle.
			continue
		}
		found = true
		deps = append(deps, t.rewriteArgs(source, i, importer, edits)...)
	}

	if found {
		t.registry.Register(importer, deps)
	}
	return nil
}

// rewriteArgs patches the leading string-literal dependency arguments of one
// accept call. Literals may appear bare or inside an array; a callback-only
// call yields no deps, which marks the boundary self-accepting.
func (t *Transformer) rewriteArgs(source string, start int, importer string, edits *domain.EditList) []string {
	var deps []string
	i := skipSpace(source, start)
	if i < len(source) && source[i] == '[' {
		i = skipSpace(source, i+1)
	}
	for i < len(source) && (source[i] == '\'' || source[i] == '"') {
		quote := source[i]
		valueStart := i + 1
		end := strings.IndexByte(source[valueStart:], quote)
		if end < 0 {
			return deps
		}
		end += valueStart

		deps = append(deps, t.rewriteDep(source[valueStart:end], importer, valueStart, end, edits))

		i = skipSpace(source, end+1)
		if i < len(source) && source[i] == ',' {
			i = skipSpace(source, i+1)
		}
	}
	return deps
}

// rewriteDep rewrites a single dependency specifier in place and returns its
// normalized path for the boundary registry.
func (t *Transformer) rewriteDep(spec, importer string, start, end int, edits *domain.EditList) string {
	if domain.IsBareSpecifier(spec) {
		// Bare accept deps are served from the module namespace untouched.
		return domain.ModulesPrefix + spec
	}
	pathPart, query, _ := strings.Cut(spec, "?")
	text := domain.EnsureExtension(pathPart)
	if query != "" {
		text += "?" + query
	}
	if text != spec {
		edits.Replace(start, end, text)
	}
	return domain.ResolveImportee(importer, text)
}

func skipSpace(s string, i int) int {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}
	return i
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || (c >= '0' && c <= '9') || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}
