package rewrite

import (
	"net/url"
	"strings"

	"go.trai.ch/serv/internal/core/domain"
)

// classified is the outcome of classifying a single import specifier.
type classified struct {
	// text is the rewritten specifier, possibly identical to the input.
	text string
	// importee is the normalized path recorded in the dependency graph.
	importee string
	// importsClient is set when the specifier resolves to the reload
	// client, which makes the importer an HMR transform candidate.
	importsClient bool
}

// classify decides whether the specifier is a bare package reference or a
// relative/absolute path and computes its rewritten form. It never fails:
// unresolvable bare specifiers degrade to the reserved module namespace.
func (r *Rewriter) classify(spec, importer, refreshToken string) classified {
	if domain.IsBareSpecifier(spec) {
		request, ok := r.resolver.RequestForPackage(spec)
		if !ok {
			request = domain.ModulesPrefix + spec
		}
		return classified{
			text:          request,
			importee:      domain.ResolveImportee(importer, request),
			importsClient: request == domain.ClientPublicPath && !domain.IsStyleRequest(importer),
		}
	}

	pathPart, query, _ := strings.Cut(spec, "?")
	pathPart = domain.EnsureExtension(pathPart)
	if refreshToken != "" {
		query = withRefreshToken(query, refreshToken)
	}
	text := pathPart
	if query != "" {
		text += "?" + query
	}
	return classified{
		text:     text,
		importee: domain.ResolveImportee(importer, text),
	}
}

// withRefreshToken sets the cache-busting parameter in the query string,
// replacing any previous token rather than duplicating it.
func withRefreshToken(query, token string) string {
	values, err := url.ParseQuery(query)
	if err != nil {
		values = url.Values{}
	}
	values.Set(domain.TimestampParam, token)
	return values.Encode()
}
