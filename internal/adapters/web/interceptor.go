// Package web implements the HTTP surface of the development server: the
// response interceptor that rewrites module imports on the way out, the
// module-namespace file handler, and the server lifecycle.
package web

import (
	"net/http"
	"strconv"
	"strings"

	"go.trai.ch/serv/internal/core/domain"
	"go.trai.ch/serv/internal/core/ports"
	"go.trai.ch/serv/internal/engine/rewrite"
	"go.trai.ch/zerr"
)

// bootstrapScript sets development globals before any module executes. It is
// injected once per HTML document, ahead of the first inline script block.
const bootstrapScript = `<script>window.__DEV__ = true; window.process = { env: { NODE_ENV: 'development' } };</script>
`

// Interceptor rewrites script and HTML response bodies before they reach
// the client, consulting the rewrite cache first.
type Interceptor struct {
	rewriter *rewrite.Rewriter
	cache    ports.RewriteCache
	logger   ports.Logger
	tracer   ports.Tracer
}

// NewInterceptor creates an Interceptor.
func NewInterceptor(rewriter *rewrite.Rewriter, cache ports.RewriteCache, logger ports.Logger, tracer ports.Tracer) *Interceptor {
	return &Interceptor{
		rewriter: rewriter,
		cache:    cache,
		logger:   logger,
		tracer:   tracer,
	}
}

// Wrap returns a middleware that captures the inner handler's response and
// serves the rewritten body in its place. Not-modified responses and
// non-module content pass through untouched.
func (i *Interceptor) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := newRecorder()
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusNotModified {
			copyHeader(w.Header(), rec.header)
			w.WriteHeader(rec.status)
			return
		}

		_, span := i.tracer.Start(r.Context(), "intercept")
		span.SetAttribute("path", r.URL.Path)
		body := rec.body.Bytes()
		contentType := rec.header.Get("Content-Type")

		var out []byte
		switch {
		case isHTMLResponse(r.URL.Path, contentType):
			out = i.interceptHTML(r, body)
		case isScriptResponse(r.URL.Path, contentType):
			out = i.interceptScript(r, body)
		default:
			out = body
		}
		span.End()

		copyHeader(w.Header(), rec.header)
		w.Header().Set("Content-Length", strconv.Itoa(len(out)))
		w.WriteHeader(rec.status)
		_, _ = w.Write(out)
	})
}

// interceptScript rewrites a plain script response. Source maps, the reload
// client's own endpoint, and style-flavored sub-requests are never touched.
func (i *Interceptor) interceptScript(r *http.Request, body []byte) []byte {
	if strings.HasSuffix(r.URL.Path, ".map") || r.URL.Path == domain.ClientPublicPath {
		return body
	}
	if domain.IsStyleRequest(r.URL.RequestURI()) {
		return body
	}

	// The cache-busting token is stripped to obtain the canonical importer
	// key and threaded through so rewritten importees inherit it.
	query := r.URL.Query()
	token := query.Get(domain.TimestampParam)
	query.Del(domain.TimestampParam)
	importer := r.URL.Path
	if enc := query.Encode(); enc != "" {
		importer += "?" + enc
	}

	if cached, ok := i.cache.Get(importer, body); ok {
		return cached
	}

	source := string(body)
	rewritten := i.rewriter.Rewrite(r.Context(), source, importer, token)
	out := []byte(rewritten)
	i.cache.Put(importer, body, out)
	return out
}

// interceptHTML rewrites every inline script block of an HTML entry and
// injects the development bootstrap ahead of the first one, exactly once
// per document regardless of block count.
func (i *Interceptor) interceptHTML(r *http.Request, body []byte) []byte {
	docPath := r.URL.Path
	if strings.HasSuffix(docPath, "/") {
		docPath += "index.html"
	}

	if cached, ok := i.cache.Get(docPath, body); ok {
		return cached
	}

	edits := &domain.EditList{}
	injected := false
	for _, block := range InlineScripts(body) {
		if !injected {
			edits.Replace(block.TagStart, block.TagStart, bootstrapScript)
			injected = true
		}
		rewritten := i.rewriter.Rewrite(r.Context(), block.Code, docPath, "")
		if rewritten != block.Code {
			edits.Replace(block.Start, block.End, rewritten)
		}
	}

	if edits.Empty() {
		i.cache.Put(docPath, body, body)
		return body
	}

	patched, err := edits.Apply(string(body))
	if err != nil {
		i.logger.Error(zerr.With(zerr.Wrap(err, "failed to splice html document"), "path", docPath))
		return body
	}
	out := []byte(patched)
	i.cache.Put(docPath, body, out)
	return out
}

func isHTMLResponse(path, contentType string) bool {
	return strings.HasSuffix(path, ".html") || strings.HasSuffix(path, "/") ||
		strings.Contains(contentType, "text/html")
}

func isScriptResponse(path, contentType string) bool {
	base, _, _ := strings.Cut(path, "?")
	return strings.HasSuffix(base, ".js") || strings.HasSuffix(base, ".mjs") ||
		strings.Contains(contentType, "javascript")
}

func copyHeader(dst, src http.Header) {
	for key, values := range src {
		if key == "Content-Length" {
			continue
		}
		for _, v := range values {
			dst.Add(key, v)
		}
	}
}

