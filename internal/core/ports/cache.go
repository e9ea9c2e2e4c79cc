package ports

// RewriteCache memoizes rewritten response bodies. Entries are keyed by the
// canonical request path; each stores a digest of the raw body it was
// computed from, so a lookup against a body that changed underneath the
// watcher still misses.
type RewriteCache interface {
	// Get returns the rewritten body cached for the request path, provided
	// the cached entry was computed from an identical raw body.
	Get(path string, raw []byte) ([]byte, bool)

	// Put stores the rewritten body for the request path.
	Put(path string, raw, rewritten []byte)

	// Invalidate drops the entry for the request path, if present.
	Invalidate(path string)
}
