package web

import (
	"bytes"
	"net/http"
)

var _ http.ResponseWriter = (*responseBuffer)(nil)

// responseBuffer captures the inner handler's response so the interceptor
// can rewrite the body before anything reaches the wire.
type responseBuffer struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newRecorder() *responseBuffer {
	return &responseBuffer{
		header: make(http.Header),
		status: http.StatusOK,
	}
}

func (b *responseBuffer) Header() http.Header {
	return b.header
}

func (b *responseBuffer) WriteHeader(status int) {
	b.status = status
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	return b.body.Write(p)
}
