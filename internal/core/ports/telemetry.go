package ports

import "context"

// Tracer creates spans around rewrite passes and intercepted responses.
//
//go:generate mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Tracer interface {
	// Start creates a new span. The returned context carries the span.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span is a single traced operation.
type Span interface {
	// End completes the span.
	End()

	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}
