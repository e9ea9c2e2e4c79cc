package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"go.trai.ch/serv/internal/core/ports"
)

// SetupProvider installs a tracer provider that reports completed spans
// through the logger. The returned function shuts the provider down.
func SetupProvider(log ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(&logProcessor{log: log}),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

// logProcessor implements sdktrace.SpanProcessor and writes one line per
// completed span. It stands in for a remote exporter during development.
type logProcessor struct {
	log ports.Logger
}

// OnStart is called when a span starts.
func (p *logProcessor) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name and duration once the span completes.
func (p *logProcessor) OnEnd(s sdktrace.ReadOnlySpan) {
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Microsecond)
	p.log.Info(fmt.Sprintf("trace %s %s", s.Name(), elapsed))
}

// Shutdown does nothing; spans are logged as they end.
func (p *logProcessor) Shutdown(_ context.Context) error { return nil }

// ForceFlush does nothing; spans are logged as they end.
func (p *logProcessor) ForceFlush(_ context.Context) error { return nil }
