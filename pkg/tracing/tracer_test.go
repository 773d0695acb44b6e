package tracing

import (
	"context"
	"net/http"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestInstallSetsGlobalProviderAndPropagator(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())
	Install(tp)

	ctx, span := otel.Tracer("test").Start(context.Background(), "op")
	defer span.End()
	if !span.SpanContext().IsValid() {
		t.Fatalf("expected a recording span from the installed provider")
	}

	header := http.Header{}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(header))
	if header.Get("traceparent") == "" {
		t.Fatalf("expected traceparent header to be injected")
	}
}

func TestShutdownIgnoresForeignProviders(t *testing.T) {
	if err := Shutdown(context.Background(), noop.NewTracerProvider()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
