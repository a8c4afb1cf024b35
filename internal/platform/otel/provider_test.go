package otel_test

import (
	"context"
	"testing"

	"github.com/netrey95-hub/skills/internal/platform/otel"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "roll", otel.Config{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestSetup_NoopWhenDisabled(t *testing.T) {
	shutdown, err := otel.Setup(context.Background(), "roll", otel.Config{
		Enabled:  false,
		Endpoint: "http://localhost:4318",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := shutdown(ctx); err != nil {
		t.Fatalf("noop shutdown should not error: %v", err)
	}
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no export happens.
	shutdown, err := otel.Setup(context.Background(), "roll", otel.Config{
		Enabled:  true,
		Endpoint: "http://192.0.2.1:4318",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown error: %v", err)
	}
}

func TestTracerStartsSpan(t *testing.T) {
	_, span := otel.Tracer().Start(context.Background(), "test")
	defer span.End()
	if span == nil {
		t.Fatal("expected span")
	}
}
