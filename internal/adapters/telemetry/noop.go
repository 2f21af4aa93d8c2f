// Package telemetry provides telemetry implementations for contexts
// where no recording is wanted.
package telemetry

import (
	"context"

	"go.trai.ch/mirror/internal/core/ports"
)

// Noop is a no-op implementation of ports.Telemetry.
type Noop struct{}

// NewNoop creates a new Noop telemetry.
func NewNoop() *Noop {
	return &Noop{}
}

// Record returns a no-op vertex.
func (Noop) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, NoopVertex{}
}

// Close does nothing.
func (Noop) Close() error { return nil }

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Log does nothing.
func (NoopVertex) Log(string) {}

// Complete does nothing.
func (NoopVertex) Complete(error) {}
