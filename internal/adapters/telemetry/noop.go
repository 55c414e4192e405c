package telemetry

import (
	"context"
	"io"

	"go.rok.dev/rok/internal/core/ports"
)

// NoOp is a telemetry implementation that discards everything.
type NoOp struct{}

// NewNoOp creates a NoOp telemetry recorder.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards all output.
func (n *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, noopVertex{}
}

// Close does nothing.
func (n *NoOp) Close() error {
	return nil
}

type noopVertex struct{}

func (noopVertex) Stdout() io.Writer { return io.Discard }
func (noopVertex) Complete(error)    {}
func (noopVertex) Cached()           {}
