package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records progress of long-running operations as named vertices.
type Telemetry interface {
	// Record starts a new vertex for the named operation.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded operation.
type Vertex interface {
	// Stdout returns a writer for the operation's output stream.
	Stdout() io.Writer

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)

	// Cached marks the vertex as skipped because its result already existed.
	Cached()
}
