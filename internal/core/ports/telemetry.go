package ports

import "context"

// Telemetry is the entry point for recording units of work.
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Log records a progress message associated with this vertex.
	Log(msg string)
	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying the given vertex.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, or nil.
func VertexFromContext(ctx context.Context) Vertex {
	v, _ := ctx.Value(vertexKey{}).(Vertex)
	return v
}
