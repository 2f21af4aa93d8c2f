package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stdout returns a writer to capture standard output stream.
func (v *Vertex) Stdout() io.Writer {
	return v.vertex.Stdout()
}

// Log records a progress message associated with this vertex.
func (v *Vertex) Log(msg string) {
	_, _ = fmt.Fprintln(v.vertex.Stdout(), msg)
}

// Complete marks the vertex as finished, successfully or with an
// error.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as a cache hit.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
