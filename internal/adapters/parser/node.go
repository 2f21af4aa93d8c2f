package parser

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/mirror/internal/core/ports"
)

const NodeID graft.ID = "adapter.parser"

func init() {
	graft.Register(graft.Node[ports.Parser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Parser, error) {
			return NewNoop(), nil
		},
	})
}
