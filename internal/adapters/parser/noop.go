// Package parser provides a parser implementation for sessions that
// run without a structural parser attached. Template-node derivation
// is a no-op; file content passes through untouched.
package parser

import (
	"go.trai.ch/zerr"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
)

var _ ports.Parser = (*Noop)(nil)

// Noop implements ports.Parser without deriving any nodes.
type Noop struct{}

// NewNoop creates a new Noop parser.
func NewNoop() *Noop {
	return &Noop{}
}

// ExtractNodes returns no nodes and leaves the text unchanged.
func (Noop) ExtractNodes(_ string, text string) ([]domain.TemplateNode, string, error) {
	return nil, text, nil
}

// ResolveChild fails: without a structural parser there is no child
// identity to synthesize.
func (Noop) ResolveChild(_ string, _ domain.ChildSelector, _ int) (*domain.ChildInstance, error) {
	return nil, zerr.New("no structural parser attached")
}
