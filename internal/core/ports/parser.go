package ports

import "go.trai.ch/mirror/internal/core/domain"

// Parser defines the interface to the source-to-structure parser that
// extracts and locates template nodes from raw file text.
//
//go:generate go run go.uber.org/mock/mockgen -source=parser.go -destination=mocks/mock_parser.go -package=mocks
type Parser interface {
	// ExtractNodes derives the set of template nodes for a file. The
	// returned nodes carry their oid and located span. The returned
	// text is the parser's normalized form of the input; it differs
	// from the input when the parser assigned fresh oids, and the
	// caller is expected to persist it.
	ExtractNodes(path, text string) ([]domain.TemplateNode, string, error)

	// ResolveChild resolves a child element's synthesized identity given
	// the parent's located code block.
	ResolveChild(codeBlock string, child domain.ChildSelector, index int) (*domain.ChildInstance, error)
}

// Formatter defines the interface for content pretty-printing.
type Formatter interface {
	// Format returns the formatted form of text for the given path.
	Format(path, text string) (string, error)
}
