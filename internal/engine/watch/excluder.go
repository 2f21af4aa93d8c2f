package watch

import (
	"path"
	"strings"

	"go.trai.ch/mirror/internal/core/domain"
)

// Excluder matches paths against a set of exclude patterns. A pattern
// matches when any segment of the normalized path matches it, so
// "node_modules" excludes the whole subtree under any node_modules
// directory.
type Excluder struct {
	patterns []string
}

// NewExcluder creates an Excluder for the given glob patterns.
func NewExcluder(patterns []string) Excluder {
	return Excluder{patterns: patterns}
}

// Match reports whether the path falls inside an excluded subtree.
func (e Excluder) Match(p string) bool {
	p = domain.NormalizePath(p)
	if p == "" {
		return false
	}
	for _, segment := range strings.Split(p, "/") {
		for _, pattern := range e.patterns {
			if ok, _ := path.Match(pattern, segment); ok {
				return true
			}
		}
	}
	return false
}
