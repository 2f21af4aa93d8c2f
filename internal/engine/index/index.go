// Package index maintains the mapping from structural identifiers to
// located spans inside cached source files.
package index

import (
	"context"
	"path"
	"strings"
	"sync"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReadFunc reads the current content for a path.
type ReadFunc func(ctx context.Context, path string) (*domain.CachedFile, error)

// WriteFunc persists parser-normalized content for a path.
type WriteFunc func(ctx context.Context, path, text string) bool

// Index maps oids to template nodes. All nodes for a file are
// replaced atomically when the file is processed; readers never see a
// partially updated file.
type Index struct {
	parser ports.Parser
	log    ports.Logger
	exts   map[string]bool

	mu     sync.RWMutex
	nodes  map[string]domain.TemplateNode
	byPath map[string][]string
}

// New creates an empty Index recognizing the given structural file
// extensions.
func New(parser ports.Parser, log ports.Logger, extensions []string) *Index {
	exts := make(map[string]bool, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = true
	}
	return &Index{
		parser: parser,
		log:    log,
		exts:   exts,
		nodes:  make(map[string]domain.TemplateNode),
		byPath: make(map[string][]string),
	}
}

// Recognizes reports whether the path's extension is in the
// structural-file set.
func (x *Index) Recognizes(p string) bool {
	return x.exts[strings.ToLower(path.Ext(p))]
}

// ProcessFile re-derives the template nodes for a path from its
// current content. Non-structural extensions are a no-op. When the
// parser normalized the text (assigning fresh oids), the new content
// is persisted through write.
func (x *Index) ProcessFile(ctx context.Context, p string, read ReadFunc, write WriteFunc) error {
	p = domain.NormalizePath(p)
	if !x.Recognizes(p) {
		return nil
	}

	f, err := read(ctx, p)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read file for mapping"), "path", p)
	}
	if f == nil || f.Kind != domain.KindText || !f.Loaded {
		return nil
	}

	nodes, normalized, err := x.parser.ExtractNodes(p, f.Text)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to extract template nodes"), "path", p)
	}

	if normalized != f.Text {
		if !write(ctx, p, normalized) {
			x.log.Warn("failed to persist normalized content for " + p)
		}
	}

	x.replace(p, nodes)
	return nil
}

// replace swaps all nodes for a path in one critical section.
func (x *Index) replace(p string, nodes []domain.TemplateNode) {
	x.mu.Lock()
	defer x.mu.Unlock()

	for _, oid := range x.byPath[p] {
		delete(x.nodes, oid)
	}

	oids := make([]string, 0, len(nodes))
	for _, n := range nodes {
		n.Path = p
		x.nodes[n.OID] = n
		oids = append(oids, n.OID)
	}
	x.byPath[p] = oids
}

// Node returns the template node for an oid, or nil if unknown.
func (x *Index) Node(oid string) *domain.TemplateNode {
	x.mu.RLock()
	defer x.mu.RUnlock()

	n, ok := x.nodes[oid]
	if !ok {
		return nil
	}
	return &n
}

// Child resolves a child element's synthesized identity. The parent's
// code block is supplied by block, which derives it from the current
// cache content.
func (x *Index) Child(parentOID string, sel domain.ChildSelector, childIndex int, block func(domain.TemplateNode) (string, error)) (*domain.ChildInstance, error) {
	parent := x.Node(parentOID)
	if parent == nil {
		return nil, zerr.With(domain.ErrNotFound, "oid", parentOID)
	}

	code, err := block(*parent)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to derive parent code block")
	}

	inst, err := x.parser.ResolveChild(code, sel, childIndex)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve child"), "oid", parentOID)
	}
	return inst, nil
}

// RemovePath drops all nodes owned by a path.
func (x *Index) RemovePath(p string) {
	p = domain.NormalizePath(p)

	x.mu.Lock()
	defer x.mu.Unlock()
	for _, oid := range x.byPath[p] {
		delete(x.nodes, oid)
	}
	delete(x.byPath, p)
}

// RenamePath moves ownership of a path's nodes to a new path.
func (x *Index) RenamePath(oldPath, newPath string) {
	oldPath = domain.NormalizePath(oldPath)
	newPath = domain.NormalizePath(newPath)

	x.mu.Lock()
	defer x.mu.Unlock()

	oids := x.byPath[oldPath]
	delete(x.byPath, oldPath)
	for _, oid := range oids {
		n := x.nodes[oid]
		n.Path = newPath
		x.nodes[oid] = n
	}
	x.byPath[newPath] = oids
}

// Len returns the number of indexed nodes.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.nodes)
}

// Clear drops all nodes.
func (x *Index) Clear() {
	x.mu.Lock()
	defer x.mu.Unlock()
	x.nodes = make(map[string]domain.TemplateNode)
	x.byPath = make(map[string][]string)
}
