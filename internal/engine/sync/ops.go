package sync

import (
	"context"
	"path"
	"slices"
	"strings"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	"go.trai.ch/zerr"
)

// ReadFile returns the cached file for a path, fetching it from the
// remote store on a miss. Returns nil when the session is unavailable
// or the remote read fails.
func (s *Syncer) ReadFile(ctx context.Context, p string) *domain.CachedFile {
	if !s.available() {
		return nil
	}

	f, err := s.cache.ReadOrFetch(ctx, p, s.fetchFile)
	if err != nil {
		s.log.Error(err)
		return nil
	}
	return f
}

// ReadFiles resolves many paths concurrently and returns the entries
// that resolved. Failed paths are absent from the result.
func (s *Syncer) ReadFiles(ctx context.Context, paths []string) map[string]*domain.CachedFile {
	if !s.available() {
		return map[string]*domain.CachedFile{}
	}
	return s.cache.ReadOrFetchBatch(ctx, paths, s.cfg.BatchSize, s.fetchFile)
}

// WriteFile writes text content through the cache to the remote
// store, formatting it first when a formatter is available and
// re-deriving the structural index for recognized sources. The cache
// reflects the write even when remote persistence fails; the return
// value reports durability.
func (s *Syncer) WriteFile(ctx context.Context, p, text string) bool {
	if !s.available() {
		return false
	}
	norm := domain.NormalizePath(p)

	if s.formatter != nil {
		formatted, err := s.formatter.Format(norm, text)
		if err != nil {
			s.log.Warn("format failed for " + norm + ", writing raw content")
		} else {
			text = formatted
		}
	}

	ok := s.cache.Write(ctx, domain.NewTextFile(norm, text), s.persistFile)

	if s.index.Recognizes(norm) {
		if err := s.index.ProcessFile(ctx, norm, s.cacheRead, s.cacheWrite); err != nil {
			s.log.Error(err)
		}
	}
	return ok
}

// WriteBinaryFile writes raw bytes through the cache to the remote
// store.
func (s *Syncer) WriteBinaryFile(ctx context.Context, p string, data []byte) bool {
	if !s.available() {
		return false
	}
	return s.cache.Write(ctx, domain.NewBinaryFile(p, data), s.persistFile)
}

// ListAllFiles returns a snapshot of all cached file entries.
func (s *Syncer) ListAllFiles() []*domain.CachedFile {
	return s.cache.Files()
}

// ListAllDirectories returns a snapshot of all known directories.
func (s *Syncer) ListAllDirectories() []string {
	return s.cache.Directories()
}

// ReadDir lists a remote directory. Empty on failure.
func (s *Syncer) ReadDir(ctx context.Context, p string) []ports.DirEntry {
	if !s.available() {
		return nil
	}

	entries, err := s.fs.ReadDir(ctx, domain.NormalizePath(p))
	if err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "failed to read directory"), "path", p))
		return nil
	}
	return entries
}

// ListFilesRecursively walks the remote tree under root with an
// explicit worklist, skipping ignored directory names and extensions.
func (s *Syncer) ListFilesRecursively(ctx context.Context, root string, ignoreDirs, ignoreExts []string) []string {
	if !s.available() {
		return nil
	}

	exts := make([]string, len(ignoreExts))
	for i, e := range ignoreExts {
		exts[i] = strings.ToLower(strings.TrimPrefix(e, "."))
	}

	var files []string
	queue := []string{domain.NormalizePath(root)}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := s.fs.ReadDir(ctx, dir)
		if err != nil {
			s.log.Error(zerr.With(zerr.Wrap(err, "failed to read directory"), "path", dir))
			continue
		}

		for _, entry := range entries {
			child := domain.JoinPath(dir, entry.Name)
			if entry.Kind == ports.EntryDirectory {
				if slices.Contains(ignoreDirs, entry.Name) {
					continue
				}
				queue = append(queue, child)
				continue
			}
			ext := strings.ToLower(strings.TrimPrefix(path.Ext(entry.Name), "."))
			if slices.Contains(exts, ext) {
				continue
			}
			files = append(files, child)
		}
	}
	return files
}

// DownloadFiles asks the transport to prepare an archive of the whole
// root and returns how to retrieve it. Nil on failure.
func (s *Syncer) DownloadFiles(ctx context.Context, label string) *ports.DownloadInfo {
	if !s.available() {
		return nil
	}

	info, err := s.fs.Download(ctx, "")
	if err != nil {
		s.log.Error(zerr.Wrap(err, "failed to prepare download"))
		return nil
	}
	if label != "" {
		info.FileName = label + ".zip"
	}
	return info
}

// FileExists reports whether a path exists in the local view or on
// the remote store.
func (s *Syncer) FileExists(ctx context.Context, p string) bool {
	norm := domain.NormalizePath(p)
	if s.cache.Has(norm) || s.cache.HasDirectory(norm) {
		return true
	}
	if !s.available() {
		return false
	}
	if _, err := s.fs.Stat(ctx, norm); err != nil {
		return false
	}
	return true
}

// Copy duplicates a file or directory on the remote store and mirrors
// the result locally. Returns false without touching the transport
// when the source does not exist.
func (s *Syncer) Copy(ctx context.Context, src, dst string, recursive, overwrite bool) bool {
	if !s.available() {
		return false
	}
	normSrc := domain.NormalizePath(src)
	normDst := domain.NormalizePath(dst)

	if !s.FileExists(ctx, normSrc) {
		s.log.Warn("copy source does not exist: " + normSrc)
		return false
	}

	if err := s.fs.Copy(ctx, normSrc, normDst, recursive, overwrite); err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "remote copy failed"), "src", normSrc))
		return false
	}

	if s.cache.HasDirectory(normSrc) {
		s.cache.SetDirectory(normDst)
		return true
	}
	if f := s.cache.Get(normSrc); f != nil && f.Loaded {
		copied := *f
		copied.Path = normDst
		s.cache.Update(&copied)
		if err := s.index.ProcessFile(ctx, normDst, s.cacheRead, s.cacheWrite); err != nil {
			s.log.Error(err)
		}
	}
	return true
}

// Delete removes a path from the remote store and the local view.
// Returns false without touching the transport when the path does not
// exist.
func (s *Syncer) Delete(ctx context.Context, p string, recursive bool) bool {
	if !s.available() {
		return false
	}
	norm := domain.NormalizePath(p)

	if !s.FileExists(ctx, norm) {
		return false
	}

	if err := s.fs.Remove(ctx, norm, recursive); err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "remote remove failed"), "path", norm))
		return false
	}

	if s.cache.HasDirectory(norm) {
		for _, removed := range s.cache.RemoveDirTree(norm) {
			s.index.RemovePath(removed)
		}
		return true
	}
	s.cache.Delete(norm)
	s.index.RemovePath(norm)
	return true
}

// Rename moves a path on the remote store and rewrites the local
// view, including every descendant when the path is a directory.
func (s *Syncer) Rename(ctx context.Context, oldPath, newPath string) bool {
	if !s.available() {
		return false
	}
	normOld := domain.NormalizePath(oldPath)
	normNew := domain.NormalizePath(newPath)

	if err := s.fs.Rename(ctx, normOld, normNew); err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "remote rename failed"), "path", normOld))
		return false
	}

	if s.cache.HasDirectory(normOld) {
		moved := s.cache.Files()
		s.cache.RenameDir(normOld, normNew)
		for _, f := range moved {
			if domain.IsDescendant(normOld, f.Path) {
				s.index.RenamePath(f.Path, domain.RebasePath(f.Path, normOld, normNew))
			}
		}
		return true
	}
	s.cache.Rename(normOld, normNew)
	s.index.RenamePath(normOld, normNew)
	return true
}

// TemplateNode returns the indexed node for an oid, or nil.
func (s *Syncer) TemplateNode(oid string) *domain.TemplateNode {
	return s.index.Node(oid)
}

// CodeBlock returns the source text covered by a node's span, read
// through the cache so the block reflects current content. Empty when
// the oid is unknown or the content is unavailable.
func (s *Syncer) CodeBlock(ctx context.Context, oid string) string {
	node := s.index.Node(oid)
	if node == nil || !s.available() {
		return ""
	}

	f, err := s.cache.ReadOrFetch(ctx, node.Path, s.fetchFile)
	if err != nil {
		s.log.Error(err)
		return ""
	}
	if f.Kind != domain.KindText {
		return ""
	}
	return node.Span.Cut(f.Text)
}

// TemplateNodeChild resolves a child element's synthesized identity
// under a parent node. Nil when the parent is unknown or resolution
// fails.
func (s *Syncer) TemplateNodeChild(ctx context.Context, parentOID string, sel domain.ChildSelector, childIndex int) *domain.ChildInstance {
	if !s.available() {
		return nil
	}

	inst, err := s.index.Child(parentOID, sel, childIndex, func(n domain.TemplateNode) (string, error) {
		f, err := s.cache.ReadOrFetch(ctx, n.Path, s.fetchFile)
		if err != nil {
			return "", err
		}
		if f.Kind != domain.KindText {
			return "", zerr.With(zerr.New("parent file is not text"), "path", n.Path)
		}
		return n.Span.Cut(f.Text), nil
	})
	if err != nil {
		s.log.Error(err)
		return nil
	}
	return inst
}
