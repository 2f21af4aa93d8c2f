// Package cache implements the in-memory file and directory cache
// backing the sync engine.
package cache

import (
	"context"
	"sync"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

// FetchFunc reads a file from the remote store.
type FetchFunc func(ctx context.Context, path string) (*domain.CachedFile, error)

// PersistFunc writes a file to the remote store.
type PersistFunc func(ctx context.Context, file *domain.CachedFile) error

// Store holds cached file records keyed by normalized path and a
// separate set of known directory paths. A path is never present in
// both at once.
type Store struct {
	log ports.Logger

	mu    sync.RWMutex
	files map[string]*domain.CachedFile
	dirs  map[string]struct{}

	flight singleflight.Group
}

// NewStore creates an empty Store.
func NewStore(log ports.Logger) *Store {
	return &Store{
		log:   log,
		files: make(map[string]*domain.CachedFile),
		dirs:  make(map[string]struct{}),
	}
}

// Get returns the cached entry for a path, loaded or not.
func (s *Store) Get(path string) *domain.CachedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.files[domain.NormalizePath(path)]
}

// Has reports whether a file entry exists for the path.
func (s *Store) Has(path string) bool {
	return s.Get(path) != nil
}

// ReadOrFetch returns the cached entry if its content is present,
// otherwise fetches it from the remote store, caches it and returns
// it. Concurrent calls for the same path collapse into one fetch.
// A failed fetch is not cached.
func (s *Store) ReadOrFetch(ctx context.Context, path string, fetch FetchFunc) (*domain.CachedFile, error) {
	path = domain.NormalizePath(path)

	if f := s.Get(path); f != nil && f.Loaded {
		return f, nil
	}

	v, err, _ := s.flight.Do(path, func() (any, error) {
		// Another call may have completed the fetch while we waited.
		if f := s.Get(path); f != nil && f.Loaded {
			return f, nil
		}

		f, err := fetch(ctx, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to fetch file"), "path", path)
		}
		if f == nil {
			return nil, zerr.With(domain.ErrNotFound, "path", path)
		}

		s.Update(f)
		return f, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.CachedFile), nil
}

// ReadOrFetchBatch resolves each path concurrently, bounded by limit,
// and returns the entries that resolved successfully. Per-path
// failures are logged and dropped, never aborting the batch.
func (s *Store) ReadOrFetchBatch(ctx context.Context, paths []string, limit int, fetch FetchFunc) map[string]*domain.CachedFile {
	if limit <= 0 {
		limit = 1
	}

	var mu sync.Mutex
	resolved := make(map[string]*domain.CachedFile, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, p := range paths {
		g.Go(func() error {
			f, err := s.ReadOrFetch(ctx, p, fetch)
			if err != nil {
				s.log.Error(err)
				return nil
			}
			mu.Lock()
			resolved[f.Path] = f
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return resolved
}

// Write updates the cache immediately, then persists the file to the
// remote store. The cache keeps the new content even when the remote
// write fails; the return value carries durability.
func (s *Store) Write(ctx context.Context, file *domain.CachedFile, persist PersistFunc) bool {
	s.Update(file)

	if err := persist(ctx, file); err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "remote write failed"), "path", file.Path))
		return false
	}
	return true
}

// WriteEmpty registers a placeholder entry without touching the
// remote store. An already loaded entry is left alone.
func (s *Store) WriteEmpty(path string, kind domain.FileKind) {
	path = domain.NormalizePath(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.files[path]; ok && f.Loaded {
		return
	}
	s.files[path] = domain.NewPlaceholder(path, kind)
	delete(s.dirs, path)
}

// WriteEmptyBatch registers placeholders for all paths, classifying
// each by extension.
func (s *Store) WriteEmptyBatch(paths []string) {
	for _, p := range paths {
		s.WriteEmpty(p, domain.KindForPath(p))
	}
}

// Update overwrites the entry for file.Path, used when an external
// event delivers fresh content.
func (s *Store) Update(file *domain.CachedFile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[file.Path] = file
	delete(s.dirs, file.Path)
}

// SetDirectory records a path as a known directory.
func (s *Store) SetDirectory(path string) {
	path = domain.NormalizePath(path)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.dirs[path] = struct{}{}
	delete(s.files, path)
}

// HasDirectory reports whether the path is a known directory.
func (s *Store) HasDirectory(path string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dirs[domain.NormalizePath(path)]
	return ok
}

// Delete removes a file entry. Deleting an absent path is a no-op.
func (s *Store) Delete(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, domain.NormalizePath(path))
}

// RemoveDirTree removes a directory and everything cached beneath it,
// returning every removed path.
func (s *Store) RemoveDirTree(path string) []string {
	path = domain.NormalizePath(path)

	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []string
	if _, ok := s.dirs[path]; ok {
		delete(s.dirs, path)
		removed = append(removed, path)
	}
	for p := range s.files {
		if domain.IsDescendant(path, p) {
			delete(s.files, p)
			removed = append(removed, p)
		}
	}
	for p := range s.dirs {
		if domain.IsDescendant(path, p) {
			delete(s.dirs, p)
			removed = append(removed, p)
		}
	}
	return removed
}

// Rename moves a single file entry, preserving its content.
func (s *Store) Rename(oldPath, newPath string) {
	oldPath = domain.NormalizePath(oldPath)
	newPath = domain.NormalizePath(newPath)

	s.mu.Lock()
	defer s.mu.Unlock()

	f, ok := s.files[oldPath]
	if !ok {
		return
	}
	delete(s.files, oldPath)
	moved := *f
	moved.Path = newPath
	s.files[newPath] = &moved
	delete(s.dirs, newPath)
}

// RenameDir moves a directory entry and rewrites the prefix of every
// cached file and directory beneath it. A single-entry rename would
// orphan the whole subtree.
func (s *Store) RenameDir(oldPath, newPath string) {
	oldPath = domain.NormalizePath(oldPath)
	newPath = domain.NormalizePath(newPath)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.dirs[oldPath]; ok {
		delete(s.dirs, oldPath)
		s.dirs[newPath] = struct{}{}
	}

	for p, f := range s.files {
		if !domain.IsDescendant(oldPath, p) {
			continue
		}
		delete(s.files, p)
		moved := *f
		moved.Path = domain.RebasePath(p, oldPath, newPath)
		s.files[moved.Path] = &moved
	}
	for p := range s.dirs {
		if !domain.IsDescendant(oldPath, p) {
			continue
		}
		delete(s.dirs, p)
		s.dirs[domain.RebasePath(p, oldPath, newPath)] = struct{}{}
	}
}

// Files returns a snapshot of all file entries. Ordering is
// unspecified.
func (s *Store) Files() []*domain.CachedFile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	files := make([]*domain.CachedFile, 0, len(s.files))
	for _, f := range s.files {
		files = append(files, f)
	}
	return files
}

// Directories returns a snapshot of all known directory paths.
// Ordering is unspecified.
func (s *Store) Directories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dirs := make([]string, 0, len(s.dirs))
	for d := range s.dirs {
		dirs = append(dirs, d)
	}
	return dirs
}

// Len returns the number of file entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}

// Clear drops all entries. Idempotent.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = make(map[string]*domain.CachedFile)
	s.dirs = make(map[string]struct{})
}
