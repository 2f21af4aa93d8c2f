package sync

import (
	"context"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	"go.trai.ch/zerr"
)

// HandleFileChange reconciles a batch of externally originated change
// notifications against the cache and the index. Paths within one
// batch are processed in delivery order; failures degrade the
// affected path only.
func (s *Syncer) HandleFileChange(events []ports.RawEvent) {
	ctx := context.Background()
	for _, e := range events {
		switch e.Type {
		case "remove":
			s.handleRemove(e.Paths)
		case "add", "change":
			s.handleAddOrChange(ctx, e)
		default:
			s.log.Warn("unknown change event type: " + e.Type)
		}
	}
}

func (s *Syncer) handleRemove(paths []string) {
	for _, p := range paths {
		if s.excluder.Match(p) {
			continue
		}
		norm := domain.NormalizePath(p)

		if s.cache.HasDirectory(norm) {
			for _, removed := range s.cache.RemoveDirTree(norm) {
				s.index.RemovePath(removed)
				s.bus.Publish(domain.NewChangeEvent(domain.EventRemove, removed))
			}
			continue
		}

		// Deleting an uncached path is a no-op, but the event is still
		// surfaced.
		s.cache.Delete(norm)
		s.index.RemovePath(norm)
		s.bus.Publish(domain.NewChangeEvent(domain.EventRemove, p))
	}
}

// handleAddOrChange processes add and change notifications. A
// two-path event is the transport's rename convention: it is handled
// as a rename first, then each path is additionally processed as an
// add/change. Downstream consumers rely on receiving both
// notifications.
func (s *Syncer) handleAddOrChange(ctx context.Context, e ports.RawEvent) {
	if len(e.Paths) == 2 {
		s.handleRenamePair(ctx, e.Paths[0], e.Paths[1])
	}

	eventType := domain.EventAdd
	if e.Type == "change" {
		eventType = domain.EventChange
	}

	for _, p := range e.Paths {
		if s.excluder.Match(p) {
			continue
		}

		info, err := s.fs.Stat(ctx, p)
		if err != nil {
			s.log.Error(zerr.With(zerr.Wrap(err, "failed to stat changed path"), "path", p))
			continue
		}
		if info.Kind == ports.EntryDirectory {
			s.cache.SetDirectory(p)
			continue
		}

		norm := domain.NormalizePath(p)
		s.refreshFile(ctx, norm, s.cache.Get(norm))
		s.bus.Publish(domain.NewChangeEvent(eventType, p))
	}
}

// refreshFile brings one file's cache entry and index nodes in line
// with the remote content. Images that were never fetched stay lazy:
// only a placeholder is registered. For text files the index is
// re-derived before the new content is committed, so readers of the
// index never observe nodes for content the cache does not yet hold.
func (s *Syncer) refreshFile(ctx context.Context, path string, cached *domain.CachedFile) {
	if domain.IsImagePath(path) {
		if cached == nil || !cached.Loaded {
			s.cache.WriteEmpty(path, domain.KindForPath(path))
			return
		}
		fresh, err := s.fetchFile(ctx, path)
		if err != nil {
			s.log.Error(zerr.With(zerr.Wrap(err, "failed to refetch image"), "path", path))
			return
		}
		s.cache.Update(fresh)
		return
	}

	fresh, err := s.fetchFile(ctx, path)
	if err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "failed to refetch file"), "path", path))
		return
	}
	if !hasContent(fresh) {
		// An empty read and a failed read are treated alike: the cache
		// keeps its previous entry, stale rather than corrupted.
		s.log.Warn("no content for changed file " + path)
		return
	}

	if cached != nil && cached.Loaded && cached.Fingerprint == fresh.Fingerprint {
		return
	}

	if fresh.Kind == domain.KindText {
		read := func(context.Context, string) (*domain.CachedFile, error) { return fresh, nil }
		write := func(ctx context.Context, p, text string) bool {
			fresh = domain.NewTextFile(p, text)
			return s.cache.Write(ctx, fresh, s.persistFile)
		}
		if perr := s.index.ProcessFile(ctx, path, read, write); perr != nil {
			s.log.Error(perr)
		}
	}
	s.cache.Update(fresh)
}

// handleRenamePair applies a two-path rename or move. The published
// event carries both paths exactly as delivered.
func (s *Syncer) handleRenamePair(ctx context.Context, oldPath, newPath string) {
	normOld := domain.NormalizePath(oldPath)
	normNew := domain.NormalizePath(newPath)

	info, err := s.fs.Stat(ctx, newPath)
	if err != nil {
		s.log.Error(zerr.With(zerr.Wrap(err, "failed to stat rename target"), "path", newPath))
	}

	if err == nil && info.Kind == ports.EntryDirectory {
		moved := s.cache.Files()
		s.cache.RenameDir(normOld, normNew)
		for _, f := range moved {
			if domain.IsDescendant(normOld, f.Path) {
				s.index.RenamePath(f.Path, domain.RebasePath(f.Path, normOld, normNew))
			}
		}
	} else {
		s.cache.Rename(normOld, normNew)
		s.index.RenamePath(normOld, normNew)
	}

	s.bus.Publish(domain.NewChangeEvent(domain.EventRename, oldPath, newPath))
}

func hasContent(f *domain.CachedFile) bool {
	if f == nil || !f.Loaded {
		return false
	}
	if f.Kind == domain.KindBinary {
		return len(f.Data) > 0
	}
	return f.Text != ""
}
