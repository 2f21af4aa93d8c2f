package sync

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	"go.trai.ch/mirror/internal/engine/watch"
	"go.trai.ch/zerr"
)

// Index performs the bulk initial ingestion: breadth-first discovery,
// batched population of the cache, derivation of the structural index
// and watcher startup. A call while indexing is in flight is a no-op,
// as is a call after a completed pass unless force is set. Traversal
// and setup failures are fatal to the attempt and leave the status
// Idle for a retry.
func (s *Syncer) Index(ctx context.Context, force bool) error {
	s.mu.Lock()
	switch {
	case s.status == StatusIndexing:
		s.mu.Unlock()
		return nil
	case s.status == StatusIndexed && !force:
		s.mu.Unlock()
		return nil
	}
	s.status = StatusIndexing
	s.mu.Unlock()

	if err := s.runIndex(ctx); err != nil {
		s.mu.Lock()
		s.status = StatusIdle
		s.mu.Unlock()
		return zerr.Wrap(err, domain.ErrIndexingFailed.Error())
	}

	s.mu.Lock()
	s.status = StatusIndexed
	s.mu.Unlock()
	return nil
}

func (s *Syncer) runIndex(ctx context.Context) error {
	if s.fs == nil {
		return domain.ErrSessionUnavailable
	}

	ctx, vertex := s.telemetry.Record(ctx, "index")
	var err error
	defer func() { vertex.Complete(err) }()

	var files []string
	files, err = s.discover(ctx)
	if err != nil {
		return err
	}
	vertex.Log(fmt.Sprintf("discovered %d files", len(files)))

	images, structural, others := categorize(files, s.index.Recognizes)

	// Images are registered as placeholders only; content is fetched
	// lazily on first read.
	for batch := range slices.Chunk(images, s.cfg.BatchSize) {
		s.cache.WriteEmptyBatch(batch)
	}
	vertex.Log(fmt.Sprintf("registered %d image placeholders", len(images)))

	// Structural files are fetched eagerly and indexed per file. A
	// per-file mapping failure is logged and skipped, never aborting
	// the batch.
	for batch := range slices.Chunk(structural, s.cfg.BatchSize) {
		resolved := s.cache.ReadOrFetchBatch(ctx, batch, s.cfg.BatchSize, s.fetchFile)
		for path := range resolved {
			if perr := s.index.ProcessFile(ctx, path, s.cacheRead, s.cacheWrite); perr != nil {
				s.log.Error(perr)
			}
		}
	}
	vertex.Log(fmt.Sprintf("indexed %d structural files", len(structural)))

	for batch := range slices.Chunk(others, s.cfg.BatchSize) {
		s.cache.ReadOrFetchBatch(ctx, batch, s.cfg.BatchSize, s.fetchFile)
	}
	vertex.Log(fmt.Sprintf("cached %d remaining files", len(others)))

	err = s.startWatcher(ctx)
	return err
}

// discover walks the remote tree breadth first from the root,
// recording directories into the directory cache as they are found
// and collecting file paths. ReadDir failures are fatal to the
// indexing attempt.
func (s *Syncer) discover(ctx context.Context) ([]string, error) {
	var files []string

	queue := []string{""}
	for len(queue) > 0 {
		dir := queue[0]
		queue = queue[1:]

		entries, err := s.fs.ReadDir(ctx, dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read remote directory"), "path", dir)
		}

		for _, entry := range entries {
			child := domain.JoinPath(dir, entry.Name)
			if s.excluder.Match(child) {
				continue
			}
			if entry.Kind == ports.EntryDirectory {
				s.cache.SetDirectory(child)
				queue = append(queue, child)
				continue
			}
			files = append(files, child)
		}
	}
	return files, nil
}

// categorize splits discovered files into lazily fetched images,
// structurally indexed sources and everything else.
func categorize(files []string, structural func(string) bool) (images, sources, others []string) {
	for _, f := range files {
		switch {
		case domain.IsImagePath(f):
			images = append(images, f)
		case structural(f):
			sources = append(sources, f)
		default:
			others = append(others, f)
		}
	}
	return images, sources, others
}

// startWatcher replaces any previous watcher with a fresh
// subscription.
func (s *Syncer) startWatcher(ctx context.Context) error {
	if s.stream == nil {
		return domain.ErrSessionUnavailable
	}

	s.mu.Lock()
	if s.watcher != nil {
		s.watcher.Dispose()
	}
	w := watch.New(s.stream, s.cfg.Excludes, s.HandleFileChange, s.log)
	s.watcher = w
	s.mu.Unlock()

	return w.Start(ctx)
}
