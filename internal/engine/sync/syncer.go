// Package sync implements the top-level synchronization engine
// coordinating the file cache, the structural index, the change
// watcher and the event bus for one remote session.
package sync

import (
	"context"
	"sync"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	"go.trai.ch/mirror/internal/engine/bus"
	"go.trai.ch/mirror/internal/engine/cache"
	"go.trai.ch/mirror/internal/engine/index"
	"go.trai.ch/mirror/internal/engine/watch"
)

// Status is the indexing state of a Syncer.
type Status string

const (
	// StatusIdle indicates no indexing has completed yet.
	StatusIdle Status = "Idle"
	// StatusIndexing indicates a bulk indexing pass is in flight.
	StatusIndexing Status = "Indexing"
	// StatusIndexed indicates the local view mirrors the remote store.
	StatusIndexed Status = "Indexed"
)

// Config tunes a Syncer.
type Config struct {
	// BatchSize bounds concurrent remote requests during bulk
	// operations. Must be positive.
	BatchSize int
	// Excludes are subtree patterns invisible to indexing and watching.
	Excludes []string
	// StructuralExtensions are the source extensions indexed for
	// template nodes.
	StructuralExtensions []string
}

// DefaultConfig returns the standard engine tuning.
func DefaultConfig() Config {
	return Config{
		BatchSize:            50,
		Excludes:             []string{"node_modules", ".git", ".next", "dist", "build"},
		StructuralExtensions: domain.DefaultStructuralExtensions(),
	}
}

// Syncer maintains a consistent local view of a session-scoped remote
// filesystem. It exclusively owns its cache and index; both live for
// one session and are discarded on Clear.
type Syncer struct {
	fs        ports.RemoteFS
	stream    ports.ChangeStream
	formatter ports.Formatter
	log       ports.Logger
	telemetry ports.Telemetry
	cfg       Config

	cache    *cache.Store
	index    *index.Index
	bus      *bus.Bus
	excluder watch.Excluder

	mu      sync.Mutex
	status  Status
	watcher *watch.Watcher
}

// NewSyncer creates a Syncer for one active session.
func NewSyncer(
	fs ports.RemoteFS,
	stream ports.ChangeStream,
	parser ports.Parser,
	formatter ports.Formatter,
	log ports.Logger,
	telemetry ports.Telemetry,
	cfg Config,
) (*Syncer, error) {
	if cfg.BatchSize <= 0 {
		return nil, domain.ErrInvalidBatchSize
	}
	if len(cfg.StructuralExtensions) == 0 {
		cfg.StructuralExtensions = domain.DefaultStructuralExtensions()
	}

	return &Syncer{
		fs:        fs,
		stream:    stream,
		formatter: formatter,
		log:       log,
		telemetry: telemetry,
		cfg:       cfg,
		cache:     cache.NewStore(log),
		index:     index.New(parser, log, cfg.StructuralExtensions),
		bus:       bus.New(),
		excluder:  watch.NewExcluder(cfg.Excludes),
	}, nil
}

// Bus returns the event bus downstream consumers subscribe to.
func (s *Syncer) Bus() *bus.Bus {
	return s.bus
}

// Status returns the current indexing state.
func (s *Syncer) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status == "" {
		return StatusIdle
	}
	return s.status
}

// IsIndexing reports whether a bulk indexing pass is in flight.
func (s *Syncer) IsIndexing() bool {
	return s.Status() == StatusIndexing
}

// available reports whether a remote session is attached. Public
// operations short-circuit with false/nil/empty results when it is
// not, rather than raising.
func (s *Syncer) available() bool {
	if s.fs == nil {
		s.log.Warn(domain.ErrSessionUnavailable.Error())
		return false
	}
	return true
}

// fetchFile reads a remote file according to its extension kind.
func (s *Syncer) fetchFile(ctx context.Context, path string) (*domain.CachedFile, error) {
	if domain.KindForPath(path) == domain.KindBinary {
		data, err := s.fs.ReadFile(ctx, path)
		if err != nil {
			return nil, err
		}
		return domain.NewBinaryFile(path, data), nil
	}

	text, err := s.fs.ReadTextFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return domain.NewTextFile(path, text), nil
}

// persistFile writes a cached file back to the remote store.
func (s *Syncer) persistFile(ctx context.Context, f *domain.CachedFile) error {
	if f.Kind == domain.KindBinary {
		return s.fs.WriteFile(ctx, f.Path, f.Data)
	}
	return s.fs.WriteTextFile(ctx, f.Path, f.Text)
}

// cacheRead adapts the cache to the index's read contract.
func (s *Syncer) cacheRead(ctx context.Context, path string) (*domain.CachedFile, error) {
	return s.cache.ReadOrFetch(ctx, path, s.fetchFile)
}

// cacheWrite adapts the cache to the index's write contract, used
// when the parser normalized file content.
func (s *Syncer) cacheWrite(ctx context.Context, path, text string) bool {
	return s.cache.Write(ctx, domain.NewTextFile(path, text), s.persistFile)
}

// Clear tears down session state: the watcher is disposed and all
// cached entries and index nodes are dropped. Idempotent.
func (s *Syncer) Clear() {
	s.mu.Lock()
	if s.watcher != nil {
		s.watcher.Dispose()
		s.watcher = nil
	}
	s.status = StatusIdle
	s.mu.Unlock()

	s.cache.Clear()
	s.index.Clear()
}
