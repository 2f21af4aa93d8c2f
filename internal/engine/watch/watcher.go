// Package watch subscribes to the remote change-notification stream
// and forwards filtered event batches to the sync engine.
package watch

import (
	"context"
	"sync"

	"go.trai.ch/mirror/internal/core/ports"
	"go.trai.ch/zerr"
)

// Watcher owns one subscription to a remote change stream. Its
// lifecycle is independent of the orchestrator: it may be disposed
// and recreated whenever watching is restarted.
type Watcher struct {
	stream   ports.ChangeStream
	excluder Excluder
	onBatch  func(events []ports.RawEvent)
	log      ports.Logger

	mu          sync.Mutex
	unsubscribe func()
}

// New creates a Watcher delivering filtered batches to onBatch.
func New(stream ports.ChangeStream, excludes []string, onBatch func([]ports.RawEvent), log ports.Logger) *Watcher {
	return &Watcher{
		stream:   stream,
		excluder: NewExcluder(excludes),
		onBatch:  onBatch,
		log:      log,
	}
}

// Start subscribes to the remote stream. Events for excluded subtrees
// are filtered here and never reach the callback.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unsubscribe != nil {
		return nil
	}

	unsubscribe, err := w.stream.Subscribe(ctx, func(events []ports.RawEvent) {
		filtered := w.filter(events)
		if len(filtered) > 0 {
			w.onBatch(filtered)
		}
	})
	if err != nil {
		return zerr.Wrap(err, "failed to subscribe to change stream")
	}

	w.unsubscribe = unsubscribe
	return nil
}

// filter drops events whose paths all fall inside excluded subtrees.
// Batch order is preserved as delivered by the transport.
func (w *Watcher) filter(events []ports.RawEvent) []ports.RawEvent {
	filtered := events[:0:0]
	for _, e := range events {
		excluded := true
		for _, p := range e.Paths {
			if !w.excluder.Match(p) {
				excluded = false
				break
			}
		}
		if !excluded {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// Dispose unsubscribes from the stream. Safe to call more than once
// and before Start.
func (w *Watcher) Dispose() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.unsubscribe != nil {
		w.unsubscribe()
		w.unsubscribe = nil
	}
}
