package localfs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/zerr"

	"go.trai.ch/mirror/internal/core/ports"
)

var _ ports.ChangeStream = (*Stream)(nil)

// debounceWindow is how long incoming raw notifications are collected
// before being delivered as one batch.
const debounceWindow = 50 * time.Millisecond

// Stream implements ports.ChangeStream using fsnotify. Events are
// debounced into batches; directories named in skip are not watched.
type Stream struct {
	root string
	skip map[string]bool
}

// NewStream creates a Stream for the given root. Directories whose
// name appears in skip are not watched at all.
func NewStream(root string, skip []string) *Stream {
	skipSet := make(map[string]bool, len(skip))
	for _, s := range skip {
		skipSet[s] = true
	}
	return &Stream{root: root, skip: skipSet}
}

// Subscribe starts watching the root recursively and delivers
// batches of raw events until the returned cancel function is called
// or ctx is done.
func (s *Stream) Subscribe(ctx context.Context, fn func([]ports.RawEvent)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create filesystem watcher")
	}

	for dir := range s.watchRecursively(s.root) {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, zerr.With(zerr.Wrap(err, "failed to watch directory"), "path", dir)
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	go s.pump(ctx, watcher, fn)

	return func() {
		cancel()
		watcher.Close()
	}, nil
}

// watchRecursively walks the tree and yields every watchable
// directory.
func (s *Stream) watchRecursively(root string) func(yield func(string) bool) {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				// Skip unreadable directories, keep walking.
				return nil //nolint:nilerr
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && s.skip[d.Name()] {
				return fs.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// pump converts fsnotify events into batched raw events.
func (s *Stream) pump(ctx context.Context, watcher *fsnotify.Watcher, fn func([]ports.RawEvent)) {
	var pending []ports.RawEvent
	var timer *time.Timer
	var due <-chan time.Time

	flush := func() {
		if len(pending) == 0 {
			return
		}
		batch := pending
		pending = nil
		fn(batch)
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				flush()
				return
			}
			raw := s.convert(event)
			if raw == nil {
				continue
			}
			pending = append(pending, *raw)
			if timer == nil {
				timer = time.NewTimer(debounceWindow)
			} else {
				timer.Reset(debounceWindow)
			}
			due = timer.C

			// New directories must be added to the watch set so
			// events underneath them keep flowing.
			if event.Op.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !s.skip[info.Name()] {
					for dir := range s.watchRecursively(event.Name) {
						_ = watcher.Add(dir)
					}
				}
			}

		case <-due:
			due = nil
			flush()

		case _, ok := <-watcher.Errors:
			if !ok {
				flush()
				return
			}
		}
	}
}

// convert maps one fsnotify event to a raw event with a
// root-relative path. Renames surface as removes of the old path;
// the creation of the new path follows as its own event.
func (s *Stream) convert(event fsnotify.Event) *ports.RawEvent {
	rel, err := filepath.Rel(s.root, event.Name)
	if err != nil || rel == "." {
		return nil
	}
	path := filepath.ToSlash(rel)

	switch {
	case event.Op.Has(fsnotify.Create):
		return &ports.RawEvent{Type: "add", Paths: []string{path}}
	case event.Op.Has(fsnotify.Write):
		return &ports.RawEvent{Type: "change", Paths: []string{path}}
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		return &ports.RawEvent{Type: "remove", Paths: []string{path}}
	default:
		return nil
	}
}
