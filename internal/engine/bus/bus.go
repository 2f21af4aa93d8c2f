// Package bus provides the publish/subscribe channel for normalized
// file-system events.
package bus

import (
	"sync"
	"time"

	"go.trai.ch/mirror/internal/core/domain"
)

// Handler receives published events.
type Handler func(domain.ChangeEvent)

// Bus broadcasts file-system events to all current subscribers.
// There is no buffering or replay: a subscriber registered after a
// publish simply misses it.
type Bus struct {
	mu   sync.RWMutex
	subs map[int]Handler
	next int
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[int]Handler)}
}

// Subscribe registers a handler and returns an unsubscribe function,
// safe to call more than once.
func (b *Bus) Subscribe(h Handler) func() {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = h
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish delivers the event to every current subscriber
// synchronously. Publishing with no subscribers is not an error.
func (b *Bus) Publish(event domain.ChangeEvent) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.subs))
	for _, h := range b.subs {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		h(event)
	}
}

// Count returns the current number of subscribers.
func (b *Bus) Count() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
