package domain

import "time"

// EventType is the kind of a published file-system event.
type EventType string

const (
	// EventAdd is a newly created file or directory.
	EventAdd EventType = "add"
	// EventChange is modified content on an existing path.
	EventChange EventType = "change"
	// EventRemove is a deleted file or directory.
	EventRemove EventType = "remove"
	// EventRename is a rename or move; Paths holds [old, new].
	EventRename EventType = "rename"
)

// ChangeEvent is one normalized file-system event published on the
// event bus. Events are immutable once constructed.
type ChangeEvent struct {
	Type      EventType
	Paths     []string
	Timestamp time.Time
}

// NewChangeEvent constructs an event stamped with the current time.
func NewChangeEvent(t EventType, paths ...string) ChangeEvent {
	return ChangeEvent{
		Type:      t,
		Paths:     paths,
		Timestamp: time.Now(),
	}
}
