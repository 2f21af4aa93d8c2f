package ports

import "context"

// RawEvent is one change notification as delivered by the transport.
// Type is add, change or remove; a two-path add/change is the
// transport's convention for a rename or move ([old, new]).
type RawEvent struct {
	Type  string
	Paths []string
}

// ChangeStream defines the interface to the remote change-notification
// subscription. Delivery is best effort: events may arrive out of
// order or not at all.
//
//go:generate go run go.uber.org/mock/mockgen -source=stream.go -destination=mocks/mock_stream.go -package=mocks
type ChangeStream interface {
	// Subscribe starts delivering event batches to fn and returns an
	// unsubscribe function. The unsubscribe function is safe to call
	// more than once.
	Subscribe(ctx context.Context, fn func(events []RawEvent)) (func(), error)
}
