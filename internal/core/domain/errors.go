package domain

import "go.trai.ch/zerr"

var (
	// ErrSessionUnavailable is returned when no remote session is active.
	ErrSessionUnavailable = zerr.New("no active session")

	// ErrNotFound is returned when a source path is absent from the cache
	// and the remote store.
	ErrNotFound = zerr.New("path not found")

	// ErrIndexingFailed is returned when the top-level indexing traversal
	// or setup fails. Per-file failures inside a batch never carry it.
	ErrIndexingFailed = zerr.New("indexing failed")

	// ErrInvalidBatchSize is returned when the configured batch size is
	// not positive.
	ErrInvalidBatchSize = zerr.New("batch size must be positive")
)
