// Package app implements the application layer for mirror: one
// process-wide session whose lifetime owns the sync engine.
package app

import (
	"context"
	"sync"

	"go.trai.ch/zerr"

	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
	syncengine "go.trai.ch/mirror/internal/engine/sync"
)

// App owns the active session. Connecting builds a fresh sync engine
// against a remote filesystem and indexes it; disconnecting discards
// the engine together with everything it cached.
type App struct {
	log       ports.Logger
	telemetry ports.Telemetry
	parser    ports.Parser
	formatter ports.Formatter
	settings  domain.Settings

	mu     sync.Mutex
	syncer *syncengine.Syncer
}

// New creates a new App instance. formatter may be nil.
func New(
	log ports.Logger,
	telemetry ports.Telemetry,
	parser ports.Parser,
	formatter ports.Formatter,
	settings domain.Settings,
) *App {
	return &App{
		log:       log,
		telemetry: telemetry,
		parser:    parser,
		formatter: formatter,
		settings:  settings,
	}
}

// Connect opens a session against the given transport and runs the
// initial indexing pass. An existing session is torn down first.
func (a *App) Connect(ctx context.Context, fs ports.RemoteFS, stream ports.ChangeStream) error {
	a.Disconnect()

	cfg := syncengine.Config{
		BatchSize:            a.settings.BatchSize,
		Excludes:             a.settings.Excludes,
		StructuralExtensions: a.settings.StructuralExtensions,
	}
	syncer, err := syncengine.NewSyncer(fs, stream, a.parser, a.formatter, a.log, a.telemetry, cfg)
	if err != nil {
		return zerr.Wrap(err, "failed to create sync engine")
	}

	if err := syncer.Index(ctx, false); err != nil {
		return zerr.Wrap(err, "initial indexing failed")
	}

	a.mu.Lock()
	a.syncer = syncer
	a.mu.Unlock()
	return nil
}

// Disconnect tears down the active session, if any. Idempotent.
func (a *App) Disconnect() {
	a.mu.Lock()
	syncer := a.syncer
	a.syncer = nil
	a.mu.Unlock()

	if syncer != nil {
		syncer.Clear()
	}
}

// Syncer returns the active session's engine, or nil when
// disconnected.
func (a *App) Syncer() *syncengine.Syncer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.syncer
}

// Connected reports whether a session is active.
func (a *App) Connected() bool {
	return a.Syncer() != nil
}

// Settings returns the configuration the App was built with.
func (a *App) Settings() domain.Settings {
	return a.settings
}

// Close disconnects and flushes telemetry.
func (a *App) Close() error {
	a.Disconnect()
	if a.telemetry != nil {
		return a.telemetry.Close()
	}
	return nil
}
