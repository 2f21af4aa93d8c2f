// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/mirror/internal/adapters/config"
	_ "go.trai.ch/mirror/internal/adapters/localfs"
	_ "go.trai.ch/mirror/internal/adapters/logger"
	_ "go.trai.ch/mirror/internal/adapters/parser"
	_ "go.trai.ch/mirror/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/mirror/internal/app"
)
