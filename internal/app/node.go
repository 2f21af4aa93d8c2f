package app

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/mirror/internal/adapters/config"
	"go.trai.ch/mirror/internal/adapters/localfs"
	"go.trai.ch/mirror/internal/adapters/logger"
	"go.trai.ch/mirror/internal/adapters/parser"
	"go.trai.ch/mirror/internal/adapters/telemetry/progrock"
	"go.trai.ch/mirror/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App
	// components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			config.NodeID,
			parser.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[ports.Parser](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			cwd, err := os.Getwd()
			if err != nil {
				return nil, err
			}
			settings, err := loader.Load(cwd)
			if err != nil {
				return nil, err
			}

			return New(log, telemetry, p, nil, *settings), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			localfs.FSNodeID,
			localfs.StreamNodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	fs, err := graft.Dep[ports.RemoteFS](ctx)
	if err != nil {
		return nil, err
	}

	stream, err := graft.Dep[ports.ChangeStream](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          application,
		Logger:       log,
		ConfigLoader: loader,
		FS:           fs,
		Stream:       stream,
	}, nil
}
