package localfs

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/mirror/internal/adapters/config"
	"go.trai.ch/mirror/internal/core/domain"
	"go.trai.ch/mirror/internal/core/ports"
)

const (
	// FSNodeID is the unique identifier for the filesystem adapter
	// node.
	FSNodeID graft.ID = "adapter.localfs"
	// StreamNodeID is the unique identifier for the change stream
	// adapter node.
	StreamNodeID graft.ID = "adapter.localfs_stream"
)

func init() {
	graft.Register(graft.Node[ports.RemoteFS]{
		ID:        FSNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.RemoteFS, error) {
			settings, err := loadSettings(ctx)
			if err != nil {
				return nil, err
			}
			return NewFS(settings.Root)
		},
	})

	graft.Register(graft.Node[ports.ChangeStream]{
		ID:        StreamNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ChangeStream, error) {
			settings, err := loadSettings(ctx)
			if err != nil {
				return nil, err
			}
			fs, err := NewFS(settings.Root)
			if err != nil {
				return nil, err
			}
			return NewStream(fs.Root(), settings.Excludes), nil
		},
	})
}

func loadSettings(ctx context.Context) (*domain.Settings, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return loader.Load(cwd)
}
