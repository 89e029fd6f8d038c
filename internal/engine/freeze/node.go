package freeze

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/condalock/internal/adapters/conda"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/docker" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
)

// NodeID is the unique identifier for the freeze service Graft node.
const NodeID graft.ID = "engine.freeze"

func init() {
	graft.Register(graft.Node[*Service]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			fs.StoreNodeID,
			config.CodecNodeID,
			config.SettingsNodeID,
			conda.NodeID,
			docker.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Service, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}

			codec, err := graft.Dep[ports.DocumentCodec](ctx)
			if err != nil {
				return nil, err
			}

			settings, err := graft.Dep[*domain.Settings](ctx)
			if err != nil {
				return nil, err
			}

			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}

			engine, err := graft.Dep[ports.ContainerEngine](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewService(
				settings.Platform,
				NewSameHostFreezer(hasher, codec, store, pm, log),
				NewCrossPlatformFreezer(hasher, codec, store, engine, log, settings.ScratchRoot),
				log,
			), nil
		},
	})
}
