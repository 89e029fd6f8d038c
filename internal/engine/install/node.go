package install

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/condalock/internal/adapters/conda"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/core/ports"
)

// NodeID is the unique identifier for the installer Graft node.
const NodeID graft.ID = "engine.install"

func init() {
	graft.Register(graft.Node[*Installer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.CodecNodeID, fs.StoreNodeID, conda.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Installer, error) {
			codec, err := graft.Dep[ports.DocumentCodec](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}
			pm, err := graft.Dep[ports.PackageManager](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewInstaller(codec, store, pm, log), nil
		},
	})
}
