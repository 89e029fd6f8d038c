package audit

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/condalock/internal/adapters/conda"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/fs"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/condalock/internal/core/ports"
)

// NodeID is the unique identifier for the auditor Graft node.
const NodeID graft.ID = "engine.audit"

func init() {
	graft.Register(graft.Node[*Auditor]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.HasherNodeID,
			fs.StoreNodeID,
			fs.ResolverNodeID,
			config.CodecNodeID,
			conda.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Auditor, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.LockfileStore](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.LockfileResolver](ctx)
			if err != nil {
				return nil, err
			}

			codec, err := graft.Dep[ports.DocumentCodec](ctx)
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

			return NewAuditor(hasher, codec, store, resolver, pm, log), nil
		},
	})
}
