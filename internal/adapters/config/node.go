package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
)

const (
	CodecNodeID          graft.ID = "adapter.config.codec"
	SettingsLoaderNodeID graft.ID = "adapter.config.settings_loader"
	SettingsNodeID       graft.ID = "adapter.config.settings"
)

func init() {
	graft.Register(graft.Node[ports.DocumentCodec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DocumentCodec, error) {
			return NewCodec(), nil
		},
	})

	graft.Register(graft.Node[ports.SettingsLoader]{
		ID:        SettingsLoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SettingsLoader, error) {
			return NewSettingsLoader(DefaultSettingsOptions()...), nil
		},
	})

	graft.Register(graft.Node[*domain.Settings]{
		ID:        SettingsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{SettingsLoaderNodeID},
		Run: func(ctx context.Context) (*domain.Settings, error) {
			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}
			return LoadSettings(loader)
		},
	})
}
