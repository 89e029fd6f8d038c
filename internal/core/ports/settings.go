package ports

import "go.trai.ch/condalock/internal/core/domain"

// SettingsLoader loads tool settings from the environment and config files.
//
//go:generate go run go.uber.org/mock/mockgen -source=settings.go -destination=mocks/mock_settings.go -package=mocks
type SettingsLoader interface {
	Load() (*domain.Settings, error)
}
