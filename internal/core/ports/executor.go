// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/condalock/internal/core/domain"
)

// CommandRunner runs external programs.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type CommandRunner interface {
	// Run executes cmd and waits for it to finish.
	//
	// A missing program yields domain.ErrToolNotFound. A non-zero exit yields
	// domain.ErrExternalCommandFailed with the captured output attached as metadata.
	// On success the captured stdout and stderr are returned.
	Run(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error)
}
