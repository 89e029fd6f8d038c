// Package freeze turns a dependency spec into a sigil-stamped lockfile.
package freeze

import (
	"context"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Freezer captures a resolved environment for one spec into one lockfile.
type Freezer interface {
	Freeze(ctx context.Context, specPath, lockfilePath string) (*domain.FreezeResult, error)
}

// Service routes a freeze request to the procedure for its platform pair.
type Service struct {
	execution domain.Platform
	sameHost  Freezer
	container Freezer
	logger    ports.Logger
}

// NewService creates a new Service for the given execution platform.
func NewService(execution domain.Platform, sameHost, container Freezer, logger ports.Logger) *Service {
	return &Service{
		execution: execution,
		sameHost:  sameHost,
		container: container,
		logger:    logger,
	}
}

// Freeze applies defaults to req and runs the matching freezer. An empty
// target means the execution platform; an empty lockfile path means
// deps.<target>.lock.yml.
func (s *Service) Freeze(ctx context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error) {
	if s.execution == "" {
		return nil, zerr.Wrap(domain.ErrUnsupportedPlatform, "execution platform could not be determined")
	}

	target := req.Target
	if target == "" {
		target = s.execution
	}
	specPath := req.SpecPath
	if specPath == "" {
		specPath = domain.DefaultSpecFile
	}
	lockfilePath := req.LockfilePath
	if lockfilePath == "" {
		lockfilePath = domain.DefaultLockfile(target)
	}

	strategy, err := domain.SelectFreezeStrategy(s.execution, target)
	if err != nil {
		return nil, err
	}

	switch strategy {
	case domain.StrategyContainer:
		s.logger.Info("freezing " + specPath + " for " + target.String() + " in a container")
		return s.container.Freeze(ctx, specPath, lockfilePath)
	default:
		s.logger.Info("freezing " + specPath + " for " + target.String())
		return s.sameHost.Freeze(ctx, specPath, lockfilePath)
	}
}
