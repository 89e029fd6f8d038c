package freeze

import (
	"context"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// SameHostFreezer resolves a spec with the local package manager.
type SameHostFreezer struct {
	hasher ports.Hasher
	codec  ports.DocumentCodec
	store  ports.LockfileStore
	conda  ports.PackageManager
	logger ports.Logger
}

// NewSameHostFreezer creates a new SameHostFreezer.
func NewSameHostFreezer(
	hasher ports.Hasher,
	codec ports.DocumentCodec,
	store ports.LockfileStore,
	conda ports.PackageManager,
	logger ports.Logger,
) *SameHostFreezer {
	return &SameHostFreezer{
		hasher: hasher,
		codec:  codec,
		store:  store,
		conda:  conda,
		logger: logger,
	}
}

// Freeze runs CheckFresh, Resolve, Validate and Commit in order and stops at the first failure.
// Nothing is written unless every step succeeds.
func (f *SameHostFreezer) Freeze(ctx context.Context, specPath, lockfilePath string) (*domain.FreezeResult, error) {
	loaded, err := loadSpec(specPath, f.hasher, f.codec)
	if err != nil {
		return nil, err
	}

	// CheckFresh
	if checkFresh(f.store, f.logger, lockfilePath, loaded.hash) {
		f.logger.Info("existing lockfile has correct hash, nothing to do")
		return freshResult(lockfilePath, loaded.hash), nil
	}

	// Resolve
	export, err := f.resolve(ctx, specPath)
	if err != nil {
		return nil, err
	}

	// Validate
	resolved, err := f.codec.Parse(export)
	if err != nil {
		return nil, zerr.With(err, "step", "validate")
	}
	if err := domain.ValidateLock(loaded.spec, resolved); err != nil {
		return nil, err
	}

	// Commit
	body, err := f.codec.Normalize(export, loaded.spec.Name)
	if err != nil {
		return nil, err
	}
	if err := f.store.Write(lockfilePath, loaded.hash, body); err != nil {
		return nil, err
	}

	f.logger.Info("wrote " + lockfilePath)
	return writtenResult(lockfilePath, loaded.hash), nil
}

// resolve creates the scratch environment and exports it. The scratch
// environment is removed afterwards, even when creation fails partway;
// a failed removal only warns.
func (f *SameHostFreezer) resolve(ctx context.Context, specPath string) ([]byte, error) {
	defer func() {
		if err := f.conda.Remove(ctx, domain.ScratchEnvName); err != nil {
			f.logger.Warn("failed to remove scratch environment " + domain.ScratchEnvName + ": " + err.Error())
		}
	}()

	f.logger.Info("creating scratch environment " + domain.ScratchEnvName)
	if err := f.conda.CreateFromSpec(ctx, specPath, domain.ScratchEnvName); err != nil {
		return nil, zerr.With(err, "step", "resolve")
	}

	f.logger.Debug("exporting scratch environment")
	export, err := f.conda.Export(ctx, domain.ScratchEnvName)
	if err != nil {
		return nil, zerr.With(err, "step", "export")
	}
	return export, nil
}
