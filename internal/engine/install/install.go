// Package install materializes environments from lockfiles.
package install

import (
	"context"
	"os"

	"github.com/otiai10/copy"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Installer creates an environment from a lockfile and embeds the lockfile in it,
// so the environment can later be audited against its spec.
type Installer struct {
	codec  ports.DocumentCodec
	store  ports.LockfileStore
	conda  ports.PackageManager
	logger ports.Logger
}

// NewInstaller creates a new Installer.
func NewInstaller(
	codec ports.DocumentCodec,
	store ports.LockfileStore,
	conda ports.PackageManager,
	logger ports.Logger,
) *Installer {
	return &Installer{
		codec:  codec,
		store:  store,
		conda:  conda,
		logger: logger,
	}
}

// Create installs the environment declared by the lockfile and returns its prefix.
func (i *Installer) Create(ctx context.Context, lockfilePath string) (string, error) {
	data, err := os.ReadFile(lockfilePath) //nolint:gosec // path is provided by user
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrLockfileReadFailed, err.Error()), "path", lockfilePath)
	}

	spec, err := i.codec.Parse(data)
	if err != nil {
		return "", zerr.With(err, "path", lockfilePath)
	}

	if _, err := i.store.ReadHash(lockfilePath); err != nil {
		i.logger.Warn("lockfile " + lockfilePath + " carries no environment hash; checkenv will fail for " + spec.Name)
	}

	i.logger.Info("creating environment " + spec.Name + " from " + lockfilePath)
	if err := i.conda.CreateFromLockfile(ctx, lockfilePath, spec.Name); err != nil {
		return "", zerr.With(err, "env", spec.Name)
	}

	prefix, err := i.conda.EnvPrefix(ctx, spec.Name)
	if err != nil {
		return "", zerr.With(err, "env", spec.Name)
	}

	embedded := domain.EmbeddedLockfilePath(prefix)
	if err := copy.Copy(lockfilePath, embedded); err != nil {
		err = zerr.With(zerr.Wrap(domain.ErrLockfileInstallFailed, err.Error()), "path", embedded)
		return "", zerr.With(err, "env", spec.Name)
	}

	i.logger.Info("embedded " + lockfilePath + " as " + embedded)
	return prefix, nil
}
