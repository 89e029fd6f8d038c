// Package audit checks lockfiles and installed environments against a dependency spec.
package audit

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Auditor compares embedded lockfile hashes with the current spec hash.
type Auditor struct {
	hasher   ports.Hasher
	codec    ports.DocumentCodec
	store    ports.LockfileStore
	resolver ports.LockfileResolver
	conda    ports.PackageManager
	logger   ports.Logger
}

// NewAuditor creates a new Auditor.
func NewAuditor(
	hasher ports.Hasher,
	codec ports.DocumentCodec,
	store ports.LockfileStore,
	resolver ports.LockfileResolver,
	conda ports.PackageManager,
	logger ports.Logger,
) *Auditor {
	return &Auditor{
		hasher:   hasher,
		codec:    codec,
		store:    store,
		resolver: resolver,
		conda:    conda,
		logger:   logger,
	}
}

// CheckEnv audits the lockfile embedded in the installed environment named by the dependency spec.
// The error is nil only when the environment is fresh.
func (a *Auditor) CheckEnv(ctx context.Context, specPath string) (*domain.LockfileAudit, error) {
	data, err := readSpec(specPath)
	if err != nil {
		return nil, err
	}
	expected, err := a.hasher.HashReader(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(err, "path", specPath)
	}
	spec, err := a.codec.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", specPath)
	}

	prefix, err := a.conda.EnvPrefix(ctx, spec.Name)
	if err != nil {
		return nil, zerr.With(err, "env", spec.Name)
	}
	lockfilePath := domain.EmbeddedLockfilePath(prefix)
	a.logger.Info("checking environment " + spec.Name + " at " + lockfilePath)

	result := a.audit(lockfilePath, expected)
	return &result, a.verdict(result)
}

// CheckLocks audits every given lockfile against one spec. With no lockfiles,
// the per-platform lockfiles next to the dependency spec are discovered. Every lockfile
// is checked; the error is nil only when all of them are fresh.
func (a *Auditor) CheckLocks(_ context.Context, specPath string, lockfiles []string) (*domain.AuditReport, error) {
	data, err := readSpec(specPath)
	if err != nil {
		return nil, err
	}
	expected, err := a.hasher.HashReader(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(err, "path", specPath)
	}

	if len(lockfiles) == 0 {
		dir := filepath.Dir(specPath)
		lockfiles, err = a.resolver.Discover(dir)
		if err != nil {
			return nil, err
		}
		if len(lockfiles) == 0 {
			return nil, zerr.With(zerr.Wrap(domain.ErrNoLockfilesFound, "nothing matches "+domain.LockfileGlob), "dir", dir)
		}
	}

	report := &domain.AuditReport{
		SpecPath: specPath,
		Expected: expected,
		Results:  make([]domain.LockfileAudit, 0, len(lockfiles)),
	}
	for _, path := range lockfiles {
		result := a.audit(path, expected)
		if err := a.verdict(result); err != nil {
			a.logger.Error(err)
		}
		report.Results = append(report.Results, result)
	}

	if failures := report.Failures(); len(failures) > 0 {
		err := zerr.Wrap(domain.ErrHashMismatch, strconv.Itoa(len(failures))+" of "+strconv.Itoa(len(report.Results))+" lockfiles are not up to date")
		return report, zerr.With(err, "spec", specPath)
	}
	return report, nil
}

func (a *Auditor) audit(path, expected string) domain.LockfileAudit {
	result := domain.LockfileAudit{Path: path, Expected: expected}

	found, err := a.store.ReadHash(path)
	switch {
	case err != nil:
		result.Status = domain.AuditError
		result.Err = err
	case found != expected:
		result.Status = domain.AuditStale
		result.Found = found
	default:
		result.Status = domain.AuditFresh
		result.Found = found
	}
	return result
}

// verdict turns a non-fresh result into an error carrying both hashes.
func (a *Auditor) verdict(result domain.LockfileAudit) error {
	switch result.Status {
	case domain.AuditFresh:
		return nil
	case domain.AuditStale:
		err := zerr.Wrap(domain.ErrHashMismatch, "lockfile "+result.Path+" does not match the dependency spec")
		err = zerr.With(err, "expected", result.Expected)
		return zerr.With(err, "found", result.Found)
	default:
		return result.Err
	}
}

func readSpec(path string) ([]byte, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSpecReadFailed, err.Error()), "path", path)
	}
	return data, nil
}
