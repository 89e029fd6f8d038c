// Package app implements the application layer for condalock.
package app

import (
	"context"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Freezer turns a dependency spec into a lockfile.
type Freezer interface {
	Freeze(ctx context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error)
}

// Auditor checks lockfiles and installed environments against a dependency spec.
type Auditor interface {
	CheckEnv(ctx context.Context, specPath string) (*domain.LockfileAudit, error)
	CheckLocks(ctx context.Context, specPath string, lockfiles []string) (*domain.AuditReport, error)
}

// Installer creates environments from lockfiles.
type Installer interface {
	Create(ctx context.Context, lockfilePath string) (string, error)
}

// LogOptions controls the diagnostic output of a single invocation.
type LogOptions struct {
	Verbosity int
	JSON      bool
}

type configurableLogger interface {
	SetVerbosity(verbosity int)
	SetJSON(enable bool)
}

// App represents the main application logic.
type App struct {
	freezer   Freezer
	auditor   Auditor
	installer Installer
	settings  *domain.Settings
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	freezer Freezer,
	auditor Auditor,
	installer Installer,
	settings *domain.Settings,
	logger ports.Logger,
) *App {
	return &App{
		freezer:   freezer,
		auditor:   auditor,
		installer: installer,
		settings:  settings,
		logger:    logger,
	}
}

// ConfigureLogging applies per-invocation log options when the logger supports them.
func (a *App) ConfigureLogging(opts LogOptions) {
	l, ok := a.logger.(configurableLogger)
	if !ok {
		return
	}
	l.SetVerbosity(opts.Verbosity)
	l.SetJSON(opts.JSON)
}

// Freeze writes a lockfile for the requested target platform.
func (a *App) Freeze(ctx context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error) {
	res, err := a.freezer.Freeze(ctx, req)
	if err != nil {
		return nil, zerr.Wrap(err, "freeze failed")
	}
	return res, nil
}

// Create installs an environment from a lockfile. An empty path selects the
// default lockfile of the execution platform.
func (a *App) Create(ctx context.Context, lockfilePath string) (string, error) {
	if lockfilePath == "" {
		if a.settings.Platform == "" {
			return "", zerr.Wrap(domain.ErrUnsupportedPlatform, "cannot pick a default lockfile on this host")
		}
		lockfilePath = domain.DefaultLockfile(a.settings.Platform)
	}

	prefix, err := a.installer.Create(ctx, lockfilePath)
	if err != nil {
		return "", zerr.Wrap(err, "create failed")
	}
	return prefix, nil
}

// CheckEnv audits the environment named by the dependency spec.
func (a *App) CheckEnv(ctx context.Context, specPath string) (*domain.LockfileAudit, error) {
	if specPath == "" {
		specPath = domain.DefaultSpecFile
	}
	return a.auditor.CheckEnv(ctx, specPath)
}

// CheckLocks audits the given lockfiles, or the discovered ones, against the dependency spec.
func (a *App) CheckLocks(ctx context.Context, specPath string, lockfiles []string) (*domain.AuditReport, error) {
	if specPath == "" {
		specPath = domain.DefaultSpecFile
	}
	return a.auditor.CheckLocks(ctx, specPath, lockfiles)
}
