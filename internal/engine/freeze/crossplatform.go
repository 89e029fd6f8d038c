package freeze

import (
	"context"
	"os"
	"path/filepath"

	"github.com/otiai10/copy"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// CrossPlatformFreezer resolves a spec for Linux inside a disposable builder container.
type CrossPlatformFreezer struct {
	hasher      ports.Hasher
	codec       ports.DocumentCodec
	store       ports.LockfileStore
	engine      ports.ContainerEngine
	logger      ports.Logger
	scratchRoot string
}

// NewCrossPlatformFreezer creates a new CrossPlatformFreezer. Scratch
// directories are created under scratchRoot, which the container engine must
// be allowed to mount.
func NewCrossPlatformFreezer(
	hasher ports.Hasher,
	codec ports.DocumentCodec,
	store ports.LockfileStore,
	engine ports.ContainerEngine,
	logger ports.Logger,
	scratchRoot string,
) *CrossPlatformFreezer {
	return &CrossPlatformFreezer{
		hasher:      hasher,
		codec:       codec,
		store:       store,
		engine:      engine,
		logger:      logger,
		scratchRoot: scratchRoot,
	}
}

// Freeze runs CheckFresh, BuildImage, StageInputs, RunBuild, Retrieve, Validate
// and Commit in order. The scratch directory is removed on every exit path.
func (f *CrossPlatformFreezer) Freeze(ctx context.Context, specPath, lockfilePath string) (*domain.FreezeResult, error) {
	loaded, err := loadSpec(specPath, f.hasher, f.codec)
	if err != nil {
		return nil, err
	}

	// CheckFresh
	if checkFresh(f.store, f.logger, lockfilePath, loaded.hash) {
		f.logger.Info("existing lockfile has correct hash, nothing to do")
		return freshResult(lockfilePath, loaded.hash), nil
	}

	// BuildImage
	f.logger.Info("building builder image")
	image, err := f.engine.BuildImage(ctx)
	if err != nil {
		return nil, zerr.With(err, "step", "build_image")
	}

	// StageInputs
	dir, err := f.stage(loaded)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.RemoveAll(dir); err != nil {
			f.logger.Warn("failed to remove scratch directory " + dir + ": " + err.Error())
		}
	}()

	// RunBuild
	f.logger.Info("resolving environment in container " + image)
	if err := f.engine.RunImage(ctx, image, dir); err != nil {
		return nil, zerr.With(err, "step", "run_build")
	}

	// Retrieve
	exportPath := filepath.Join(dir, domain.StagedExportName)
	export, err := os.ReadFile(exportPath) //nolint:gosec // path is inside our scratch directory
	if err != nil {
		err = zerr.Wrap(domain.ErrLockfileReadFailed, "container produced no export: "+err.Error())
		return nil, zerr.With(err, "path", exportPath)
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

// stage creates the scratch directory holding the dependency spec copy and the environment
// name file. On failure the directory is already removed.
func (f *CrossPlatformFreezer) stage(loaded *loadedSpec) (dir string, err error) {
	if err := os.MkdirAll(f.scratchRoot, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrScratchDirFailed, err.Error()), "path", f.scratchRoot)
	}

	dir, err = os.MkdirTemp(f.scratchRoot, domain.ScratchDirPattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrScratchDirFailed, err.Error()), "path", f.scratchRoot)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(dir)
		}
	}()

	if err := copy.Copy(loaded.path, filepath.Join(dir, domain.StagedSpecName)); err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrScratchDirFailed, err.Error()), "path", dir)
	}

	nameFile := filepath.Join(dir, domain.StagedEnvNameFile)
	if err := os.WriteFile(nameFile, []byte(loaded.spec.Name), domain.FilePerm); err != nil { //nolint:gosec // read by the container
		return "", zerr.With(zerr.Wrap(domain.ErrScratchDirFailed, err.Error()), "path", nameFile)
	}

	f.logger.Debug("staged inputs in " + dir)
	return dir, nil
}
