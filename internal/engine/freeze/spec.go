package freeze

import (
	"bytes"
	"os"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// loadedSpec is a spec read once from disk, so the hash and the parse see the same bytes.
type loadedSpec struct {
	path string
	data []byte
	hash string
	spec *domain.DependencySpec
}

func loadSpec(path string, hasher ports.Hasher, codec ports.DocumentCodec) (*loadedSpec, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrSpecReadFailed, err.Error()), "path", path)
	}

	hash, err := hasher.HashReader(bytes.NewReader(data))
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	spec, err := codec.Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return &loadedSpec{path: path, data: data, hash: hash, spec: spec}, nil
}

// checkFresh reports whether the lockfile at path already embeds hash.
// A missing or unreadable lockfile is simply not fresh.
func checkFresh(store ports.LockfileStore, logger ports.Logger, path, hash string) bool {
	found, err := store.ReadHash(path)
	if err != nil {
		logger.Debug("no usable lockfile at " + path + ": " + err.Error())
		return false
	}
	if found != hash {
		logger.Info("lockfile " + path + " is stale (found " + found + ", expected " + hash + ")")
		return false
	}
	return true
}

func freshResult(path, hash string) *domain.FreezeResult {
	return &domain.FreezeResult{Status: domain.FreezeAlreadyFresh, LockfilePath: path, Hash: hash}
}

func writtenResult(path, hash string) *domain.FreezeResult {
	return &domain.FreezeResult{Status: domain.FreezeWritten, LockfilePath: path, Hash: hash}
}
