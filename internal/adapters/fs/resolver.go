package fs

import (
	"path/filepath"
	"sort"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.LockfileResolver = (*Resolver)(nil)

// Resolver discovers lockfiles using filepath.Glob.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// Discover returns every file in dir matching domain.LockfileGlob, sorted.
// An empty result is not an error.
func (r *Resolver) Discover(dir string) ([]string, error) {
	pattern := filepath.Join(dir, domain.LockfileGlob)

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob lockfiles"), "pattern", pattern)
	}

	sort.Strings(matches)
	return matches, nil
}
