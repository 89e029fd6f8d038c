// Package fs provides the filesystem adapters: spec hashing, lockfile storage and discovery.
package fs

import (
	"crypto/sha1" //nolint:gosec // content fingerprint shared with existing lockfiles, not a security boundary
	"encoding/hex"
	"io"

	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes SHA-1 digests of spec content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashReader returns the lowercase hex SHA-1 of everything read from r.
func (h *Hasher) HashReader(r io.Reader) (string, error) {
	digest := sha1.New() //nolint:gosec // see import
	if _, err := io.Copy(digest, r); err != nil {
		return "", zerr.Wrap(err, "failed to hash content")
	}
	return hex.EncodeToString(digest.Sum(nil)), nil
}
