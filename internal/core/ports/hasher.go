package ports

import "io"

// Hasher computes content hashes of dependency specs.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashReader returns the lowercase hex digest of everything read from r.
	HashReader(r io.Reader) (string, error)
}
