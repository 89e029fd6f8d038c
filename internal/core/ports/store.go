package ports

// LockfileStore reads and writes lockfiles on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockfileStore interface {
	// ReadHash returns the hash embedded in the lockfile at path.
	ReadHash(path string) (string, error)

	// Write replaces the lockfile at path with the sigil line for hash followed by body.
	Write(path, hash string, body []byte) error
}
