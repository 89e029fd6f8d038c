package ports

// LockfileResolver finds lockfiles on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type LockfileResolver interface {
	// Discover returns the per-platform lockfiles in dir, sorted.
	Discover(dir string) ([]string, error)
}
