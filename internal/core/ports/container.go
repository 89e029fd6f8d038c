package ports

import "context"

// ContainerEngine builds and runs the Linux builder image.
//
//go:generate go run go.uber.org/mock/mockgen -source=container.go -destination=mocks/mock_container.go -package=mocks
type ContainerEngine interface {
	// BuildImage builds the builder image and returns its reference.
	BuildImage(ctx context.Context) (string, error)

	// RunImage runs image to completion with hostDir mounted as the artifacts directory.
	RunImage(ctx context.Context, image, hostDir string) error
}
