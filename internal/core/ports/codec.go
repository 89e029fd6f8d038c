package ports

import "go.trai.ch/condalock/internal/core/domain"

// DocumentCodec parses and rewrites dependency documents.
//
//go:generate go run go.uber.org/mock/mockgen -source=codec.go -destination=mocks/mock_codec.go -package=mocks
type DocumentCodec interface {
	// Parse decodes a spec or lockfile body into a DependencySpec.
	Parse(data []byte) (*domain.DependencySpec, error)

	// Normalize rewrites an exported environment document so that its name is
	// name and it carries no install prefix. Every other field is preserved.
	Normalize(export []byte, name string) ([]byte, error)
}
