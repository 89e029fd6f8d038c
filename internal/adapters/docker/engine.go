// Package docker provides the container engine adapter used for cross-platform freezes.
package docker

import (
	"context"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ContainerEngine = (*Engine)(nil)

// Engine drives a docker-compatible CLI.
type Engine struct {
	runner   ports.CommandRunner
	settings *domain.Settings
}

// NewEngine creates a new Engine.
func NewEngine(runner ports.CommandRunner, settings *domain.Settings) *Engine {
	return &Engine{
		runner:   runner,
		settings: settings,
	}
}

// BuildImage builds the builder image from the definition piped on stdin.
func (e *Engine) BuildImage(ctx context.Context) (string, error) {
	definition := Dockerfile()
	ref := ImageRef(e.settings.BuilderImage, definition)

	if _, err := e.run(ctx, domain.Command{
		Args:  []string{"build", "-t", ref, "-"},
		Stdin: []byte(definition),
	}); err != nil {
		return "", zerr.With(err, "image", ref)
	}
	return ref, nil
}

// RunImage runs image to completion with hostDir mounted at the artifacts path.
func (e *Engine) RunImage(ctx context.Context, image, hostDir string) error {
	if _, err := e.run(ctx, domain.Command{
		Args: []string{"run", "--rm", "-v", hostDir + ":" + domain.ArtifactsMount, image},
	}); err != nil {
		return zerr.With(err, "image", image)
	}
	return nil
}

func (e *Engine) run(ctx context.Context, cmd domain.Command) (*domain.CommandResult, error) {
	if e.settings.ContainerEngine == "" {
		return nil, zerr.Wrap(domain.ErrToolNotFound, "container engine not set")
	}
	cmd.Name = e.settings.ContainerEngine
	return e.runner.Run(ctx, cmd)
}
