package docker_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/condalock/internal/adapters/docker"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func TestDockerfile_FoldsScript(t *testing.T) {
	def := docker.Dockerfile()

	assert.NotContains(t, def, "ONE_LINE_COMMAND")
	assert.Contains(t, def, "RUN echo 'set -e;cd artifacts;ENV_NAME=$(cat env_name);")
	assert.Contains(t, def, `grep -v "^prefix:" > deps.lock.yml' > build_lockfile.sh`)

	for _, line := range strings.Split(def, "\n") {
		if strings.HasPrefix(line, "RUN echo") {
			assert.NotContains(t, line, "# ", "comment lines must be dropped from the folded script")
		}
	}
}

func TestImageRef(t *testing.T) {
	a := docker.ImageRef("lock_file_maker", "FROM a")
	b := docker.ImageRef("lock_file_maker", "FROM b")

	assert.True(t, strings.HasPrefix(a, "lock_file_maker:"))
	assert.Len(t, strings.TrimPrefix(a, "lock_file_maker:"), 16)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, docker.ImageRef("lock_file_maker", "FROM a"))
}

func TestEngine_BuildAndRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	settings := &domain.Settings{ContainerEngine: "docker", BuilderImage: "lock_file_maker"}
	engine := docker.NewEngine(runner, settings)

	def := docker.Dockerfile()
	ref := docker.ImageRef("lock_file_maker", def)

	gomock.InOrder(
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name:  "docker",
			Args:  []string{"build", "-t", ref, "-"},
			Stdin: []byte(def),
		}).Return(&domain.CommandResult{}, nil),
		runner.EXPECT().Run(gomock.Any(), domain.Command{
			Name: "docker",
			Args: []string{"run", "--rm", "-v", "/tmp/conda_lockfile-1:/app/artifacts", ref},
		}).Return(&domain.CommandResult{}, nil),
	)

	got, err := engine.BuildImage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ref, got)

	require.NoError(t, engine.RunImage(context.Background(), got, "/tmp/conda_lockfile-1"))
}

func TestEngine_BuildFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockCommandRunner(ctrl)
	engine := docker.NewEngine(runner, &domain.Settings{ContainerEngine: "podman", BuilderImage: "img"})

	runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(nil, zerr.Wrap(domain.ErrExternalCommandFailed, "exit status 1"))

	_, err := engine.BuildImage(context.Background())
	require.ErrorIs(t, err, domain.ErrExternalCommandFailed)
}

func TestEngine_NoEngineConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	engine := docker.NewEngine(mocks.NewMockCommandRunner(ctrl), &domain.Settings{})

	err := engine.RunImage(context.Background(), "img", "/tmp/x")
	require.ErrorIs(t, err, domain.ErrToolNotFound)
}
