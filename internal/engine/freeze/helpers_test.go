package freeze_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.trai.ch/condalock/internal/adapters/config"
	"go.trai.ch/condalock/internal/adapters/fs"
	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const specYAML = `name: myenv
channels:
  - conda-forge
dependencies:
  - python=3.9
  - numpy
  - pip:
      - requests
`

const exportYAML = `name: ___conda_lockfile_temp
channels:
  - conda-forge
dependencies:
  - python=3.9.18=h955ad1f_0
  - numpy=1.26.4=py39h5f9d8c6_0
  - libffi=3.4.4=h6a678d5_0
  - pip:
      - requests==2.31.0
      - urllib3==2.2.1
prefix: /opt/conda/envs/___conda_lockfile_temp
`

type fixture struct {
	dir      string
	specPath string
	lockPath string
	hash     string
	logger   *mocks.MockLogger
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	dir := t.TempDir()
	specPath := filepath.Join(dir, "deps.yml")
	if err := os.WriteFile(specPath, []byte(specYAML), 0o600); err != nil {
		t.Fatalf("failed to write spec: %v", err)
	}

	hash, err := fs.NewHasher().HashReader(strings.NewReader(specYAML))
	if err != nil {
		t.Fatalf("failed to hash spec: %v", err)
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	logger.EXPECT().Info(gomock.Any()).AnyTimes()

	return &fixture{
		dir:      dir,
		specPath: specPath,
		lockPath: filepath.Join(dir, "deps.Linux.lock.yml"),
		hash:     hash,
		logger:   logger,
	}
}

func (f *fixture) readLockfile(t *testing.T) (string, *domain.DependencySpec) {
	t.Helper()

	data, err := os.ReadFile(f.lockPath)
	if err != nil {
		t.Fatalf("failed to read lockfile: %v", err)
	}
	spec, err := config.NewCodec().Parse(data)
	if err != nil {
		t.Fatalf("lockfile does not parse: %v", err)
	}
	return string(data), spec
}

func assertNoLockfile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no lockfile at %s, stat err: %v", path, err)
	}
}
