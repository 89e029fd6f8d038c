package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/condalock/cmd/condalock/commands"
	"go.trai.ch/condalock/internal/app"
	"go.trai.ch/condalock/internal/build"
	"go.trai.ch/condalock/internal/core/domain"
)

type mockApp struct {
	logOpts        app.LogOptions
	freezeFunc     func(ctx context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error)
	createFunc     func(ctx context.Context, lockfilePath string) (string, error)
	checkEnvFunc   func(ctx context.Context, specPath string) (*domain.LockfileAudit, error)
	checkLocksFunc func(ctx context.Context, specPath string, lockfiles []string) (*domain.AuditReport, error)
}

func (m *mockApp) ConfigureLogging(opts app.LogOptions) {
	m.logOpts = opts
}

func (m *mockApp) Freeze(ctx context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error) {
	if m.freezeFunc != nil {
		return m.freezeFunc(ctx, req)
	}
	return &domain.FreezeResult{Status: domain.FreezeWritten, LockfilePath: req.LockfilePath}, nil
}

func (m *mockApp) Create(ctx context.Context, lockfilePath string) (string, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, lockfilePath)
	}
	return "", nil
}

func (m *mockApp) CheckEnv(ctx context.Context, specPath string) (*domain.LockfileAudit, error) {
	if m.checkEnvFunc != nil {
		return m.checkEnvFunc(ctx, specPath)
	}
	return &domain.LockfileAudit{}, nil
}

func (m *mockApp) CheckLocks(ctx context.Context, specPath string, lockfiles []string) (*domain.AuditReport, error) {
	if m.checkLocksFunc != nil {
		return m.checkLocksFunc(ctx, specPath, lockfiles)
	}
	return &domain.AuditReport{}, nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, new(bytes.Buffer))
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Freeze(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured domain.FreezeRequest
		mock := &mockApp{
			freezeFunc: func(_ context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error) {
				captured = req
				return &domain.FreezeResult{Status: domain.FreezeWritten, LockfilePath: "out.lock.yml"}, nil
			},
		}

		out, err := execute(t, mock, "freeze", "-d", "env/deps.yml", "-p", "Linux", "-l", "out.lock.yml")
		require.NoError(t, err)
		assert.Equal(t, domain.FreezeRequest{
			SpecPath:     "env/deps.yml",
			LockfilePath: "out.lock.yml",
			Target:       domain.PlatformLinux,
		}, captured)
		assert.Equal(t, "wrote out.lock.yml\n", out)
	})

	t.Run("defaults leave platform and lockfile to the app", func(t *testing.T) {
		var captured domain.FreezeRequest
		mock := &mockApp{
			freezeFunc: func(_ context.Context, req domain.FreezeRequest) (*domain.FreezeResult, error) {
				captured = req
				return &domain.FreezeResult{Status: domain.FreezeAlreadyFresh, LockfilePath: "deps.Darwin.lock.yml"}, nil
			},
		}

		out, err := execute(t, mock, "freeze")
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultSpecFile, captured.SpecPath)
		assert.Empty(t, captured.LockfilePath)
		assert.Empty(t, captured.Target)
		assert.Equal(t, "lockfile deps.Darwin.lock.yml is up to date\n", out)
	})

	t.Run("rejects unknown platforms", func(t *testing.T) {
		mock := &mockApp{
			freezeFunc: func(context.Context, domain.FreezeRequest) (*domain.FreezeResult, error) {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "freeze", "--platform", "Windows")
		require.ErrorIs(t, err, domain.ErrUnsupportedPlatform)
	})

	t.Run("returns error on freeze failure", func(t *testing.T) {
		mock := &mockApp{
			freezeFunc: func(context.Context, domain.FreezeRequest) (*domain.FreezeResult, error) {
				return nil, errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "freeze")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Create(t *testing.T) {
	var captured string
	mock := &mockApp{
		createFunc: func(_ context.Context, lockfilePath string) (string, error) {
			captured = lockfilePath
			return "/opt/conda/envs/demo", nil
		},
	}

	out, err := execute(t, mock, "create", "--lockfile", "deps.Linux.lock.yml")
	require.NoError(t, err)
	assert.Equal(t, "deps.Linux.lock.yml", captured)
	assert.Equal(t, "created /opt/conda/envs/demo\n", out)
}

func TestCommands_CheckEnv(t *testing.T) {
	t.Run("prints ok when fresh", func(t *testing.T) {
		mock := &mockApp{
			checkEnvFunc: func(_ context.Context, specPath string) (*domain.LockfileAudit, error) {
				assert.Equal(t, "deps.yml", specPath)
				return &domain.LockfileAudit{Path: "/envs/demo/deps.lock.yml", Status: domain.AuditFresh}, nil
			},
		}

		out, err := execute(t, mock, "checkenv")
		require.NoError(t, err)
		assert.Equal(t, "ok /envs/demo/deps.lock.yml\n", out)
	})

	t.Run("prints mismatch and fails when stale", func(t *testing.T) {
		mock := &mockApp{
			checkEnvFunc: func(context.Context, string) (*domain.LockfileAudit, error) {
				return &domain.LockfileAudit{Path: "/envs/demo/deps.lock.yml", Status: domain.AuditStale}, domain.ErrHashMismatch
			},
		}

		out, err := execute(t, mock, "checkenv", "-d", "other.yml")
		require.ErrorIs(t, err, domain.ErrHashMismatch)
		assert.Equal(t, "mismatch /envs/demo/deps.lock.yml\n", out)
	})
}

func TestCommands_CheckLocks(t *testing.T) {
	t.Run("forwards lockfiles and prints every verdict", func(t *testing.T) {
		var captured []string
		mock := &mockApp{
			checkLocksFunc: func(_ context.Context, _ string, lockfiles []string) (*domain.AuditReport, error) {
				captured = lockfiles
				return &domain.AuditReport{Results: []domain.LockfileAudit{
					{Path: "a.lock.yml", Status: domain.AuditFresh},
					{Path: "b.lock.yml", Status: domain.AuditStale},
					{Path: "c.lock.yml", Status: domain.AuditError},
				}}, domain.ErrHashMismatch
			},
		}

		out, err := execute(t, mock, "checklocks", "a.lock.yml", "b.lock.yml", "c.lock.yml")
		require.ErrorIs(t, err, domain.ErrHashMismatch)
		assert.Equal(t, []string{"a.lock.yml", "b.lock.yml", "c.lock.yml"}, captured)
		assert.Equal(t, "ok a.lock.yml\nmismatch b.lock.yml\nerror c.lock.yml\n", out)
	})

	t.Run("no report on early failure", func(t *testing.T) {
		mock := &mockApp{
			checkLocksFunc: func(context.Context, string, []string) (*domain.AuditReport, error) {
				return nil, domain.ErrNoLockfilesFound
			},
		}

		out, err := execute(t, mock, "checklocks")
		require.ErrorIs(t, err, domain.ErrNoLockfilesFound)
		assert.Empty(t, out)
	})
}

func TestCommands_Logging(t *testing.T) {
	t.Run("counts verbosity and selects json", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "-vv", "--log-format", "json", "version")
		require.NoError(t, err)
		assert.Equal(t, app.LogOptions{Verbosity: 2, JSON: true}, mock.logOpts)
	})

	t.Run("rejects unknown formats", func(t *testing.T) {
		mock := &mockApp{}
		_, err := execute(t, mock, "--log-format", "xml", "version")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown log format")
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
	assert.Contains(t, out, "condalock version")
}
