// Package shell provides the external command runner adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/condalock/internal/core/domain"
	"go.trai.ch/condalock/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

// Run executes the command, capturing stdout and stderr while streaming each
// output line to the logger at debug level.
func (r *Runner) Run(ctx context.Context, c domain.Command) (*domain.CommandResult, error) {
	r.logger.Debug("running: " + c.String())

	cmd := exec.CommandContext(ctx, c.Name, c.Args...) //nolint:gosec // arguments are built by the engines
	if c.Dir != "" {
		cmd.Dir = c.Dir
	}
	if c.Stdin != nil {
		cmd.Stdin = bytes.NewReader(c.Stdin)
	}

	var stdout, stderr bytes.Buffer
	outLog := &logWriter{logger: r.logger}
	errLog := &logWriter{logger: r.logger}
	cmd.Stdout = io.MultiWriter(&stdout, outLog)
	cmd.Stderr = io.MultiWriter(&stderr, errLog)

	runErr := cmd.Run()
	outLog.Flush()
	errLog.Flush()

	result := &domain.CommandResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if runErr == nil {
		return result, nil
	}

	if errors.Is(runErr, exec.ErrNotFound) || errors.Is(runErr, fs.ErrNotExist) {
		err := zerr.Wrap(domain.ErrToolNotFound, runErr.Error())
		return nil, zerr.With(err, "command", c.Name)
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		result.ExitCode = exitErr.ExitCode()
	} else {
		result.ExitCode = -1
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, zerr.With(zerr.Wrap(ctxErr, "command interrupted"), "command", c.String())
	}

	err := zerr.Wrap(domain.ErrExternalCommandFailed, runErr.Error())
	err = zerr.With(err, "command", c.String())
	err = zerr.With(err, "exit_code", result.ExitCode)
	err = zerr.With(err, "stdout", strings.TrimSpace(stdout.String()))
	return nil, zerr.With(err, "stderr", strings.TrimSpace(stderr.String()))
}

// logWriter forwards complete lines to the logger and buffers partial ones.
type logWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logger.Debug(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

// Flush logs any trailing partial line.
func (w *logWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.buf) > 0 {
		w.logger.Debug(string(w.buf))
		w.buf = nil
	}
}
