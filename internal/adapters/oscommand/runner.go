package oscommand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/AntonioJCosta/exerun/internal/core/domain/command"
	"github.com/AntonioJCosta/exerun/internal/core/ports"
)

// DefaultWaitDelay bounds how long Execute waits for output pipes to close
// after the child has exited or been killed.
const DefaultWaitDelay = 2 * time.Second

// Runner implements the CommandRunner interface by starting the executable
// directly, never through a shell. It is safe for concurrent use.
type Runner struct {
	waitDelay time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithWaitDelay overrides DefaultWaitDelay. Non-positive values are ignored.
func WithWaitDelay(d time.Duration) Option {
	return func(r *Runner) {
		if d > 0 {
			r.waitDelay = d
		}
	}
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{waitDelay: DefaultWaitDelay}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ ports.CommandRunner = (*Runner)(nil)

// Execute runs req and returns its exit code with the captured stdout and stderr.
// A nonzero exit is not an error. When ctx ends first the child is killed and
// the error wraps command.ErrTimeout or command.ErrCanceled; the partial output
// is still returned. A failing live mirror in streams does not cut the capture
// short; it is reported as command.ErrStreamFailure with the full Result.
func (r *Runner) Execute(ctx context.Context, req command.Request, streams ports.Streams) (command.Result, error) {
	resolved, err := resolveExecutable(req.ExecutablePath())
	if err != nil {
		return command.Result{}, err
	}
	if err := ctx.Err(); err != nil {
		return command.Result{}, contextError(err, req)
	}

	cmd := exec.CommandContext(ctx, resolved, req.ArgumentPath())
	cmd.Args = req.Argv()
	cmd.WaitDelay = r.waitDelay

	// Non-*os.File writers make exec copy each pipe on its own goroutine,
	// so both streams drain while Wait blocks on the process.
	var stdout, stderr bytes.Buffer
	stdoutMirror := newMirror(streams.Stdout)
	stderrMirror := newMirror(streams.Stderr)
	cmd.Stdout = tee(&stdout, stdoutMirror)
	cmd.Stderr = tee(&stderr, stderrMirror)

	if err := cmd.Start(); err != nil {
		return command.Result{}, fmt.Errorf("%w: %s: %w", command.ErrLaunchFailure, req.ExeString(), err)
	}
	waitErr := cmd.Wait()

	res := command.Result{
		ExitCode: exitCode(cmd.ProcessState),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	if err := classifyWait(ctx, req, waitErr); err != nil {
		return res, err
	}
	if err := stdoutMirror.failure(); err != nil {
		return res, fmt.Errorf("%w: mirroring stdout of %s: %w", command.ErrStreamFailure, req.ExeString(), err)
	}
	if err := stderrMirror.failure(); err != nil {
		return res, fmt.Errorf("%w: mirroring stderr of %s: %w", command.ErrStreamFailure, req.ExeString(), err)
	}
	return res, nil
}

// classifyWait maps the error from cmd.Wait onto the command error taxonomy.
// A nonzero exit is not an error.
func classifyWait(ctx context.Context, req command.Request, waitErr error) error {
	if waitErr == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return contextError(ctxErr, req)
	}

	var exitErr *exec.ExitError
	switch {
	case errors.As(waitErr, &exitErr):
		return nil
	case errors.Is(waitErr, exec.ErrWaitDelay):
		// The child exited but something it spawned still holds the pipes.
		return nil
	default:
		return fmt.Errorf("%w: waiting for %s: %w", command.ErrStreamFailure, req.ExeString(), waitErr)
	}
}

// resolveExecutable checks that path names an executable regular file.
// Bare names are looked up in PATH.
func resolveExecutable(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", command.ErrEmptyExecutable
	}

	if !strings.ContainsAny(path, `/\`) {
		resolved, err := exec.LookPath(path)
		if err != nil {
			return "", fmt.Errorf("%w: %q: %w", command.ErrExecutableNotFound, path, err)
		}
		return resolved, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %w", command.ErrExecutableNotFound, path, err)
	}
	if !info.Mode().IsRegular() {
		return "", fmt.Errorf("%w: %q is not a regular file", command.ErrExecutableNotFound, path)
	}
	if !isExecutable(info) {
		return "", fmt.Errorf("%w: %q is not executable", command.ErrExecutableNotFound, path)
	}
	return path, nil
}

func contextError(err error, req command.Request) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s: %w", command.ErrTimeout, req.ExeString(), err)
	}
	return fmt.Errorf("%w: %s: %w", command.ErrCanceled, req.ExeString(), err)
}

func exitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	return state.ExitCode()
}

func tee(buf *bytes.Buffer, mirror *mirrorWriter) io.Writer {
	if mirror == nil {
		return buf
	}
	return io.MultiWriter(buf, mirror)
}

// mirrorWriter forwards to a live writer but never fails the capture: after
// the first write error it drops further output and reports success.
type mirrorWriter struct {
	w   io.Writer
	err error
}

func newMirror(w io.Writer) *mirrorWriter {
	if w == nil {
		return nil
	}
	return &mirrorWriter{w: w}
}

func (m *mirrorWriter) Write(p []byte) (int, error) {
	if m.err == nil {
		if _, err := m.w.Write(p); err != nil {
			m.err = err
		}
	}
	return len(p), nil
}

// failure returns the first write error. It is only read after Wait, once the
// copier goroutine has finished.
func (m *mirrorWriter) failure() error {
	if m == nil {
		return nil
	}
	return m.err
}
