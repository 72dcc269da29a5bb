// Package exec adapts the Trainer port onto os/exec, spawning the external
// framework's command-line entry point.
package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/nmtkit/nmtlaunch/internal/domain"
	"github.com/nmtkit/nmtlaunch/internal/ports"
)

// Trainer runs the external training entry point as a child process.
// The trainer's stdout/stderr stream straight through so its own progress
// output and diagnostics reach the user unmodified.
type Trainer struct {
	// Python is the interpreter binary, e.g. "python" or "python3".
	Python string

	// Module is the entry-point module passed to -m, e.g. "nmt.nmt".
	Module string

	// Stdout and Stderr receive the child's output.
	// Defaults to os.Stdout / os.Stderr when nil.
	Stdout io.Writer
	Stderr io.Writer

	logger ports.Logger
}

// NewTrainer creates a Trainer for the given interpreter and module.
func NewTrainer(python, module string, logger ports.Logger) *Trainer {
	return &Trainer{
		Python: python,
		Module: module,
		logger: logger,
	}
}

// Command returns the argv the trainer would spawn, for dry runs and logs.
func (t *Trainer) Command(ws domain.Workspace, hp domain.Hyperparams) []string {
	argv := []string{t.Python, "-m", t.Module}
	return append(argv, hp.Args(ws)...)
}

// Train spawns the entry point and blocks until it exits or ctx is
// canceled. A non-zero exit is returned as *domain.TrainExitError; failure
// to spawn at all wraps domain.ErrTrainerNotFound.
func (t *Trainer) Train(ctx context.Context, ws domain.Workspace, hp domain.Hyperparams) error {
	argv := t.Command(ws, hp)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdout = t.stdout()
	cmd.Stderr = t.stderr()
	// Own process group so cancellation can kill the whole trainer tree,
	// not just the interpreter.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	t.logger.Info("starting trainer", ports.Any("argv", argv))

	if err := cmd.Start(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return fmt.Errorf("%w: %q", domain.ErrTrainerNotFound, t.Python)
		}
		return fmt.Errorf("start trainer: %w", err)
	}

	done := make(chan error, 1)
	go func() {
		done <- cmd.Wait()
	}()

	select {
	case <-ctx.Done():
		if cmd.Process != nil {
			// Negative PID signals the process group.
			_ = syscall.Kill(-cmd.Process.Pid, syscall.SIGTERM)
		}
		<-done
		return fmt.Errorf("%w: %v", domain.ErrContextCanceled, ctx.Err())
	case err := <-done:
		if err == nil {
			return nil
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &domain.TrainExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("wait trainer: %w", err)
	}
}

func (t *Trainer) stdout() io.Writer {
	if t.Stdout != nil {
		return t.Stdout
	}
	return os.Stdout
}

func (t *Trainer) stderr() io.Writer {
	if t.Stderr != nil {
		return t.Stderr
	}
	return os.Stderr
}
