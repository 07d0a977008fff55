package installer

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"
)

// Runner spawns external processes.
type Runner interface {
	// LookPath resolves an executable on PATH.
	LookPath(name string) (string, error)

	// Run executes cmd with the terminal attached and waits for it.
	Run(ctx context.Context, cmd Command) error

	// Output executes cmd and returns its trimmed stdout.
	Output(ctx context.Context, cmd Command) (string, error)
}

// ExitCoder is implemented by errors that carry a process exit status.
type ExitCoder interface {
	ExitCode() int
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// WaitDelay bounds how long a cancelled child may take to exit after
	// it was interrupted before it is killed.
	WaitDelay time.Duration
}

// NewExecRunner returns a runner attached to the current terminal.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		WaitDelay: 5 * time.Second,
	}
}

// LookPath implements Runner.
func (r *ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Run implements Runner.
func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := r.command(ctx, c)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Output implements Runner.
func (r *ExecRunner) Output(ctx context.Context, c Command) (string, error) {
	cmd := r.command(ctx, c)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%w: %s", err, bytes.TrimSpace(stderr.Bytes()))
		}
		return "", err
	}
	return string(bytes.TrimSpace(out)), nil
}

func (r *ExecRunner) command(ctx context.Context, c Command) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	// Interrupt first so the package manager can clean up its lockfile.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = r.WaitDelay
	return cmd
}
