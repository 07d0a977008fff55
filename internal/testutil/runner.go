package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/breadjs/create-bread-app/internal/installer"
)

// ExitStatus is an error carrying a process exit code, like *exec.ExitError.
type ExitStatus int

func (e ExitStatus) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

// ExitCode implements installer.ExitCoder.
func (e ExitStatus) ExitCode() int { return int(e) }

// FakeRunner is an installer.Runner that records commands instead of
// spawning them. By default yarn, npm, pnpm and node resolve and node
// reports v18.17.1.
type FakeRunner struct {
	// NodeVersion is printed by "node --version".
	NodeVersion string

	// Missing lists executables LookPath does not find.
	Missing []string

	// Fail, when set, decides the error returned for each Run.
	Fail func(installer.Command) error

	mu    sync.Mutex
	calls []installer.Command
}

// NewFakeRunner returns a FakeRunner with every tool present.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{NodeVersion: "v18.17.1"}
}

// LookPath implements installer.Runner.
func (f *FakeRunner) LookPath(name string) (string, error) {
	for _, m := range f.Missing {
		if m == name {
			return "", errors.New("executable file not found in $PATH")
		}
	}
	return "/usr/local/bin/" + name, nil
}

// Run implements installer.Runner.
func (f *FakeRunner) Run(_ context.Context, cmd installer.Command) error {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.mu.Unlock()

	if f.Fail != nil {
		return f.Fail(cmd)
	}
	return nil
}

// Output implements installer.Runner.
func (f *FakeRunner) Output(_ context.Context, cmd installer.Command) (string, error) {
	if cmd.Name == "/usr/local/bin/node" {
		return f.NodeVersion, nil
	}
	return "", fmt.Errorf("unexpected command %s", cmd)
}

// Calls returns the commands passed to Run, in order.
func (f *FakeRunner) Calls() []installer.Command {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]installer.Command(nil), f.calls...)
}
