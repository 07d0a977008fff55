package installer

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// exitStatusError mimics *exec.ExitError.
type exitStatusError struct {
	code int
}

func (e *exitStatusError) Error() string { return fmt.Sprintf("exit status %d", e.code) }
func (e *exitStatusError) ExitCode() int { return e.code }

// fakeRunner records commands and fails those whose first argument after the
// install verb matches failOn.
type fakeRunner struct {
	mu       sync.Mutex
	calls    []Command
	paths    map[string]string
	outputs  map[string]string
	runErr   func(Command) error
	inFlight int
	maxSeen  int
	gate     chan struct{}
}

func (f *fakeRunner) LookPath(name string) (string, error) {
	if p, ok := f.paths[name]; ok {
		return p, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeRunner) Run(ctx context.Context, cmd Command) error {
	f.mu.Lock()
	f.calls = append(f.calls, cmd)
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.mu.Unlock()

	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
		}
	}

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()

	if f.runErr != nil {
		return f.runErr(cmd)
	}
	return nil
}

func (f *fakeRunner) Output(_ context.Context, cmd Command) (string, error) {
	if out, ok := f.outputs[cmd.Name]; ok {
		return out, nil
	}
	return "", errors.New("no output configured")
}
