package installer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	oerrors "github.com/breadjs/create-bread-app/internal/errors"
	"github.com/breadjs/create-bread-app/internal/manifest"
	"github.com/breadjs/create-bread-app/internal/output"
)

// Dependency groups.
const (
	GroupDev  = "dev"
	GroupProd = "prod"
)

// Task is one install command for one dependency group.
type Task struct {
	Group   string
	Command Command
}

// TaskResult is the outcome of a single Task.
type TaskResult struct {
	Task
	Duration time.Duration

	// Err is nil on success, otherwise an *InstallError.
	Err error
}

// InstallError reports a failed install command.
type InstallError struct {
	Group   string
	Command Command

	// ExitCode is the process exit status, or -1 if it never ran to exit.
	ExitCode int

	// Skipped is set when the command never started because the context
	// was already done.
	Skipped bool

	Err error
}

// Error implements the error interface.
func (e *InstallError) Error() string {
	if e.Skipped {
		return fmt.Sprintf("installing %s dependencies skipped: `%s`: %v", e.Group, e.Command, e.Err)
	}
	if e.ExitCode >= 0 {
		return fmt.Sprintf("installing %s dependencies failed: `%s` exited with status %d",
			e.Group, e.Command, e.ExitCode)
	}
	return fmt.Sprintf("installing %s dependencies failed: `%s`: %v", e.Group, e.Command, e.Err)
}

// Unwrap returns the underlying error.
func (e *InstallError) Unwrap() error {
	return e.Err
}

// Is makes every InstallError match oerrors.ErrInstall.
func (e *InstallError) Is(target error) bool {
	return target == oerrors.ErrInstall
}

// Option configures an Installer.
type Option func(*Installer)

// WithParallel runs the dependency groups concurrently.
func WithParallel(parallel bool) Option {
	return func(i *Installer) {
		i.parallel = parallel
	}
}

// Installer installs manifest dependencies with one package manager.
type Installer struct {
	runner   Runner
	pm       PackageManager
	parallel bool
}

// New creates an installer.
func New(runner Runner, pm PackageManager, opts ...Option) *Installer {
	i := &Installer{runner: runner, pm: pm}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Plan returns the tasks for m, dev dependencies first. Empty groups are
// skipped.
func (i *Installer) Plan(dir string, m *manifest.Manifest) []Task {
	var tasks []Task
	if m.Dev.Len() > 0 {
		tasks = append(tasks, Task{Group: GroupDev, Command: i.pm.DevInstall(dir, m.Dev.List())})
	}
	if m.Prod.Len() > 0 {
		tasks = append(tasks, Task{Group: GroupProd, Command: i.pm.ProdInstall(dir, m.Prod.List())})
	}
	return tasks
}

// Install runs every planned task. It returns all results and, if any task
// failed, the failures joined into one error.
func (i *Installer) Install(ctx context.Context, dir string, m *manifest.Manifest) ([]TaskResult, error) {
	tasks := i.Plan(dir, m)
	results := RunAll(ctx, i.runner, tasks, i.parallel)
	return results, Failures(results)
}

// RunAll runs tasks and returns one result per task in task order. Every task
// runs even if an earlier one failed, unless ctx is done: tasks not yet
// started are then recorded as skipped. With parallel set the tasks run
// concurrently.
func RunAll(ctx context.Context, runner Runner, tasks []Task, parallel bool) []TaskResult {
	results := make([]TaskResult, len(tasks))

	if !parallel {
		for idx, t := range tasks {
			results[idx] = runTask(ctx, runner, t)
		}
		return results
	}

	var g errgroup.Group
	for idx, t := range tasks {
		g.Go(func() error {
			results[idx] = runTask(ctx, runner, t)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// Failures joins the errors of failed results, or returns nil.
func Failures(results []TaskResult) error {
	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return errors.Join(errs...)
}

func runTask(ctx context.Context, runner Runner, t Task) TaskResult {
	log := output.StepLogger("install")

	if err := ctx.Err(); err != nil {
		log.Debug("install skipped", "group", t.Group, "error", err)
		return TaskResult{Task: t, Err: &InstallError{
			Group:    t.Group,
			Command:  t.Command,
			ExitCode: -1,
			Skipped:  true,
			Err:      err,
		}}
	}

	log.Info("installing "+t.Group+" dependencies", "command", t.Command.String())

	start := time.Now()
	err := runner.Run(ctx, t.Command)
	result := TaskResult{Task: t, Duration: time.Since(start)}

	if err != nil {
		result.Err = newInstallError(ctx, t, err)
		log.Debug("install failed", "group", t.Group, "error", err)
		return result
	}

	log.Debug("install finished", "group", t.Group, "duration", result.Duration.Round(time.Millisecond))
	return result
}

func newInstallError(ctx context.Context, t Task, err error) *InstallError {
	ie := &InstallError{Group: t.Group, Command: t.Command, ExitCode: -1, Err: err}

	// A killed child reports a signal, not the reason it was killed.
	if ctxErr := ctx.Err(); ctxErr != nil {
		ie.Err = fmt.Errorf("%w: %w", ctxErr, err)
		return ie
	}

	var ec ExitCoder
	if errors.As(err, &ec) && ec.ExitCode() >= 0 {
		ie.ExitCode = ec.ExitCode()
	}
	return ie
}
