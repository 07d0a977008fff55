package project

import (
	"context"
	"fmt"

	"github.com/breadjs/create-bread-app/internal/installer"
	"github.com/breadjs/create-bread-app/internal/manifest"
	"github.com/breadjs/create-bread-app/internal/output"
	"github.com/breadjs/create-bread-app/internal/pkgname"
	"github.com/breadjs/create-bread-app/internal/templates"
)

// Result describes a created project.
type Result struct {
	Descriptor Descriptor
	Manifest   *manifest.Manifest

	// Files lists the generated files relative to Descriptor.Dir.
	Files []string

	// Layers lists the template layers that were applied.
	Layers []string

	// Preflight is nil when install was skipped.
	Preflight *installer.PreflightResult

	// Installs holds one entry per install command that ran.
	Installs []installer.TaskResult
}

// Option configures a Creator.
type Option func(*Creator)

// WithRunner sets the process runner. The default spawns real processes.
func WithRunner(r installer.Runner) Option {
	return func(c *Creator) {
		c.runner = r
	}
}

// WithSpinner shows a spinner while files are generated on a terminal.
func WithSpinner(enabled bool) Option {
	return func(c *Creator) {
		c.spinner = enabled
	}
}

// Creator scaffolds projects.
type Creator struct {
	runner    installer.Runner
	spinner   bool
	validator *manifest.Validator
}

// NewCreator creates a Creator.
func NewCreator(opts ...Option) (*Creator, error) {
	c := &Creator{}
	for _, opt := range opts {
		opt(c)
	}
	if c.runner == nil {
		c.runner = installer.NewExecRunner()
	}

	v, err := manifest.NewValidator()
	if err != nil {
		return nil, fmt.Errorf("loading manifest schema: %w", err)
	}
	c.validator = v

	return c, nil
}

// Create validates d.Name, checks the toolchain, writes the project and
// installs its dependencies. When install fails the partial Result is
// returned with the error; generated files are left in place.
func (c *Creator) Create(ctx context.Context, d Descriptor) (*Result, error) {
	log := output.StepLogger("create")

	if res := pkgname.Validate(d.Name); !res.ValidForNewPackages() {
		return nil, &NameError{Name: d.Name, Result: res}
	}

	log.Info("creating a new bread app", "dir", d.Dir)
	result := &Result{Descriptor: d}

	if !d.SkipInstall {
		pf, err := installer.Preflight(ctx, c.runner, d.PackageManager)
		if err != nil {
			return nil, err
		}
		log.Debug("preflight ok",
			"node", pf.NodeVersion.String(),
			"package-manager", pf.PackageManagerPath)
		result.Preflight = pf
	}

	m := manifest.Build(d.Name, d.Toggles)
	if err := c.validator.Validate(m); err != nil {
		return nil, fmt.Errorf("building manifest: %w", err)
	}
	result.Manifest = m
	log.Debug("manifest built", "dev", m.Dev.Len(), "prod", m.Prod.Len())

	gen := templates.NewGenerator(templates.GenerateOptions{
		TargetDir:  d.Dir,
		Manifest:   m,
		Toggles:    d.Toggles,
		RunCommand: d.PackageManager.RunCommand(),
		Force:      d.Force,
	})

	var genResult *templates.GenerateResult
	generate := func() error {
		var err error
		genResult, err = gen.Generate()
		return err
	}

	var err error
	if c.spinner {
		err = output.RunWithSpinner(ctx, generate, output.WithTitle("Creating "+d.Name+"..."))
	} else {
		err = generate()
	}
	if err != nil {
		return nil, err
	}
	result.Files = genResult.Files
	result.Layers = genResult.Layers
	log.Debug("files written", "count", len(result.Files), "dir", d.Dir)

	if d.SkipInstall {
		log.Debug("install skipped")
		return result, nil
	}

	inst := installer.New(c.runner, d.PackageManager, installer.WithParallel(d.ParallelInstall))
	installs, err := inst.Install(ctx, d.Dir, m)
	result.Installs = installs
	if err != nil {
		return result, err
	}

	return result, nil
}
