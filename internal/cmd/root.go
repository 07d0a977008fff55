// Package cmd provides the create-bread-app command.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/breadjs/create-bread-app/internal/config"
	oerrors "github.com/breadjs/create-bread-app/internal/errors"
	"github.com/breadjs/create-bread-app/internal/installer"
	"github.com/breadjs/create-bread-app/internal/output"
	"github.com/breadjs/create-bread-app/internal/project"
	"github.com/breadjs/create-bread-app/internal/version"
)

// Option configures the root command.
type Option func(*rootOptions)

type rootOptions struct {
	runner installer.Runner
}

// WithRunner replaces the process runner, for tests.
func WithRunner(r installer.Runner) Option {
	return func(o *rootOptions) {
		o.runner = r
	}
}

// NewRootCmd creates the create-bread-app command.
func NewRootCmd(opts ...Option) *cobra.Command {
	var ro rootOptions
	for _, opt := range opts {
		opt(&ro)
	}

	var f createFlags

	rootCmd := &cobra.Command{
		Use:   "create-bread-app <project-directory>",
		Short: "Create a new JavaScript or TypeScript library project",
		Long: `create-bread-app scaffolds a library project: it writes package.json, babel,
jest and bundler configuration and installs the dependencies.

Only <project-directory> is required.

Defaults can be set in ~/.bread/config.yaml or with BREAD_* environment
variables; flags take precedence over both.`,
		Version:       version.Version,
		Args:          projectDirArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		FParseErrWhitelist: cobra.FParseErrWhitelist{
			UnknownFlags: true,
		},
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args[0], &f, ro)
		},
	}

	rootCmd.SetVersionTemplate(version.GetInfo().String() + "\n")

	f.register(rootCmd.Flags())
	rootCmd.MarkFlagsMutuallyExclusive(flagUseNPM, flagUseYarn, flagUsePNPM)

	return rootCmd
}

func projectDirArg(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return errors.New("missing required argument <project-directory>\n\nFor example:\n  create-bread-app my-bread-app")
	case 1:
		return nil
	default:
		return fmt.Errorf("expected one project directory, got %d: %v", len(args), args)
	}
}

func runCreate(c *cobra.Command, target string, f *createFlags, ro rootOptions) error {
	// Logging is configured before config loading so config problems can be
	// reported at debug level; it is reconfigured once timestamps are known.
	output.SetupLogging(output.LogConfig{Debug: f.debug})

	cfg, pathResult, err := loadConfig(f.configPath)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	s, err := resolveSettings(c.Flags(), f, cfg)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	output.SetupLogging(output.LogConfig{
		Debug:      f.debug,
		Timestamps: output.BoolPtr(s.timestamps),
	})

	output.Debug("config file", "path", pathResult.ConfigPath, "source", pathResult.Source, "loaded", cfg.Path != "")
	config.LogResolvedValues(s.resolved)

	d, err := project.NewDescriptor(target, s.toggles)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}
	d.PackageManager = s.packageManager
	d.SkipInstall = s.skipInstall
	d.ParallelInstall = s.parallelInstall
	d.Force = f.force

	creatorOpts := []project.Option{
		project.WithSpinner(output.IsTTY() && !f.debug),
	}
	if ro.runner != nil {
		creatorOpts = append(creatorOpts, project.WithRunner(ro.runner))
	}
	creator, err := project.NewCreator(creatorOpts...)
	if err != nil {
		return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err}
	}

	result, err := creator.Create(c.Context(), d)
	if err != nil {
		var nameErr *project.NameError
		if errors.As(err, &nameErr) {
			printNameError(c.ErrOrStderr(), nameErr)
			return &oerrors.ExitError{Code: oerrors.ExitGeneralError, Err: err, Printed: true}
		}
		return &oerrors.ExitError{Code: oerrors.ExitCodeFromError(err), Err: err}
	}

	printSuccess(result)
	return nil
}
