package installer

import (
	"context"
	"fmt"

	"github.com/Masterminds/semver/v3"

	oerrors "github.com/breadjs/create-bread-app/internal/errors"
)

// NodeConstraint is the Node.js version the generated toolchain requires.
const NodeConstraint = ">= 8.0.0"

// PreflightResult describes the tools found by Preflight.
type PreflightResult struct {
	PackageManagerPath string
	NodePath           string
	NodeVersion        *semver.Version
}

// Preflight checks that pm and a recent enough Node.js are installed.
func Preflight(ctx context.Context, runner Runner, pm PackageManager) (*PreflightResult, error) {
	constraint, err := semver.NewConstraint(NodeConstraint)
	if err != nil {
		return nil, fmt.Errorf("parsing node constraint: %w", err)
	}

	pmPath, err := runner.LookPath(pm.Binary())
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			fmt.Sprintf("%s was not found on PATH", pm),
			"Install it, pick another package manager (--use-npm, --use-yarn, --use-pnpm) or pass --skip-install.")
	}

	nodePath, err := runner.LookPath("node")
	if err != nil {
		return nil, oerrors.NewNotFoundError(
			"node was not found on PATH",
			"Install Node.js 8 or higher, or pass --skip-install.")
	}

	raw, err := runner.Output(ctx, Command{Name: nodePath, Args: []string{"--version"}})
	if err != nil {
		return nil, fmt.Errorf("checking node version: %w", err)
	}

	version, err := semver.NewVersion(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing node version %q: %w", raw, err)
	}

	if !constraint.Check(version) {
		return nil, oerrors.NewValidationError(
			fmt.Sprintf("you are running Node %s; create-bread-app requires Node 8 or higher", version),
			nodePath,
			"Please update your version of Node.")
	}

	return &PreflightResult{
		PackageManagerPath: pmPath,
		NodePath:           nodePath,
		NodeVersion:        version,
	}, nil
}
