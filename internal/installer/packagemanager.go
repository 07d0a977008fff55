package installer

import (
	"fmt"
	"strings"
)

// PackageManager identifies a supported package manager.
type PackageManager string

const (
	// Yarn is the default package manager.
	Yarn PackageManager = "yarn"

	// NPM is the npm CLI bundled with Node.js.
	NPM PackageManager = "npm"

	// PNPM is pnpm.
	PNPM PackageManager = "pnpm"
)

// DefaultPackageManager is used when nothing else is selected.
const DefaultPackageManager = Yarn

// PackageManagers returns every supported package manager.
func PackageManagers() []PackageManager {
	return []PackageManager{Yarn, NPM, PNPM}
}

// ParsePackageManager parses a package manager name (case-insensitive).
func ParsePackageManager(s string) (PackageManager, error) {
	pm := PackageManager(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range PackageManagers() {
		if pm == known {
			return pm, nil
		}
	}
	return "", fmt.Errorf("unknown package manager %q; valid: yarn, npm, pnpm", s)
}

// String implements fmt.Stringer.
func (pm PackageManager) String() string {
	return string(pm)
}

// Binary returns the executable name.
func (pm PackageManager) Binary() string {
	return string(pm)
}

// RunCommand returns the prefix for running a package.json script.
func (pm PackageManager) RunCommand() string {
	return pm.Binary() + " run"
}

// DevInstall returns the command adding deps as development dependencies.
func (pm PackageManager) DevInstall(dir string, deps []string) Command {
	var args []string
	switch pm {
	case NPM:
		args = []string{"install", "--save-dev"}
	case PNPM:
		args = []string{"add", "--save-dev"}
	default:
		args = []string{"add", "--dev"}
	}
	return Command{Name: pm.Binary(), Args: append(args, deps...), Dir: dir}
}

// ProdInstall returns the command adding deps as runtime dependencies.
func (pm PackageManager) ProdInstall(dir string, deps []string) Command {
	var args []string
	switch pm {
	case NPM:
		args = []string{"install", "--save"}
	default:
		args = []string{"add"}
	}
	return Command{Name: pm.Binary(), Args: append(args, deps...), Dir: dir}
}
