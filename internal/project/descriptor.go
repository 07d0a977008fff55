// Package project turns a resolved project descriptor into a scaffolded,
// installed project.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/breadjs/create-bread-app/internal/installer"
	"github.com/breadjs/create-bread-app/internal/manifest"
)

// Descriptor is everything needed to create one project. It is built once
// from flags and config and not modified afterwards.
type Descriptor struct {
	// Dir is the absolute target directory.
	Dir string

	// Name is the package name, the base name of Dir.
	Name string

	// Toggles selects bundlers and language mode.
	Toggles manifest.Toggles

	// PackageManager installs the dependencies.
	PackageManager installer.PackageManager

	// SkipInstall stops after the files are written.
	SkipInstall bool

	// ParallelInstall runs the dev and prod installs concurrently.
	ParallelInstall bool

	// Force allows writing into a non-empty directory.
	Force bool
}

// NewDescriptor resolves target against the working directory and derives
// the package name from it. The remaining fields keep their zero value
// except PackageManager, which defaults to yarn.
func NewDescriptor(target string, toggles manifest.Toggles) (Descriptor, error) {
	if target == "" {
		return Descriptor{}, fmt.Errorf("project directory is required")
	}

	dir, err := filepath.Abs(target)
	if err != nil {
		return Descriptor{}, fmt.Errorf("resolving %q: %w", target, err)
	}

	return Descriptor{
		Dir:            dir,
		Name:           filepath.Base(dir),
		Toggles:        toggles,
		PackageManager: installer.DefaultPackageManager,
	}, nil
}
