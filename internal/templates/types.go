// Package templates renders the embedded project template tree.
package templates

import (
	"io/fs"

	"github.com/breadjs/create-bread-app/internal/manifest"
)

// TemplateData holds the placeholder values available to .tmpl files.
type TemplateData struct {
	// Name is the package name (e.g., "my-app").
	Name string

	// Title is a human-readable form of Name (e.g., "My App").
	Title string

	// Version is the initial package version.
	Version string

	// EntryFile is the project entry point relative to its root.
	EntryFile string

	// RunCommand runs a package.json script (e.g., "yarn run").
	RunCommand string

	TypeScript bool
	Rollup     bool
	Webpack    bool
}

// GenerateOptions configures project generation.
type GenerateOptions struct {
	// TargetDir is the directory to generate the project in.
	TargetDir string

	// Manifest is written to TargetDir/package.json before the template tree.
	Manifest *manifest.Manifest

	// Toggles selects the template layers.
	Toggles manifest.Toggles

	// RunCommand is how the README tells users to run scripts.
	RunCommand string

	// Force allows generating into a non-empty directory.
	Force bool

	// FS holds the template layers, one top-level directory per layer.
	// Nil means the embedded layers.
	FS fs.FS
}

// GenerateResult contains the result of project generation.
type GenerateResult struct {
	// Files lists created files relative to TargetDir, slash-separated and sorted.
	Files []string

	// Layers lists the template layers that were applied, in order.
	Layers []string

	// TargetDir is the directory where files were created.
	TargetDir string

	// CreatedDir is true when TargetDir did not exist before generation.
	CreatedDir bool
}
