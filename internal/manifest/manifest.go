// Package manifest builds, validates and writes the package.json of a new
// project.
package manifest

// InitialVersion is the version every new project starts at.
const InitialVersion = "0.1.0"

// Toggles selects the optional parts of a project.
type Toggles struct {
	// Webpack adds webpack and its loaders.
	Webpack bool

	// Rollup adds rollup and its plugins.
	Rollup bool

	// TypeScript adds the compiler, linter and their config files.
	TypeScript bool
}

// DefaultToggles returns rollup on, webpack off, TypeScript on.
func DefaultToggles() Toggles {
	return Toggles{Rollup: true, TypeScript: true}
}

// Manifest is the in-memory form of the generated package.json.
type Manifest struct {
	Name    string
	Version string
	Private bool

	// Files lists the config files and directories owned by bread.
	Files *DepSet

	// Scripts maps script names to commands.
	Scripts map[string]string

	// Dev holds development-time dependencies.
	Dev *DepSet

	// Prod holds runtime dependencies.
	Prod *DepSet
}

var (
	baseDevDependencies = []string{
		"@types/node",
		"@types/jest",
		"@babel/core",
		"@babel/preset-env",
		"@babel/plugin-proposal-export-default-from",
		"@babel/plugin-proposal-class-properties",
		"@babel/plugin-proposal-pipeline-operator",
		"@babel/plugin-proposal-optional-chaining",
		"@babel/plugin-proposal-function-bind",
		"@babel/plugin-syntax-dynamic-import",
	}

	baseProdDependencies = []string{
		"cross-env",
		"rimraf",
	}

	baseFiles = []string{
		"babel.config.js",
		"jest.config.js",
	}

	typeScriptDependencies = []string{"typescript", "tslint"}
	typeScriptFiles        = []string{"tslint.json", "tsconfig.json"}
)

// RollupDir and WebpackDir hold each bundler's config inside a project.
const (
	RollupDir  = "build/rollup"
	WebpackDir = "build/webpack"
)

// rollupDependencies returns the rollup set for the given language mode.
func rollupDependencies(typeScript bool) []string {
	deps := []string{
		"rollup",
		"rollup-plugin-node-resolve",
		"rollup-plugin-commonjs",
		"rollup-plugin-json",
		"rollup-plugin-terser",
	}
	if typeScript {
		deps = append(deps, "rollup-plugin-typescript")
	}
	return deps
}

// webpackDependencies returns the webpack set for the given language mode.
func webpackDependencies(typeScript bool) []string {
	deps := []string{
		"webpack",
		"webpack-cli",
		"webpack-chain",
		"babel-loader",
	}
	if typeScript {
		deps = append(deps, "ts-loader")
	}
	return deps
}

// Build assembles the manifest for name and t. It has no side effects and
// shares no state between calls.
func Build(name string, t Toggles) *Manifest {
	m := &Manifest{
		Name:    name,
		Version: InitialVersion,
		Private: true,
		Files:   NewDepSet(baseFiles...),
		Scripts: map[string]string{
			"test":  "jest",
			"clean": "rimraf dist",
		},
		Dev:  NewDepSet(baseDevDependencies...),
		Prod: NewDepSet(baseProdDependencies...),
	}

	if t.TypeScript {
		m.Dev.Add(typeScriptDependencies...)
		m.Files.Add(typeScriptFiles...)
		m.Scripts["lint"] = "tslint -p tsconfig.json"
	}

	if t.Rollup {
		m.Dev.Add(rollupDependencies(t.TypeScript)...)
		m.Files.Add(RollupDir)
		m.Scripts["build:rollup"] = "cross-env NODE_ENV=production rollup -c " + RollupDir + "/rollup.config.js"
	}

	if t.Webpack {
		m.Dev.Add(webpackDependencies(t.TypeScript)...)
		m.Files.Add(WebpackDir)
		m.Scripts["build:webpack"] = "cross-env NODE_ENV=production webpack --config " + WebpackDir + "/webpack.config.js"
	}

	switch {
	case t.Rollup:
		m.Scripts["build"] = m.Scripts["build:rollup"]
	case t.Webpack:
		m.Scripts["build"] = m.Scripts["build:webpack"]
	}

	return m
}
