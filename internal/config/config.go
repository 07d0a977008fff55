// Package config loads user defaults for create-bread-app from a YAML file
// and BREAD_* environment variables.
package config

// Keys of every configurable setting, as written in the config file.
const (
	KeyPackageManager  = "packageManager"
	KeyTypeScript      = "typescript"
	KeyWebpack         = "bundlers.webpack"
	KeyRollup          = "bundlers.rollup"
	KeyInstallParallel = "install.parallel"
	KeyInstallSkip     = "install.skip"
	KeyLogTimestamps   = "log.timestamps"
)

// BundlerConfig selects bundlers.
type BundlerConfig struct {
	// Webpack adds webpack. Env: BREAD_BUNDLERS_WEBPACK, Default: false
	Webpack *bool `mapstructure:"webpack"`

	// Rollup adds rollup. Env: BREAD_BUNDLERS_ROLLUP, Default: true
	Rollup *bool `mapstructure:"rollup"`
}

// InstallConfig controls the dependency install step.
type InstallConfig struct {
	// Parallel runs the dev and prod installs concurrently.
	// Env: BREAD_INSTALL_PARALLEL, Default: false
	Parallel *bool `mapstructure:"parallel"`

	// Skip stops after the project files are written.
	// Env: BREAD_INSTALL_SKIP, Default: false
	Skip *bool `mapstructure:"skip"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Env: BREAD_LOG_TIMESTAMPS, Default: false
	Timestamps *bool `mapstructure:"timestamps"`
}

// Config holds the user's defaults. Unset fields are nil or empty and fall
// back to built-in defaults during resolution.
//
// Example ~/.bread/config.yaml:
//
//	packageManager: pnpm
//	typescript: false
//	bundlers:
//	  webpack: true
//	install:
//	  parallel: true
type Config struct {
	// PackageManager is yarn, npm or pnpm. Env: BREAD_PACKAGE_MANAGER
	PackageManager string `mapstructure:"packageManager"`

	// TypeScript selects TypeScript mode. Env: BREAD_TYPESCRIPT, Default: true
	TypeScript *bool `mapstructure:"typescript"`

	Bundlers BundlerConfig `mapstructure:"bundlers"`
	Install  InstallConfig `mapstructure:"install"`
	Log      LogConfig     `mapstructure:"log"`

	// Path is the config file that was read, empty if none existed.
	Path string `mapstructure:"-"`

	sources map[string]ConfigSource
}

// Source reports where the value for key came from: SourceEnv, SourceConfig
// or SourceDefault.
func (c *Config) Source(key string) ConfigSource {
	if s, ok := c.sources[key]; ok {
		return s
	}
	return SourceDefault
}
