package cmd

import (
	"github.com/spf13/pflag"

	"github.com/breadjs/create-bread-app/internal/config"
	"github.com/breadjs/create-bread-app/internal/installer"
)

// Flag names.
const (
	flagUseWebpack      = "use-webpack"
	flagUseRollup       = "use-rollup"
	flagUseTypeScript   = "use-typescript"
	flagUseNPM          = "use-npm"
	flagUseYarn         = "use-yarn"
	flagUsePNPM         = "use-pnpm"
	flagSkipInstall     = "skip-install"
	flagParallelInstall = "parallel-install"
	flagForce           = "force"
	flagConfig          = "config"
	flagTimestamps      = "timestamps"
	flagDebug           = "debug"
)

// createFlags holds the raw flag values of one invocation.
type createFlags struct {
	useWebpack      bool
	useRollup       bool
	useTypeScript   bool
	useNPM          bool
	useYarn         bool
	usePNPM         bool
	skipInstall     bool
	parallelInstall bool
	force           bool
	configPath      string
	timestamps      bool
	debug           bool
}

func (f *createFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&f.useWebpack, flagUseWebpack, false, "Add webpack (env: BREAD_BUNDLERS_WEBPACK)")
	fs.BoolVar(&f.useRollup, flagUseRollup, true, "Add rollup (env: BREAD_BUNDLERS_ROLLUP)")
	fs.BoolVar(&f.useTypeScript, flagUseTypeScript, true, "Generate a TypeScript project (env: BREAD_TYPESCRIPT)")
	fs.BoolVar(&f.useNPM, flagUseNPM, false, "Install dependencies with npm")
	fs.BoolVar(&f.useYarn, flagUseYarn, false, "Install dependencies with yarn (default)")
	fs.BoolVar(&f.usePNPM, flagUsePNPM, false, "Install dependencies with pnpm")
	fs.BoolVar(&f.skipInstall, flagSkipInstall, false, "Write the project files without installing dependencies")
	fs.BoolVar(&f.parallelInstall, flagParallelInstall, false, "Install dev and prod dependencies concurrently")
	fs.BoolVar(&f.force, flagForce, false, "Write into a non-empty directory")
	fs.StringVar(&f.configPath, flagConfig, "", "Path to config file (env: BREAD_CONFIG)")
	fs.BoolVar(&f.timestamps, flagTimestamps, false, "Show timestamps in log output")
	fs.BoolVar(&f.debug, flagDebug, false, "Print debug logs")
}

// packageManager returns the package manager chosen by flag, or "".
func (f *createFlags) packageManager() string {
	switch {
	case f.useNPM:
		return installer.NPM.String()
	case f.usePNPM:
		return installer.PNPM.String()
	case f.useYarn:
		return installer.Yarn.String()
	}
	return ""
}

func boolFlag(fs *pflag.FlagSet, name string, value bool) config.BoolFlag {
	return config.BoolFlag{Value: value, Changed: fs.Changed(name)}
}
