package cmd

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/breadjs/create-bread-app/internal/config"
	"github.com/breadjs/create-bread-app/internal/installer"
	"github.com/breadjs/create-bread-app/internal/manifest"
)

// settings are the flag and config values after precedence was applied.
type settings struct {
	toggles         manifest.Toggles
	packageManager  installer.PackageManager
	skipInstall     bool
	parallelInstall bool
	timestamps      bool

	// resolved keeps every decision for debug logging.
	resolved []config.ResolvedValue
}

// loadConfig resolves the config file path and loads it.
func loadConfig(configFlag string) (*config.Config, config.ResolveConfigPathResult, error) {
	pathResult, err := config.ResolveConfigPath(configFlag)
	if err != nil {
		return nil, pathResult, fmt.Errorf("resolving config path: %w", err)
	}

	cfg, err := config.NewLoader().Load(pathResult.ConfigPath)
	if err != nil {
		return nil, pathResult, err
	}
	return cfg, pathResult, nil
}

// resolveSettings applies flag > env > config > default to every setting.
func resolveSettings(fs *pflag.FlagSet, f *createFlags, cfg *config.Config) (*settings, error) {
	values := []config.ResolvedValue{
		config.ResolveString(config.KeyPackageManager, f.packageManager(),
			cfg.PackageManager, cfg.Source(config.KeyPackageManager), installer.DefaultPackageManager.String()),
		config.ResolveBool(config.KeyWebpack, boolFlag(fs, flagUseWebpack, f.useWebpack),
			cfg.Bundlers.Webpack, cfg.Source(config.KeyWebpack), false),
		config.ResolveBool(config.KeyRollup, boolFlag(fs, flagUseRollup, f.useRollup),
			cfg.Bundlers.Rollup, cfg.Source(config.KeyRollup), true),
		config.ResolveBool(config.KeyTypeScript, boolFlag(fs, flagUseTypeScript, f.useTypeScript),
			cfg.TypeScript, cfg.Source(config.KeyTypeScript), true),
		config.ResolveBool(config.KeyInstallSkip, boolFlag(fs, flagSkipInstall, f.skipInstall),
			cfg.Install.Skip, cfg.Source(config.KeyInstallSkip), false),
		config.ResolveBool(config.KeyInstallParallel, boolFlag(fs, flagParallelInstall, f.parallelInstall),
			cfg.Install.Parallel, cfg.Source(config.KeyInstallParallel), false),
		config.ResolveBool(config.KeyLogTimestamps, boolFlag(fs, flagTimestamps, f.timestamps),
			cfg.Log.Timestamps, cfg.Source(config.KeyLogTimestamps), false),
	}

	pm, err := installer.ParsePackageManager(values[0].String())
	if err != nil {
		return nil, err
	}

	return &settings{
		packageManager: pm,
		toggles: manifest.Toggles{
			Webpack:    values[1].Bool(),
			Rollup:     values[2].Bool(),
			TypeScript: values[3].Bool(),
		},
		skipInstall:     values[4].Bool(),
		parallelInstall: values[5].Bool(),
		timestamps:      values[6].Bool(),
		resolved:        values,
	}, nil
}
