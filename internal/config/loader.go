package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for configuration.
const envPrefix = "BREAD"

var keys = []string{
	KeyPackageManager,
	KeyTypeScript,
	KeyWebpack,
	KeyRollup,
	KeyInstallParallel,
	KeyInstallSkip,
	KeyLogTimestamps,
}

// EnvName returns the environment variable bound to key,
// e.g. "install.parallel" -> "BREAD_INSTALL_PARALLEL".
func EnvName(key string) string {
	if key == KeyPackageManager {
		return envPrefix + "_PACKAGE_MANAGER"
	}
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Loader reads the config file and environment.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()
	for _, key := range keys {
		_ = v.BindEnv(key, EnvName(key))
	}
	return &Loader{v: v}
}

// Load reads configFile, then applies environment overrides. A missing file
// is not an error. configFile must already be resolved (see
// ResolveConfigPath); "~" is expanded.
func (l *Loader) Load(configFile string) (*Config, error) {
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	readFile := false
	if expandedPath != "" {
		l.v.SetConfigFile(expandedPath)
		l.v.SetConfigType("yaml")

		if err := l.v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("reading config file %s: %w", expandedPath, err)
			}
		} else {
			readFile = true
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if readFile {
		cfg.Path = expandedPath
	}

	cfg.sources = make(map[string]ConfigSource, len(keys))
	for _, key := range keys {
		switch {
		case os.Getenv(EnvName(key)) != "":
			cfg.sources[key] = SourceEnv
		case readFile && l.v.InConfig(key):
			cfg.sources[key] = SourceConfig
		}
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
