package config

import (
	"os"

	"github.com/breadjs/create-bread-app/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue records one setting after precedence was applied.
type ResolvedValue struct {
	Key    string
	Value  any
	Source ConfigSource

	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]any
}

// BoolFlag is the state of a boolean command-line flag.
type BoolFlag struct {
	Value   bool
	Changed bool
}

// ResolveBool applies flag > env > config > default to a boolean setting.
// cfgValue is the merged env/config value and cfgSource tells which of the
// two it came from.
func ResolveBool(key string, flag BoolFlag, cfgValue *bool, cfgSource ConfigSource, def bool) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}

	switch {
	case flag.Changed:
		rv.Value, rv.Source = flag.Value, SourceFlag
		if cfgValue != nil {
			rv.Shadowed[cfgSource] = *cfgValue
		}
	case cfgValue != nil:
		rv.Value, rv.Source = *cfgValue, cfgSource
	default:
		rv.Value, rv.Source = def, SourceDefault
	}
	return rv
}

// ResolveString applies flag > env > config > default to a string setting.
// An empty flagValue means the flag was not given.
func ResolveString(key, flagValue, cfgValue string, cfgSource ConfigSource, def string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}

	switch {
	case flagValue != "":
		rv.Value, rv.Source = flagValue, SourceFlag
		if cfgValue != "" {
			rv.Shadowed[cfgSource] = cfgValue
		}
	case cfgValue != "":
		rv.Value, rv.Source = cfgValue, cfgSource
	default:
		rv.Value, rv.Source = def, SourceDefault
	}
	return rv
}

// Bool returns the resolved value as a bool.
func (rv ResolvedValue) Bool() bool {
	b, _ := rv.Value.(bool)
	return b
}

// String returns the resolved value as a string.
func (rv ResolvedValue) String() string {
	s, _ := rv.Value.(string)
	return s
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) BREAD_CONFIG env, (3) ~/.bread/config.yaml.
func ResolveConfigPath(flagValue string) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case flagValue != "":
		result.ConfigPath = flagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs each setting's resolution at debug level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
