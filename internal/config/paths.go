package config

import (
	"os"
	"path/filepath"
)

// EnvConfig names the environment variable that overrides the config path.
const EnvConfig = "BREAD_CONFIG"

// Paths contains standard filesystem paths for create-bread-app.
type Paths struct {
	// ConfigFile is the path to the config file (~/.bread/config.yaml).
	ConfigFile string

	// HomeDir is the bread home directory (~/.bread).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	breadHome := filepath.Join(homeDir, ".bread")

	return &Paths{
		ConfigFile: filepath.Join(breadHome, "config.yaml"),
		HomeDir:    breadHome,
	}, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
