package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "gocable.yaml"
	// EnvConfigPath names the environment variable holding a config path
	EnvConfigPath = "GOCABLE_CONFIG"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger
	getenv func(string) string
	getwd  func() (string, error)
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, getenv: os.Getenv, getwd: os.Getwd}
}

// Load returns the defaults overlaid with the first config file found:
// 1. explicit path (the --config flag)
// 2. $GOCABLE_CONFIG
// 3. gocable.yaml in the current or a parent directory
//
// An explicit or environment path that cannot be read is an error; a
// missing project file is not.
func (l *Loader) Load(explicit string) (*Config, error) {
	config := DefaultConfig()

	path, source := explicit, "flag"
	if path == "" {
		path, source = l.getenv(EnvConfigPath), "env"
	}
	if path == "" {
		path, source = l.findProjectConfig(), "project"
	}

	if path != "" {
		// The file decodes onto the defaults, so keys it sets win even
		// when set to zero or false.
		fileConfig, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s config %s: %w", source, path, err)
		}
		l.logger.Debug("Loaded config", slog.String("path", path), slog.String("source", source))
		config = fileConfig
	} else {
		l.logger.Debug("No config file found, using defaults")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// findProjectConfig searches for gocable.yaml in current and parent directories
func (l *Loader) findProjectConfig() string {
	cwd, err := l.getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
