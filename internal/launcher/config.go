package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	glog "github.com/gnomeshim/gnomeshim/internal/log"
)

// Environment variables honored by FromEnvironment.
const (
	EnvHandler = "GNOMESHIM_HANDLER"
	EnvConfig  = "GNOMESHIM_CONFIG"
)

// Config is the on-disk configuration for the launcher.
//
//	handler: /usr/local/bin/my-open
//	args: ["--new-tab"]
type Config struct {
	Handler string   `yaml:"handler"`
	Args    []string `yaml:"args"`
}

// DefaultConfigPath returns the per-user config file location,
// $XDG_CONFIG_HOME/gnomeshim/config.yaml or its HOME fallback.
func DefaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "gnomeshim", "config.yaml")
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// loadEnvConfig loads the config file named by GNOMESHIM_CONFIG, or the
// default path if unset. A missing default file is normal; anything else
// is logged and ignored so a bad config can never break symbol loading.
func loadEnvConfig() *Config {
	path := os.Getenv(EnvConfig)
	explicit := path != ""
	if !explicit {
		path = DefaultConfigPath()
	}
	if path == "" {
		return nil
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if glog.L != nil {
			glog.L.Fail("config", err)
		}
		return nil
	}
	return cfg
}

func envHandlerOption() Option {
	return WithHandler(os.Getenv(EnvHandler))
}
