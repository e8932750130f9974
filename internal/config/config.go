// Package config loads optional tool settings from a YAML file. Flags
// override file values; an absent file means defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const DefaultPath = ".docdrift.yml"

type Config struct {
	// MaxCount bounds how many revisions a line-history query returns.
	MaxCount int `yaml:"max_count"`
	// GitBinary is the VCS executable to invoke.
	GitBinary string `yaml:"git_binary"`
	// TimeoutSeconds bounds each VCS invocation.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

func Default() Config {
	return Config{
		MaxCount:       5,
		GitBinary:      "git",
		TimeoutSeconds: 30,
	}
}

// Load reads path over the defaults. With an empty path the default file is
// used when present and silently skipped when not; an explicit path must
// exist.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}
