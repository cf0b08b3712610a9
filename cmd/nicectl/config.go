package main

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".nicectl.yml"

// Config carries optional defaults for the CLI. Flags and positional
// arguments always win over the file.
type Config struct {
	// Increment is the priority value applied when `set` or `exec` is run
	// without an explicit one: a niceness delta on Unix, a thread priority
	// code on Windows.
	Increment int `yaml:"increment"`
	// Verbose turns on the process report after each command.
	Verbose bool `yaml:"verbose"`
	// Env holds extra environment variables handed to `exec` children.
	Env map[string]string `yaml:"env"`
}

// loadConfig reads the YAML config at path, or .nicectl.yml in the working
// directory when path is empty. A missing implicit file is not an error; a
// missing explicit one is.
func loadConfig(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, errors.Wrapf(err, "read config %s", path)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}
