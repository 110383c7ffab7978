package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads the config file at path. A missing file yields Default().
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: err}
	}

	var dto YAMLConfig
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: errors.Join(ErrInvalid, err)}
	}

	cfg := Map(Default(), dto)
	if err := cfg.Validate(); err != nil {
		return Config{}, &Error{Op: "config.load", Path: path, Err: err}
	}
	return cfg, nil
}
