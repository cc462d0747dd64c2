package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config mirrors encode's flag surface so a run can be driven by a
// TOML file (-config=path) instead of flags and positional arguments —
// useful once the parameter set for a batch of files grows past what's
// comfortable to type on a command line.
type Config struct {
	Variant string `toml:"variant"`
	B       uint64 `toml:"b"`
	L       uint64 `toml:"l"`
	Input   string `toml:"input"`
	Output  string `toml:"output"`
}

// loadConfig decodes path as TOML into a Config, filling in the same
// defaults the encode flag set uses for any field the file omits.
func loadConfig(path string) (*Config, error) {
	cfg := Config{Variant: "rans", B: 2, L: 1}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Input == "" {
		return nil, fmt.Errorf("config: %q: missing required field \"input\"", path)
	}

	if cfg.Output == "" {
		return nil, fmt.Errorf("config: %q: missing required field \"output\"", path)
	}

	return &cfg, nil
}
