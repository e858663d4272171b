// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/db47h/bigint"
)

// config holds the settings read from the optional configuration file.
type config struct {
	// Radix is the block radix used for all computations. 0 means
	// bigint.DefaultRadix.
	Radix bigint.Word `yaml:"radix"`
	// Color enables colored output on terminals.
	Color bool `yaml:"color"`
	// Prompt is printed after the line number in interactive mode.
	Prompt string `yaml:"prompt"`
}

func defaultConfig() config {
	return config{
		Radix:  bigint.DefaultRadix,
		Color:  true,
		Prompt: ">",
	}
}

// loadConfig reads a YAML configuration file. Settings missing from the file
// keep their default value. An empty path returns the default configuration.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (config, error) {
	cfg := defaultConfig()
	if err := yaml.UnmarshalWithOptions(data, &cfg, yaml.DisallowUnknownField()); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if cfg.Radix == 0 {
		cfg.Radix = bigint.DefaultRadix
	}
	return cfg, nil
}
