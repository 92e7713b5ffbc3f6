// Copyright ©2026 The ngp-dag-layout Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is layoutctl's TOML configuration: whether to reject south-side
// worsening moves during the sweep, exposed as a tunable, plus CLI
// defaults.
type Config struct {
	Sweep struct {
		// RejectWorseningSouth additionally vetoes a candidate order that
		// would worsen south-side crossings, instead of accepting purely on
		// the strength of the north-side improvement.
		RejectWorseningSouth bool `toml:"reject_worsening_south"`
	} `toml:"sweep"`

	Output struct {
		// Format is the default wire output format for `optimize`: "wire"
		// (default) or "json".
		Format string `toml:"format"`
	} `toml:"output"`
}

// defaultConfig returns the configuration used when no --config file is
// given.
func defaultConfig() Config {
	var c Config
	c.Output.Format = "wire"
	return c
}

// loadConfig reads and parses a TOML config file at path, starting from
// defaultConfig so unset fields keep their defaults.
func loadConfig(path string) (Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
