// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "BCNUM"

// flagKeys maps command line flags to configuration keys.
var flagKeys = map[string]string{
	"scale":         "scale",
	"ibase":         "ibase",
	"obase":         "obase",
	"line-length":   "line_length",
	"karatsuba-len": "karatsuba_len",
	"leading-zero":  "leading_zero",
	"strict-digits": "strict_digits",
	"log-level":     "log_level",
	"color":         "color",
}

// setDefaults sets the default values, those of a plain bc session.
func setDefaults(v *viper.Viper) {
	v.SetDefault("scale", 0)
	v.SetDefault("ibase", 10)
	v.SetDefault("obase", 10)
	v.SetDefault("line_length", 70)
	v.SetDefault("karatsuba_len", 0)
	v.SetDefault("leading_zero", true)
	v.SetDefault("strict_digits", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("color", "auto")
}

// Load loads the configuration from multiple sources in priority order:
//  1. Default values
//  2. Configuration file, if path is not empty
//  3. Environment variables (BCNUM_ prefix)
//  4. Command line flags that were set explicitly
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}
