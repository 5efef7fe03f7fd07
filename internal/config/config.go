// Copyright 2020 Denis Bernard <db047h@gmail.com>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads the settings of the bcnum command.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/db47h/bcnum"
)

// Config holds the settings of the bcnum command.
type Config struct {
	// Scale is the number of fractional digits kept by operations that
	// need one.
	Scale int `mapstructure:"scale"`
	// Ibase and Obase are the input and output bases.
	Ibase int `mapstructure:"ibase"`
	Obase int `mapstructure:"obase"`
	// LineLength is the maximum length of output lines, including the
	// trailing backslash. 0 disables line wrapping, -1 uses the width of
	// the terminal.
	LineLength int `mapstructure:"line_length"`
	// KaratsubaLen is the Karatsuba threshold in limbs. 0 selects the
	// engine default.
	KaratsubaLen int    `mapstructure:"karatsuba_len"`
	LeadingZero  bool   `mapstructure:"leading_zero"`
	StrictDigits bool   `mapstructure:"strict_digits"`
	LogLevel     string `mapstructure:"log_level"`
	// Color is one of auto, on or off.
	Color string `mapstructure:"color"`
}

// Validate checks the ranges of all settings.
func (c *Config) Validate() error {
	if c.Scale < 0 {
		return fmt.Errorf("scale must be non-negative, got %d", c.Scale)
	}
	if c.Ibase < bcnum.MinBase || c.Ibase > bcnum.MaxInBase {
		return fmt.Errorf("ibase must be in [%d, %d], got %d", bcnum.MinBase, bcnum.MaxInBase, c.Ibase)
	}
	if c.Obase < bcnum.MinBase || c.Obase > bcnum.MaxOutBase {
		return fmt.Errorf("obase must be in [%d, %d], got %d", bcnum.MinBase, bcnum.MaxOutBase, c.Obase)
	}
	if c.LineLength < -1 || c.LineLength == 1 {
		return fmt.Errorf("line_length must be -1, 0 or at least 2, got %d", c.LineLength)
	}
	if c.KaratsubaLen < 0 {
		return fmt.Errorf("karatsuba_len must be non-negative, got %d", c.KaratsubaLen)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on or off, got %q", c.Color)
	}
	return nil
}

// Level returns the log level named by LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return l, nil
}

// Engine returns the engine configuration matching c.
func (c *Config) Engine(logger *slog.Logger) bcnum.Config {
	return bcnum.Config{
		KaratsubaLen:    c.KaratsubaLen,
		OmitLeadingZero: !c.LeadingZero,
		StrictDigits:    c.StrictDigits,
		Logger:          logger,
	}
}
