// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the project configuration file looked up in the root.
const FileName = ".hclspec.yaml"

// Config is the resolved configuration of a run.
type Config struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	// FocusTag marks focused examples and groups.
	FocusTag string `yaml:"focus_tag"`
	// Suffix selects unit files when a directory is collected.
	Suffix string `yaml:"suffix"`
	// Exclude holds doublestar patterns, relative to the root.
	Exclude []string `yaml:"exclude"`
	// Paths are collected when no path argument is given.
	Paths []string `yaml:"paths"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
		FocusTag:  "focus",
		Suffix:    "_spec.hcl",
		Paths:     []string{"."},
	}
}

// Merge returns base with every field set in over applied on top.
func Merge(base, over Config) Config {
	if over.LogLevel != "" {
		base.LogLevel = over.LogLevel
	}
	if over.LogFormat != "" {
		base.LogFormat = over.LogFormat
	}
	if over.FocusTag != "" {
		base.FocusTag = over.FocusTag
	}
	if over.Suffix != "" {
		base.Suffix = over.Suffix
	}
	if len(over.Exclude) > 0 {
		base.Exclude = append([]string(nil), over.Exclude...)
	}
	if len(over.Paths) > 0 {
		base.Paths = append([]string(nil), over.Paths...)
	}
	return base
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("invalid log_level %q: must be 'debug', 'info', 'warn', or 'error'", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("invalid log_format %q: must be 'text' or 'json'", c.LogFormat))
	}
	if strings.TrimSpace(c.FocusTag) == "" {
		errs = append(errs, errors.New("focus_tag must not be empty"))
	}
	if c.Suffix == "" {
		errs = append(errs, errors.New("suffix must not be empty"))
	}
	for _, p := range c.Exclude {
		if !doublestar.ValidatePattern(p) {
			errs = append(errs, fmt.Errorf("invalid exclude pattern %q", p))
		}
	}
	return errors.Join(errs...)
}
