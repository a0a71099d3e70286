// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load layers the project file over the defaults. With an empty explicitPath
// the file is looked up in root and is optional; an explicit path must
// exist. The result is not validated, so that flags can still fix it.
func Load(root, explicitPath string) (Config, error) {
	cfg := Default()

	path := explicitPath
	if path == "" {
		path = filepath.Join(root, FileName)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
	}

	fileCfg, err := loadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	return Merge(cfg, fileCfg), nil
}

// loadFile decodes a YAML config file. Unknown keys are rejected.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return cfg, nil
}
