// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package collector

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/specialistvlad/hclspec/internal/fsutil"
)

var (
	errNoUnits       = errors.New("no unit files matched")
	errNotSingleUnit = errors.New("path names more than one unit")
)

// resolve expands path into the absolute paths of the unit files it names.
func (c *Collector) resolve(path string) ([]string, error) {
	abs, err := c.absolute(path)
	if err != nil {
		return nil, &UnitNotFoundError{Path: path, Err: err}
	}

	if isPattern(path) {
		return c.glob(path, abs)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, &UnitNotFoundError{Path: path, Err: err}
	}

	if info.IsDir() {
		files, err := fsutil.FindFilesBySuffix(abs, c.opts.Suffix, c.excluded)
		if err != nil {
			return nil, &UnitNotFoundError{Path: path, Err: err}
		}
		if len(files) == 0 {
			return nil, &UnitNotFoundError{Path: path, Err: errNoUnits}
		}
		return files, nil
	}

	if !info.Mode().IsRegular() {
		return nil, &UnitNotFoundError{Path: path, Err: errors.New("not a regular file")}
	}
	f, err := os.Open(abs)
	if err != nil {
		return nil, &UnitNotFoundError{Path: path, Err: err}
	}
	f.Close()
	return []string{abs}, nil
}

func (c *Collector) glob(path, pattern string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, &UnitNotFoundError{Path: path, Err: err}
	}

	files := matches[:0]
	for _, m := range matches {
		if !c.excluded(m) {
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, &UnitNotFoundError{Path: path, Err: errNoUnits}
	}
	sort.Strings(files)
	return files, nil
}

// absolute anchors a relative path at the collector's root.
func (c *Collector) absolute(path string) (string, error) {
	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}
	root := c.opts.Root
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		root = wd
	}
	return filepath.Join(root, path), nil
}

// excluded reports whether path matches one of the exclude patterns, either
// as an absolute path or relative to the root.
func (c *Collector) excluded(path string) bool {
	if len(c.opts.Exclude) == 0 {
		return false
	}
	candidates := []string{filepath.ToSlash(path)}
	if c.opts.Root != "" {
		if rel, err := filepath.Rel(c.opts.Root, path); err == nil {
			candidates = append(candidates, filepath.ToSlash(rel))
		}
	}
	for _, pattern := range c.opts.Exclude {
		for _, candidate := range candidates {
			if ok, _ := doublestar.Match(pattern, candidate); ok {
				return true
			}
		}
	}
	return false
}

func isPattern(path string) bool {
	for _, r := range path {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}
