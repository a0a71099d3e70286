// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/specialistvlad/hclspec/internal/ctxlog"
	"github.com/specialistvlad/hclspec/internal/hclunit"
	"github.com/zclconf/go-cty/cty"
)

// imported is the cached result of evaluating an imported file.
type imported struct {
	path    string
	exports map[string]cty.Value
}

// evaluateImports evaluates the direct imports of file and merges their
// exports. Later imports win when two export the same name.
func (c *Collector) evaluateImports(ctx context.Context, file *hclunit.File) (map[string]cty.Value, []string, error) {
	vars := make(map[string]cty.Value)
	paths := make([]string, 0, len(file.Imports))

	for _, spec := range file.Imports {
		path := spec
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(file.Path), path)
		}
		path = filepath.Clean(path)

		imp, err := c.importFile(ctx, path)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: import %q: %w", file.ImportsRange, spec, err)
		}
		for name, val := range imp.exports {
			vars[name] = val
		}
		paths = append(paths, path)
	}
	return vars, paths, nil
}

// importFile evaluates path as an import. Its declarations are walked on a
// detached builder so that shared contexts reach the session registry while
// its groups stay out of the importer's tree.
func (c *Collector) importFile(ctx context.Context, path string) (*imported, error) {
	if slices.Contains(c.loading, path) {
		chain := append(slices.Clone(c.loading), path)
		return nil, fmt.Errorf("%w: %s", ErrImportCycle, strings.Join(chain, " -> "))
	}
	if imp, ok := c.imports[path]; ok {
		return imp, nil
	}

	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating import.", "import", path)

	if _, err := os.Stat(path); err != nil {
		return nil, err
	}

	c.loading = append(c.loading, path)
	defer func() { c.loading = c.loading[:len(c.loading)-1] }()

	file, diags := c.parse(path)
	if diags.HasErrors() {
		return nil, diags
	}
	vars, _, err := c.evaluateImports(ctx, file)
	if err != nil {
		return nil, err
	}
	exports, diags := file.Exports(vars)
	if diags.HasErrors() {
		return nil, diags
	}

	if _, err := c.walk(file, exports); err != nil {
		return nil, err
	}

	imp := &imported{path: path, exports: exports}
	c.imports[path] = imp
	return imp, nil
}
