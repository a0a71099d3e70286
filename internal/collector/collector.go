// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package collector

import (
	"context"
	"fmt"
	"iter"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/hclspec/internal/ctxlog"
	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/specialistvlad/hclspec/internal/hclunit"
	"github.com/specialistvlad/hclspec/internal/session"
	"github.com/zclconf/go-cty/cty"
)

// DefaultSuffix selects unit files when a directory is collected.
const DefaultSuffix = "_spec.hcl"

// Options configures path resolution.
type Options struct {
	// Root anchors relative paths. Empty means the working directory.
	Root string
	// Suffix selects unit files inside directories.
	Suffix string
	// Exclude holds doublestar patterns of paths to leave out of directory
	// and glob expansion.
	Exclude []string
}

// funcUnit is a registered Go unit.
type funcUnit struct {
	name string
	fn   declare.UnitFunc
}

// Collector resolves and evaluates units for one session. It is not safe for
// concurrent use.
type Collector struct {
	sess   *session.Session
	opts   Options
	parser *hclparse.Parser
	// broken keeps the diagnostics of files that failed to parse. The parser
	// caches those files too and returns them without diagnostics next time.
	broken map[string]hcl.Diagnostics

	imports map[string]*imported
	loading []string
	funcs   []funcUnit
}

// New creates a collector whose units register shared contexts in sess.
func New(sess *session.Session, opts Options) *Collector {
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	return &Collector{
		sess:    sess,
		opts:    opts,
		parser:  hclparse.NewParser(),
		broken:  make(map[string]hcl.Diagnostics),
		imports: make(map[string]*imported),
	}
}

// Register adds a unit written in Go. Registered units are yielded by Units
// after the units of the given paths.
func (c *Collector) Register(name string, fn declare.UnitFunc) {
	c.funcs = append(c.funcs, funcUnit{name: name, fn: fn})
}

// Units returns a lazy sequence of the units named by paths, in input order,
// followed by the registered Go units. Each path is resolved and each unit
// evaluated only when the consumer reaches it. An error is yielded in place
// of the path or unit it concerns, and iteration goes on with the next one.
func (c *Collector) Units(ctx context.Context, paths ...string) iter.Seq2[*Unit, error] {
	return func(yield func(*Unit, error) bool) {
		logger := ctxlog.FromContext(ctx)
		logger.Debug("Collecting units.", "path_count", len(paths), "go_units", len(c.funcs))

		for _, path := range paths {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			files, err := c.resolve(path)
			if err != nil {
				logger.Debug("Path did not resolve to any unit.", "path", path, "error", err)
				if !yield(nil, err) {
					return
				}
				continue
			}
			logger.Debug("Path resolved.", "path", path, "units", len(files))
			for _, file := range files {
				if !yield(c.evaluateFile(ctx, file)) {
					return
				}
			}
		}

		for _, f := range c.funcs {
			if err := ctx.Err(); err != nil {
				yield(nil, err)
				return
			}
			if !yield(c.EvaluateFunc(ctx, f.name, f.fn)) {
				return
			}
		}
	}
}

// Collect resolves a single path and evaluates the unit it names.
func (c *Collector) Collect(ctx context.Context, path string) (*Unit, error) {
	files, err := c.resolve(path)
	if err != nil {
		return nil, err
	}
	if len(files) != 1 {
		return nil, &UnitNotFoundError{
			Path: path,
			Err:  fmt.Errorf("%w: expands to %d units; collect them with Units", errNotSingleUnit, len(files)),
		}
	}
	return c.evaluateFile(ctx, files[0])
}

// EvaluateFunc evaluates a Go unit. A panic in fn is reported as a
// UnitEvaluationError. Shared contexts reach the session only when the unit
// evaluates cleanly.
func (c *Collector) EvaluateFunc(ctx context.Context, name string, fn declare.UnitFunc) (*Unit, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating Go unit.", "unit", name)

	staged := c.sess.Shared().Stage()
	root, err := declare.Evaluate(name, staged, fn)
	if err == nil {
		err = staged.Commit()
	}
	if err != nil {
		return nil, &UnitEvaluationError{Path: name, Err: err}
	}
	return &Unit{Path: name, Root: root}, nil
}

// parse parses path, replaying the diagnostics of an earlier failed parse.
func (c *Collector) parse(path string) (*hclunit.File, hcl.Diagnostics) {
	if diags, ok := c.broken[path]; ok {
		return nil, diags
	}
	file, diags := hclunit.Parse(c.parser, path)
	if diags.HasErrors() {
		c.broken[path] = diags
	}
	return file, diags
}

// walk declares file on a staged registry and commits its shared contexts
// once the walk succeeded.
func (c *Collector) walk(file *hclunit.File, exports map[string]cty.Value) (*declare.Declaration, error) {
	staged := c.sess.Shared().Stage()
	b := declare.NewBuilder(file.Path, staged)
	if diags := file.Declare(b, hclunit.NewEvalContext(exports)); diags.HasErrors() {
		return nil, diags
	}
	if err := b.Err(); err != nil {
		return nil, err
	}
	if err := staged.Commit(); err != nil {
		return nil, err
	}
	return b.Root(), nil
}

// evaluateFile parses the file, evaluates its imports and exports and walks
// its declarations.
func (c *Collector) evaluateFile(ctx context.Context, path string) (*Unit, error) {
	ctx = ctxlog.With(ctx, "unit", path)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Evaluating unit.")

	c.loading = append(c.loading, path)
	defer func() { c.loading = c.loading[:len(c.loading)-1] }()

	file, diags := c.parse(path)
	if diags.HasErrors() {
		return nil, &UnitEvaluationError{Path: path, Err: diags}
	}

	vars, importPaths, err := c.evaluateImports(ctx, file)
	if err != nil {
		return nil, &UnitEvaluationError{Path: path, Err: err}
	}

	exports, diags := file.Exports(vars)
	if diags.HasErrors() {
		return nil, &UnitEvaluationError{Path: path, Err: diags}
	}

	root, err := c.walk(file, exports)
	if err != nil {
		return nil, &UnitEvaluationError{Path: path, Err: err}
	}

	logger.Debug("Unit evaluated.", "declarations", len(root.Children), "imports", len(importPaths))
	return &Unit{
		Path:    path,
		Root:    root,
		Exports: exports,
		Imports: importPaths,
	}, nil
}
