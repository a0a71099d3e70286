package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/hclspec/internal/collector"
	"github.com/specialistvlad/hclspec/internal/ctxlog"
	"github.com/specialistvlad/hclspec/internal/session"
	"github.com/specialistvlad/hclspec/internal/spec"
)

// Result is the outcome of loading one unit. Exactly one of Root and Err is
// set.
type Result struct {
	// Path is the unit path, or the argument that failed to resolve.
	Path string
	Root *spec.Node
	Err  error
}

// Report collects the results of a run in collection order.
type Report struct {
	Results []Result
}

// Failed returns the results that carry an error.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if res.Err != nil {
			out = append(out, res)
		}
	}
	return out
}

// Loaded returns the normalized roots of the units that loaded.
func (r *Report) Loaded() []*spec.Node {
	var out []*spec.Node
	for _, res := range r.Results {
		if res.Root != nil {
			out = append(out, res.Root)
		}
	}
	return out
}

// Load collects and normalizes the units named by paths, followed by the
// registered Go units. With no paths the configured default paths are used.
// A failing unit is recorded in the report and loading goes on; only a
// cancelled context stops the run early. The loading session is closed
// before Load returns.
func (a *App) Load(ctx context.Context, paths ...string) (*Report, error) {
	ctx = a.Context(ctx)
	logger := ctxlog.FromContext(ctx)
	if len(paths) == 0 {
		paths = a.config.Paths
	}
	logger.Debug("Load started.", "paths", paths, "root", a.root)

	sess := session.New(ctx)
	defer func() {
		if err := sess.Close(ctx); err != nil {
			logger.Error("Failed to close loading session.", "error", err)
		}
	}()

	coll := collector.New(sess, collector.Options{
		Root:    a.root,
		Suffix:  a.config.Suffix,
		Exclude: a.config.Exclude,
	})
	for _, u := range a.units {
		coll.Register(u.name, u.fn)
	}

	report := &Report{}
	for unit, err := range coll.Units(ctx, paths...) {
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
				return report, fmt.Errorf("load interrupted: %w", err)
			}
			logger.Warn("Unit failed to evaluate.", "error", err)
			report.Results = append(report.Results, Result{Path: failedPath(err), Err: err})
			continue
		}

		root, err := a.loader.Load(ctx, unit, sess.Shared())
		if err != nil {
			logger.Warn("Unit failed to load.", "unit", unit.Path, "error", err)
			report.Results = append(report.Results, Result{Path: unit.Path, Err: err})
			continue
		}
		report.Results = append(report.Results, Result{Path: unit.Path, Root: root})
	}

	logger.Info("Load finished.", "units", len(report.Results), "failed", len(report.Failed()))
	return report, nil
}

// failedPath extracts the path a collector error refers to.
func failedPath(err error) string {
	var notFound *collector.UnitNotFoundError
	if errors.As(err, &notFound) {
		return notFound.Path
	}
	var evalErr *collector.UnitEvaluationError
	if errors.As(err, &evalErr) {
		return evalErr.Path
	}
	return ""
}
