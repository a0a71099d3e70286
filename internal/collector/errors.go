// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package collector

import (
	"errors"
	"fmt"
)

var (
	// ErrUnitNotFound matches errors for paths that do not resolve to a
	// readable unit.
	ErrUnitNotFound = errors.New("unit not found")
	// ErrUnitEvaluation matches errors raised while evaluating a unit's
	// top-level declarations.
	ErrUnitEvaluation = errors.New("unit evaluation failed")
	// ErrImportCycle matches import chains that lead back to a file being
	// evaluated.
	ErrImportCycle = errors.New("import cycle detected")
)

// UnitNotFoundError reports a path that could not be resolved.
type UnitNotFoundError struct {
	Path string
	Err  error
}

func (e *UnitNotFoundError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("unit not found: %s", e.Path)
	}
	return fmt.Sprintf("unit not found: %s: %v", e.Path, e.Err)
}

func (e *UnitNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrUnitNotFound}
	}
	return []error{ErrUnitNotFound, e.Err}
}

// UnitEvaluationError wraps a failure raised while evaluating a unit.
type UnitEvaluationError struct {
	Path string
	Err  error
}

func (e *UnitEvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate unit %s: %v", e.Path, e.Err)
}

func (e *UnitEvaluationError) Unwrap() []error {
	return []error{ErrUnitEvaluation, e.Err}
}
