// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package loader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/hclspec/internal/spec"
)

var (
	// ErrMalformedSpecification matches every structural error found while
	// normalizing a unit.
	ErrMalformedSpecification = errors.New("malformed specification")

	// ErrUnknownSharedContext is the reason for an included context whose
	// name is not registered.
	ErrUnknownSharedContext = errors.New("unknown shared context")
	// ErrConflictingName is the reason for two helpers, or a helper and an
	// example, sharing a name in one group.
	ErrConflictingName = errors.New("conflicting name")
	// ErrCyclicInclusion is the reason for a shared context that includes
	// itself, directly or through other shared contexts.
	ErrCyclicInclusion = errors.New("cyclic shared context inclusion")
	// ErrNoDeclarations is the reason for a unit without a root declaration.
	ErrNoDeclarations = errors.New("no declarations in unit")
)

// MalformedSpecError locates a structural error in a unit.
type MalformedSpecError struct {
	Unit     string
	Position spec.Position
	Name     string
	Reason   error
	// Chain lists the shared contexts involved in a cyclic inclusion, ending
	// with the one that closed the cycle.
	Chain []string
}

func (e *MalformedSpecError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s: %v %q", e.Unit, e.Position, e.Reason, e.Name)
	if len(e.Chain) > 0 {
		fmt.Fprintf(&b, " (%s)", strings.Join(e.Chain, " -> "))
	}
	return b.String()
}

func (e *MalformedSpecError) Unwrap() []error {
	return []error{ErrMalformedSpecification, e.Reason}
}
