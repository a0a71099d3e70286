// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package declare

import (
	"fmt"

	"github.com/specialistvlad/hclspec/internal/spec"
)

// Kind discriminates raw declarations.
type Kind int

const (
	KindGroup Kind = iota
	KindExample
	KindShared
	KindInclude
	KindHelper
	KindHook
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindExample:
		return "example"
	case KindShared:
		return "shared context"
	case KindInclude:
		return "included context"
	case KindHelper:
		return "helper"
	case KindHook:
		return "hook"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Declaration is the raw record of one declaration, before normalization.
type Declaration struct {
	Kind     Kind
	Name     string
	Position spec.Position
	// Seq is the order in which the declaration was made within its unit.
	Seq int

	Tags    spec.TagSet
	Pending bool
	Focused bool

	// Children of a group, shared context or included context, in
	// declaration order.
	Children []*Declaration

	// Body of an example or hook.
	Body spec.Body
	// HookKind of a hook.
	HookKind spec.HookKind
	// HelperKind and Value of a helper.
	HelperKind spec.HelperKind
	Value      any
}

// IsGroup reports whether the declaration produces a group node.
func (d *Declaration) IsGroup() bool {
	return d.Kind == KindGroup || d.Kind == KindShared || d.Kind == KindInclude
}

// Find returns the first direct child with the given kind and name.
func (d *Declaration) Find(kind Kind, name string) *Declaration {
	for _, c := range d.Children {
		if c.Kind == kind && c.Name == name {
			return c
		}
	}
	return nil
}
