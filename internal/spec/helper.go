// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package spec

// HelperKind records the calling convention a helper was declared with.
type HelperKind int

const (
	// HelperValue is a property-like helper (an attribute or plain value).
	HelperValue HelperKind = iota
	// HelperFunc is a callable helper.
	HelperFunc
	// HelperBlock is a helper declared as a block whose body is kept as is.
	HelperBlock
)

func (k HelperKind) String() string {
	switch k {
	case HelperFunc:
		return "func"
	case HelperBlock:
		return "block"
	default:
		return "value"
	}
}

// Helper is a non-example declaration made inside a group. Value is opaque:
// an hcl.Expression, an hcl.Body or any Go value, depending on the source.
type Helper struct {
	Name     string
	Position Position
	Kind     HelperKind
	Value    any
}

// HookKind identifies when a hook runs relative to the examples of its group.
type HookKind int

const (
	BeforeAll HookKind = iota
	BeforeEach
	AfterEach
	AfterAll
)

func (k HookKind) String() string {
	switch k {
	case BeforeAll:
		return "before all"
	case BeforeEach:
		return "before each"
	case AfterEach:
		return "after each"
	case AfterAll:
		return "after all"
	default:
		return "unknown hook"
	}
}

// Hook is a before/after action attached to a group.
type Hook struct {
	Kind     HookKind
	Position Position
	Body     Body
}
