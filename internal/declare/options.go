// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package declare

import "github.com/specialistvlad/hclspec/internal/spec"

// Option marks a declaration. Options play the part of decorators: they are
// applied before the record is attached to the tree.
type Option func(*Declaration)

// WithTags attaches tags to the declaration itself.
func WithTags(tags ...string) Option {
	return func(d *Declaration) {
		d.Tags.Add(tags...)
	}
}

// Pending marks the declaration as pending.
func Pending() Option {
	return func(d *Declaration) {
		d.Pending = true
	}
}

// Focus marks the declaration as focused.
func Focus() Option {
	return func(d *Declaration) {
		d.Focused = true
	}
}

// At overrides the source position recorded for the declaration.
func At(pos spec.Position) Option {
	return func(d *Declaration) {
		d.Position = pos
	}
}

// AsFunc records a helper as callable rather than property-like.
func AsFunc() Option {
	return func(d *Declaration) {
		d.HelperKind = spec.HelperFunc
	}
}

// AsBlock records a helper as an opaque block.
func AsBlock() Option {
	return func(d *Declaration) {
		d.HelperKind = spec.HelperBlock
	}
}
