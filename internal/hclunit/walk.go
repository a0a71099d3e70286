// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclunit

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclspec/internal/declare"
)

// Declare walks the file's declaration blocks and issues them on b. Every
// problem is reported; a block that fails to decode is skipped while its
// siblings are still declared.
func (f *File) Declare(b *declare.Builder, evalCtx *hcl.EvalContext) hcl.Diagnostics {
	w := &walker{b: b, evalCtx: evalCtx}
	w.blocks(f.blocks)
	return w.diags
}

// walker drives a Builder from HCL blocks.
type walker struct {
	b       *declare.Builder
	evalCtx *hcl.EvalContext
	diags   hcl.Diagnostics
}

func (w *walker) blocks(blocks hcl.Blocks) {
	for _, blk := range blocks {
		w.block(blk)
	}
}

func (w *walker) block(blk *hcl.Block) {
	bs, ok := blockSpecs[blk.Type]
	if !ok {
		// Unreachable: the schemas only admit known block types.
		panic(fmt.Sprintf("hclunit: no block spec for %q", blk.Type))
	}
	name := blk.Labels[0]
	at := declare.At(position(blk.DefRange))

	switch bs.Kind {
	case declare.KindGroup, declare.KindShared, declare.KindInclude:
		w.group(blk, bs, name, at)
	case declare.KindExample:
		w.example(blk, bs, name, at)
	case declare.KindHelper:
		w.b.Helper(name, blk.Body, declare.AsBlock(), at)
	case declare.KindHook:
		w.hook(blk, bs, name, at)
	}
}

func (w *walker) group(blk *hcl.Block, bs blockSpec, name string, at declare.Option) {
	content, _, diags := blk.Body.PartialContent(groupSchema)
	w.diags = append(w.diags, diags...)
	if diags.HasErrors() {
		return
	}
	helpers, diags := remainingAttributes(blk.Body, groupSchema)
	w.diags = append(w.diags, diags...)
	if diags.HasErrors() {
		return
	}
	opts, ok := w.markers(content.Attributes, bs, at)
	if !ok {
		return
	}

	fn := func() {
		for _, attr := range sortedAttributes(helpers) {
			w.b.Helper(attr.Name, attr.Expr, declare.At(position(attr.Range)))
		}
		w.blocks(content.Blocks)
	}

	switch bs.Kind {
	case declare.KindShared:
		w.b.SharedContext(name, fn, opts...)
	case declare.KindInclude:
		w.b.IncludedContext(name, fn, opts...)
	default:
		w.b.Describe(name, fn, opts...)
	}
}

func (w *walker) example(blk *hcl.Block, bs blockSpec, name string, at declare.Option) {
	content, _, diags := blk.Body.PartialContent(exampleSchema)
	w.diags = append(w.diags, diags...)
	if diags.HasErrors() {
		return
	}
	attrs, diags := remainingAttributes(blk.Body, exampleSchema)
	w.diags = append(w.diags, diags...)
	if diags.HasErrors() {
		return
	}
	opts, ok := w.markers(content.Attributes, bs, at)
	if !ok {
		return
	}
	w.b.It(name, body(attrs, w.evalCtx), opts...)
}

func (w *walker) hook(blk *hcl.Block, bs blockSpec, scope string, at declare.Option) {
	kinds, ok := hookScopes[scope]
	if !ok {
		w.diags = append(w.diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid hook scope",
			Detail:   fmt.Sprintf("A %s block must be labelled \"each\" or \"all\", not %q.", blk.Type, scope),
			Subject:  blk.LabelRanges[0].Ptr(),
		})
		return
	}
	attrs, diags := blk.Body.JustAttributes()
	w.diags = append(w.diags, diags...)
	if diags.HasErrors() {
		return
	}

	kind := kinds[0]
	if bs.After {
		kind = kinds[1]
	}
	w.b.Hook(kind, body(attrs, w.evalCtx), at)
}

// markers turns the block's type and directive attributes into options.
func (w *walker) markers(attrs hcl.Attributes, bs blockSpec, at declare.Option) ([]declare.Option, bool) {
	opts := []declare.Option{at}
	if bs.Pending {
		opts = append(opts, declare.Pending())
	}
	if bs.Focus {
		opts = append(opts, declare.Focus())
	}

	ok := true
	if attr, exists := attrs[attrTags]; exists {
		tags, diags := decodeTags(attr, w.evalCtx)
		w.diags = append(w.diags, diags...)
		if diags.HasErrors() {
			ok = false
		} else {
			opts = append(opts, declare.WithTags(tags...))
		}
	}
	for _, marker := range []struct {
		name string
		opt  declare.Option
	}{
		{attrPending, declare.Pending()},
		{attrFocus, declare.Focus()},
	} {
		attr, exists := attrs[marker.name]
		if !exists {
			continue
		}
		set, diags := decodeFlag(attr, w.evalCtx)
		w.diags = append(w.diags, diags...)
		if diags.HasErrors() {
			ok = false
			continue
		}
		if set {
			opts = append(opts, marker.opt)
		}
	}
	return opts, ok
}
