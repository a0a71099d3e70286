// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclunit

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// File is a parsed unit file whose top level has been split into imports,
// exports and declaration blocks.
type File struct {
	Path string
	// Imports lists the import paths exactly as written.
	Imports      []string
	ImportsRange hcl.Range

	blocks  hcl.Blocks
	exports hcl.Attributes
}

// Parse reads and splits the unit file at path. The parser caches files, so
// callers should reuse one parser per run.
func Parse(parser *hclparse.Parser, path string) (*File, hcl.Diagnostics) {
	hclFile, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, diags
	}

	content, _, contentDiags := hclFile.Body.PartialContent(fileSchema)
	diags = append(diags, contentDiags...)
	if contentDiags.HasErrors() {
		return nil, diags
	}

	exports, attrDiags := remainingAttributes(hclFile.Body, fileSchema)
	diags = append(diags, attrDiags...)
	if attrDiags.HasErrors() {
		return nil, diags
	}

	f := &File{
		Path:    path,
		blocks:  content.Blocks,
		exports: exports,
	}

	if attr, ok := content.Attributes[attrImports]; ok {
		f.ImportsRange = attr.Range
		importDiags := gohcl.DecodeExpression(attr.Expr, nil, &f.Imports)
		diags = append(diags, importDiags...)
		if importDiags.HasErrors() {
			return nil, diags
		}
	}

	return f, diags
}

// ExportNames returns the names of the file's own exports in source order.
func (f *File) ExportNames() []string {
	attrs := sortedAttributes(f.exports)
	names := make([]string, len(attrs))
	for i, attr := range attrs {
		names[i] = attr.Name
	}
	return names
}

// Exports evaluates the file's top-level attributes. Expressions may refer to
// the values in imported and use the standard functions.
func (f *File) Exports(imported map[string]cty.Value) (map[string]cty.Value, hcl.Diagnostics) {
	evalCtx := NewEvalContext(imported)
	out := make(map[string]cty.Value, len(imported)+len(f.exports))
	for name, val := range imported {
		out[name] = val
	}

	var diags hcl.Diagnostics
	for _, attr := range sortedAttributes(f.exports) {
		val, valDiags := attr.Expr.Value(evalCtx)
		diags = append(diags, valDiags...)
		if valDiags.HasErrors() {
			continue
		}
		out[attr.Name] = val
	}
	return out, diags
}
