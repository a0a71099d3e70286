// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclunit

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/specialistvlad/hclspec/internal/spec"
)

// Directive attribute names. Any other attribute in a group is a helper.
const (
	attrImports = "imports"
	attrTags    = "tags"
	attrPending = "pending"
	attrFocus   = "focus"
)

// blockSpec describes what a block type declares.
type blockSpec struct {
	Kind    declare.Kind
	Pending bool
	Focus   bool
	// After selects after-hooks for hook blocks.
	After bool
}

// blockSpecs is the table that drives the block walker.
var blockSpecs = map[string]blockSpec{
	"describe":         {Kind: declare.KindGroup},
	"context":          {Kind: declare.KindGroup},
	"xdescribe":        {Kind: declare.KindGroup, Pending: true},
	"xcontext":         {Kind: declare.KindGroup, Pending: true},
	"fdescribe":        {Kind: declare.KindGroup, Focus: true},
	"fcontext":         {Kind: declare.KindGroup, Focus: true},
	"it":               {Kind: declare.KindExample},
	"xit":              {Kind: declare.KindExample, Pending: true},
	"fit":              {Kind: declare.KindExample, Focus: true},
	"shared_context":   {Kind: declare.KindShared},
	"included_context": {Kind: declare.KindInclude},
	"helper":           {Kind: declare.KindHelper},
	"before":           {Kind: declare.KindHook},
	"after":            {Kind: declare.KindHook, After: true},
}

// hookScopes maps a hook label to its kind, indexed by the After flag.
var hookScopes = map[string][2]spec.HookKind{
	"all":  {spec.BeforeAll, spec.AfterAll},
	"each": {spec.BeforeEach, spec.AfterEach},
}

var markerAttributes = []hcl.AttributeSchema{
	{Name: attrTags},
	{Name: attrPending},
	{Name: attrFocus},
}

func blockHeaders() []hcl.BlockHeaderSchema {
	headers := make([]hcl.BlockHeaderSchema, 0, len(blockSpecs))
	for _, name := range sortedBlockTypes() {
		headers = append(headers, hcl.BlockHeaderSchema{Type: name, LabelNames: []string{"name"}})
	}
	return headers
}

// fileSchema is the top level of a unit file. Remaining attributes are exports.
var fileSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{{Name: attrImports}},
	Blocks:     blockHeaders(),
}

// groupSchema is the body of any group-like block. Remaining attributes are helpers.
var groupSchema = &hcl.BodySchema{
	Attributes: markerAttributes,
	Blocks:     blockHeaders(),
}

// exampleSchema is the body of an example. Remaining attributes form its body.
var exampleSchema = &hcl.BodySchema{
	Attributes: markerAttributes,
}

// remainingAttributes returns the attributes of body that schema does not
// name. Blocks outside the schema are errors. Native syntax bodies are read
// directly: their JustAttributes also rejects the blocks schema consumed.
func remainingAttributes(body hcl.Body, schema *hcl.BodySchema) (hcl.Attributes, hcl.Diagnostics) {
	native, ok := body.(*hclsyntax.Body)
	if !ok {
		_, remain, diags := body.PartialContent(schema)
		if diags.HasErrors() {
			return nil, diags
		}
		return remain.JustAttributes()
	}

	known := make(map[string]bool, len(schema.Attributes)+len(schema.Blocks))
	for _, a := range schema.Attributes {
		known[a.Name] = true
	}
	var diags hcl.Diagnostics
	for _, blk := range native.Blocks {
		if schemaHasBlock(schema, blk.Type) {
			continue
		}
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Unsupported block type",
			Detail:   fmt.Sprintf("Blocks of type %q are not expected here.", blk.Type),
			Subject:  blk.TypeRange.Ptr(),
		})
	}

	attrs := make(hcl.Attributes, len(native.Attributes))
	for name, attr := range native.Attributes {
		if known[name] {
			continue
		}
		attrs[name] = attr.AsHCLAttribute()
	}
	return attrs, diags
}

func schemaHasBlock(schema *hcl.BodySchema, typeName string) bool {
	for _, h := range schema.Blocks {
		if h.Type == typeName {
			return true
		}
	}
	return false
}
