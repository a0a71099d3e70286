// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclunit

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/specialistvlad/hclspec/internal/spec"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"
)

// functions available to every expression of a unit.
var functions = map[string]function.Function{
	"upper":     stdlib.UpperFunc,
	"lower":     stdlib.LowerFunc,
	"format":    stdlib.FormatFunc,
	"join":      stdlib.JoinFunc,
	"split":     stdlib.SplitFunc,
	"concat":    stdlib.ConcatFunc,
	"length":    stdlib.LengthFunc,
	"trimspace": stdlib.TrimSpaceFunc,
}

// NewEvalContext builds the evaluation context of a unit from its visible
// variables.
func NewEvalContext(vars map[string]cty.Value) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: vars,
		Functions: functions,
	}
}

// decodeTags evaluates a tags attribute into a list of strings.
func decodeTags(attr *hcl.Attribute, evalCtx *hcl.EvalContext) ([]string, hcl.Diagnostics) {
	val, diags := attr.Expr.Value(evalCtx)
	if diags.HasErrors() {
		return nil, diags
	}
	if val.IsNull() || !val.IsWhollyKnown() {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid tags",
			Detail:   "The tags attribute must be a known list of strings.",
			Subject:  attr.Expr.Range().Ptr(),
		})
	}

	converted, err := convert.Convert(val, cty.List(cty.String))
	if err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid tags",
			Detail:   fmt.Sprintf("Cannot use %s as a list of tags: %s.", val.Type().FriendlyName(), err),
			Subject:  attr.Expr.Range().Ptr(),
		})
	}

	var tags []string
	if err := gocty.FromCtyValue(converted, &tags); err != nil {
		return nil, append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid tags",
			Detail:   err.Error(),
			Subject:  attr.Expr.Range().Ptr(),
		})
	}
	return tags, diags
}

// decodeFlag evaluates a boolean marker attribute.
func decodeFlag(attr *hcl.Attribute, evalCtx *hcl.EvalContext) (bool, hcl.Diagnostics) {
	var flag bool
	diags := gohcl.DecodeExpression(attr.Expr, evalCtx, &flag)
	return flag, diags
}

// body wraps the attributes of an example or hook. When invoked it evaluates
// them in source order; an attribute that evaluates to false is a failed
// expectation.
func body(attrs hcl.Attributes, evalCtx *hcl.EvalContext) spec.Body {
	ordered := sortedAttributes(attrs)
	return func(ctx context.Context) error {
		for _, attr := range ordered {
			if err := ctx.Err(); err != nil {
				return err
			}
			val, diags := attr.Expr.Value(evalCtx)
			if diags.HasErrors() {
				return diags
			}
			if val.Type() == cty.Bool && val.IsKnown() && !val.IsNull() && val.False() {
				return fmt.Errorf("%s: expectation %q is false", attr.Range, attr.Name)
			}
		}
		return nil
	}
}
