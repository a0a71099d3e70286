// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hclunit

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/hclspec/internal/spec"
)

// position converts the start of an HCL range to a spec.Position.
func position(rng hcl.Range) spec.Position {
	return spec.Position{
		Filename: rng.Filename,
		Line:     rng.Start.Line,
		Column:   rng.Start.Column,
	}
}

// sortedAttributes returns attrs in source order.
func sortedAttributes(attrs hcl.Attributes) []*hcl.Attribute {
	out := make([]*hcl.Attribute, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, attr)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Range.Start.Byte < out[j].Range.Start.Byte
	})
	return out
}

func sortedBlockTypes() []string {
	out := make([]string, 0, len(blockSpecs))
	for name := range blockSpecs {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
