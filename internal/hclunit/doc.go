// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package hclunit evaluates specification units written in HCL.
//
// Evaluating a unit means walking its blocks in source order and issuing the
// matching declarations on a declare.Builder: a `describe` block becomes a
// Describe call whose block walks the nested blocks, an `it` block becomes an
// It call, and so on. The result is the same raw declaration tree a Go unit
// would produce, so the loader never needs to know where a unit came from.
//
// Why evaluate through cty?
//
// Tags, markers and exports are HCL expressions. Evaluating them with an
// hcl.EvalContext lets a unit compute tags from values declared in a sibling
// file (`tags = [suite_tag]`) or with the standard functions (`upper`,
// `format`, ...), while example and hook bodies stay unevaluated until an
// execution engine invokes them.
package hclunit
