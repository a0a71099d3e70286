// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package spec defines the normalized tree of examples and example groups that
// the loader produces from a specification unit.
//
// # Core Concepts
//
//   - Node: a single vertex of the tree. One struct covers every variant; the
//     Kind field tells an Example from a PendingExample, an ExampleGroup, a
//     PendingExampleGroup or a SharedExampleGroup.
//
//   - TagSet: the labels attached to a node. A node's own tags are stored on
//     it; inherited tags are computed on demand by walking up the parents.
//
//   - Helper and Hook: non-example declarations kept on a group. The tree
//     stores them opaquely and never invokes them.
//
// Why a single tagged struct instead of five types?
//
// The consumers of the tree (execution engines, selection filters, listing
// tools) walk it generically and branch on the variant only at the leaves of
// their logic. Keeping one struct means that pending propagation can change a
// node's variant in place and that cloning a subtree is a single recursive
// function, while the Kind discriminant still makes every variant explicit.
package spec
