// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package loader turns the raw declaration tree of a unit into the normalized
// node tree that execution engines walk.
//
// Normalization orders children (leaf examples before nested groups, each by
// source position), extracts helpers and hooks, resolves included contexts
// against the session's shared contexts and finally materializes pending and
// focus status. Tags are never pushed down: inherited tags are answered by
// spec.Node.EffectiveTags at query time. The focus tag is the one exception;
// it is added to every ancestor of a focused node so that filters working at
// group granularity can see it.
package loader
