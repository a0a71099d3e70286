// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package declare captures the nested structure of a specification unit as it
// is declared.
//
// A Builder keeps an explicit stack of open groups. Declaring a group pushes
// a new record as a child of the current one and runs the group's block
// synchronously; every example, helper or hook declared meanwhile lands on
// the new record; leaving the block pops it. Markers such as pending, focus
// or tags are passed as Options and stored on the record as plain fields, so
// the loader only ever sees data.
//
// Shared contexts are also written to a SharedRegistry, which is scoped to a
// loading session rather than to the process.
package declare
