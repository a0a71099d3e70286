// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package collector turns paths into evaluated specification units.
//
// A path may name a unit file, a directory (every file beneath it with the
// unit suffix) or a doublestar glob. Units are evaluated lazily, one at a
// time, as the caller pulls them from the sequence returned by Units, and a
// failing path never stops the paths after it.
//
// Units can reach sibling files through the `imports` attribute. Imports are
// resolved against the importing file's directory, evaluated once per
// collector and checked for cycles; their exports become variables of the
// importer and their shared contexts are registered in the session.
package collector
