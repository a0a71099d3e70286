// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package config holds the settings of an hclspec run. Settings are layered:
// built-in defaults, then the project file (.hclspec.yaml in the invocation
// root, or an explicit --config path), then command-line flags.
package config
