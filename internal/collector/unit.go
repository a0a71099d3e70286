// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package collector

import (
	"sort"

	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/zclconf/go-cty/cty"
)

// Unit is one evaluated specification source.
type Unit struct {
	// Path is the absolute path of the file, or the registered name of a Go
	// unit.
	Path string
	// Root is the raw declaration tree produced while evaluating the unit.
	Root *declare.Declaration
	// Exports holds every name visible at the unit's top level: its own
	// exports and those of its imports.
	Exports map[string]cty.Value
	// Imports lists the resolved paths of the unit's direct imports.
	Imports []string
}

// Source returns the unit's path.
func (u *Unit) Source() string {
	return u.Path
}

// Declarations returns the unit's raw declaration tree.
func (u *Unit) Declarations() *declare.Declaration {
	return u.Root
}

// Lookup returns the value exported under name.
func (u *Unit) Lookup(name string) (cty.Value, bool) {
	v, ok := u.Exports[name]
	return v, ok
}

// Names returns the exported names in lexical order.
func (u *Unit) Names() []string {
	names := make([]string, 0, len(u.Exports))
	for name := range u.Exports {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
