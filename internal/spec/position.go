// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package spec

import "fmt"

// Position is the source location of a declaration. It is the ordering key
// used by the loader and the location reported in errors.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// Before reports whether p was declared before other. Positions in different
// files compare by line and column only.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// IsZero reports whether the position is unknown.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0 && p.Filename == ""
}

// String renders the position as file:line:column.
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}
