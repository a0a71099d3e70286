// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package declare

import (
	"fmt"
	"reflect"
)

// UnitFunc is a specification unit written in Go.
type UnitFunc func(b *Builder)

// Evaluate runs fn against a fresh builder and returns the unit's root
// declaration. A panic raised by fn is returned as an error.
func Evaluate(unit string, shared *SharedRegistry, fn UnitFunc) (root *Declaration, err error) {
	b := NewBuilder(unit, shared)
	defer func() {
		if r := recover(); r != nil {
			root = nil
			err = fmt.Errorf("panic while evaluating %s: %v", unit, r)
		}
	}()

	fn(b)
	if err := b.Err(); err != nil {
		return nil, err
	}
	return b.Root(), nil
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}
