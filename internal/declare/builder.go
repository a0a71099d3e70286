// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package declare

import (
	"fmt"
	"runtime"

	"github.com/specialistvlad/hclspec/internal/spec"
)

// Builder records declarations for one unit. It is not safe for concurrent
// use: blocks are evaluated synchronously and share a single cursor stack.
type Builder struct {
	shared *SharedRegistry
	root   *Declaration
	stack  []*Declaration
	seq    int
	err    error
}

// NewBuilder creates a builder whose root group is named after the unit.
// Shared contexts are registered in shared; a nil registry gives the builder
// a private one.
func NewBuilder(unit string, shared *SharedRegistry) *Builder {
	if shared == nil {
		shared = NewSharedRegistry()
	}
	root := &Declaration{
		Kind:     KindGroup,
		Name:     unit,
		Position: spec.Position{Filename: unit},
	}
	return &Builder{
		shared: shared,
		root:   root,
		stack:  []*Declaration{root},
	}
}

// Root returns the unit's root declaration.
func (b *Builder) Root() *Declaration {
	return b.root
}

// Depth returns the number of open groups above the root.
func (b *Builder) Depth() int {
	return len(b.stack) - 1
}

// Err returns the first error recorded while declaring.
func (b *Builder) Err() error {
	return b.err
}

// Describe declares a group and evaluates fn with the group as the cursor.
func (b *Builder) Describe(name string, fn func(), opts ...Option) *Declaration {
	return b.group(KindGroup, name, fn, callerPosition(1), opts)
}

// Context is an alias of Describe that reads better for nested scenarios.
func (b *Builder) Context(name string, fn func(), opts ...Option) *Declaration {
	return b.group(KindGroup, name, fn, callerPosition(1), opts)
}

// SharedContext declares a named group template and registers it.
func (b *Builder) SharedContext(name string, fn func(), opts ...Option) *Declaration {
	d := b.group(KindShared, name, fn, callerPosition(1), opts)
	if d != nil {
		if err := b.shared.Register(name, d); err != nil {
			b.fail(err)
		}
	}
	return d
}

// IncludedContext declares a placeholder that the loader replaces with a copy
// of the shared context called name. fn may declare additional children.
func (b *Builder) IncludedContext(name string, fn func(), opts ...Option) *Declaration {
	return b.group(KindInclude, name, fn, callerPosition(1), opts)
}

// It declares an example on the current group.
func (b *Builder) It(name string, body spec.Body, opts ...Option) *Declaration {
	d := b.declare(KindExample, name, callerPosition(1), opts)
	if d != nil {
		d.Body = body
	}
	return d
}

// Helper declares a non-example value on the current group. Func values are
// recorded as callables unless an option says otherwise.
func (b *Builder) Helper(name string, value any, opts ...Option) *Declaration {
	d := b.declare(KindHelper, name, callerPosition(1), append([]Option{helperKindOf(value)}, opts...))
	if d != nil {
		d.Value = value
	}
	return d
}

// Hook declares a before/after action on the current group.
func (b *Builder) Hook(kind spec.HookKind, body spec.Body, opts ...Option) *Declaration {
	return b.hook(kind, body, callerPosition(1), opts)
}

func (b *Builder) BeforeAll(body spec.Body, opts ...Option) *Declaration {
	return b.hook(spec.BeforeAll, body, callerPosition(1), opts)
}

func (b *Builder) BeforeEach(body spec.Body, opts ...Option) *Declaration {
	return b.hook(spec.BeforeEach, body, callerPosition(1), opts)
}

func (b *Builder) AfterEach(body spec.Body, opts ...Option) *Declaration {
	return b.hook(spec.AfterEach, body, callerPosition(1), opts)
}

func (b *Builder) AfterAll(body spec.Body, opts ...Option) *Declaration {
	return b.hook(spec.AfterAll, body, callerPosition(1), opts)
}

func (b *Builder) hook(kind spec.HookKind, body spec.Body, pos spec.Position, opts []Option) *Declaration {
	d := b.declare(KindHook, kind.String(), pos, opts)
	if d != nil {
		d.HookKind = kind
		d.Body = body
	}
	return d
}

// group declares a group-like record and runs fn with it pushed on the stack.
func (b *Builder) group(kind Kind, name string, fn func(), pos spec.Position, opts []Option) *Declaration {
	d := b.declare(kind, name, pos, opts)
	if d == nil {
		return nil
	}

	b.stack = append(b.stack, d)
	defer func() { b.stack = b.stack[:len(b.stack)-1] }()
	if fn != nil {
		fn()
	}
	return d
}

// declare creates a record, applies options and appends it to the cursor.
func (b *Builder) declare(kind Kind, name string, pos spec.Position, opts []Option) *Declaration {
	if name == "" {
		b.fail(fmt.Errorf("%s: %s declared without a name", pos, kind))
		return nil
	}

	b.seq++
	d := &Declaration{
		Kind:     kind,
		Name:     name,
		Position: pos,
		Seq:      b.seq,
	}
	for _, opt := range opts {
		opt(d)
	}

	cursor := b.stack[len(b.stack)-1]
	cursor.Children = append(cursor.Children, d)
	return d
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func helperKindOf(value any) Option {
	return func(d *Declaration) {
		if isFunc(value) {
			d.HelperKind = spec.HelperFunc
		}
	}
}

// callerPosition returns the source location skip frames above its caller.
func callerPosition(skip int) spec.Position {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return spec.Position{}
	}
	return spec.Position{Filename: file, Line: line}
}
