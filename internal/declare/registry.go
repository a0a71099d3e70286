// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package declare

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrDuplicateSharedContext is returned when a shared context name is
// registered twice from different places in one session.
var ErrDuplicateSharedContext = errors.New("shared context already declared")

// SharedRegistry maps shared context names to their declarations. Writes are
// serialized so units may be evaluated from several goroutines.
//
// A registry created with Stage sees its parent's entries but keeps its own
// registrations to itself until Commit.
type SharedRegistry struct {
	mu      sync.RWMutex
	entries map[string]*Declaration
	parent  *SharedRegistry
}

// NewSharedRegistry creates an empty registry.
func NewSharedRegistry() *SharedRegistry {
	return &SharedRegistry{entries: make(map[string]*Declaration)}
}

// Register stores d under name. Registering the same name again is accepted
// only when it comes from the same source position, which happens when a
// file is evaluated both as an import and as a unit.
func (r *SharedRegistry) Register(name string, d *Declaration) error {
	if r.parent != nil {
		if existing, ok := r.parent.Lookup(name); ok && existing.Position != d.Position {
			return duplicate(name, d, existing)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[name]; ok && existing.Position != d.Position {
		return duplicate(name, d, existing)
	}
	r.entries[name] = d
	return nil
}

func duplicate(name string, d, existing *Declaration) error {
	return fmt.Errorf("%w: %q at %s, first declared at %s", ErrDuplicateSharedContext, name, d.Position, existing.Position)
}

// Lookup returns the declaration registered under name.
func (r *SharedRegistry) Lookup(name string) (*Declaration, bool) {
	r.mu.RLock()
	d, ok := r.entries[name]
	r.mu.RUnlock()
	if !ok && r.parent != nil {
		return r.parent.Lookup(name)
	}
	return d, ok
}

// Names returns the visible names in lexical order.
func (r *SharedRegistry) Names() []string {
	seen := make(map[string]bool)
	if r.parent != nil {
		for _, name := range r.parent.Names() {
			seen[name] = true
		}
	}
	r.mu.RLock()
	for name := range r.entries {
		seen[name] = true
	}
	r.mu.RUnlock()

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of visible shared contexts.
func (r *SharedRegistry) Len() int {
	return len(r.Names())
}

// Stage returns an empty registry layered over r.
func (r *SharedRegistry) Stage() *SharedRegistry {
	return &SharedRegistry{entries: make(map[string]*Declaration), parent: r}
}

// Commit moves the staged registrations into the parent, in name order, and
// empties the stage. It is a no-op on a registry without a parent.
func (r *SharedRegistry) Commit() error {
	if r.parent == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		if err := r.parent.Register(name, r.entries[name]); err != nil {
			errs = append(errs, err)
		}
	}
	r.entries = make(map[string]*Declaration)
	return errors.Join(errs...)
}

// Reset forgets every registration.
func (r *SharedRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*Declaration)
}
