// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package loader

import (
	"context"

	"github.com/specialistvlad/hclspec/internal/ctxlog"
	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/specialistvlad/hclspec/internal/spec"
)

// DefaultFocusTag is the tag that marks focused nodes.
const DefaultFocusTag = "focus"

// Options configures a Loader.
type Options struct {
	// FocusTag is added by focus markers and bubbled to ancestors.
	FocusTag string
}

// Unit is the evaluated source the loader consumes.
type Unit interface {
	Source() string
	Declarations() *declare.Declaration
}

// SharedLookup resolves shared contexts by name. It is only read.
type SharedLookup interface {
	Lookup(name string) (*declare.Declaration, bool)
}

// Loader normalizes units. It holds no per-unit state and may be reused.
type Loader struct {
	focusTag string
}

// New creates a Loader.
func New(opts Options) *Loader {
	if opts.FocusTag == "" {
		opts.FocusTag = DefaultFocusTag
	}
	return &Loader{focusTag: opts.FocusTag}
}

// FocusTag returns the tag the loader treats as focus.
func (l *Loader) FocusTag() string {
	return l.focusTag
}

// Load returns the normalized root group of unit. Neither the unit's
// declarations nor the shared contexts are modified. A nil shared resolves
// no included contexts.
func (l *Loader) Load(ctx context.Context, unit Unit, shared SharedLookup) (*spec.Node, error) {
	logger := ctxlog.FromContext(ctx)
	raw := unit.Declarations()
	if raw == nil {
		return nil, &MalformedSpecError{Unit: unit.Source(), Name: unit.Source(), Reason: ErrNoDeclarations}
	}

	n := &normalizer{
		unit:      unit.Source(),
		shared:    shared,
		focusTag:  l.focusTag,
		templates: make(map[*declare.Declaration]*spec.Node),
	}

	kind := spec.KindGroup
	if raw.Pending {
		kind = spec.KindPendingGroup
	}
	root, err := n.group(raw, kind)
	if err != nil {
		logger.Debug("Unit is malformed.", "unit", unit.Source(), "error", err)
		return nil, err
	}

	materializePending(root, false)
	bubbleFocus(root, l.focusTag)

	logger.Debug("Unit loaded.",
		"unit", unit.Source(),
		"children", len(root.Children),
		"shared_templates", len(n.templates),
	)
	return root, nil
}

// materializePending turns every node below a pending group into its pending
// variant.
func materializePending(n *spec.Node, inherited bool) {
	if inherited {
		n.Kind = n.Kind.Pending()
	}
	pending := inherited || n.Kind.IsPending()
	for _, c := range n.Children {
		materializePending(c, pending)
	}
}

// bubbleFocus adds tag to every ancestor of each node that carries it. The
// walk stops at a shared group, which is never run and so cannot focus the
// groups around it.
func bubbleFocus(root *spec.Node, tag string) {
	var focused []*spec.Node
	root.Walk(func(n *spec.Node) bool {
		if n.HasTag(tag) {
			focused = append(focused, n)
		}
		return true
	})

	for _, n := range focused {
		for cur := n; cur.Kind != spec.KindSharedGroup && cur.Parent() != nil; {
			cur = cur.Parent()
			cur.Tags.Add(tag)
		}
	}
}
