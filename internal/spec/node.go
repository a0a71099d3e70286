// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines Node, the single vertex type of the specification tree.
//
// Why keep parent links?
//
// Tags declared on a group are inherited by everything beneath it for
// filtering purposes, and a pending group makes its whole subtree pending.
// Both are answered by walking up the tree from the node being asked, which
// keeps a node's own tag set exactly as the author declared it.
package spec

import (
	"context"
	"fmt"
)

// Kind discriminates the variants of a Node.
type Kind int

const (
	// KindExample is an executable leaf.
	KindExample Kind = iota
	// KindPendingExample is a leaf that is reported as pending instead of run.
	KindPendingExample
	// KindGroup is a normal example group.
	KindGroup
	// KindPendingGroup is a group whose whole subtree is pending.
	KindPendingGroup
	// KindSharedGroup is a named template that is only run when included.
	KindSharedGroup
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindExample:
		return "Example"
	case KindPendingExample:
		return "PendingExample"
	case KindGroup:
		return "ExampleGroup"
	case KindPendingGroup:
		return "PendingExampleGroup"
	case KindSharedGroup:
		return "SharedExampleGroup"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// IsExample reports whether the kind is a leaf variant.
func (k Kind) IsExample() bool {
	return k == KindExample || k == KindPendingExample
}

// IsGroup reports whether the kind is a composite variant.
func (k Kind) IsGroup() bool {
	return k == KindGroup || k == KindPendingGroup || k == KindSharedGroup
}

// IsPending reports whether the kind is one of the pending variants.
func (k Kind) IsPending() bool {
	return k == KindPendingExample || k == KindPendingGroup
}

// Pending returns the pending counterpart of a normal variant. Pending and
// shared kinds are returned unchanged.
func (k Kind) Pending() Kind {
	switch k {
	case KindExample:
		return KindPendingExample
	case KindGroup:
		return KindPendingGroup
	default:
		return k
	}
}

// Body is the action of an example or hook. The tree carries it for the
// execution engine; loading never invokes it.
type Body func(ctx context.Context) error

// Node is an Example, PendingExample, ExampleGroup, PendingExampleGroup or
// SharedExampleGroup, depending on Kind.
type Node struct {
	Kind     Kind
	Name     string
	Position Position
	// Tags holds the node's own tags. Inherited tags are not copied here.
	Tags TagSet

	// Body is set on examples only.
	Body Body

	// Children, Helpers and Hooks are set on groups only.
	Children []*Node
	Helpers  map[string]Helper
	Hooks    []Hook

	parent *Node
}

// NewExample creates a leaf node.
func NewExample(name string, pos Position, tags TagSet, body Body) *Node {
	return &Node{Kind: KindExample, Name: name, Position: pos, Tags: tags.Clone(), Body: body}
}

// NewGroup creates an empty group node of the given kind.
func NewGroup(kind Kind, name string, pos Position, tags TagSet) *Node {
	return &Node{
		Kind:     kind,
		Name:     name,
		Position: pos,
		Tags:     tags.Clone(),
		Helpers:  make(map[string]Helper),
	}
}

// IsExample reports whether the node is a leaf.
func (n *Node) IsExample() bool {
	return n.Kind.IsExample()
}

// IsGroup reports whether the node is a group of any variant.
func (n *Node) IsGroup() bool {
	return n.Kind.IsGroup()
}

// Parent returns the enclosing group, or nil for a unit root.
func (n *Node) Parent() *Node {
	return n.parent
}

// AppendChild adds child at the end of the children and links it to n.
func (n *Node) AppendChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// SetChildren replaces the children and links each of them to n.
func (n *Node) SetChildren(children []*Node) {
	for _, c := range children {
		c.parent = n
	}
	n.Children = children
}

// HasTag reports whether the node itself carries tag.
func (n *Node) HasTag(tag string) bool {
	return n.Tags.Has(tag)
}

// EffectiveTags returns the union of the node's own tags and the tags of all
// its ancestors.
func (n *Node) EffectiveTags() TagSet {
	out := TagSet{}
	for cur := n; cur != nil; cur = cur.parent {
		for t := range cur.Tags {
			out[t] = struct{}{}
		}
	}
	return out
}

// HasEffectiveTag reports whether the node or any ancestor carries tag.
func (n *Node) HasEffectiveTag(tag string) bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Tags.Has(tag) {
			return true
		}
	}
	return false
}

// IsPending reports whether the node or any of its ancestors is a pending
// variant.
func (n *Node) IsPending() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Kind.IsPending() {
			return true
		}
	}
	return false
}

// Executable reports whether an engine should consider the node for running:
// it must not be, or live inside, a shared example group.
func (n *Node) Executable() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if cur.Kind == KindSharedGroup {
			return false
		}
	}
	return true
}

// Path returns the names from the unit root down to n.
func (n *Node) Path() []string {
	var rev []string
	for cur := n; cur != nil; cur = cur.parent {
		rev = append(rev, cur.Name)
	}
	out := make([]string, len(rev))
	for i, name := range rev {
		out[len(rev)-1-i] = name
	}
	return out
}

// Walk visits n and its descendants depth-first in child order. Returning
// false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// ChildNames returns the names of the direct children in order.
func (n *Node) ChildNames() []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = c.Name
	}
	return out
}

// String returns a short description used in logs.
func (n *Node) String() string {
	return fmt.Sprintf("%s %q (%s)", n.Kind, n.Name, n.Position)
}
