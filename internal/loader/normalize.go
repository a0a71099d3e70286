// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package loader

import (
	"cmp"
	"slices"

	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/specialistvlad/hclspec/internal/spec"
)

// normalizer holds the state of a single Load call.
type normalizer struct {
	unit     string
	shared   SharedLookup
	focusTag string

	// templates memoizes normalized shared contexts; inclusions clone them.
	templates map[*declare.Declaration]*spec.Node
	// including is the chain of shared contexts being normalized.
	including []*declare.Declaration
}

// entry is a child node waiting to be ordered.
type entry struct {
	node   *spec.Node
	copied bool
	// index orders copied children as they were in their template.
	index int
	seq   int
}

// group normalizes a group declaration into a node of the given kind.
func (n *normalizer) group(d *declare.Declaration, kind spec.Kind) (*spec.Node, error) {
	node := spec.NewGroup(kind, d.Name, d.Position, n.ownTags(d))
	if err := n.fill(node, d, nil); err != nil {
		return nil, err
	}
	return node, nil
}

// fill normalizes the declarations made inside d into node. When tmpl is
// not nil its children, helpers and hooks are copied in first.
func (n *normalizer) fill(node *spec.Node, d *declare.Declaration, tmpl *spec.Node) error {
	var entries []entry
	if tmpl != nil {
		for i, c := range tmpl.Children {
			entries = append(entries, entry{node: c.Clone(), copied: true, index: i})
		}
		for name, h := range tmpl.Helpers {
			node.Helpers[name] = h
		}
		node.Hooks = append(node.Hooks, tmpl.Hooks...)
	}

	helpers := make(map[string]struct{})
	var examples []*declare.Declaration

	for _, c := range d.Children {
		switch c.Kind {
		case declare.KindExample:
			ex := spec.NewExample(c.Name, c.Position, n.ownTags(c), c.Body)
			if c.Pending {
				ex.Kind = spec.KindPendingExample
			}
			entries = append(entries, entry{node: ex, seq: c.Seq})
			examples = append(examples, c)

		case declare.KindGroup:
			kind := spec.KindGroup
			if c.Pending {
				kind = spec.KindPendingGroup
			}
			child, err := n.group(c, kind)
			if err != nil {
				return err
			}
			entries = append(entries, entry{node: child, seq: c.Seq})

		case declare.KindShared:
			t, err := n.template(c, c)
			if err != nil {
				return err
			}
			entries = append(entries, entry{node: t.Clone(), seq: c.Seq})

		case declare.KindInclude:
			child, err := n.include(c)
			if err != nil {
				return err
			}
			entries = append(entries, entry{node: child, seq: c.Seq})

		case declare.KindHelper:
			if _, dup := helpers[c.Name]; dup {
				return n.malformed(c, ErrConflictingName)
			}
			helpers[c.Name] = struct{}{}
			node.Helpers[c.Name] = spec.Helper{
				Name:     c.Name,
				Position: c.Position,
				Kind:     c.HelperKind,
				Value:    c.Value,
			}

		case declare.KindHook:
			node.Hooks = append(node.Hooks, spec.Hook{
				Kind:     c.HookKind,
				Position: c.Position,
				Body:     c.Body,
			})
		}
	}

	for _, ex := range examples {
		if _, clash := helpers[ex.Name]; clash {
			return n.malformed(ex, ErrConflictingName)
		}
	}

	sortEntries(entries)
	children := make([]*spec.Node, len(entries))
	for i, e := range entries {
		children[i] = e.node
	}
	node.SetChildren(children)
	return nil
}

// include resolves an included context placeholder into a normal group.
func (n *normalizer) include(d *declare.Declaration) (*spec.Node, error) {
	if n.shared == nil {
		return nil, n.malformed(d, ErrUnknownSharedContext)
	}
	sd, ok := n.shared.Lookup(d.Name)
	if !ok {
		return nil, n.malformed(d, ErrUnknownSharedContext)
	}
	tmpl, err := n.template(sd, d)
	if err != nil {
		return nil, err
	}

	kind := spec.KindGroup
	if d.Pending || sd.Pending {
		kind = spec.KindPendingGroup
	}
	node := spec.NewGroup(kind, d.Name, d.Position, n.ownTags(d).Union(tmpl.Tags))
	if err := n.fill(node, d, tmpl); err != nil {
		return nil, err
	}
	return node, nil
}

// template returns the normalized shared context d. at is the declaration
// that asked for it and locates a cycle.
func (n *normalizer) template(d, at *declare.Declaration) (*spec.Node, error) {
	if t, ok := n.templates[d]; ok {
		return t, nil
	}
	if i := slices.Index(n.including, d); i >= 0 {
		chain := make([]string, 0, len(n.including)-i+1)
		for _, s := range n.including[i:] {
			chain = append(chain, s.Name)
		}
		err := n.malformed(at, ErrCyclicInclusion)
		err.Chain = append(chain, d.Name)
		return nil, err
	}

	n.including = append(n.including, d)
	defer func() { n.including = n.including[:len(n.including)-1] }()

	t, err := n.group(d, spec.KindSharedGroup)
	if err != nil {
		return nil, err
	}
	n.templates[d] = t
	return t, nil
}

// ownTags returns the tags d was declared with, plus the focus tag when d
// carries a focus marker.
func (n *normalizer) ownTags(d *declare.Declaration) spec.TagSet {
	tags := d.Tags.Clone()
	if d.Focused {
		tags.Add(n.focusTag)
	}
	return tags
}

func (n *normalizer) malformed(d *declare.Declaration, reason error) *MalformedSpecError {
	return &MalformedSpecError{
		Unit:     n.unit,
		Position: d.Position,
		Name:     d.Name,
		Reason:   reason,
	}
}

// sortEntries puts leaf examples before groups. Within a category, children
// copied from a shared context keep their template order and come first;
// local children follow by line, column and declaration sequence. When the
// local children span several files, sequence alone orders them.
func sortEntries(entries []entry) {
	bySeq := spansFiles(entries)
	slices.SortStableFunc(entries, func(a, b entry) int {
		if c := cmp.Compare(category(a.node), category(b.node)); c != 0 {
			return c
		}
		if a.copied != b.copied {
			if a.copied {
				return -1
			}
			return 1
		}
		if a.copied {
			return cmp.Compare(a.index, b.index)
		}
		if bySeq {
			return cmp.Compare(a.seq, b.seq)
		}
		return comparePositions(a, b)
	})
}

// spansFiles reports whether the local entries were declared in more than
// one file.
func spansFiles(entries []entry) bool {
	file, seen := "", false
	for _, e := range entries {
		if e.copied {
			continue
		}
		if !seen {
			file, seen = e.node.Position.Filename, true
			continue
		}
		if e.node.Position.Filename != file {
			return true
		}
	}
	return false
}

func category(n *spec.Node) int {
	if n.IsExample() {
		return 0
	}
	return 1
}

// comparePositions orders entries of one file by line, column and then
// declaration sequence.
func comparePositions(a, b entry) int {
	pa, pb := a.node.Position, b.node.Position
	if c := cmp.Compare(pa.Line, pb.Line); c != 0 {
		return c
	}
	if c := cmp.Compare(pa.Column, pb.Column); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}
