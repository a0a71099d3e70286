// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package spec

// Clone returns a structural copy of the subtree rooted at n. Every node, tag
// set, helper map and hook slice is new, so mutating the copy never affects
// n. Bodies and opaque helper values are shared; they are never mutated by
// the tree. The returned node has no parent.
func (n *Node) Clone() *Node {
	c := &Node{
		Kind:     n.Kind,
		Name:     n.Name,
		Position: n.Position,
		Tags:     n.Tags.Clone(),
		Body:     n.Body,
	}
	if n.Helpers != nil {
		c.Helpers = make(map[string]Helper, len(n.Helpers))
		for k, v := range n.Helpers {
			c.Helpers[k] = v
		}
	}
	if n.Hooks != nil {
		c.Hooks = append([]Hook(nil), n.Hooks...)
	}
	if n.Children != nil {
		c.Children = make([]*Node, 0, len(n.Children))
		for _, child := range n.Children {
			c.AppendChild(child.Clone())
		}
	}
	return c
}
