package loader

import (
	"context"
	"testing"

	"github.com/specialistvlad/hclspec/internal/declare"
	"github.com/specialistvlad/hclspec/internal/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rawUnit struct {
	source string
	root   *declare.Declaration
}

func (u rawUnit) Source() string                     { return u.source }
func (u rawUnit) Declarations() *declare.Declaration { return u.root }

// declareUnit evaluates fn into a fresh registry.
func declareUnit(t *testing.T, fn declare.UnitFunc) (rawUnit, *declare.SharedRegistry) {
	t.Helper()
	reg := declare.NewSharedRegistry()
	root, err := declare.Evaluate("unit", reg, fn)
	require.NoError(t, err)
	return rawUnit{source: "unit", root: root}, reg
}

func load(t *testing.T, fn declare.UnitFunc) *spec.Node {
	t.Helper()
	unit, reg := declareUnit(t, fn)
	root, err := New(Options{}).Load(context.Background(), unit, reg)
	require.NoError(t, err)
	return root
}

func at(line, col int) declare.Option {
	return declare.At(spec.Position{Filename: "unit", Line: line, Column: col})
}

// child returns the direct child of n called name.
func child(t *testing.T, n *spec.Node, name string) *spec.Node {
	t.Helper()
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "child not found", "%q has no child %q: %v", n.Name, name, n.ChildNames())
	return nil
}

func noop(context.Context) error { return nil }

func TestLoad_OrdersExamplesByPosition(t *testing.T) {
	// --- Arrange / Act ---
	root := load(t, func(b *declare.Builder) {
		b.Describe("group", func() {
			b.It("third", noop, at(30, 3))
			b.It("first", noop, at(10, 3))
			b.It("second", noop, at(20, 3))
		}, at(1, 1))
	})

	// --- Assert ---
	group := child(t, root, "group")
	require.Equal(t, []string{"first", "second", "third"}, group.ChildNames())
	require.Same(t, group, group.Children[0].Parent())
	require.Same(t, root, group.Parent())
}

func TestLoad_ExamplesBeforeNestedGroups(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("group", func() {
			b.It("ex1", noop, at(1, 3))
			b.It("ex2", noop, at(2, 3))
			b.Context("nested", func() {
				b.It("inner", noop, at(4, 5))
			}, at(3, 3))
			b.It("ex3", noop, at(6, 3))
		}, at(1, 1))
	})

	require.Equal(t, []string{"ex1", "ex2", "ex3", "nested"}, child(t, root, "group").ChildNames())
}

func TestLoad_SourceOrderInGoUnits(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.It("first", noop)
		b.Describe("group", func() {})
		b.It("second", noop)
	})

	require.Equal(t, []string{"first", "second", "group"}, root.ChildNames())
}

func TestLoad_ChildrenFromSeveralFilesKeepDeclarationOrder(t *testing.T) {
	in := func(file string, line int) declare.Option {
		return declare.At(spec.Position{Filename: file, Line: line, Column: 1})
	}
	root := load(t, func(b *declare.Builder) {
		b.It("a", noop, in("one.go", 50))
		b.It("b", noop, in("two.go", 10))
		b.It("c", noop, in("one.go", 20))
		b.Describe("g2", func() {}, in("one.go", 5))
		b.Describe("g1", func() {}, in("two.go", 1))
	})

	require.Equal(t, []string{"a", "b", "c", "g2", "g1"}, root.ChildNames())
}

func TestLoad_MixedVariantsOrderByPositionOnly(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.It("c", noop, at(3, 1))
		b.It("a", noop, at(1, 1), declare.Pending())
		b.It("b", noop, at(2, 1))
		b.It("b2", noop, at(2, 1))
	})

	require.Equal(t, []string{"a", "b", "b2", "c"}, root.ChildNames())
	assert.Equal(t, spec.KindPendingExample, root.Children[0].Kind)
	assert.Equal(t, spec.KindExample, root.Children[1].Kind)
}

func TestLoad_TagsStayOnTheirDeclaration(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("integration group", func() {
			b.It("unit example", noop, declare.WithTags("unit"))
		}, declare.WithTags("integration"))
	})

	group := child(t, root, "integration group")
	example := child(t, group, "unit example")

	assert.True(t, group.HasTag("integration"))
	assert.False(t, group.HasTag("unit"))
	assert.True(t, example.HasTag("unit"))
	assert.False(t, example.HasTag("integration"))
	assert.True(t, example.HasEffectiveTag("integration"))
	assert.Equal(t, []string{"integration", "unit"}, example.EffectiveTags().Sorted())
}

func TestLoad_FocusBubblesToEveryAncestor(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("outer", func() {
			b.Context("inner", func() {
				b.It("focused", noop, declare.WithTags("focus", "integration"))
				b.It("plain", noop)
			})
			b.Context("sibling", func() {
				b.It("other", noop)
			})
		})
	})

	outer := child(t, root, "outer")
	inner := child(t, outer, "inner")
	focused := child(t, inner, "focused")

	assert.True(t, inner.HasTag("focus"))
	assert.True(t, outer.HasTag("focus"))
	assert.True(t, root.HasTag("focus"))
	assert.Equal(t, []string{"focus", "integration"}, focused.Tags.Sorted())
	assert.False(t, child(t, inner, "plain").HasTag("focus"))
	assert.False(t, child(t, outer, "sibling").HasTag("focus"))
}

func TestLoad_FocusOnGroupBubblesFromParent(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("outer", func() {
			b.Context("focused group", func() {
				b.It("inside", noop)
			}, declare.Focus())
		})
	})

	outer := child(t, root, "outer")
	group := child(t, outer, "focused group")

	assert.True(t, group.HasTag("focus"))
	assert.True(t, outer.HasTag("focus"))
	assert.True(t, root.HasTag("focus"))
	inside := child(t, group, "inside")
	assert.False(t, inside.HasTag("focus"))
	assert.True(t, inside.HasEffectiveTag("focus"))
}

func TestLoad_IndependentFocusesCombine(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("a", func() { b.It("x", noop, declare.Focus()) })
		b.Describe("b", func() { b.It("y", noop, declare.Focus()) })
		b.Describe("c", func() { b.It("z", noop) })
	})

	assert.True(t, child(t, root, "a").HasTag("focus"))
	assert.True(t, child(t, root, "b").HasTag("focus"))
	assert.False(t, child(t, root, "c").HasTag("focus"))
	assert.Equal(t, []string{"focus"}, root.Tags.Sorted())
}

func TestLoad_CustomFocusTag(t *testing.T) {
	unit, reg := declareUnit(t, func(b *declare.Builder) {
		b.Describe("group", func() {
			b.It("only", noop, declare.Focus())
		})
	})

	root, err := New(Options{FocusTag: "only"}).Load(context.Background(), unit, reg)
	require.NoError(t, err)

	assert.True(t, child(t, root, "group").HasTag("only"))
	assert.False(t, child(t, root, "group").HasTag("focus"))
}

func TestLoad_PendingPropagates(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("pending group", func() {
			b.It("plain example", noop)
			b.Context("plain nested", func() {
				b.It("deep example", noop)
			})
		}, declare.Pending())
		b.Describe("active", func() {
			b.It("runs", noop)
		})
	})

	group := child(t, root, "pending group")
	require.Equal(t, spec.KindPendingGroup, group.Kind)
	require.Len(t, group.Children, 2)
	assert.Equal(t, spec.KindPendingExample, group.Children[0].Kind)
	assert.Equal(t, spec.KindPendingGroup, group.Children[1].Kind)

	deep := child(t, group.Children[1], "deep example")
	assert.Equal(t, spec.KindPendingExample, deep.Kind)
	assert.True(t, deep.IsPending())

	runs := child(t, child(t, root, "active"), "runs")
	assert.Equal(t, spec.KindExample, runs.Kind)
	assert.False(t, runs.IsPending())
}

func TestLoad_PendingRoot(t *testing.T) {
	reg := declare.NewSharedRegistry()
	raw, err := declare.Evaluate("unit", reg, func(b *declare.Builder) {
		b.It("leaf", noop)
		b.Describe("group", func() { b.It("deep", noop) })
	})
	require.NoError(t, err)
	raw.Pending = true

	root, err := New(Options{}).Load(context.Background(), rawUnit{source: "unit", root: raw}, reg)
	require.NoError(t, err)

	require.Equal(t, spec.KindPendingGroup, root.Kind)
	root.Walk(func(n *spec.Node) bool {
		assert.True(t, n.Kind.IsPending(), n.String())
		return true
	})
}

func TestLoad_HelpersAreExtracted(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("Fixture#with_helper_methods", func() {
			b.Helper("wrapped_helper_method", func() int { return 1 })
			b.It("uses helpers", noop)
			b.Helper("helper_property", 42)
			b.Helper("helper_method", func() {})
		})
	})

	group := child(t, root, "Fixture#with_helper_methods")
	keys := make([]string, 0, len(group.Helpers))
	for k := range group.Helpers {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"helper_method", "helper_property", "wrapped_helper_method"}, keys)
	assert.Equal(t, spec.HelperValue, group.Helpers["helper_property"].Kind)
	assert.Equal(t, 42, group.Helpers["helper_property"].Value)
	assert.Equal(t, spec.HelperFunc, group.Helpers["helper_method"].Kind)
	assert.Equal(t, []string{"uses helpers"}, group.ChildNames())
}

func TestLoad_HooksAreExtractedInOrder(t *testing.T) {
	root := load(t, func(b *declare.Builder) {
		b.Describe("group", func() {
			b.BeforeAll(noop)
			b.BeforeEach(noop)
			b.It("example", noop)
			b.AfterEach(noop)
			b.AfterAll(noop)
		})
	})

	group := child(t, root, "group")
	var kinds []spec.HookKind
	for _, h := range group.Hooks {
		kinds = append(kinds, h.Kind)
	}
	assert.Equal(t, []spec.HookKind{spec.BeforeAll, spec.BeforeEach, spec.AfterEach, spec.AfterAll}, kinds)
	assert.Equal(t, []string{"example"}, group.ChildNames())
}
