package integration_tests

import (
	"testing"

	"github.com/specialistvlad/hclspec/internal/spec"
	"github.com/specialistvlad/hclspec/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: a shared context declared in one unit is included by another
func TestHCLFeatures_SharedContextAcrossUnits(t *testing.T) {
	// --- Arrange ---
	files := map[string]string{
		"spec/shared/behaviours.hcl": `
shared_context "a collection" {
  it "shared example" {}
}
`,
		"spec/list_spec.hcl": `
imports = ["./shared/behaviours.hcl"]

describe "List" {
  included_context "a collection" {
    it "added example" {}
  }
}
`,
		"spec/set_spec.hcl": `
imports = ["shared/behaviours.hcl"]

describe "Set" {
  included_context "a collection" {}
}
`,
	}

	// --- Act ---
	result := testutil.RunLoadTest(t, files, "spec")

	// --- Assert ---
	roots := result.RequireLoaded(t)
	require.Len(t, roots, 2)

	list := testutil.RequireChild(t, roots[0], "List")
	included := testutil.RequireChild(t, list, "a collection")
	assert.Equal(t, spec.KindGroup, included.Kind)
	assert.Equal(t, []string{"shared example", "added example"}, included.ChildNames())

	set := testutil.RequireChild(t, roots[1], "Set")
	assert.Equal(t, []string{"shared example"}, testutil.RequireChild(t, set, "a collection").ChildNames())
}

// Test for: helpers are classified without being interpreted
func TestHCLFeatures_HelperMethods(t *testing.T) {
	files := map[string]string{
		"with_helper_methods_spec.hcl": `
describe "Fixture#with_helper_methods" {
  helper "helper_method" {}
  helper_property = "value"
  helper "wrapped_helper_method" {
    wraps = "helper_method"
  }

  it "uses helpers" {}
}
`,
	}

	roots := testutil.RunLoadTest(t, files).RequireLoaded(t)
	group := testutil.RequireChild(t, roots[0], "Fixture#with_helper_methods")

	var names []string
	for name := range group.Helpers {
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"helper_method", "helper_property", "wrapped_helper_method"}, names)
	assert.Equal(t, spec.HelperValue, group.Helpers["helper_property"].Kind)
	assert.Equal(t, spec.HelperBlock, group.Helpers["helper_method"].Kind)
}
