package testutil

import (
	"testing"

	"github.com/specialistvlad/hclspec/internal/spec"
	"github.com/stretchr/testify/require"
)

// RequireChild returns the direct child of n called name or fails the test.
func RequireChild(t *testing.T, n *spec.Node, name string) *spec.Node {
	t.Helper()
	for _, c := range n.Children {
		if c.Name == name {
			return c
		}
	}
	require.Failf(t, "child not found", "%q has no child %q; children: %v", n.Name, name, n.ChildNames())
	return nil
}

// RequireLoaded fails the test unless every unit of the run loaded, and
// returns the roots.
func (r *HarnessResult) RequireLoaded(t *testing.T) []*spec.Node {
	t.Helper()
	require.NoError(t, r.Err)
	for _, res := range r.Report.Failed() {
		require.NoError(t, res.Err, "unit %s failed", res.Path)
	}
	return r.Report.Loaded()
}
