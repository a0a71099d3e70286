package fsutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindFilesBySuffix(t *testing.T) {
	// --- Arrange ---
	root := t.TempDir()
	for _, name := range []string{
		"b_spec.hcl",
		"a_spec.hcl",
		"helpers.hcl",
		"nested/c_spec.hcl",
		"fixtures/d_spec.hcl",
	} {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0600))
	}
	skipFixtures := func(p string) bool { return strings.HasSuffix(p, "fixtures") }

	// --- Act ---
	files, err := FindFilesBySuffix(root, "_spec.hcl", skipFixtures)

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(root, "a_spec.hcl"),
		filepath.Join(root, "b_spec.hcl"),
		filepath.Join(root, "nested", "c_spec.hcl"),
	}, files)
}

func TestFindFilesBySuffix_PanicsOnEmptySuffix(t *testing.T) {
	require.Panics(t, func() {
		_, _ = FindFilesBySuffix(t.TempDir(), "", nil)
	})
}
