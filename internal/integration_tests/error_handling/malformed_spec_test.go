package integration_tests

import (
	"errors"
	"testing"

	"github.com/specialistvlad/hclspec/internal/loader"
	"github.com/specialistvlad/hclspec/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test for: structural errors are reported as malformed specifications
func TestErrorHandling_MalformedSpecifications(t *testing.T) {
	testCases := []struct {
		name       string
		src        string
		wantReason error
		wantLine   int
	}{
		{
			name: "unknown shared context",
			src: `
describe "x" {
  included_context "missing" {}
}`,
			wantReason: loader.ErrUnknownSharedContext,
			wantLine:   3,
		},
		{
			name: "helper clashes with example",
			src: `
describe "x" {
  subject = 1
  it "subject" {}
}`,
			wantReason: loader.ErrConflictingName,
			wantLine:   4,
		},
		{
			name: "cyclic inclusion",
			src: `
shared_context "a" {
  included_context "b" {}
}
shared_context "b" {
  included_context "a" {}
}`,
			wantReason: loader.ErrCyclicInclusion,
			wantLine:   6,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// --- Act ---
			result := testutil.RunLoadTest(t, map[string]string{"unit_spec.hcl": tc.src})

			// --- Assert ---
			require.NoError(t, result.Err)
			failed := result.Report.Failed()
			require.Len(t, failed, 1)

			var malformed *loader.MalformedSpecError
			require.True(t, errors.As(failed[0].Err, &malformed))
			assert.ErrorIs(t, malformed, loader.ErrMalformedSpecification)
			assert.ErrorIs(t, malformed, tc.wantReason)
			assert.Equal(t, tc.wantLine, malformed.Position.Line)
			assert.Contains(t, result.LogOutput, "Unit failed to load.")
		})
	}
}
