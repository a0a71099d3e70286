package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/hclspec/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listUnit = `
describe "Fixture" {
  tags = ["integration"]

  it "first example" {}
  context "#inner" {
    fit "focused" {}
  }
  it "second example" {
    tags = ["unit"]
  }
  xit "skipped" {}
}

shared_context "Shared" {
  it "shared example" {}
}
`

func TestList_PrintsNormalizedTree(t *testing.T) {
	// --- Arrange ---
	root := testutil.WriteFiles(t, map[string]string{"fixture_spec.hcl": listUnit})
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	err := Execute([]string{"list", "--root", root}, out, errOut)

	// --- Assert ---
	require.NoError(t, err)
	got := out.String()
	assert.Contains(t, got, filepath.Join(root, "fixture_spec.hcl"))
	assert.Contains(t, got, "Fixture *focus [integration]")
	assert.Contains(t, got, "second example [unit]")
	assert.Contains(t, got, "skipped (pending)")
	assert.Contains(t, got, "Shared (shared)")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("skipped")), bytes.Index(out.Bytes(), []byte("#inner")),
		"examples are listed before nested groups")
}

func TestList_ReportsFailuresOnStderr(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{"broken_spec.hcl": `describe "x" {`})
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := Execute([]string{"list", "--root", root, "--log-level", "error"}, out, errOut)

	require.NoError(t, err)
	assert.Contains(t, errOut.String(), "failed to evaluate unit")
	assert.Empty(t, out.String())
}

func TestCheck_ExitCodes(t *testing.T) {
	testCases := []struct {
		name     string
		files    map[string]string
		wantCode int
		wantOut  []string
	}{
		{
			name:    "all units load",
			files:   map[string]string{"a_spec.hcl": listUnit},
			wantOut: []string{"ok", "4 examples, 1 pending", "1 units, 0 failed"},
		},
		{
			name: "one unit fails",
			files: map[string]string{
				"a_spec.hcl": listUnit,
				"b_spec.hcl": "describe \"b\" {\n  included_context \"missing\" {}\n}\n",
			},
			wantCode: 1,
			wantOut:  []string{"FAIL", "unknown shared context", "2 units, 1 failed"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			root := testutil.WriteFiles(t, tc.files)
			out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

			err := Execute([]string{"check", "--root", root}, out, errOut)

			if tc.wantCode == 0 {
				require.NoError(t, err)
			} else {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, tc.wantCode, exitErr.Code)
			}
			for _, want := range tc.wantOut {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestCheck_UsesProjectConfigAndFlags(t *testing.T) {
	root := testutil.WriteFiles(t, map[string]string{
		".hclspec.yaml":    "suffix: .unit.hcl\nlog_level: debug\n",
		"a.unit.hcl":       "describe \"a\" {\n  it \"x\" {}\n}\n",
		"ignored_spec.hcl": `describe "broken" {`,
	})
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}

	err := Execute([]string{"check", "--root", root, "--log-format", "json"}, out, errOut)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "1 units, 0 failed")
	assert.Contains(t, errOut.String(), `"msg":"Load started."`)
}

func TestExecute_InvalidInput(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "bad log level", args: []string{"check", "--log-level", "loud"}, wantMsg: "invalid log_level"},
		{name: "unknown flag", args: []string{"check", "--nope"}, wantMsg: "unknown flag: --nope"},
		{name: "unknown command", args: []string{"run"}, wantMsg: `unknown command "run"`},
		{name: "missing config", args: []string{"check", "--config", filepath.Join(os.TempDir(), "hclspec-missing.yaml")}, wantMsg: "error loading config"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Execute(tc.args, &bytes.Buffer{}, &bytes.Buffer{})

			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestExecute_Help(t *testing.T) {
	out := &bytes.Buffer{}

	err := Execute([]string{"--help"}, out, &bytes.Buffer{})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "check")
	assert.Contains(t, out.String(), "list")
}
