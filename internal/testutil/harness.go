package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/hclspec/internal/app"
	"github.com/specialistvlad/hclspec/internal/config"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a load run.
type HarnessResult struct {
	Root      string
	LogOutput string
	Report    *app.Report
	Err       error
	App       *app.App
}

// WriteFiles writes files, keyed by slash-separated relative path, under a
// fresh temporary root and returns the root.
func WriteFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// RunLoadTest writes files, builds an app with debug logging over them and
// loads paths. Set HCLSPEC_TEST_LOGS=true to print the captured logs.
func RunLoadTest(t *testing.T, files map[string]string, paths ...string) *HarnessResult {
	t.Helper()
	return RunLoadTestWithConfig(context.Background(), t, files, config.Default(), paths...)
}

// RunLoadTestWithConfig is RunLoadTest with a caller-provided context and
// configuration. The log level is forced to debug.
func RunLoadTestWithConfig(ctx context.Context, t *testing.T, files map[string]string, cfg config.Config, paths ...string) *HarnessResult {
	t.Helper()

	root := WriteFiles(t, files)
	cfg.LogLevel = "debug"
	logBuffer := &SafeBuffer{}
	testApp := app.NewApp(logBuffer, root, cfg)

	report, err := testApp.Load(ctx, paths...)

	if os.Getenv("HCLSPEC_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Root:      root,
		LogOutput: logBuffer.String(),
		Report:    report,
		Err:       err,
		App:       testApp,
	}
}
