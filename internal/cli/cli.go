package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/specialistvlad/hclspec/internal/app"
	"github.com/specialistvlad/hclspec/internal/config"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// flags holds the raw values of the persistent flags.
type flags struct {
	root       string
	configPath string
	logLevel   string
	logFormat  string
	focusTag   string
	suffix     string
}

// NewRootCommand builds the hclspec command tree. Regular output goes to
// outW, logs and diagnostics to errW.
func NewRootCommand(outW, errW io.Writer) *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "hclspec",
		Short: "Load and inspect HCL behaviour specifications",
		Long: `hclspec collects specification units written in HCL, normalizes
their describe/context/it trees and reports what an execution engine would
see: ordering, tags, focus, pending status and shared contexts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(outW)
	rootCmd.SetErr(errW)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.root, "root", ".", "Directory that relative paths and the project config are resolved against.")
	pf.StringVar(&f.configPath, "config", "", "Path to a config file (default is <root>/"+config.FileName+").")
	pf.StringVar(&f.logLevel, "log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	pf.StringVar(&f.logFormat, "log-format", "", "Log output format. Options: 'text' or 'json'.")
	pf.StringVar(&f.focusTag, "focus-tag", "", "Tag that marks focused examples and groups.")
	pf.StringVar(&f.suffix, "suffix", "", "File suffix of units inside directory arguments.")

	rootCmd.AddCommand(newListCmd(f), newCheckCmd(f))
	return rootCmd
}

// Execute runs the command tree with args.
func Execute(args []string, outW, errW io.Writer) error {
	cmd := NewRootCommand(outW, errW)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	if err == nil {
		return nil
	}
	if _, ok := err.(*ExitError); ok {
		return err
	}
	return &ExitError{Code: 2, Message: err.Error()}
}

// newApp resolves the configuration and builds the app.
func (f *flags) newApp(cmd *cobra.Command) (*app.App, error) {
	root, err := filepath.Abs(f.root)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: fmt.Sprintf("invalid root %q: %v", f.root, err)}
	}

	cfg, err := config.Load(root, f.configPath)
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	cfg = config.Merge(cfg, config.Config{
		LogLevel:  f.logLevel,
		LogFormat: f.logFormat,
		FocusTag:  f.focusTag,
		Suffix:    f.suffix,
	})
	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}

	return app.NewApp(cmd.ErrOrStderr(), root, cfg), nil
}
