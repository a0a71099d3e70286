package cli

import (
	"fmt"

	"github.com/specialistvlad/hclspec/internal/spec"
	"github.com/spf13/cobra"
)

func newListCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "Print the normalized tree of every unit",
		Long: `Print the normalized tree of every unit. Examples come before nested
groups, and pending, shared and focused nodes are marked. Units that fail
to load are reported on stderr.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.newApp(cmd)
			if err != nil {
				return err
			}
			report, err := a.Load(cmd.Context(), args...)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), a.Config().FocusTag)
			for _, res := range report.Results {
				if res.Err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
					continue
				}
				p.printTree(res.Root)
			}
			return nil
		},
	}
}

func newCheckCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [paths...]",
		Short: "Load every unit and report the ones that fail",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := f.newApp(cmd)
			if err != nil {
				return err
			}
			report, err := a.Load(cmd.Context(), args...)
			if err != nil {
				return err
			}

			p := newPrinter(cmd.OutOrStdout(), a.Config().FocusTag)
			p.alignPaths(report)
			for _, res := range report.Results {
				if res.Err != nil {
					p.printFailure(res.Path, res.Err)
					continue
				}
				p.printSummary(res.Path, count(res.Root))
			}

			failed := len(report.Failed())
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d units, %d failed\n", len(report.Results), failed)
			if failed > 0 {
				return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d units failed to load", failed, len(report.Results))}
			}
			return nil
		},
	}
}

// counts are the per-unit figures shown by check.
type counts struct {
	examples int
	pending  int
}

func count(root *spec.Node) counts {
	var c counts
	root.Walk(func(n *spec.Node) bool {
		if !n.Executable() {
			return false
		}
		if n.IsExample() {
			c.examples++
			if n.IsPending() {
				c.pending++
			}
		}
		return true
	})
	return c
}
