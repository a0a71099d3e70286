package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/tree"
	"github.com/mattn/go-runewidth"
	"github.com/specialistvlad/hclspec/internal/app"
	"github.com/specialistvlad/hclspec/internal/spec"
)

// printer renders loaded trees. Styles are bound to the output writer, so
// colours are dropped when it is not a terminal.
type printer struct {
	w         io.Writer
	focusTag  string
	pathWidth int

	unit    lipgloss.Style
	group   lipgloss.Style
	pending lipgloss.Style
	shared  lipgloss.Style
	focus   lipgloss.Style
	tags    lipgloss.Style
	ok      lipgloss.Style
	fail    lipgloss.Style
}

func newPrinter(w io.Writer, focusTag string) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:        w,
		focusTag: focusTag,
		unit:     r.NewStyle().Bold(true).Underline(true),
		group:    r.NewStyle().Bold(true),
		pending:  r.NewStyle().Foreground(lipgloss.Color("11")).Faint(true),
		shared:   r.NewStyle().Italic(true).Foreground(lipgloss.Color("12")),
		focus:    r.NewStyle().Foreground(lipgloss.Color("205")),
		tags:     r.NewStyle().Foreground(lipgloss.Color("8")),
		ok:       r.NewStyle().Foreground(lipgloss.Color("10")),
		fail:     r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

func (p *printer) printTree(root *spec.Node) {
	t := tree.Root(p.unit.Render(root.Name))
	for _, c := range root.Children {
		t.Child(p.subtree(c))
	}
	fmt.Fprintln(p.w, t.String())
}

// subtree returns a label for a leaf and a tree for a group.
func (p *printer) subtree(n *spec.Node) any {
	if n.IsExample() {
		return p.label(n)
	}
	t := tree.Root(p.label(n))
	for _, c := range n.Children {
		t.Child(p.subtree(c))
	}
	return t
}

func (p *printer) label(n *spec.Node) string {
	var b strings.Builder
	switch {
	case n.Kind == spec.KindSharedGroup:
		b.WriteString(p.shared.Render(n.Name + " (shared)"))
	case n.Kind.IsPending():
		b.WriteString(p.pending.Render(n.Name + " (pending)"))
	case n.IsGroup():
		b.WriteString(p.group.Render(n.Name))
	default:
		b.WriteString(n.Name)
	}

	if n.HasTag(p.focusTag) {
		b.WriteString(" " + p.focus.Render("*"+p.focusTag))
	}
	var other []string
	for _, tag := range n.Tags.Sorted() {
		if tag != p.focusTag {
			other = append(other, tag)
		}
	}
	if len(other) > 0 {
		b.WriteString(" " + p.tags.Render("["+strings.Join(other, ", ")+"]"))
	}
	return b.String()
}

// alignPaths pads summary paths to the widest path of the report, measured
// in terminal cells.
func (p *printer) alignPaths(report *app.Report) {
	for _, res := range report.Results {
		p.pathWidth = max(p.pathWidth, runewidth.StringWidth(res.Path))
	}
}

func (p *printer) printSummary(path string, c counts) {
	line := fmt.Sprintf("%d examples", c.examples)
	if c.pending > 0 {
		line += fmt.Sprintf(", %d pending", c.pending)
	}
	fmt.Fprintf(p.w, "%s %s  %s\n", p.ok.Render("ok  "), runewidth.FillRight(path, p.pathWidth), line)
}

func (p *printer) printFailure(path string, err error) {
	fmt.Fprintf(p.w, "%s %s\n     %v\n", p.fail.Render("FAIL"), path, err)
}
