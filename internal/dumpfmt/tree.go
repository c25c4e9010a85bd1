// Package dumpfmt renders a documentation tree for humans: a box-drawing
// pretty mode and a JSON mode, both used by the inspect command.
package dumpfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"specular/internal/docmodel"
)

var (
	kindColor       = color.New(color.FgCyan)
	syntheticColor  = color.New(color.FgYellow)
	unresolvedColor = color.New(color.FgRed, color.Bold)
)

// Tree pretty-prints the subtree under root with └─/├─ prefixes.
func Tree(w io.Writer, table *docmodel.Table, root docmodel.ReflectionID, opts PrettyOpts) error {
	refl := table.Reflections.Get(root)
	if refl == nil {
		return fmt.Errorf("reflection %d not found", root)
	}
	prev := color.NoColor
	if !opts.Color {
		color.NoColor = true
		defer func() { color.NoColor = prev }()
	}
	printNode(w, table, root, root, "", opts)
	return nil
}

func printNode(w io.Writer, table *docmodel.Table, scope, id docmodel.ReflectionID, prefix string, opts PrettyOpts) {
	refl := table.Reflections.Get(id)
	if refl == nil {
		return
	}
	fmt.Fprintln(w, nodeLabel(table, scope, refl, opts))

	edges := childEdges(refl, opts)
	for i, child := range edges {
		last := i == len(edges)-1
		var branch, next string
		if last {
			branch, next = "└─ ", "   "
		} else {
			branch, next = "├─ ", "│  "
		}
		fmt.Fprint(w, prefix+branch)
		printNode(w, table, scope, child, prefix+next, opts)
	}
}

// childEdges lists the nodes shown under a reflection: containment children
// always, the signature-ish satellites only with ShowHidden.
func childEdges(refl *docmodel.Reflection, opts PrettyOpts) []docmodel.ReflectionID {
	edges := make([]docmodel.ReflectionID, 0, len(refl.Children))
	edges = append(edges, refl.Children...)
	if !opts.ShowHidden {
		return edges
	}
	edges = append(edges, refl.TypeParams...)
	edges = append(edges, refl.Signatures...)
	for _, id := range []docmodel.ReflectionID{refl.IndexSig, refl.GetSig, refl.SetSig} {
		if id.IsValid() {
			edges = append(edges, id)
		}
	}
	edges = append(edges, refl.Params...)
	return edges
}

func nodeLabel(table *docmodel.Table, scope docmodel.ReflectionID, refl *docmodel.Reflection, opts PrettyOpts) string {
	name := refl.Name
	if name == "" {
		name = "(anonymous)"
	}
	label := kindColor.Sprintf("%-14s", refl.Kind.String()) + " " + name
	if refl.Flags&docmodel.FlagSynthetic != 0 {
		label += " " + syntheticColor.Sprint("[synthetic]")
	}
	if opts.ShowTypes && refl.Type.IsValid() {
		summary := TypeString(table, scope, refl.Type)
		pad := 32 - runewidth.StringWidth(name)
		if pad < 1 {
			pad = 1
		}
		label += strings.Repeat(" ", pad)
		ty := table.Types.Get(refl.Type)
		if ty != nil && ty.Kind == docmodel.TypeRef && !table.ResolveRef(scope, ty).IsValid() {
			label += unresolvedColor.Sprint(summary)
		} else {
			label += summary
		}
	}
	if opts.BindingMark && len(refl.Bindings) > 0 {
		label += fmt.Sprintf(" (%d bindings)", len(refl.Bindings))
	}
	return label
}
