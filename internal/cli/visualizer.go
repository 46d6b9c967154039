package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"btrees"
)

const indent = "    "

// Visualizer prints a tree one node per line, children indented under their
// parent, coloring each level differently.
type Visualizer struct {
	Tree    *btrees.BTree
	palette []*color.Color
}

// NewVisualizer creates a visualizer for t. With noColor set the output is
// plain text regardless of the terminal.
func NewVisualizer(t *btrees.BTree, noColor bool) *Visualizer {
	palette := []*color.Color{
		color.New(color.FgCyan, color.Bold),
		color.New(color.FgGreen),
		color.New(color.FgYellow),
		color.New(color.FgMagenta),
		color.New(color.FgBlue),
	}
	if noColor {
		for _, c := range palette {
			c.DisableColor()
		}
	}
	return &Visualizer{Tree: t, palette: palette}
}

// Visualize renders the tree. An empty tree renders as "(empty)".
func (v *Visualizer) Visualize() string {
	var sb strings.Builder
	v.Fprint(&sb)
	return sb.String()
}

// Fprint writes the rendering of the tree to w
func (v *Visualizer) Fprint(w io.Writer) {
	if v.Tree.Root() == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}

	v.Tree.Walk(func(depth int, n *btrees.Node) bool {
		c := v.palette[depth%len(v.palette)]
		fmt.Fprint(w, strings.Repeat(indent, depth))
		c.Fprintln(w, formatKeys(n.Keys()))
		return true
	})
}

// formatKeys joins keys with single spaces, padding each to two digits
func formatKeys(keys []int) string {
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%02d", k)
	}
	return strings.Join(parts, " ")
}
