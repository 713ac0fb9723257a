package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/kdmsoft/nodegrid/pkg/scene"
)

// Options configures scene rendering.
type Options struct {
	// Detailed includes geometry and membership counts in node labels.
	// When false, only the display label is shown.
	Detailed bool
}

// pointsPerUnit scales scene units to Graphviz points. Scene coordinates
// are treated as points directly, with the y axis flipped (scenes grow
// downward, Graphviz grows upward).
const pointsPerUnit = 1.0

// ToDOT converts a scene to Graphviz DOT for preview rendering.
// Node positions are pinned ("x,y!") so neato reproduces the scene geometry
// exactly. The resulting string renders with [RenderSVG] or [RenderPNG].
func ToDOT(s *scene.Scene, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  splines=line;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fixedsize=true, fontsize=12];\n")
	buf.WriteString("\n")

	// Containers first so members draw on top of them.
	for _, n := range s.Nodes() {
		if !n.IsContainer() {
			continue
		}
		writeNode(&buf, n, opts)
	}
	for _, n := range s.Nodes() {
		if n.IsContainer() {
			continue
		}
		writeNode(&buf, n, opts)
	}

	buf.WriteString("\n")
	for _, e := range s.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, n *scene.Node, opts Options) {
	c := n.Center()
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
		fmt.Sprintf("pos=\"%.2f,%.2f!\"", c.X*pointsPerUnit, -c.Y*pointsPerUnit),
		fmt.Sprintf("width=%.3f", n.Width/72),
		fmt.Sprintf("height=%.3f", n.Height/72),
	}
	if n.IsContainer() {
		attrs = append(attrs, "style=\"filled\"", "fillcolor=lightsteelblue", "labelloc=t")
	}
	fmt.Fprintf(buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
}

func fmtLabel(n *scene.Node, detailed bool) string {
	label := n.DisplayLabel()
	if !detailed {
		return label
	}

	parts := []string{fmt.Sprintf("at (%.0f, %.0f)", n.X, n.Y)}
	if n.IsContainer() {
		parts = append(parts, fmt.Sprintf("members: %d", len(n.Grid.Members)))
	}
	return label + "\n" + strings.Join(parts, "\n")
}
