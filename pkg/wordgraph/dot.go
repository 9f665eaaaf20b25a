package wordgraph

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
)

// Options configures DOT output.
type Options struct {
	// Chain, if set, numbers each edge by the position of its word in the
	// chain. Words are matched in order, so duplicates get distinct numbers.
	Chain []string

	// Degrees adds "in/out" degree counts to node labels.
	Degrees bool
}

// ToDOT converts the graph to Graphviz DOT format.
// Nodes are emitted in order of first appearance and edges in insertion order
// per node, so the output is stable for a given word list.
//
// Unbalanced letters (a candidate start or end of an open chain) are drawn
// with a double outline.
func ToDOT(g *Graph, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph words {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=20];\n")
	buf.WriteString("  edge [fontsize=12];\n")
	buf.WriteString("\n")

	for _, r := range g.order {
		n := g.nodes[r]
		label := string(r)
		if opts.Degrees {
			label = fmt.Sprintf("%s\n%d/%d", label, n.in, n.out)
		}
		attrs := fmt.Sprintf("label=%q", label)
		if n.out != n.in {
			attrs += ", shape=doublecircle"
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", string(r), attrs)
	}

	positions := chainPositions(opts.Chain)
	buf.WriteString("\n")
	for _, r := range g.order {
		for _, w := range g.nodes[r].words {
			label := w
			if q := positions[w]; len(q) > 0 {
				label = fmt.Sprintf("%d. %s", q[0], w)
				positions[w] = q[1:]
			}
			fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", string(r), string(Last(w)), label)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// chainPositions maps each word to its 1-based positions in chain.
func chainPositions(chain []string) map[string][]int {
	pos := make(map[string][]int, len(chain))
	for i, w := range chain {
		pos[w] = append(pos[w], i+1)
	}
	return pos
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based svg header with one sized
// from the viewBox so the image scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	header := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(header))
}
