package lumen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// Format names an output format for a laid-out skill graph.
type Format string

const (
	FormatSVG      Format = "svg"      // native SVG renderer
	FormatDOT      Format = "dot"      // DOT source with pinned positions
	FormatGraphviz Format = "graphviz" // DOT rendered to SVG by graphviz
	FormatJSON     Format = "json"     // positioned nodes
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("lumen: unknown format")

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatSVG, FormatDOT, FormatGraphviz, FormatJSON:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// dotInches is the DOT canvas edge length; percent coordinates map onto it.
const dotInches = 10.0

// SkillGraphDOT converts g to DOT for neato with every node pinned at its
// laid-out position. Empty slots are omitted.
func SkillGraphDOT(g SkillGraph) string {
	var buf bytes.Buffer
	buf.WriteString("graph skills {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=10, fixedsize=true, width=0.6];\n")
	buf.WriteString("  edge [penwidth=1.5];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  anchor [shape=point, width=0.08, pos=%q];\n", dotPos(g.Anchor))
	for _, side := range []Side{SideLeft, SideRight} {
		for _, n := range g.Nodes(side) {
			if n.Item == nil {
				continue
			}
			fmt.Fprintf(&buf, "  %q [label=%q, tooltip=%q, fillcolor=%q, pos=%q];\n",
				dotID(side, n.Index), n.Item.Icon.Monogram(), n.Item.Name, dotColor(n.Item.Color), dotPos(Vec2{X: n.X, Y: n.Y}))
		}
	}

	buf.WriteString("\n")
	for _, s := range g.Links() {
		fmt.Fprintf(&buf, "  anchor -- %q [color=\"#60a5fa80\"];\n", dotID(s.Side, s.To))
	}
	for _, side := range []Side{SideLeft, SideRight} {
		for _, s := range g.Edges(side) {
			fmt.Fprintf(&buf, "  %q -- %q [color=\"#60a5fa59\"];\n", dotID(side, s.From), dotID(side, s.To))
		}
	}
	buf.WriteString("}\n")
	return buf.String()
}

func dotID(side Side, index int) string {
	return fmt.Sprintf("%s%d", side, index)
}

// dotPos pins a percent point in inches with y pointing up.
func dotPos(p Vec2) string {
	return fmt.Sprintf("%.2f,%.2f!", p.X/100*dotInches, (100-p.Y)/100*dotInches)
}

func dotColor(s string) string {
	c, err := ParseColor(s)
	if err != nil {
		return "#64748b"
	}
	return c.Hex()
}

// RenderDOT renders DOT source to SVG with graphviz's neato engine.
func RenderDOT(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
