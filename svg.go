package lumen

import (
	"bytes"
	"fmt"
	"html"
)

const (
	svgNodeRadius    = 18.0
	svgLinkOpacity   = 0.5
	svgEdgeOpacity   = 0.35
	svgStrokeWidth   = 2.0
	svgLabelGap      = 14.0
	svgDefaultWidth  = 800
	svgDefaultHeight = 600
)

// SVGOption configures skill graph rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	width, height float64
	offsets       OffsetTable
	labels        bool
	reveal        *Reveal
	stroke        string
}

// WithSize sets the output size in pixels. Percent coordinates scale to it.
func WithSize(w, h float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = w, h }
}

// WithOffsets replaces the default node nudges. A nil table disables them.
func WithOffsets(t OffsetTable) SVGOption { return func(r *svgRenderer) { r.offsets = t } }

// WithLabels toggles the skill name under each node.
func WithLabels(on bool) SVGOption { return func(r *svgRenderer) { r.labels = on } }

// WithReveal renders the graph as it stands at the reveal's current time.
func WithReveal(rv *Reveal) SVGOption { return func(r *svgRenderer) { r.reveal = rv } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		width:   svgDefaultWidth,
		height:  svgDefaultHeight,
		offsets: DefaultOffsets,
		labels:  true,
		stroke:  "#60a5fa",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// px maps a percent point to output pixels.
func (r *svgRenderer) px(p Vec2) Vec2 {
	return Vec2{X: p.X / 100 * r.width, Y: p.Y / 100 * r.height}
}

// RenderSkillGraphSVG draws g as a standalone SVG document.
func RenderSkillGraphSVG(g SkillGraph, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)

	buf.WriteString(`  <g class="links" fill="none" stroke-linecap="round">` + "\n")
	for _, s := range g.Links() {
		progress := 1.0
		if r.reveal != nil {
			progress = r.reveal.LinkProgress(s.Side)
		}
		r.line(&buf, s, progress, svgLinkOpacity)
	}
	for _, side := range []Side{SideLeft, SideRight} {
		for _, s := range g.Edges(side) {
			progress := 1.0
			if r.reveal != nil {
				progress = r.reveal.EdgeProgress(side, s.To)
			}
			r.line(&buf, s, progress, svgEdgeOpacity)
		}
	}
	buf.WriteString("  </g>\n")

	buf.WriteString(`  <g class="nodes" font-family="sans-serif" text-anchor="middle">` + "\n")
	for _, side := range []Side{SideLeft, SideRight} {
		for _, n := range g.Nodes(side) {
			if n.Item == nil {
				continue
			}
			r.node(&buf, side, n)
		}
	}
	buf.WriteString("  </g>\n")
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) line(buf *bytes.Buffer, s Segment, progress, opacity float64) {
	if progress <= 0 {
		return
	}
	a, b := r.px(s.A), r.px(s.Partial(progress))
	fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f" stroke-opacity="%.2f"/>`+"\n",
		a.X, a.Y, b.X, b.Y, r.stroke, svgStrokeWidth, opacity)
}

func (r *svgRenderer) node(buf *bytes.Buffer, side Side, n PositionedNode) {
	c := r.px(Vec2{X: n.X, Y: n.Y})
	off := r.offsets.Lookup(side, n.Index)
	c.X += off.DX
	c.Y += off.DY

	scale, opacity := 1.0, 1.0
	if r.reveal != nil {
		nr := r.reveal.Node(side, n.Index)
		scale, opacity = nr.Scale, nr.Opacity
		c.Y += nr.DropY
	}
	if opacity <= 0 {
		return
	}

	fill := n.Item.Color
	if _, err := ParseColor(fill); err != nil {
		fill = "#64748b"
	}
	fmt.Fprintf(buf, `    <g class="skill" data-side="%s" data-index="%d" opacity="%.2f" transform="translate(%.2f %.2f) scale(%.3f)">`+"\n",
		side, n.Index, opacity, c.X, c.Y, scale)
	fmt.Fprintf(buf, `      <circle r="%.0f" fill="%s" fill-opacity="0.18" stroke="%s" stroke-width="1.5"/>`+"\n",
		svgNodeRadius, fill, fill)
	fmt.Fprintf(buf, `      <text y="4" font-size="11" font-weight="bold" fill="%s">%s</text>`+"\n",
		fill, html.EscapeString(n.Item.Icon.Monogram()))
	if r.labels {
		fmt.Fprintf(buf, `      <text y="%.0f" font-size="12" fill="#e2e8f0">%s</text>`+"\n",
			svgNodeRadius+svgLabelGap, html.EscapeString(n.Item.Name))
	}
	buf.WriteString("    </g>\n")
}

// RenderOrbSVG draws the orb wireframe at the given pose, size pixels square.
// Labels are drawn inside the hexes when present.
func RenderOrbSVG(geom OrbGeometry, pose OrbPose, size float64) []byte {
	if size <= 0 {
		size = OrbViewBox
	}
	g := geom.Posed(pose)
	k := size / OrbViewBox

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.0f %.0f" width="%.0f" height="%.0f">`+"\n",
		OrbViewBox, OrbViewBox, size, size)
	buf.WriteString(`  <defs>
    <radialGradient id="orb-glow">
      <stop offset="0%" stop-color="#38bdf8" stop-opacity="0.35"/>
      <stop offset="100%" stop-color="#38bdf8" stop-opacity="0"/>
    </radialGradient>
  </defs>
`)
	fmt.Fprintf(&buf, `  <g transform="translate(%.2f %.2f)" fill="none" stroke="#38bdf8" stroke-width="1">`+"\n",
		pose.TranslateX/k, pose.TranslateY/k)
	fmt.Fprintf(&buf, `    <circle cx="%.0f" cy="%.0f" r="%.0f" fill="url(#orb-glow)" stroke="none"/>`+"\n",
		orbCenter.X, orbCenter.Y, g.GlowRadius)
	for i, r := range g.Rings {
		fmt.Fprintf(&buf, `    <circle cx="%.0f" cy="%.0f" r="%.0f" stroke-opacity="%.2f"/>`+"\n",
			orbCenter.X, orbCenter.Y, r, 0.25+0.15*float64(i))
	}
	for _, h := range g.Hexes {
		buf.WriteString(`    <polygon points="`)
		writePoints(&buf, h.Points[:])
		buf.WriteString(`" stroke="#a78bfa"/>` + "\n")
		if h.Label != "" {
			fmt.Fprintf(&buf, `    <text x="%.2f" y="%.2f" font-size="4" font-family="monospace" text-anchor="middle" fill="#e0e7ff" stroke="none">%s</text>`+"\n",
				h.Center.X, h.Center.Y+1.5, html.EscapeString(h.Label))
		}
	}
	for _, t := range g.Triangles {
		buf.WriteString(`    <polygon points="`)
		writePoints(&buf, t[:])
		buf.WriteString(`" stroke="#22d3ee" stroke-opacity="0.6"/>` + "\n")
	}
	for _, p := range g.OuterNodes {
		fmt.Fprintf(&buf, `    <circle cx="%.2f" cy="%.2f" r="3.5" fill="#38bdf8" stroke="none"/>`+"\n", p.X, p.Y)
	}
	for _, p := range g.InnerNodes {
		fmt.Fprintf(&buf, `    <circle cx="%.2f" cy="%.2f" r="3" fill="#f472b6" stroke="none"/>`+"\n", p.X, p.Y)
	}
	fmt.Fprintf(&buf, `    <circle cx="%.0f" cy="%.0f" r="%.0f" stroke-opacity="0.8"/>`+"\n", orbCenter.X, orbCenter.Y, g.CoreRing)
	fmt.Fprintf(&buf, `    <circle cx="%.0f" cy="%.0f" r="%.0f" fill="#e0f2fe" stroke="none"/>`+"\n", orbCenter.X, orbCenter.Y, g.CoreRadius)
	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func writePoints(buf *bytes.Buffer, pts []Vec2) {
	for i, p := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", p.X, p.Y)
	}
}
