package ebitenhost

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/lumen"
)

var (
	strokeColor = color.NRGBA{0x60, 0xa5, 0xfa, 0xff}
	orbCyan     = color.NRGBA{0x38, 0xbd, 0xf8, 0xff}
	orbViolet   = color.NRGBA{0xa7, 0x8b, 0xfa, 0xff}
	orbPink     = color.NRGBA{0xf4, 0x72, 0xb6, 0xff}
)

const nodeRadius = 18

func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A)*max(0, min(1, a)) + 0.5)
	return c
}

// drawSkillGraph draws g into a w x h box at the screen origin, partially
// revealed when rv is not nil.
func drawSkillGraph(dst *ebiten.Image, g lumen.SkillGraph, rv *lumen.Reveal, w, h float64) {
	px := func(p lumen.Vec2) (float32, float32) {
		return float32(p.X / 100 * w), float32(p.Y / 100 * h)
	}
	segment := func(s lumen.Segment, progress, opacity float64) {
		if progress <= 0 {
			return
		}
		x0, y0 := px(s.A)
		x1, y1 := px(s.Partial(progress))
		vector.StrokeLine(dst, x0, y0, x1, y1, 2, withAlpha(strokeColor, opacity), true)
	}

	for _, s := range g.Links() {
		p := 1.0
		if rv != nil {
			p = rv.LinkProgress(s.Side)
		}
		segment(s, p, 0.5)
	}
	for _, side := range []lumen.Side{lumen.SideLeft, lumen.SideRight} {
		for _, s := range g.Edges(side) {
			p := 1.0
			if rv != nil {
				p = rv.EdgeProgress(side, s.To)
			}
			segment(s, p, 0.35)
		}
	}

	for _, side := range []lumen.Side{lumen.SideLeft, lumen.SideRight} {
		for _, n := range g.Nodes(side) {
			if n.Item == nil {
				continue
			}
			pose := lumen.NodeReveal{Scale: 1, Opacity: 1}
			if rv != nil {
				pose = rv.Node(side, n.Index)
			}
			if pose.Opacity <= 0 {
				continue
			}
			off := lumen.DefaultOffsets.Lookup(side, n.Index)
			x, y := px(lumen.Vec2{X: n.X, Y: n.Y})
			x += float32(off.DX)
			y += float32(off.DY + pose.DropY)

			c, err := lumen.ParseColor(n.Item.Color)
			if err != nil {
				c = lumen.ColorWhite
			}
			nc := color.NRGBA{R: uint8(c.R * 255), G: uint8(c.G * 255), B: uint8(c.B * 255), A: 255}
			r := float32(nodeRadius * pose.Scale)
			vector.DrawFilledCircle(dst, x, y, r, withAlpha(nc, 0.18*pose.Opacity), true)
			vector.StrokeCircle(dst, x, y, r, 1.5, withAlpha(nc, pose.Opacity), true)
			label := n.Item.Icon.Monogram()
			ebitenutil.DebugPrintAt(dst, label, int(x)-3*len(label), int(y)-8)
		}
	}
}

// drawOrb draws the orb wireframe at its current pose into a size x size box
// at (x, y). scale converts the pose's CSS pixel translation to screen pixels.
func drawOrb(dst *ebiten.Image, o *lumen.Orb, x, y, size, scale float64) {
	pose := o.Pose()
	g := o.Geometry().Posed(pose)
	k := size / lumen.OrbViewBox
	ox := x + pose.TranslateX*scale
	oy := y + pose.TranslateY*scale
	pt := func(p lumen.Vec2) (float32, float32) {
		return float32(ox + p.X*k), float32(oy + p.Y*k)
	}
	cx, cy := pt(lumen.Vec2{X: lumen.OrbViewBox / 2, Y: lumen.OrbViewBox / 2})

	vector.DrawFilledCircle(dst, cx, cy, float32(g.GlowRadius*k), withAlpha(orbCyan, 0.08), true)
	for i, r := range g.Rings {
		vector.StrokeCircle(dst, cx, cy, float32(r*k), 1, withAlpha(orbCyan, 0.25+0.15*float64(i)), true)
	}
	polygon := func(pts []lumen.Vec2, c color.Color) {
		for i := range pts {
			x0, y0 := pt(pts[i])
			x1, y1 := pt(pts[(i+1)%len(pts)])
			vector.StrokeLine(dst, x0, y0, x1, y1, 1, c, true)
		}
	}
	for _, h := range g.Hexes {
		polygon(h.Points[:], orbViolet)
		if h.Label != "" {
			hx, hy := pt(h.Center)
			ebitenutil.DebugPrintAt(dst, h.Label, int(hx)-3*len(h.Label), int(hy)-8)
		}
	}
	for _, t := range g.Triangles {
		polygon(t[:], withAlpha(orbCyan, 0.6))
	}
	for _, p := range g.OuterNodes {
		px, py := pt(p)
		vector.DrawFilledCircle(dst, px, py, float32(3.5*k), orbCyan, true)
	}
	for _, p := range g.InnerNodes {
		px, py := pt(p)
		vector.DrawFilledCircle(dst, px, py, float32(3*k), orbPink, true)
	}
	vector.StrokeCircle(dst, cx, cy, float32(g.CoreRing*k), 1, withAlpha(orbCyan, 0.8), true)
	vector.DrawFilledCircle(dst, cx, cy, float32(g.CoreRadius*k), color.White, true)
}
