// Package termhost previews the glow field in a terminal with bubbletea.
package termhost

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/phanxgames/lumen"
)

// A terminal cell stands for cellWidth x cellHeight CSS pixels and holds two
// vertically stacked raster pixels.
const (
	cellWidth  = 8
	cellHeight = 16
	pixelRatio = 1.0 / cellWidth
)

// CellSurface rasterizes into a software surface at two pixels per cell and
// renders the result as half-block characters.
type CellSurface struct {
	*lumen.RasterSurface
}

// NewCellSurface returns an unconfigured surface.
func NewCellSurface() *CellSurface {
	return &CellSurface{RasterSurface: lumen.NewRasterSurface(lumen.Viewport{Ratio: pixelRatio})}
}

// Render draws the surface over bg. Each cell is "▀" with the upper pixel as
// foreground and the lower pixel as background.
func (s *CellSurface) Render(bg lumen.Color) string {
	img := s.Image()
	if img == nil {
		return ""
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	var b strings.Builder
	for y := 0; y+1 < h; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < w; x++ {
			top := over(img.Pix[img.PixOffset(x, y):], bg)
			bottom := over(img.Pix[img.PixOffset(x, y+1):], bg)
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render("▀"))
		}
	}
	return b.String()
}

// over composites one premultiplied pixel onto an opaque backdrop and returns
// it as "#rrggbb".
func over(p []uint8, bg lumen.Color) string {
	a := float64(p[3]) / 255
	c := lumen.Color{
		R: float64(p[0])/255 + bg.R*(1-a),
		G: float64(p[1])/255 + bg.G*(1-a),
		B: float64(p[2])/255 + bg.B*(1-a),
		A: 1,
	}
	return c.Hex()
}
