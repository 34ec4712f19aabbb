package lumen

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Straight converts a premultiplied image to straight alpha.
func Straight(src *image.RGBA) *image.NRGBA {
	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		si := src.PixOffset(b.Min.X, b.Min.Y+y)
		di := img.PixOffset(0, y)
		for x := 0; x < b.Dx()*4; x += 4 {
			r, g, bl, a := src.Pix[si+x], src.Pix[si+x+1], src.Pix[si+x+2], src.Pix[si+x+3]
			if a > 0 && a < 255 {
				r = uint8(min(int(r)*255/int(a), 255))
				g = uint8(min(int(g)*255/int(a), 255))
				bl = uint8(min(int(bl)*255/int(a), 255))
			}
			img.Pix[di+x] = r
			img.Pix[di+x+1] = g
			img.Pix[di+x+2] = bl
			img.Pix[di+x+3] = a
		}
	}
	return img
}

// WritePNG encodes the surface's current pixels as PNG.
func WritePNG(w io.Writer, s *RasterSurface) error {
	if s == nil || s.Image() == nil {
		return fmt.Errorf("write png: no surface")
	}
	if err := png.Encode(w, Straight(s.Image())); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG writes the surface to a PNG file at path, creating parent
// directories as needed.
func SavePNG(path string, s *RasterSurface) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePNG(f, s); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// SnapshotPath returns a timestamped file name for a labeled snapshot in dir.
func SnapshotPath(dir, label string, at time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.png", at.Format("20060102_150405"), sanitizeLabel(label)))
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
