package lumen

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{1, 1, 1, 1}},
		{"#000000", Color{0, 0, 0, 1}},
		{"#FF000080", Color{1, 0, 0, 128.0 / 255}},
		{"rgb(255, 0, 0)", Color{1, 0, 0, 1}},
		{"rgba(80,160,255,1)", Color{80.0 / 255, 160.0 / 255, 1, 1}},
		{"  RGBA(0,0,0,0.5) ", Color{0, 0, 0, 0.5}},
		{"rgba(999,0,0,2)", Color{1, 0, 0, 1}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q) error: %v", tt.in, err)
			continue
		}
		if !near(got.R, tt.want.R) || !near(got.G, tt.want.G) || !near(got.B, tt.want.B) || !near(got.A, tt.want.A) {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "blue", "#12", "#gggggg", "rgb(1,2)", "rgba(a,b,c,d)"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrBadColor) {
			t.Errorf("ParseColor(%q) = %v, want ErrBadColor", in, err)
		}
	}
}

func TestColorRGBAPremultiplies(t *testing.T) {
	c := Color{1, 0.5, 0, 0.5}.RGBA()
	if c.R != 128 || c.G != 64 || c.B != 0 || c.A != 128 {
		t.Errorf("RGBA = %+v", c)
	}
}

func TestColorLerpAndHex(t *testing.T) {
	black := Color{0, 0, 0, 0}
	white := Color{1, 1, 1, 1}
	mid := black.Lerp(white, 0.5)
	if !near(mid.R, 0.5) || !near(mid.A, 0.5) {
		t.Errorf("Lerp = %+v", mid)
	}
	if got := MustParseColor("#1e3a8a").Hex(); got != "#1e3a8a" {
		t.Errorf("Hex = %s", got)
	}
}

func TestRangeClamp(t *testing.T) {
	r := Range{Min: 8, Max: 48}
	if r.Clamp(4) != 8 || r.Clamp(50) != 48 || r.Clamp(20) != 20 {
		t.Error("Clamp out of band")
	}
}

func TestViewportPixelSize(t *testing.T) {
	w, h := Viewport{Width: 100.7, Height: 0, Ratio: 1.6}.PixelSize()
	if w != 161 || h != 1 {
		t.Errorf("PixelSize = %dx%d, want 161x1", w, h)
	}
}
