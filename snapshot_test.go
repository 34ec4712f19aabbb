package lumen

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestSanitizeLabel(t *testing.T) {
	tests := map[string]string{
		"":              "unlabeled",
		"  ":            "unlabeled",
		"after move":    "after_move",
		"a/b\\c":        "a_b_c",
		"frame-1.final": "frame-1.final",
	}
	for in, want := range tests {
		if got := sanitizeLabel(in); got != want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestStraightUnpremultiplies(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 64, A: 128})
	got := Straight(src).NRGBAAt(0, 0)
	if got.R != 127 || got.A != 128 {
		t.Errorf("straight = %+v", got)
	}
}

func TestWritePNG(t *testing.T) {
	s := NewRasterSurface(Viewport{Width: 8, Height: 4, Ratio: 1})
	s.SetBackground(ColorWhite)
	s.Clear()

	var buf bytes.Buffer
	if err := WritePNG(&buf, s); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 4 {
		t.Errorf("bounds = %v", b)
	}
	if err := WritePNG(&buf, nil); err == nil {
		t.Error("nil surface should error")
	}
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	path := SnapshotPath(filepath.Join(dir, "shots"), "hover glow", at)
	if !strings.HasSuffix(path, "20240301_123000_hover_glow.png") {
		t.Errorf("path = %s", path)
	}
	if err := SavePNG(path, NewRasterSurface(Viewport{Width: 2, Height: 2, Ratio: 1})); err != nil {
		t.Fatal(err)
	}
}
