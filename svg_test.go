package lumen

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"testing"
)

func wellFormed(t *testing.T, doc []byte) {
	t.Helper()
	d := xml.NewDecoder(strings.NewReader(string(doc)))
	for {
		_, err := d.Token()
		if errors.Is(err, io.EOF) {
			return
		}
		if err != nil {
			t.Fatalf("malformed svg: %v\n%s", err, doc)
		}
	}
}

func TestRenderSkillGraphSVG(t *testing.T) {
	g := NewSkillGraph(DefaultLanguages, DefaultTools)
	out := RenderSkillGraphSVG(g, WithSize(1000, 500))
	wellFormed(t, out)
	s := string(out)

	if !strings.Contains(s, `width="1000" height="500"`) {
		t.Error("size option not applied")
	}
	// 2 links + 6 edges per side
	if n := strings.Count(s, "<line"); n != 14 {
		t.Errorf("lines = %d, want 14", n)
	}
	if n := strings.Count(s, `class="skill"`); n != 14 {
		t.Errorf("nodes = %d, want 14", n)
	}
	if n := strings.Count(s, `stroke-opacity="0.50"`); n != 2 {
		t.Errorf("link strokes = %d, want 2", n)
	}
	if !strings.Contains(s, ">PostgreSQL<") {
		t.Error("missing label")
	}
}

func TestRenderSkillGraphSVGOptions(t *testing.T) {
	g := NewSkillGraph(skills("a & b"), nil)
	plain := string(RenderSkillGraphSVG(g, WithLabels(false), WithOffsets(nil)))
	if strings.Contains(plain, "a &amp; b") {
		t.Error("labels rendered with WithLabels(false)")
	}
	// root at 28% of 800, no nudge
	if !strings.Contains(plain, `translate(224.00 156.00)`) {
		t.Errorf("unexpected root placement:\n%s", plain)
	}

	labeled := RenderSkillGraphSVG(g)
	wellFormed(t, labeled)
	if !strings.Contains(string(labeled), "a &amp; b") {
		t.Error("label not escaped")
	}
}

func TestRenderSkillGraphSVGReveal(t *testing.T) {
	g := NewSkillGraph(DefaultLanguages, DefaultTools)
	r := NewReveal(g)
	out := string(RenderSkillGraphSVG(g, WithReveal(r)))
	if strings.Contains(out, "<line") || strings.Contains(out, `class="skill"`) {
		t.Error("nothing should be drawn at the start of the reveal")
	}
	runReveal(r, 2)
	out = string(RenderSkillGraphSVG(g, WithReveal(r)))
	if strings.Count(out, "<line") != 14 {
		t.Error("finished reveal should draw every segment")
	}
}

func TestRenderOrbSVG(t *testing.T) {
	o := NewOrb(DefaultOrbConfig(), 60)
	out := RenderOrbSVG(o.Geometry(), o.Pose(), 420)
	wellFormed(t, out)
	s := string(out)
	if n := strings.Count(s, "<polygon"); n != 9 {
		t.Errorf("polygons = %d, want 9", n)
	}
	for _, label := range DefaultOrbConfig().HexLabels {
		if !strings.Contains(s, ">"+label+"<") {
			t.Errorf("missing hex label %s", label)
		}
	}
}
