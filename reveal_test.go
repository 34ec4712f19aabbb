package lumen

import "testing"

func runReveal(r *Reveal, seconds float32) {
	const dt = 1.0 / 60
	for t := float32(0); t < seconds; t += dt {
		r.Update(dt)
	}
}

func TestRevealStartsHidden(t *testing.T) {
	r := NewReveal(NewSkillGraph(DefaultLanguages, DefaultTools))
	if r.LinkProgress(SideLeft) != 0 || r.EdgeProgress(SideRight, 3) != 0 {
		t.Error("links and edges should start undrawn")
	}
	n := r.Node(SideLeft, 2)
	if !near(n.Scale, nodeStartScale) || n.Opacity != 0 || n.DropY != nodeStartDrop {
		t.Errorf("initial node pose = %+v", n)
	}
}

func TestRevealStagger(t *testing.T) {
	r := NewReveal(NewSkillGraph(DefaultLanguages, DefaultTools))
	r.Update(0.03)
	if r.LinkProgress(SideLeft) <= 0 {
		t.Error("left link should have started")
	}
	if r.LinkProgress(SideRight) != 0 {
		t.Errorf("right link = %v, want 0 before its delay", r.LinkProgress(SideRight))
	}
	if r.EdgeProgress(SideLeft, 0) <= 0 || r.EdgeProgress(SideLeft, 6) != 0 {
		t.Error("edge stagger not applied")
	}
}

func TestRevealFinishes(t *testing.T) {
	g := NewSkillGraph(DefaultLanguages, DefaultTools)
	r := NewReveal(g)
	runReveal(r, 2)
	if !r.Done {
		t.Fatal("reveal not done after 2s")
	}
	for _, side := range []Side{SideLeft, SideRight} {
		if !near(r.LinkProgress(side), 1) {
			t.Errorf("%s link = %v", side, r.LinkProgress(side))
		}
		for i := range g.Nodes(side) {
			n := r.Node(side, i)
			if !near(n.Scale, 1) || !near(n.Opacity, 1) || !near(n.DropY, 0) {
				t.Errorf("%s slot %d pose = %+v", side, i, n)
			}
			if !near(r.EdgeProgress(side, i), 1) {
				t.Errorf("%s edge %d = %v", side, i, r.EdgeProgress(side, i))
			}
		}
	}
}

func TestRevealOutOfRange(t *testing.T) {
	r := NewReveal(NewSkillGraph(nil, nil))
	if r.EdgeProgress(SideLeft, 99) != 1 {
		t.Error("unknown edge should report fully drawn")
	}
	if n := r.Node(SideRight, -1); n.Scale != 1 || n.Opacity != 1 {
		t.Errorf("unknown node pose = %+v", n)
	}
}

func TestSegmentPartial(t *testing.T) {
	s := Segment{A: Vec2{0, 0}, B: Vec2{10, 20}}
	if got := s.Partial(0.5); got != (Vec2{5, 10}) {
		t.Errorf("Partial(0.5) = %v", got)
	}
	if got := s.Partial(2); got != s.B {
		t.Errorf("Partial(2) = %v, want clamped to B", got)
	}
}
