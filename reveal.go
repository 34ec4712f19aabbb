package lumen

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Reveal timings, in seconds.
const (
	linkDuration    = 0.8
	linkStagger     = 0.05
	edgeDuration    = 0.7
	elementStagger  = 0.05
	nodePopDuration = 0.45
	nodeStartScale  = 0.6
	nodeStartDrop   = -8.0
)

// delayed builds a sequence that holds at from for delay seconds and then
// eases to to over duration.
func delayed(from, to, delay, duration float32, fn ease.TweenFunc) *gween.Sequence {
	seq := gween.NewSequence()
	if delay > 0 {
		seq.Add(gween.New(from, from, delay, ease.Linear))
	}
	seq.Add(gween.New(from, to, duration, fn))
	return seq
}

// track is a single animated value.
type track struct {
	seq   *gween.Sequence
	value float64
	done  bool
}

func newTrack(from, to, delay, duration float32, fn ease.TweenFunc) *track {
	return &track{seq: delayed(from, to, delay, duration, fn), value: float64(from)}
}

func (t *track) update(dt float32) {
	if t.done {
		return
	}
	v, _, finished := t.seq.Update(dt)
	t.value = float64(v)
	t.done = finished
}

// NodeReveal is the entry pose of a node at a point in the timeline.
type NodeReveal struct {
	Scale   float64
	Opacity float64
	DropY   float64 // pixel offset, negative is above the resting position
}

// Reveal animates a SkillGraph into view: anchor links draw first, then edges
// and nodes pop in with a per-slot stagger.
//
// There is no global animation manager; callers call Update themselves.
type Reveal struct {
	links   map[Side]*track
	edges   map[Side][]*track
	scale   map[Side][]*track
	opacity map[Side][]*track
	drop    map[Side][]*track
	Done    bool
}

// NewReveal builds the timeline for g.
func NewReveal(g SkillGraph) *Reveal {
	r := &Reveal{
		links:   make(map[Side]*track, 2),
		edges:   make(map[Side][]*track, 2),
		scale:   make(map[Side][]*track, 2),
		opacity: make(map[Side][]*track, 2),
		drop:    make(map[Side][]*track, 2),
	}
	for si, side := range []Side{SideLeft, SideRight} {
		r.links[side] = newTrack(0, 1, float32(si)*linkStagger, linkDuration, ease.OutQuad)
		nodes := g.Nodes(side)
		r.edges[side] = make([]*track, len(nodes))
		r.scale[side] = make([]*track, len(nodes))
		r.opacity[side] = make([]*track, len(nodes))
		r.drop[side] = make([]*track, len(nodes))
		for i := range nodes {
			delay := float32(i) * elementStagger
			r.edges[side][i] = newTrack(0, 1, delay, edgeDuration, ease.InOutQuad)
			r.scale[side][i] = newTrack(nodeStartScale, 1, delay, nodePopDuration, ease.OutBack)
			r.opacity[side][i] = newTrack(0, 1, delay, nodePopDuration, ease.OutQuad)
			r.drop[side][i] = newTrack(nodeStartDrop, 0, delay, nodePopDuration, ease.OutBack)
		}
	}
	return r
}

// Update advances every track by dt seconds.
func (r *Reveal) Update(dt float32) {
	if r.Done {
		return
	}
	done := true
	visit := func(t *track) {
		t.update(dt)
		if !t.done {
			done = false
		}
	}
	for _, side := range []Side{SideLeft, SideRight} {
		visit(r.links[side])
		for i := range r.edges[side] {
			visit(r.edges[side][i])
			visit(r.scale[side][i])
			visit(r.opacity[side][i])
			visit(r.drop[side][i])
		}
	}
	r.Done = done
}

// LinkProgress returns how much of the anchor link for side is drawn, 0..1.
func (r *Reveal) LinkProgress(side Side) float64 {
	if t, ok := r.links[side]; ok {
		return t.value
	}
	return 1
}

// EdgeProgress returns how much of the edge into slot index is drawn, 0..1.
func (r *Reveal) EdgeProgress(side Side, index int) float64 {
	edges := r.edges[side]
	if index < 0 || index >= len(edges) {
		return 1
	}
	return edges[index].value
}

// Node returns the entry pose of slot index.
func (r *Reveal) Node(side Side, index int) NodeReveal {
	sc := r.scale[side]
	if index < 0 || index >= len(sc) {
		return NodeReveal{Scale: 1, Opacity: 1}
	}
	return NodeReveal{
		Scale:   sc[index].value,
		Opacity: r.opacity[side][index].value,
		DropY:   r.drop[side][index].value,
	}
}

// Partial returns the point of a segment once progress of it has been drawn.
func (s Segment) Partial(progress float64) Vec2 {
	p := clamp01(progress)
	return Vec2{X: lerp(s.A.X, s.B.X, p), Y: lerp(s.A.Y, s.B.Y, p)}
}
