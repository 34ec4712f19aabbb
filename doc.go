// Package lumen holds the visual core of a portfolio front page: the skill
// tree layout engine and the cursor glow particle field, plus the neon orb
// and hero glow that sit beside them.
//
// Nothing here opens a window. Hosts (see lumen/ebitenhost and
// lumen/termhost) own the event loop, feed [Event] values to a [Glow] and
// pump a [PumpScheduler] once per display frame.
//
// # Skill tree
//
// [LayoutBinaryTree] places a flat list of skills into a heap-shaped binary
// tree in percent coordinates, one band per [Side]. [NewSkillGraph] hangs a
// left and a right tree off a shared anchor and exposes the [SkillGraph.Links]
// and [SkillGraph.Edges] to draw:
//
//	g := lumen.NewSkillGraph(lumen.DefaultLanguages, lumen.DefaultTools)
//	svg := lumen.RenderSkillGraphSVG(g, lumen.WithSize(960, 540))
//
// Layout is pure and deterministic. Pixel nudges from an [OffsetTable] are
// applied by renderers only. [Reveal] animates the graph into view with
// [gween] timelines.
//
// # Glow field
//
// A [Field] is a fixed ring of blobs spawned along the pointer path and
// drawn additively onto a [Surface]. A [Glow] binds one field to a surface
// and a [FrameScheduler]:
//
//	sched := lumen.NewPumpScheduler()
//	glow := lumen.NewGlow(lumen.DefaultGlowConfig(), surface, sched)
//	glow.Start()
//	defer glow.Stop()
//
//	// in the host loop
//	glow.Handle(lumen.PointerMoveEvent{X: x, Y: y, At: now})
//	sched.Pump(now)
//
// [RasterSurface] is a software surface for headless runs and snapshots.
//
// [gween]: https://github.com/tanema/gween
package lumen
