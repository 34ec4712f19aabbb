package ebitenhost

import (
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/lumen"
)

// RunConfig configures the preview window.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool

	// Background is the window clear color. Empty means the hero backdrop.
	Background string
	Glow       lumen.GlowConfig
	// Graph, when set, is revealed under the glow.
	Graph *lumen.SkillGraph
	// Orb, when set, is drawn in the right half of the window.
	Orb *lumen.OrbConfig

	Logger *log.Logger
	// StatsEvery logs glow frame stats every n frames. Zero disables.
	StatsEvery int
}

// Game is an ebiten.Game hosting one Glow plus the optional skill graph and
// orb. Window events are translated to lumen events each Update.
type Game struct {
	cfg     RunConfig
	sched   *lumen.PumpScheduler
	surface *Surface
	glow    *lumen.Glow
	reveal  *lumen.Reveal
	orb     *lumen.Orb
	fps     *fpsOverlay
	bg      color.Color

	width, height float64 // CSS pixels
	scale         float64 // device scale factor
	inside        bool
	lastX, lastY  int
}

// NewGame builds the game and starts the glow loop.
func NewGame(cfg RunConfig) (*Game, error) {
	bgSpec := cfg.Background
	if bgSpec == "" {
		bgSpec = lumen.DefaultHeroGlowConfig().Background
	}
	bg, err := lumen.ParseColor(bgSpec)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	g := &Game{
		cfg:     cfg,
		sched:   lumen.NewPumpScheduler(),
		surface: NewSurface(),
		bg:      bg.RGBA(),
		scale:   1,
		lastX:   -1,
		lastY:   -1,
	}
	opts := []lumen.GlowOption{lumen.WithStats(cfg.StatsEvery)}
	if cfg.Logger != nil {
		opts = append(opts, lumen.WithLogger(cfg.Logger))
	}
	g.glow = lumen.NewGlow(cfg.Glow, g.surface, g.sched, opts...)
	if cfg.Graph != nil {
		g.reveal = lumen.NewReveal(*cfg.Graph)
	}
	if cfg.Orb != nil {
		g.orb = lumen.NewOrb(*cfg.Orb, ebiten.TPS())
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	g.glow.Start()
	return g, nil
}

// Glow returns the hosted glow.
func (g *Game) Glow() *lumen.Glow { return g.glow }

// Update translates window state into glow events and pumps one frame.
func (g *Game) Update() error {
	now := time.Now()
	dt := 1 / float64(ebiten.TPS())

	g.glow.Handle(lumen.VisibilityEvent{Hidden: !ebiten.IsFocused() || ebiten.IsWindowMinimized()})
	g.trackPointer(now)

	if g.reveal != nil {
		g.reveal.Update(float32(dt))
	}
	if g.orb != nil {
		g.orb.Update(dt)
	}
	g.sched.Pump(now)
	if g.fps != nil {
		g.fps.update(dt, g.glow.Field())
	}
	return nil
}

// trackPointer emits a move when the cursor changes position inside the
// window and a leave when it exits.
func (g *Game) trackPointer(now time.Time) {
	mx, my := ebiten.CursorPosition()
	x, y := float64(mx)/g.scale, float64(my)/g.scale
	in := x >= 0 && y >= 0 && x < g.width && y < g.height
	switch {
	case in && (mx != g.lastX || my != g.lastY):
		g.glow.Handle(lumen.PointerMoveEvent{X: x, Y: y, At: now})
		if g.orb != nil {
			g.orb.PointerMove(x, y, g.glow.Field().Viewport())
		}
	case !in && g.inside:
		g.glow.Handle(lumen.PointerLeaveEvent{})
		if g.orb != nil {
			g.orb.PointerMove(g.width/2, g.height/2, g.glow.Field().Viewport())
		}
	}
	g.inside = in
	g.lastX, g.lastY = mx, my
}

// Draw paints the backdrop, the graph and orb, then the glow layer.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	if g.cfg.Graph != nil {
		w := g.width * g.scale
		if g.orb != nil {
			w /= 2
		}
		drawSkillGraph(screen, *g.cfg.Graph, g.reveal, w, g.height*g.scale)
	}
	if g.orb != nil {
		size := g.orb.Size(min(g.width/2, g.height)*0.9) * g.scale
		drawOrb(screen, g.orb, g.width*g.scale*0.75-size/2, (g.height*g.scale-size)/2, size, g.scale)
	}

	if img := g.surface.Image(); img != nil {
		var op ebiten.DrawImageOptions
		k := g.scale / g.surface.Viewport().Ratio
		op.GeoM.Scale(k, k)
		op.Blend = ebiten.BlendLighter
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(img, &op)
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout reports resizes to the glow and renders at the device scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := 1.0
	if m := ebiten.Monitor(); m != nil {
		scale = m.DeviceScaleFactor()
	}
	w, h := float64(outsideWidth), float64(outsideHeight)
	if w != g.width || h != g.height || scale != g.scale {
		g.width, g.height, g.scale = w, h, scale
		g.glow.Handle(lumen.ResizeEvent{Width: w, Height: h, DeviceRatio: scale})
	}
	return int(w * scale), int(h * scale)
}

// Close stops the glow and releases GPU images.
func (g *Game) Close() {
	g.glow.Stop()
	g.surface.Dispose()
}

// Run opens a window and blocks until it is closed.
func Run(cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 960
	}
	if cfg.Height <= 0 {
		cfg.Height = 540
	}
	if cfg.Title == "" {
		cfg.Title = "lumen"
	}
	g, err := NewGame(cfg)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetRunnableOnUnfocused(true)
	return ebiten.RunGame(g)
}
