package cli

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/phanxgames/lumen"
	"github.com/phanxgames/lumen/internal/config"
)

// maxSimFrames bounds a run when --frames is not given.
const maxSimFrames = 60 * 60 * 10

type simulateOpts struct {
	frames    int
	script    string
	seed      uint64
	png       string
	snapshots string
	plot      bool
	stats     int
}

// simResult summarizes one headless run.
type simResult struct {
	frames    int
	alive     []float64
	peak      int
	cap       int
	luminance float64
	surface   *lumen.RasterSurface
}

func (c *CLI) simulateCommand() *cobra.Command {
	opts := simulateOpts{seed: 1}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the glow field headless",
		Long:  `Run the glow field against a software surface, driven by a JSON pointer script or a built-in sweep, and report blob counts.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			steps, err := loadSteps(opts.script)
			if err != nil {
				return err
			}
			res, err := runSimulation(cmd.Context(), cfg, steps, opts)
			if err != nil {
				return err
			}
			if opts.png != "" {
				if err := lumen.SavePNG(opts.png, res.surface); err != nil {
					return err
				}
			}
			printSimulation(cmd.OutOrStdout(), res, opts)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.frames, "frames", "n", 0, "frame limit (default: until the script ends)")
	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "JSON pointer script (default: built-in sweep)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", opts.seed, "random seed for blob jitter")
	cmd.Flags().StringVar(&opts.png, "png", "", "write the final frame to a PNG file")
	cmd.Flags().StringVar(&opts.snapshots, "snapshots", "", "directory for script snapshot PNGs")
	cmd.Flags().BoolVar(&opts.plot, "plot", false, "plot live blobs per frame")
	cmd.Flags().IntVar(&opts.stats, "stats", 0, "log frame stats every n frames (debug level)")
	return cmd
}

// defaultSweep moves the pointer corner to corner and back on an 800x600
// surface, then lets the field drain.
func defaultSweep() []lumen.ScriptStep {
	return []lumen.ScriptStep{
		{Action: "resize", Width: 800, Height: 600, Ratio: 1},
		{Action: "path", FromX: 40, FromY: 40, ToX: 760, ToY: 560, Frames: 120},
		{Action: "path", FromX: 760, FromY: 560, ToX: 40, ToY: 300, Frames: 90},
		{Action: "snapshot", Label: "sweep"},
		{Action: "leave"},
		{Action: "wait", Frames: 90},
	}
}

func loadSteps(path string) ([]lumen.ScriptStep, error) {
	if path == "" {
		return defaultSweep(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	r, err := lumen.LoadScript(data)
	if err != nil {
		return nil, err
	}
	return r.Steps(), nil
}

func runSimulation(ctx context.Context, cfg *config.Config, steps []lumen.ScriptStep, opts simulateOpts) (*simResult, error) {
	logger := loggerFromContext(ctx)

	runner, err := lumen.NewScriptRunner(steps...)
	if err != nil {
		return nil, err
	}
	surface := lumen.NewRasterSurface(lumen.Viewport{Ratio: 1})
	sched := lumen.NewPumpScheduler()
	glow := lumen.NewGlow(cfg.Glow, surface, sched,
		lumen.WithLogger(logger),
		lumen.WithStats(opts.stats),
		lumen.WithFieldOptions(lumen.WithRand(rand.New(rand.NewPCG(opts.seed, opts.seed)))),
	)
	glow.Start()
	defer glow.Stop()

	if opts.snapshots != "" {
		runner.OnSnapshot = func(label string, frame uint64) error {
			path := lumen.SnapshotPath(opts.snapshots, label, time.Now())
			if err := lumen.SavePNG(path, surface); err != nil {
				return err
			}
			logger.Info("snapshot", "frame", frame, "path", path)
			return nil
		}
	}

	limit := opts.frames
	if limit <= 0 {
		limit = maxSimFrames
	}
	prog := newProgress(logger)
	res := &simResult{cap: glow.Field().Cap(), surface: surface}
	for !runner.Done() && res.frames < limit {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := runner.Step(glow, sched); err != nil {
			return nil, err
		}
		res.frames++
		alive := glow.Field().Alive()
		res.alive = append(res.alive, float64(alive))
		res.peak = max(res.peak, alive)
	}
	res.luminance = surface.Luminance()
	prog.done(fmt.Sprintf("Simulated %d frames", res.frames))
	return res, nil
}

func printSimulation(w io.Writer, res *simResult, opts simulateOpts) {
	printTitle(w, "Glow simulation")
	printKeyValue(w, "frames", strconv.Itoa(res.frames))
	printKeyValue(w, "peak alive", fmt.Sprintf("%d / %d", res.peak, res.cap))
	if len(res.alive) > 0 {
		printKeyValue(w, "final alive", strconv.Itoa(int(res.alive[len(res.alive)-1])))
	}
	printKeyValue(w, "luminance", strconv.FormatFloat(res.luminance, 'f', 4, 64))
	if opts.png != "" {
		printFile(w, opts.png)
	}
	if opts.plot && len(res.alive) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, asciigraph.Plot(res.alive,
			asciigraph.Height(10),
			asciigraph.Width(60),
			asciigraph.Caption("live blobs per frame"),
		))
	}
}
