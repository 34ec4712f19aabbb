package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/lumen/ebitenhost"
	"github.com/phanxgames/lumen/internal/config"
	"github.com/phanxgames/lumen/termhost"
)

type glowOpts struct {
	fps   bool
	graph bool
	orb   bool
	stats int
}

func (c *CLI) glowCommand() *cobra.Command {
	var opts glowOpts

	cmd := &cobra.Command{
		Use:   "glow",
		Short: "Open the glow preview window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			run := glowRunConfig(cfg, opts)
			run.Logger = loggerFromContext(cmd.Context())
			run.Logger.Debug("opening window", "width", run.Width, "height", run.Height)
			return ebitenhost.Run(run)
		},
	}

	cmd.Flags().BoolVar(&opts.fps, "fps", false, "show the FPS overlay")
	cmd.Flags().BoolVar(&opts.graph, "graph", true, "draw the skill graph under the glow")
	cmd.Flags().BoolVar(&opts.orb, "orb", false, "draw the orb in the right half")
	cmd.Flags().IntVar(&opts.stats, "stats", 0, "log frame stats every n frames (debug level)")
	return cmd
}

func glowRunConfig(cfg *config.Config, opts glowOpts) ebitenhost.RunConfig {
	run := ebitenhost.RunConfig{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		ShowFPS:    cfg.Window.ShowFPS || opts.fps,
		Background: cfg.Hero.Background,
		Glow:       cfg.Glow,
		StatsEvery: opts.stats,
	}
	if opts.graph {
		g := cfg.Graph()
		run.Graph = &g
	}
	if opts.orb {
		orb := cfg.Orb
		run.Orb = &orb
	}
	return run
}

func (c *CLI) termCommand() *cobra.Command {
	var logPath string

	cmd := &cobra.Command{
		Use:   "term",
		Short: "Preview the glow field in the terminal",
		Long:  `Preview the glow field with half-block cells. Move the mouse over the terminal; press q to quit.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			tc := termhost.Config{Glow: cfg.Glow, Background: cfg.Hero.Background}
			// The program owns the terminal, so logs only go to a file.
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log: %w", err)
				}
				defer f.Close()
				tc.Logger = newLogger(f, c.Logger.GetLevel())
			}
			return termhost.Run(cmd.Context(), tc)
		},
	}

	cmd.Flags().StringVar(&logPath, "log", "", "append logs to this file")
	return cmd
}
