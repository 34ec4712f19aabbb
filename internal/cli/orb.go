package cli

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/lumen"
	"github.com/phanxgames/lumen/internal/config"
)

type orbOpts struct {
	labels []string
	output string
	size   float64
	at     float64 // seconds of animation to run before drawing
	px, py float64 // pointer position in the orb box, percent
}

func (c *CLI) orbCommand() *cobra.Command {
	opts := orbOpts{px: 50, py: 50}

	cmd := &cobra.Command{
		Use:   "orb",
		Short: "Draw the neon network orb as SVG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("labels") {
				cfg.Orb.HexLabels = opts.labels
			}
			if n := len(cfg.Orb.HexLabels); n > lumen.MaxHexLabels {
				printWarning(cmd.ErrOrStderr(), "%d labels given, only the first %d are drawn", n, lumen.MaxHexLabels)
			}
			data := renderOrb(cfg, opts)
			if err := writeOutput(cmd.OutOrStdout(), opts.output, data); err != nil {
				return err
			}
			if opts.output != "" {
				printSuccess(cmd.OutOrStdout(), "Wrote orb")
				printFile(cmd.OutOrStdout(), opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.labels, "labels", nil, "hex labels, comma separated (max 6)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&opts.size, "size", 0, "edge length in pixels (default max size from config)")
	cmd.Flags().Float64Var(&opts.at, "at", 0, "seconds of motion to simulate before drawing")
	cmd.Flags().Float64Var(&opts.px, "pointer-x", opts.px, "pointer x in percent of the orb box")
	cmd.Flags().Float64Var(&opts.py, "pointer-y", opts.py, "pointer y in percent of the orb box")
	return cmd
}

func renderOrb(cfg *config.Config, opts orbOpts) []byte {
	const fps = 60
	orb := lumen.NewOrb(cfg.Orb, fps)
	size := cfg.Orb.MaxSize
	if opts.size > 0 {
		size = orb.Size(opts.size)
	}
	if size <= 0 {
		size = lumen.OrbViewBox
	}
	view := lumen.Viewport{Width: size, Height: size, Ratio: 1}
	orb.PointerMove(opts.px/100*size, opts.py/100*size, view)
	for i := 0; i < int(opts.at*fps); i++ {
		orb.Update(1.0 / fps)
	}
	return lumen.RenderOrbSVG(orb.Geometry(), orb.Pose(), size)
}
