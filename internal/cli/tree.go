package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/lumen"
	"github.com/phanxgames/lumen/internal/config"
)

type treeOpts struct {
	format string
	output string
	width  float64
	height float64
	labels bool
}

// treeJSON is the positioned graph as written by --format json.
type treeJSON struct {
	Anchor lumen.Vec2             `json:"anchor"`
	Left   []lumen.PositionedNode `json:"left"`
	Right  []lumen.PositionedNode `json:"right"`
}

func (c *CLI) treeCommand() *cobra.Command {
	opts := treeOpts{format: string(lumen.FormatSVG), width: 800, height: 600, labels: true}

	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Lay out the skill graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			data, err := renderTree(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}
			if err := writeOutput(cmd.OutOrStdout(), opts.output, data); err != nil {
				return err
			}
			if opts.output != "" {
				printSuccess(cmd.OutOrStdout(), "Wrote skill graph (%s)", opts.format)
				printFile(cmd.OutOrStdout(), opts.output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, dot, graphviz, json")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "SVG width in pixels")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "SVG height in pixels")
	cmd.Flags().BoolVar(&opts.labels, "labels", opts.labels, "draw skill names under nodes")
	return cmd
}

func renderTree(ctx context.Context, cfg *config.Config, opts treeOpts) ([]byte, error) {
	format, err := lumen.ParseFormat(opts.format)
	if err != nil {
		return nil, err
	}
	logger := loggerFromContext(ctx)
	g := cfg.Graph()
	logger.Debug("laid out skill graph", "left", len(g.Left), "right", len(g.Right))

	switch format {
	case lumen.FormatDOT:
		return []byte(lumen.SkillGraphDOT(g)), nil
	case lumen.FormatGraphviz:
		prog := newProgress(logger)
		data, err := lumen.RenderDOT(ctx, lumen.SkillGraphDOT(g))
		if err != nil {
			return nil, err
		}
		prog.done("Rendered with graphviz")
		return data, nil
	case lumen.FormatJSON:
		data, err := json.MarshalIndent(treeJSON{Anchor: g.Anchor, Left: g.Left, Right: g.Right}, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode graph: %w", err)
		}
		return append(data, '\n'), nil
	default:
		offsets, err := cfg.OffsetTable()
		if err != nil {
			return nil, err
		}
		return lumen.RenderSkillGraphSVG(g,
			lumen.WithSize(opts.width, opts.height),
			lumen.WithOffsets(offsets),
			lumen.WithLabels(opts.labels),
		), nil
	}
}
