// Package cli implements the lumen command-line interface.
//
// Commands:
//   - tree: lay out the skill graph and write SVG, DOT or JSON
//   - orb: write the neon orb wireframe as SVG
//   - simulate: run the glow field headless, optionally from a pointer script
//   - glow: open an Ebitengine preview window
//   - term: preview the glow field in the terminal
//
// All commands read an optional --config file (TOML or YAML) and a .env
// overlay. The logger travels in the command context.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/lumen/internal/config"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
	getenv     func(string) string
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), getenv: os.Getenv}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "lumen",
		Short:        "Skill tree layouts and cursor glow effects",
		Long:         `lumen lays out portfolio skill graphs and simulates the cursor glow particle field, headless or in a preview window.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "config file (.toml, .yaml)")

	root.AddCommand(c.treeCommand())
	root.AddCommand(c.orbCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.glowCommand())
	root.AddCommand(c.termCommand())
	return root
}

// loadConfig reads the .env overlay, then the config file if one was given,
// then applies environment overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		c.Logger.Debug("loaded config", "path", c.configPath)
	}
	if err := cfg.ApplyEnv(c.getenv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// writeOutput writes data to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
