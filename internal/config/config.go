// Package config loads lumen settings from TOML or YAML files with an
// environment overlay.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/lumen"
)

// ErrUnsupportedFormat is returned for config files that are neither TOML
// nor YAML.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Environment variables that override file values.
const (
	EnvGlowColor     = "LUMEN_GLOW_COLOR"
	EnvMaxBlobs      = "LUMEN_MAX_BLOBS"
	EnvSpawnPerMove  = "LUMEN_SPAWN_PER_MOVE"
	EnvPixelRatioCap = "LUMEN_PIXEL_RATIO_CAP"
)

// Config is the full settings file.
type Config struct {
	Window Window               `toml:"window" yaml:"window"`
	Glow   lumen.GlowConfig     `toml:"glow" yaml:"glow"`
	Orb    lumen.OrbConfig      `toml:"orb" yaml:"orb"`
	Hero   lumen.HeroGlowConfig `toml:"hero" yaml:"hero"`
	Skills Skills               `toml:"skills" yaml:"skills"`
	// Offsets is side → slot index → nudge. Nil means lumen.DefaultOffsets.
	Offsets map[string]map[string]lumen.Offset `toml:"offsets" yaml:"offsets"`
}

// Window configures the preview window.
type Window struct {
	Title   string `toml:"title" yaml:"title"`
	Width   int    `toml:"width" yaml:"width"`
	Height  int    `toml:"height" yaml:"height"`
	ShowFPS bool   `toml:"show_fps" yaml:"show_fps"`
}

// Skills are the two skill graph groups.
type Skills struct {
	Left  []lumen.Skill `toml:"left" yaml:"left"`
	Right []lumen.Skill `toml:"right" yaml:"right"`
}

// Default returns the stock settings.
func Default() *Config {
	return &Config{
		Window: Window{Title: "lumen", Width: 960, Height: 540},
		Glow:   lumen.DefaultGlowConfig(),
		Orb:    lumen.DefaultOrbConfig(),
		Hero:   lumen.DefaultHeroGlowConfig(),
		Skills: Skills{
			Left:  append([]lumen.Skill(nil), lumen.DefaultLanguages...),
			Right: append([]lumen.Skill(nil), lumen.DefaultTools...),
		},
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml, .yaml or .yml.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if _, err := cfg.OffsetTable(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDotEnv loads KEY=value pairs from the given files (".env" when none are
// named) into the process environment. Missing files are ignored and
// variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides glow settings from the environment. getenv is usually
// os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvGlowColor); v != "" {
		c.Glow.Color = v
	}
	if v := getenv(EnvMaxBlobs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMaxBlobs, err)
		}
		c.Glow.MaxBlobs = n
	}
	if v := getenv(EnvSpawnPerMove); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSpawnPerMove, err)
		}
		c.Glow.SpawnPerMove = n
	}
	if v := getenv(EnvPixelRatioCap); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPixelRatioCap, err)
		}
		c.Glow.PixelRatioCap = f
	}
	return nil
}

// OffsetTable converts the string-keyed nudges to a lumen.OffsetTable.
func (c *Config) OffsetTable() (lumen.OffsetTable, error) {
	if c.Offsets == nil {
		return lumen.DefaultOffsets, nil
	}
	t := make(lumen.OffsetTable, len(c.Offsets))
	for sideName, slots := range c.Offsets {
		side, err := lumen.ParseSide(sideName)
		if err != nil {
			return nil, fmt.Errorf("offsets: %w", err)
		}
		m := make(map[int]lumen.Offset, len(slots))
		for k, off := range slots {
			i, err := strconv.Atoi(k)
			if err != nil || i < 0 {
				return nil, fmt.Errorf("offsets.%s: bad slot %q", sideName, k)
			}
			m[i] = off
		}
		t[side] = m
	}
	return t, nil
}

// Graph lays out the configured skills.
func (c *Config) Graph() lumen.SkillGraph {
	return lumen.NewSkillGraph(c.Skills.Left, c.Skills.Right)
}
