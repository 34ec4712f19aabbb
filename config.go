package lumen

import "time"

// SpawnInterval is the minimum time between two pointer-driven spawns.
const SpawnInterval = 16 * time.Millisecond

// DefaultGlowColor is the particle tint used when none (or an unparseable
// one) is configured.
const DefaultGlowColor = "rgba(80,160,255,1)"

// GlowConfig controls the cursor glow field. Zero values are honored as given:
// MaxBlobs <= 0 or SpawnPerMove <= 0 disables spawning.
type GlowConfig struct {
	// Color is the base particle color, e.g. "rgba(80,160,255,1)" or "#50a0ff".
	Color string `toml:"color" yaml:"color" json:"color"`
	// MaxBlobs is the ring buffer capacity.
	MaxBlobs int `toml:"max_blobs" yaml:"max_blobs" json:"maxBlobs"`
	// SpawnPerMove is the number of blobs added per accepted pointer move.
	SpawnPerMove int `toml:"spawn_per_move" yaml:"spawn_per_move" json:"spawnPerMove"`
	// PixelRatioCap bounds the device pixel ratio used for the backing store.
	PixelRatioCap float64 `toml:"pixel_ratio_cap" yaml:"pixel_ratio_cap" json:"pixelRatioCap"`
}

// DefaultGlowConfig returns the stock glow settings.
func DefaultGlowConfig() GlowConfig {
	return GlowConfig{
		Color:         DefaultGlowColor,
		MaxBlobs:      120,
		SpawnPerMove:  3,
		PixelRatioCap: 1.6,
	}
}

// capRatio applies PixelRatioCap to a reported device ratio.
func (c GlowConfig) capRatio(device float64) float64 {
	if device <= 0 {
		device = 1
	}
	if c.PixelRatioCap <= 0 {
		return min(device, 1)
	}
	return min(device, c.PixelRatioCap)
}

// MaxHexLabels is the number of hexes on the orb's middle ring.
const MaxHexLabels = 6

// OrbConfig controls the neon network orb.
type OrbConfig struct {
	// MaxSize caps the rendered orb edge length in pixels.
	MaxSize float64 `toml:"max_size" yaml:"max_size" json:"maxSize"`
	// Parallax is the translate range in pixels at full pointer deflection.
	Parallax float64 `toml:"parallax" yaml:"parallax" json:"parallax"`
	// Tilt is the rotation range in degrees at full pointer deflection.
	Tilt float64 `toml:"tilt" yaml:"tilt" json:"tilt"`
	// HexLabels are drawn inside the outer hexes; extras past six are ignored.
	HexLabels []string `toml:"hex_labels" yaml:"hex_labels" json:"hexLabels"`
}

// DefaultOrbConfig returns the stock orb settings.
func DefaultOrbConfig() OrbConfig {
	return OrbConfig{
		MaxSize:   420,
		Parallax:  8,
		Tilt:      3,
		HexLabels: []string{"JS", "TS", "PY", "GIT", "SQL", "CSS"},
	}
}

// labels returns at most MaxHexLabels labels.
func (c OrbConfig) labels() []string {
	if len(c.HexLabels) > MaxHexLabels {
		return c.HexLabels[:MaxHexLabels]
	}
	return c.HexLabels
}

// HeroGlowConfig controls the pointer-following hero backdrop.
type HeroGlowConfig struct {
	Background string  `toml:"background" yaml:"background" json:"background"`
	Color      string  `toml:"color" yaml:"color" json:"color"`
	Size       float64 `toml:"size" yaml:"size" json:"size"`
	Intensity  float64 `toml:"intensity" yaml:"intensity" json:"intensity"`
	Blur       float64 `toml:"blur" yaml:"blur" json:"blur"`
}

// DefaultHeroGlowConfig returns the stock hero glow settings.
func DefaultHeroGlowConfig() HeroGlowConfig {
	return HeroGlowConfig{
		Background: "#0a1628",
		Color:      "#1e3a8a",
		Size:       400,
		Intensity:  0.6,
		Blur:       80,
	}
}
