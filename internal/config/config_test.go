package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phanxgames/lumen"
)

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadTOML(t *testing.T) {
	path := write(t, "lumen.toml", `
[glow]
color = "#ff8800"
max_blobs = 0

[orb]
hex_labels = ["GO", "RS"]

[[skills.left]]
name = "Go"
color = "#00ADD8"
icon = "code"

[offsets.right]
1 = { dx = 4 }
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Glow.Color != "#ff8800" || cfg.Glow.MaxBlobs != 0 {
		t.Errorf("glow = %+v", cfg.Glow)
	}
	if cfg.Glow.SpawnPerMove != 3 || cfg.Glow.PixelRatioCap != 1.6 {
		t.Errorf("omitted keys lost their defaults: %+v", cfg.Glow)
	}
	if diff := cmp.Diff([]string{"GO", "RS"}, cfg.Orb.HexLabels); diff != "" {
		t.Errorf("hex labels (-want +got):\n%s", diff)
	}
	want := []lumen.Skill{{Name: "Go", Color: "#00ADD8", Icon: lumen.IconCode}}
	if diff := cmp.Diff(want, cfg.Skills.Left); diff != "" {
		t.Errorf("left skills (-want +got):\n%s", diff)
	}
	if len(cfg.Skills.Right) != len(lumen.DefaultTools) {
		t.Errorf("right skills = %d, want defaults", len(cfg.Skills.Right))
	}
	table, err := cfg.OffsetTable()
	if err != nil {
		t.Fatal(err)
	}
	if got := table.Lookup(lumen.SideRight, 1); got.DX != 4 {
		t.Errorf("right slot 1 nudge = %+v", got)
	}
}

func TestLoadYAML(t *testing.T) {
	path := write(t, "lumen.yaml", `
window:
  show_fps: true
hero:
  intensity: 0.9
skills:
  right:
    - name: Docker
      icon: docker
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Window.ShowFPS || cfg.Window.Width != 960 {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Hero.Intensity != 0.9 || cfg.Hero.Size != 400 {
		t.Errorf("hero = %+v", cfg.Hero)
	}
	if len(cfg.Skills.Right) != 1 || cfg.Skills.Right[0].Icon != lumen.IconDocker {
		t.Errorf("right = %+v", cfg.Skills.Right)
	}
	g := cfg.Graph()
	if len(g.Right) != 1 || len(g.Left) != 7 {
		t.Errorf("graph sizes = %d/%d", len(g.Left), len(g.Right))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name, file, body string
		target           error
	}{
		{"extension", "lumen.ini", "x=1", ErrUnsupportedFormat},
		{"bad icon", "lumen.yaml", "skills:\n  left:\n    - name: x\n      icon: cobol\n", lumen.ErrUnknownIcon},
		{"bad toml icon", "lumen.toml", "[[skills.left]]\nname = \"x\"\nicon = \"cobol\"\n", nil},
		{"bad slot", "lumen.toml", "[offsets.left]\nroot = { dx = 1 }\n", nil},
		{"bad side", "lumen.yaml", "offsets:\n  up:\n    \"1\": {dx: 2}\n", lumen.ErrUnknownSide},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(write(t, tt.file, tt.body))
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("err = %v, want %v", err, tt.target)
			}
		})
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvGlowColor:     "rgb(1,2,3)",
		EnvMaxBlobs:      "12",
		EnvSpawnPerMove:  "0",
		EnvPixelRatioCap: "2.5",
	}
	cfg := Default()
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatal(err)
	}
	want := lumen.GlowConfig{Color: "rgb(1,2,3)", MaxBlobs: 12, SpawnPerMove: 0, PixelRatioCap: 2.5}
	if diff := cmp.Diff(want, cfg.Glow); diff != "" {
		t.Errorf("glow (-want +got):\n%s", diff)
	}

	env[EnvMaxBlobs] = "lots"
	if err := Default().ApplyEnv(func(k string) string { return env[k] }); err == nil {
		t.Error("bad integer should fail")
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := write(t, "test.env", "LUMEN_TEST_DOTENV=hello\n")
	t.Setenv("LUMEN_TEST_DOTENV", "")
	os.Unsetenv("LUMEN_TEST_DOTENV")
	if err := LoadDotEnv(path, filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv("LUMEN_TEST_DOTENV"); got != "hello" {
		t.Errorf("env = %q, want hello", got)
	}
}
