package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"snake-arena/game/types"
)

func noEnv(string) string { return "" }

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	want := types.Bounds{MinX: 0, MaxX: 800, MinY: 100, MaxY: 600}
	if cfg.Bounds() != want {
		t.Errorf("Bounds = %+v, want %+v", cfg.Bounds(), want)
	}
	if cfg.Start() != (types.Point{X: 30, Y: 130}) {
		t.Errorf("Start = %+v, want (30,130)", cfg.Start())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.ScreenWidth = 0 }},
		{"short snake", func(c *Config) { c.StartLength = 1 }},
		{"negative obstacles", func(c *Config) { c.Obstacles = -1 }},
		{"tiny arena", func(c *Config) { c.ScreenWidth = 100 }},
		{"unknown backend", func(c *Config) { c.Backend = "sdl" }},
		{"zero fps", func(c *Config) { c.FrameRate = 0 }},
		{"negative margin", func(c *Config) { c.SegmentMargin = -5 }},
	}
	for _, tt := range tests {
		cfg := Default()
		tt.mutate(&cfg)
		err := cfg.Validate()
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("%s: err = %v, want ErrInvalid", tt.name, err)
		}
	}
}

func TestParseLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "snake.json")
	body := `{"obstacles": 3, "walls": false, "frame_rate": 15, "seed": 11}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Parse("snake", []string{"-config", path, "-fps", "20", "-backend", "terminal"}, noEnv)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Obstacles != 3 || cfg.Walls {
		t.Errorf("file values lost: %+v", cfg)
	}
	if cfg.FrameRate != 20 {
		t.Errorf("flag should beat file: fps = %d", cfg.FrameRate)
	}
	if cfg.Backend != BackendTerminal {
		t.Errorf("backend = %q", cfg.Backend)
	}
	if cfg.ScreenWidth != 800 || !cfg.Hazards {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.Seed != 11 {
		t.Errorf("seed = %d, want 11 from file", cfg.Seed)
	}
}

func TestParseSeedSources(t *testing.T) {
	env := func(k string) string {
		if k == SeedEnv {
			return "77"
		}
		return ""
	}
	tests := []struct {
		name string
		args []string
		env  func(string) string
		want uint64
	}{
		{"nothing", nil, noEnv, 0},
		{"env", nil, env, 77},
		{"flag beats env", []string{"-seed", "5"}, env, 5},
	}
	for _, tt := range tests {
		cfg, err := Parse("snake", tt.args, tt.env)
		if err != nil {
			t.Fatalf("%s: Parse: %v", tt.name, err)
		}
		if cfg.Seed != tt.want {
			t.Errorf("%s: seed = %d, want %d", tt.name, cfg.Seed, tt.want)
		}
	}

	bad := func(string) string { return "abc" }
	if _, err := Parse("snake", nil, bad); !errors.Is(err, ErrInvalid) {
		t.Errorf("bad env seed: err = %v", err)
	}
}

func TestParseRejects(t *testing.T) {
	if _, err := Parse("snake", []string{"-length", "1"}, noEnv); !errors.Is(err, ErrInvalid) {
		t.Errorf("length 1: err = %v", err)
	}
	if _, err := Parse("snake", []string{"-nope"}, noEnv); err == nil {
		t.Error("unknown flag should fail")
	}
	if _, err := Parse("snake", []string{"-config", "/does/not/exist.json"}, noEnv); err == nil {
		t.Error("missing config file should fail")
	}
}
