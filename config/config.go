package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"snake-arena/game/types"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// SeedEnv overrides the seed when no -seed flag was given.
const SeedEnv = "SNAKE_SEED"

const (
	BackendRaylib   = "raylib"
	BackendTerminal = "terminal"
)

// Config holds everything tunable about a run. Zero Seed means derive one
// from the clock.
type Config struct {
	ScreenWidth      int `json:"screen_width"`
	ScreenHeight     int `json:"screen_height"`
	ScoreBoardHeight int `json:"score_board_height"`

	SegmentWidth  int `json:"segment_width"`
	SegmentHeight int `json:"segment_height"`
	SegmentMargin int `json:"segment_margin"`
	WallThickness int `json:"wall_thickness"`

	StartLength  int  `json:"start_length"`
	FrameRate    int  `json:"frame_rate"`
	Obstacles    int  `json:"obstacles"`
	Walls        bool `json:"walls"`
	Hazards      bool `json:"hazards"`
	AvoidOverlap bool `json:"avoid_overlap"`

	Seed       uint64 `json:"seed"`
	Backend    string `json:"backend"`
	Autopilot  bool   `json:"autopilot"`
	Screenshot string `json:"screenshot"`
	Log        string `json:"log"`
}

// Default returns the classic 800x600 arena at 10 frames per second.
func Default() Config {
	return Config{
		ScreenWidth:      800,
		ScreenHeight:     600,
		ScoreBoardHeight: 100,
		SegmentWidth:     20,
		SegmentHeight:    20,
		SegmentMargin:    5,
		WallThickness:    25,
		StartLength:      2,
		FrameRate:        10,
		Obstacles:        9,
		Walls:            true,
		Hazards:          true,
		Backend:          BackendRaylib,
	}
}

// Bounds is the arena below the score board.
func (c Config) Bounds() types.Bounds {
	return types.Bounds{
		MinX: 0,
		MaxX: c.ScreenWidth,
		MinY: c.ScoreBoardHeight,
		MaxY: c.ScreenHeight,
	}
}

// Start is where the snake's head sits at round start: one margin inside
// the top-left corner of the walled arena.
func (c Config) Start() types.Point {
	return types.Point{
		X: c.WallThickness + c.SegmentMargin,
		Y: c.ScoreBoardHeight + c.WallThickness + c.SegmentMargin,
	}
}

func (c Config) Validate() error {
	positive := []struct {
		name string
		v    int
	}{
		{"screen_width", c.ScreenWidth},
		{"screen_height", c.ScreenHeight},
		{"segment_width", c.SegmentWidth},
		{"segment_height", c.SegmentHeight},
		{"frame_rate", c.FrameRate},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %d", ErrInvalid, p.name, p.v)
		}
	}
	if c.SegmentMargin < 0 || c.WallThickness < 0 || c.ScoreBoardHeight < 0 {
		return fmt.Errorf("%w: margins and thicknesses must not be negative", ErrInvalid)
	}
	if c.StartLength < 2 {
		return fmt.Errorf("%w: start_length must be at least 2, got %d", ErrInvalid, c.StartLength)
	}
	if c.Obstacles < 0 {
		return fmt.Errorf("%w: obstacles must not be negative, got %d", ErrInvalid, c.Obstacles)
	}

	b := c.Bounds()
	pitchX := c.SegmentWidth + c.SegmentMargin
	pitchY := c.SegmentHeight + c.SegmentMargin
	if b.Width() < 3*pitchX+2*c.WallThickness {
		return fmt.Errorf("%w: arena %d px wide is too narrow", ErrInvalid, b.Width())
	}
	if b.Height() < 3*pitchY+2*c.WallThickness {
		return fmt.Errorf("%w: arena %d px high is too short", ErrInvalid, b.Height())
	}
	if (b.MaxX-c.WallThickness)/pitchX-1 < (b.MinX+c.WallThickness)/pitchX ||
		(b.MaxY-c.WallThickness)/pitchY-1 < (b.MinY+c.WallThickness)/pitchY {
		return fmt.Errorf("%w: no spawn cells fit inside the walls", ErrInvalid)
	}

	switch c.Backend {
	case BackendRaylib, BackendTerminal:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalid, c.Backend)
	}
	return nil
}

// Load reads a JSON file on top of the defaults. Fields the file leaves
// out keep their default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) register(fs *flag.FlagSet) {
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "window width in pixels")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "window height in pixels")
	fs.IntVar(&c.FrameRate, "fps", c.FrameRate, "frames per second")
	fs.IntVar(&c.StartLength, "length", c.StartLength, "starting snake length")
	fs.IntVar(&c.Obstacles, "obstacles", c.Obstacles, "number of obstacles")
	fs.BoolVar(&c.Walls, "walls", c.Walls, "walls are fatal")
	fs.BoolVar(&c.Hazards, "hazards", c.Hazards, "obstacles are fatal")
	fs.BoolVar(&c.AvoidOverlap, "avoid-overlap", c.AvoidOverlap, "keep spawns off the snake and each other")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "random seed (0 uses the clock)")
	fs.StringVar(&c.Backend, "backend", c.Backend, "raylib or terminal")
	fs.BoolVar(&c.Autopilot, "autopilot", c.Autopilot, "let the Q-learning agent play")
	fs.StringVar(&c.Screenshot, "screenshot", c.Screenshot, "write the last frame of each round to this PNG")
	fs.StringVar(&c.Log, "log", c.Log, "log file (the terminal backend logs nowhere by default)")
}

// Parse builds a Config from defaults, an optional -config JSON file, the
// remaining flags and finally SNAKE_SEED. getenv is os.Getenv outside tests.
func Parse(name string, args []string, getenv func(string) string) (Config, error) {
	var path string

	// First pass only finds -config; every flag must be known to parse.
	scratch := Default()
	pre := flag.NewFlagSet(name, flag.ContinueOnError)
	pre.SetOutput(io.Discard)
	pre.StringVar(&path, "config", "", "")
	scratch.register(pre)
	if err := pre.Parse(args); err != nil {
		// The second pass reports it with usage.
		path = ""
	}

	cfg := Default()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&path, "config", path, "JSON config file")
	cfg.register(fs)
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	seedFlag := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			seedFlag = true
		}
	})
	if !seedFlag {
		if v := getenv(SeedEnv); v != "" {
			seed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return cfg, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, SeedEnv, v, err)
			}
			cfg.Seed = seed
		}
	}

	return cfg, cfg.Validate()
}
