package ui

import (
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"snake-arena/ai"
	"snake-arena/config"
	"snake-arena/game"
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Obstacles = 0
	return cfg
}

func newGame(cfg config.Config) *game.Game {
	return game.New(cfg, rand.New(rand.NewSource(4)), nil)
}

func pixel(t *testing.T, s *ImageSurface, x, y int) types.Color {
	t.Helper()
	c := color.RGBAModel.Convert(s.Image().At(x, y)).(color.RGBA)
	return types.Color{R: c.R, G: c.G, B: c.B}
}

func center(c types.Cell) types.Point {
	return types.Point{X: c.X + c.Width/2, Y: c.Y + c.Height/2}
}

func TestDrawRoundLayers(t *testing.T) {
	cfg := testConfig()
	sess := game.NewSession(cfg, rand.New(rand.NewSource(1)), time.Now())
	sess.Food.Place(types.Point{X: 405, Y: 305})
	sess.Mistake.Place(types.Point{X: 505, Y: 305})

	img := NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight)
	NewRenderer(cfg).DrawRound(img, sess)

	tests := []struct {
		name string
		at   types.Point
		want types.Color
	}{
		{"food", types.Point{X: 415, Y: 315}, types.FoodColor},
		{"mistake", types.Point{X: 515, Y: 315}, types.MistakeColor},
		{"head", types.Point{X: 40, Y: 140}, types.SnakeColor},
		{"top wall", types.Point{X: 400, Y: 112}, types.WallColor},
		{"arena", types.Point{X: 300, Y: 450}, types.ArenaColor},
		{"score bar", types.Point{X: 5, Y: 5}, types.ScoreBarColor},
		{"snake over wall", types.Point{X: 15, Y: 140}, types.SnakeColor},
	}
	for _, tt := range tests {
		if got := pixel(t, img, tt.at.X, tt.at.Y); got != tt.want {
			t.Errorf("%s at %+v = %+v, want %+v", tt.name, tt.at, got, tt.want)
		}
	}
}

func TestWallsHiddenWhenDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.Walls = false
	sess := game.NewSession(cfg, rand.New(rand.NewSource(1)), time.Now())
	img := NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight)
	NewRenderer(cfg).DrawRound(img, sess)
	if got := pixel(t, img, 400, 112); got != types.ArenaColor {
		t.Errorf("wall drawn while disabled: %+v", got)
	}
}

func TestMenuButtons(t *testing.T) {
	cfg := testConfig()
	g := newGame(cfg)
	r := NewRenderer(cfg)
	img := NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight)

	buttons := r.buttons(img, g)
	if len(buttons) != 3 {
		t.Fatalf("got %d menu buttons", len(buttons))
	}
	for i := 1; i < len(buttons); i++ {
		if buttons[i].Rect.Overlaps(buttons[i-1].Rect) {
			t.Errorf("buttons %d and %d overlap", i-1, i)
		}
	}
	start := buttons[0]
	if center(start.Rect).Y != cfg.ScreenHeight/4+200 {
		t.Errorf("start button centred at y=%d", center(start.Rect).Y)
	}

	// Hover lights the padding of the button under the mouse.
	corner := types.Point{X: start.Rect.X + 2, Y: start.Rect.Y + 1}
	r.Draw(img, g, types.Point{})
	if got := pixel(t, img, corner.X, corner.Y); got != types.DarkGreen {
		t.Errorf("idle start button = %+v", got)
	}
	r.Draw(img, g, center(start.Rect))
	if got := pixel(t, img, corner.X, corner.Y); got != types.Green {
		t.Errorf("hovered start button = %+v", got)
	}

	Frame(g, r, img, FrameInput{Mouse: center(buttons[1].Rect), Click: true}, Options{})
	if g.WallsEnabled() || g.State() != manager.StateMenu {
		t.Fatalf("toggle click: walls %v state %v", g.WallsEnabled(), g.State())
	}
	if label := r.buttons(img, g)[1].Label; label != "Walls: off" {
		t.Errorf("toggle label = %q", label)
	}

	// Hovering without a click does nothing.
	Frame(g, r, img, FrameInput{Mouse: center(start.Rect)}, Options{})
	if g.State() != manager.StateMenu {
		t.Fatalf("hover started the game")
	}
	Frame(g, r, img, FrameInput{Mouse: center(start.Rect), Click: true}, Options{})
	if g.State() != manager.StateRunning {
		t.Errorf("state = %v after clicking start", g.State())
	}
}

func TestEnterPressesFirstButton(t *testing.T) {
	cfg := testConfig()
	g := newGame(cfg)
	r := NewRenderer(cfg)
	img := NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight)

	Frame(g, r, img, FrameInput{Keys: []types.Key{types.KeyEnter}}, Options{})
	if g.State() != manager.StateRunning {
		t.Fatalf("state = %v, want running", g.State())
	}
}

func TestGameOverScreen(t *testing.T) {
	cfg := testConfig()
	cfg.Walls = true
	g := newGame(cfg)
	r := NewRenderer(cfg)
	img := NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight)

	g.Dispatch(manager.ActionStart)
	sess := g.Session()
	sess.Food.Place(types.Point{X: 30, Y: 555})
	sess.Mistake.Place(types.Point{X: 55, Y: 555})
	sess.Snake.SetDirection(types.UP)

	// The top wall is one step above the start position.
	Frame(g, r, img, FrameInput{}, Options{})
	if g.State() != manager.StateEnded {
		t.Fatalf("state = %v, want ended", g.State())
	}
	if got := pixel(t, img, 5, 5); got != types.ScoreBarColor {
		t.Errorf("fatal frame did not show the board: %+v", got)
	}
	// The head is drawn where it hit the wall.
	if head := sess.Snake.Head(); head.Pos() != (types.Point{X: 30, Y: 105}) {
		t.Fatalf("head at %+v, want (30,105)", head.Pos())
	}
	if got := pixel(t, img, 40, 115); got != types.SnakeColor {
		t.Errorf("fatal frame head pixel = %+v, want snake colour", got)
	}
	Frame(g, r, img, FrameInput{}, Options{})
	if got := pixel(t, img, 5, 5); got != types.ArenaColor {
		t.Errorf("game over screen not drawn: %+v", got)
	}

	buttons := r.buttons(img, g)
	labels := []string{"Try again", "Main menu", "Quit game"}
	for i, b := range buttons {
		if b.Label != labels[i] {
			t.Errorf("button %d = %q, want %q", i, b.Label, labels[i])
		}
	}
	Frame(g, r, img, FrameInput{Mouse: center(buttons[1].Rect), Click: true}, Options{})
	if g.State() != manager.StateMenu || g.Session() != nil {
		t.Errorf("main menu click: state %v", g.State())
	}
}

func TestAutopilotFrames(t *testing.T) {
	cfg := testConfig()
	g := newGame(cfg)
	r := NewRenderer(cfg)
	img := NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight)
	opts := Options{Autopilot: ai.NewAutopilot(rand.New(rand.NewSource(8)))}

	Frame(g, r, img, FrameInput{}, opts)
	if g.State() != manager.StateRunning {
		t.Fatalf("autopilot did not start: %v", g.State())
	}
	for i := 0; i < 500; i++ {
		Frame(g, r, img, FrameInput{}, opts)
	}
	if g.Stats.GamesPlayed() == 0 {
		t.Fatal("no round finished")
	}
	if opts.Autopilot.GamesPlayed != g.Stats.GamesPlayed() {
		t.Errorf("autopilot saw %d rounds, stats %d", opts.Autopilot.GamesPlayed, g.Stats.GamesPlayed())
	}
}

func TestSaveScreenshot(t *testing.T) {
	cfg := testConfig()
	sess := game.NewSession(cfg, rand.New(rand.NewSource(1)), time.Now())
	path := filepath.Join(t.TempDir(), "round.png")
	if err := SaveScreenshot(NewRenderer(cfg), sess, path); err != nil {
		t.Fatalf("SaveScreenshot: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	conf, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if conf.Width != 800 || conf.Height != 600 {
		t.Errorf("size = %dx%d", conf.Width, conf.Height)
	}

	if err := SaveScreenshot(NewRenderer(cfg), sess, filepath.Join(t.TempDir(), "missing", "x.png")); err == nil {
		t.Error("expected an error for a missing directory")
	}
}

// scriptedBackend replays inputs on an image surface, then asks to quit.
type scriptedBackend struct {
	*ImageSurface
	inputs   []FrameInput
	waits    int
	closed   bool
	closeErr error
}

func (b *scriptedBackend) Poll() FrameInput {
	if len(b.inputs) == 0 {
		return FrameInput{Quit: true}
	}
	in := b.inputs[0]
	b.inputs = b.inputs[1:]
	return in
}

func (b *scriptedBackend) Wait() { b.waits++ }

func (b *scriptedBackend) Close() error {
	b.closed = true
	return b.closeErr
}

func TestRunUntilQuit(t *testing.T) {
	cfg := testConfig()
	g := newGame(cfg)
	b := &scriptedBackend{
		ImageSurface: NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight),
		inputs: []FrameInput{
			{Keys: []types.Key{types.KeyEnter}},
			{Keys: []types.Key{types.KeyEscape}},
			{},
			{Keys: []types.Key{types.KeyEscape}},
		},
	}
	if err := Run(g, b, NewRenderer(cfg), Options{}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if g.State() != manager.StateQuit {
		t.Errorf("state = %v, want quit", g.State())
	}
	if b.waits != 4 {
		t.Errorf("waited %d times, want 4", b.waits)
	}
	// Only the resuming frame stepped.
	if g.Session().Frames != 1 {
		t.Errorf("frames = %d, want 1", g.Session().Frames)
	}
	if !b.closed {
		t.Error("backend left open")
	}
}

func TestRunReportsCloseError(t *testing.T) {
	cfg := testConfig()
	errBroken := errors.New("broken window")
	b := &scriptedBackend{
		ImageSurface: NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight),
		closeErr:     errBroken,
	}
	err := Run(newGame(cfg), b, NewRenderer(cfg), Options{})
	if !errors.Is(err, errBroken) {
		t.Fatalf("Run = %v, want the close error", err)
	}
	if !b.closed {
		t.Error("backend left open")
	}
}

func TestPauseButtons(t *testing.T) {
	cfg := testConfig()
	g := newGame(cfg)
	r := NewRenderer(cfg)
	img := NewImageSurface(cfg.ScreenWidth, cfg.ScreenHeight)

	g.Dispatch(manager.ActionStart)
	Frame(g, r, img, FrameInput{Keys: []types.Key{types.KeyEscape}}, Options{})
	if g.State() != manager.StatePaused {
		t.Fatalf("state = %v, want paused", g.State())
	}
	buttons := r.buttons(img, g)
	if len(buttons) != 2 || buttons[0].Label != "Resume" || buttons[1].Label != "Main menu" {
		t.Fatalf("pause buttons = %+v", buttons)
	}

	// Enter resumes without stepping on the same frame.
	Frame(g, r, img, FrameInput{Keys: []types.Key{types.KeyEnter}}, Options{})
	if g.State() != manager.StateRunning || g.Session().Frames != 0 {
		t.Fatalf("enter: state %v frames %d", g.State(), g.Session().Frames)
	}

	Frame(g, r, img, FrameInput{Keys: []types.Key{types.KeyEscape}}, Options{})
	Frame(g, r, img, FrameInput{Mouse: center(buttons[1].Rect), Click: true}, Options{})
	if g.State() != manager.StateMenu || g.Session() != nil {
		t.Errorf("main menu click: state %v", g.State())
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "sdl"
	if _, err := Open(cfg); err == nil {
		t.Fatal("expected an error")
	}
}
