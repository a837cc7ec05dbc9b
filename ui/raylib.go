package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arena/game/types"
)

// RaylibBackend is a desktop window. Frame pacing comes from
// rl.SetTargetFPS inside EndDrawing, so Wait does nothing.
type RaylibBackend struct{}

func NewRaylibBackend(width, height, fps int, title string) (*RaylibBackend, error) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return nil, fmt.Errorf("%w: raylib window did not open", ErrBackendInit)
	}
	// Escape pauses the game; it must not close the window.
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(fps))
	return &RaylibBackend{}, nil
}

func toRaylib(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

func (b *RaylibBackend) BeginFrame(bg types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRaylib(bg))
}

func (b *RaylibBackend) FillRect(c types.Cell, col types.Color) {
	rl.DrawRectangle(int32(c.X), int32(c.Y), int32(c.Width), int32(c.Height), toRaylib(col))
}

func (b *RaylibBackend) StrokeRect(c types.Cell, col types.Color) {
	rl.DrawRectangleLines(int32(c.X), int32(c.Y), int32(c.Width), int32(c.Height), toRaylib(col))
}

func (b *RaylibBackend) DrawText(text string, x, y, size int, col types.Color) {
	rl.DrawText(text, int32(x), int32(y), int32(size), toRaylib(col))
}

func (b *RaylibBackend) MeasureText(text string, size int) int {
	return int(rl.MeasureText(text, int32(size)))
}

func (b *RaylibBackend) EndFrame() {
	rl.EndDrawing()
}

func (b *RaylibBackend) Poll() FrameInput {
	var in FrameInput
	for k := rl.GetKeyPressed(); k != 0; k = rl.GetKeyPressed() {
		if key := raylibKey(k); key != types.KeyNone {
			in.Keys = append(in.Keys, key)
		}
	}
	mouse := rl.GetMousePosition()
	in.Mouse = types.Point{X: int(mouse.X), Y: int(mouse.Y)}
	in.Click = rl.IsMouseButtonPressed(rl.MouseLeftButton)
	in.Quit = rl.WindowShouldClose()
	return in
}

func raylibKey(k int32) types.Key {
	switch k {
	case rl.KeyUp:
		return types.KeyUp
	case rl.KeyDown:
		return types.KeyDown
	case rl.KeyLeft:
		return types.KeyLeft
	case rl.KeyRight:
		return types.KeyRight
	case rl.KeyEscape:
		return types.KeyEscape
	case rl.KeyEnter, rl.KeyKpEnter:
		return types.KeyEnter
	default:
		return types.KeyNone
	}
}

func (b *RaylibBackend) Wait() {}

func (b *RaylibBackend) Close() error {
	rl.CloseWindow()
	return nil
}
