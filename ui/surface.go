package ui

import (
	"errors"

	"snake-arena/game/types"
)

var (
	// ErrBackendInit wraps any failure to bring up a window or terminal.
	ErrBackendInit = errors.New("backend init failed")
	// ErrUnknownBackend is returned by Open for names it does not know.
	ErrUnknownBackend = errors.New("unknown backend")
)

// Surface is where a frame is drawn. Coordinates are pixels with the origin
// in the top-left corner; text is positioned by its top-left corner.
type Surface interface {
	BeginFrame(bg types.Color)
	FillRect(c types.Cell, col types.Color)
	StrokeRect(c types.Cell, col types.Color)
	DrawText(text string, x, y, size int, col types.Color)
	MeasureText(text string, size int) int
	EndFrame()
}

// FrameInput is everything that happened since the previous poll.
type FrameInput struct {
	Keys  []types.Key // key-downs in arrival order
	Mouse types.Point
	Click bool // left button went down
	Quit  bool // window closed or interrupted
}

type Input interface {
	Poll() FrameInput
}

// Limiter blocks until the next tick boundary.
type Limiter interface {
	Wait()
}

// Backend bundles the three collaborators a frame loop needs.
type Backend interface {
	Surface
	Input
	Limiter
	Close() error
}
