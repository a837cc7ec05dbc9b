package ui

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"snake-arena/game/types"
)

// TerminalBackend draws the arena in a terminal. One cell pitch maps to two
// columns and one row, so the default 800x600 screen needs 64x24.
type TerminalBackend struct {
	screen  tcell.Screen
	events  chan tcell.Event
	ticker  *time.Ticker
	pitchX  int
	pitchY  int
	mouse   types.Point
	buttons tcell.ButtonMask
}

func NewTerminalBackend(fps, pitchX, pitchY int) (*TerminalBackend, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
	}
	return newTerminalBackend(s, fps, pitchX, pitchY), nil
}

// newTerminalBackend takes an initialised screen.
func newTerminalBackend(s tcell.Screen, fps, pitchX, pitchY int) *TerminalBackend {
	s.HideCursor()
	s.EnableMouse()
	b := &TerminalBackend{
		screen: s,
		events: make(chan tcell.Event, 64),
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
		pitchX: pitchX,
		pitchY: pitchY,
	}
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(b.events)
				return
			}
			b.events <- ev
		}
	}()
	return b
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (b *TerminalBackend) col(x int) int { return x * 2 / b.pitchX }
func (b *TerminalBackend) row(y int) int { return y / b.pitchY }

// span returns the columns and rows a pixel rectangle covers, end exclusive.
func (b *TerminalBackend) span(c types.Cell) (c0, c1, r0, r1 int) {
	c0, r0 = b.col(c.X), b.row(c.Y)
	c1, r1 = b.col(c.X+c.Width-1)+1, b.row(c.Y+c.Height-1)+1
	return c0, c1, r0, r1
}

func (b *TerminalBackend) BeginFrame(bg types.Color) {
	b.screen.Fill(' ', tcell.StyleDefault.Background(toTcell(bg)))
}

func (b *TerminalBackend) FillRect(c types.Cell, col types.Color) {
	style := tcell.StyleDefault.Background(toTcell(col))
	c0, c1, r0, r1 := b.span(c)
	for y := r0; y < r1; y++ {
		for x := c0; x < c1; x++ {
			b.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// StrokeRect brackets the rectangle on every row it covers.
func (b *TerminalBackend) StrokeRect(c types.Cell, col types.Color) {
	c0, c1, r0, r1 := b.span(c)
	for y := r0; y < r1; y++ {
		b.setFg(c0, y, '[', col)
		b.setFg(c1-1, y, ']', col)
	}
}

// DrawText writes on the row holding the text's vertical centre, keeping
// whatever background is already there.
func (b *TerminalBackend) DrawText(text string, x, y, size int, col types.Color) {
	cx, cy := b.col(x), b.row(y+size/2)
	for _, r := range text {
		b.setFg(cx, cy, r, col)
		cx++
	}
}

func (b *TerminalBackend) setFg(x, y int, r rune, col types.Color) {
	_, _, style, _ := b.screen.GetContent(x, y)
	b.screen.SetContent(x, y, r, nil, style.Foreground(toTcell(col)))
}

// MeasureText reports one column per rune, in pixels.
func (b *TerminalBackend) MeasureText(text string, size int) int {
	return utf8.RuneCountInString(text) * b.pitchX / 2
}

func (b *TerminalBackend) EndFrame() {
	b.screen.Show()
}

func (b *TerminalBackend) Poll() FrameInput {
	var in FrameInput
	for {
		select {
		case ev, ok := <-b.events:
			if !ok {
				in.Quit = true
				in.Mouse = b.mouse
				return in
			}
			b.handle(ev, &in)
		default:
			in.Mouse = b.mouse
			return in
		}
	}
}

func (b *TerminalBackend) handle(ev tcell.Event, in *FrameInput) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			in.Quit = true
			return
		}
		if k := terminalKey(ev.Key()); k != types.KeyNone {
			in.Keys = append(in.Keys, k)
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		b.mouse = types.Point{X: x*b.pitchX/2 + b.pitchX/4, Y: y*b.pitchY + b.pitchY/2}
		pressed := ev.Buttons()
		if pressed&tcell.Button1 != 0 && b.buttons&tcell.Button1 == 0 {
			in.Click = true
		}
		b.buttons = pressed
	case *tcell.EventResize:
		b.screen.Sync()
	}
}

func terminalKey(k tcell.Key) types.Key {
	switch k {
	case tcell.KeyUp:
		return types.KeyUp
	case tcell.KeyDown:
		return types.KeyDown
	case tcell.KeyLeft:
		return types.KeyLeft
	case tcell.KeyRight:
		return types.KeyRight
	case tcell.KeyEscape:
		return types.KeyEscape
	case tcell.KeyEnter:
		return types.KeyEnter
	default:
		return types.KeyNone
	}
}

func (b *TerminalBackend) Wait() {
	<-b.ticker.C
}

func (b *TerminalBackend) Close() error {
	b.ticker.Stop()
	b.screen.Fini()
	return nil
}
