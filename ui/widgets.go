package ui

import (
	"snake-arena/game/manager"
	"snake-arena/game/types"
)

const (
	buttonPadX = 50
	buttonPadY = 2
)

// Button is a clickable label. OffsetY is measured from the screen's
// title line to the button's centre.
type Button struct {
	Label      string
	Action     manager.Action
	Color      types.Color
	HoverColor types.Color
	OffsetY    int
	Size       int // font size, 0 for the title size
}

type placedButton struct {
	Button
	Rect types.Cell
	text types.Cell
}

func menuButtons(walls bool) []Button {
	toggle := Button{Label: "Walls: off", Action: manager.ActionToggleWalls, Color: types.Grey, HoverColor: types.Blue, OffsetY: 275, Size: 40}
	if walls {
		toggle.Label = "Walls: on"
	}
	return []Button{
		{Label: "Start game", Action: manager.ActionStart, Color: types.DarkGreen, HoverColor: types.Green, OffsetY: 200},
		toggle,
		{Label: "Quit game", Action: manager.ActionQuit, Color: types.DarkRed, HoverColor: types.Red, OffsetY: 350},
	}
}

var pauseButtons = []Button{
	{Label: "Resume", Action: manager.ActionResume, Color: types.DarkGreen, HoverColor: types.Green, OffsetY: 250},
	{Label: "Main menu", Action: manager.ActionMenu, Color: types.DarkBlue, HoverColor: types.Blue, OffsetY: 350},
}

var gameOverButtons = []Button{
	{Label: "Try again", Action: manager.ActionRetry, Color: types.DarkGreen, HoverColor: types.Green, OffsetY: 150},
	{Label: "Main menu", Action: manager.ActionMenu, Color: types.DarkBlue, HoverColor: types.Blue, OffsetY: 250},
	{Label: "Quit game", Action: manager.ActionQuit, Color: types.DarkRed, HoverColor: types.Red, OffsetY: 350},
}

// layoutButtons centres each label on x and pads its text box.
func layoutButtons(s Surface, buttons []Button, centerX, titleY, titleSize int) []placedButton {
	placed := make([]placedButton, 0, len(buttons))
	for _, b := range buttons {
		size := b.Size
		if size == 0 {
			size = titleSize
		}
		w := s.MeasureText(b.Label, size)
		text := types.NewCell(centerX-w/2, titleY+b.OffsetY-size/2, w, size)
		placed = append(placed, placedButton{Button: b, Rect: text.Inflate(buttonPadX, buttonPadY), text: text})
	}
	return placed
}

func drawButtons(s Surface, placed []placedButton, mouse types.Point) {
	for _, b := range placed {
		col := b.Color
		if b.Rect.Contains(mouse) {
			col = b.HoverColor
		}
		s.FillRect(b.Rect, col)
		s.DrawText(b.Label, b.text.X, b.text.Y, b.text.Height, types.Black)
	}
}

// pressed returns the action of the button the input activates: a click
// inside a button, or Enter for the first one.
func pressed(placed []placedButton, in FrameInput) (manager.Action, bool) {
	if in.Click {
		for _, b := range placed {
			if b.Rect.Contains(in.Mouse) {
				return b.Action, true
			}
		}
	}
	for _, k := range in.Keys {
		if k == types.KeyEnter && len(placed) > 0 {
			return placed[0].Action, true
		}
	}
	return manager.ActionNone, false
}
