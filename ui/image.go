package ui

import (
	"image"

	"github.com/fogleman/gg"

	"snake-arena/game/types"
)

// basicfont.Face7x13, the gg default, is 13 px high.
const imageFontHeight = 13.0

// ImageSurface draws frames into memory with gg.
type ImageSurface struct {
	dc *gg.Context
}

func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{dc: gg.NewContext(width, height)}
}

func (s *ImageSurface) setColor(c types.Color) {
	s.dc.SetRGB255(int(c.R), int(c.G), int(c.B))
}

func (s *ImageSurface) BeginFrame(bg types.Color) {
	s.setColor(bg)
	s.dc.Clear()
}

func (s *ImageSurface) FillRect(c types.Cell, col types.Color) {
	s.setColor(col)
	s.dc.DrawRectangle(float64(c.X), float64(c.Y), float64(c.Width), float64(c.Height))
	s.dc.Fill()
}

func (s *ImageSurface) StrokeRect(c types.Cell, col types.Color) {
	s.setColor(col)
	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(float64(c.X)+0.5, float64(c.Y)+0.5, float64(c.Width-1), float64(c.Height-1))
	s.dc.Stroke()
}

// DrawText uses the built-in bitmap face whatever the size; only the
// position follows the requested size.
func (s *ImageSurface) DrawText(text string, x, y, size int, col types.Color) {
	s.setColor(col)
	s.dc.DrawStringAnchored(text, float64(x), float64(y)+float64(size)/2, 0, 0.5)
}

// MeasureText scales the bitmap face's advance to the requested size.
func (s *ImageSurface) MeasureText(text string, size int) int {
	w, _ := s.dc.MeasureString(text)
	return int(w * float64(size) / imageFontHeight)
}

func (s *ImageSurface) EndFrame() {}

func (s *ImageSurface) Image() image.Image {
	return s.dc.Image()
}

func (s *ImageSurface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}
