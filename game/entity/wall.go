package entity

import "snake-arena/game/types"

// Wall is one static edge of the arena.
type Wall struct {
	Cell  types.Cell
	Color types.Color
}

// NewWall spans from start to end. A zero extent on either axis takes the
// wall thickness instead.
func NewWall(start, end types.Point, thickness int, color types.Color) Wall {
	w := end.X - start.X
	if w == 0 {
		w = thickness
	}
	h := end.Y - start.Y
	if h == 0 {
		h = thickness
	}
	return Wall{Cell: types.NewCell(start.X, start.Y, w, h), Color: color}
}

func (w Wall) Rect() types.Cell  { return w.Cell }
func (w Wall) Tint() types.Color { return w.Color }

// BuildWalls returns the top, right, bottom and left walls of b.
func BuildWalls(b types.Bounds, thickness int, color types.Color) []Wall {
	return []Wall{
		NewWall(types.Point{X: b.MinX, Y: b.MinY}, types.Point{X: b.MaxX, Y: b.MinY}, thickness, color),
		NewWall(types.Point{X: b.MaxX - thickness, Y: b.MinY}, types.Point{X: b.MaxX - thickness, Y: b.MaxY}, thickness, color),
		NewWall(types.Point{X: b.MinX, Y: b.MaxY - thickness}, types.Point{X: b.MaxX - thickness, Y: b.MaxY - thickness}, thickness, color),
		NewWall(types.Point{X: b.MinX, Y: b.MinY}, types.Point{X: b.MinX, Y: b.MaxY}, thickness, color),
	}
}
